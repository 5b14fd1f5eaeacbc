package model

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
}

// HeaderResponse はTWIヘッダのデコード結果を表す。
type HeaderResponse struct {
	Version        uint8  `json:"version"`
	SAS            bool   `json:"sas"`
	TFS            bool   `json:"tfs"`
	EQoS           uint8  `json:"eqos"`
	Ack            bool   `json:"ack"`
	Priority       bool   `json:"priority"`
	LastMessage    bool   `json:"last_message"`
	Gateway        bool   `json:"gateway"`
	Type           string `json:"type"`
	SequenceNumber uint8  `json:"sequence_number"`
	AckNumber      uint8  `json:"ack_number"`
	PayloadLength  int    `json:"payload_length"`
}

// FrameDecodeResponse はフレームデコードレスポンスを表す。
type FrameDecodeResponse struct {
	Preamble    string              `json:"preamble"`
	Reserved    string              `json:"reserved"`
	Source      string              `json:"source"`
	Destination string              `json:"destination"`
	Payload     string              `json:"payload"`
	Trailer     string              `json:"trailer"`
	Header      *HeaderResponse     `json:"header,omitempty"`
	HeaderError string              `json:"header_error,omitempty"`
	EAP         *EAPMessageResponse `json:"eap,omitempty"`
}

// AttributeResponse はTLV属性を表す。
type AttributeResponse struct {
	Type   uint8  `json:"type"`
	Name   string `json:"name"`
	Length int    `json:"length"`
	Value  string `json:"value"`
}

// EAPMessageResponse はEAPメッセージのデコード結果を表す。
type EAPMessageResponse struct {
	Code        uint8               `json:"code"`
	CodeName    string              `json:"code_name"`
	Identifier  uint8               `json:"identifier"`
	Length      int                 `json:"length"`
	HeaderOnly  bool                `json:"header_only"`
	Type        uint8               `json:"type,omitempty"`
	Subtype     uint8               `json:"subtype,omitempty"`
	SubtypeName string              `json:"subtype_name,omitempty"`
	Attributes  []AttributeResponse `json:"attributes"`
}

// EAPRespondResponse はAKA-Challenge応答を表す。
type EAPRespondResponse struct {
	Response    string `json:"response"`
	Identifier  uint8  `json:"identifier"`
	SQN         string `json:"sqn"`
	RES         string `json:"res"`
	CK          string `json:"ck"`
	NoncePrefix string `json:"nonce_prefix"`
}

// MilenageResponse はMilenage計算結果を表す。
type MilenageResponse struct {
	OPc  string `json:"opc"`
	RAND string `json:"rand"`
	SQN  string `json:"sqn"`
	AMF  string `json:"amf"`
	AUTN string `json:"autn"`
	RES  string `json:"res"`
	CK   string `json:"ck"`
	IK   string `json:"ik"`
	AK   string `json:"ak"`
	MACA string `json:"mac_a"`
}

// VerifyResponse は検証結果を表す。失敗時はproblem+jsonを返すため常にtrue。
type VerifyResponse struct {
	Verified bool `json:"verified"`
}

// PairingResponse はLTK導出結果を表す。
type PairingResponse struct {
	PodPublic       string `json:"pod_public"`
	LTK             string `json:"ltk"`
	PDMConf         string `json:"pdm_conf"`
	PodConf         string `json:"pod_conf"`
	PDMConfVerified bool   `json:"pdm_conf_verified,omitempty"`
	PodConfVerified bool   `json:"pod_conf_verified,omitempty"`
}

// SealResponse はAES-CCM暗号化結果を表す。
type SealResponse struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

// OpenResponse はAES-CCM復号結果を表す。
type OpenResponse struct {
	Nonce     string `json:"nonce"`
	Plaintext string `json:"plaintext"`
}
