// Package model はcrypto-apiとpod-cliが共有するリクエスト・レスポンスの型を定義する。
// バイト列はすべてHex文字列でやり取りする。
package model

// FrameDecodeRequest はフレームデコードリクエストを表す。
type FrameDecodeRequest struct {
	PacketData string `json:"packet_data" binding:"required"`
	EAP        bool   `json:"eap"` // ペイロードをEAPとしてもデコードする
}

// EAPDecodeRequest はEAPメッセージデコードリクエストを表す。
type EAPDecodeRequest struct {
	EAP string `json:"eap" binding:"required"`
}

// EAPRespondRequest はAKA-Challenge応答生成リクエストを表す。
type EAPRespondRequest struct {
	Challenge string `json:"challenge" binding:"required"`
	K         string `json:"k" binding:"required"`
	OP        string `json:"op,omitempty"`
	OPc       string `json:"opc,omitempty"`
	AMF       string `json:"amf,omitempty"`
	PodIV     string `json:"pod_iv,omitempty"`
}

// MilenageRequest はMilenage計算リクエストを表す。
// OPとOPcはどちらか一方を指定する。両方省略した場合は既定のOPを使う。
type MilenageRequest struct {
	K    string  `json:"k" binding:"required"`
	OP   string  `json:"op,omitempty"`
	OPc  string  `json:"opc,omitempty"`
	RAND string  `json:"rand" binding:"required"`
	Seq  *uint64 `json:"seq" binding:"required"`
	AMF  string  `json:"amf,omitempty"`
}

// MilenageVerifyRequest はRES/CK検証リクエストを表す。
type MilenageVerifyRequest struct {
	MilenageRequest
	RES string `json:"res" binding:"required"`
	CK  string `json:"ck" binding:"required"`
}

// PairingRequest はLTK導出リクエストを表す。
// pod_publicを省略した場合はpod_secretから計算する。
type PairingRequest struct {
	PodSecret string `json:"pod_secret" binding:"required"`
	PodPublic string `json:"pod_public,omitempty"`
	PDMPublic string `json:"pdm_public" binding:"required"`
	PodNonce  string `json:"pod_nonce" binding:"required"`
	PDMNonce  string `json:"pdm_nonce" binding:"required"`
	PDMConf   string `json:"pdm_conf,omitempty"`
	PodConf   string `json:"pod_conf,omitempty"`
}

// NonceSpec はノンスの指定方法。
// nonceを省略した場合はnonce_prefix・seq・directionから組み立てる。
type NonceSpec struct {
	Nonce       string  `json:"nonce,omitempty"`
	NoncePrefix string  `json:"nonce_prefix,omitempty"`
	Seq         *uint64 `json:"seq,omitempty"`
	Direction   string  `json:"direction,omitempty"` // pod_to_pdm | pdm_to_pod
}

// SealRequest はAES-CCM暗号化リクエストを表す。
type SealRequest struct {
	CK string `json:"ck" binding:"required"`
	NonceSpec
	AAD       string `json:"aad"`
	Plaintext string `json:"plaintext"`
}

// OpenRequest はAES-CCM復号リクエストを表す。
type OpenRequest struct {
	CK string `json:"ck" binding:"required"`
	NonceSpec
	AAD        string `json:"aad"`
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag" binding:"required"`
}
