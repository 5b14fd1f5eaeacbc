package client

// HTTPヘッダ名
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// crypto-apiのエンドポイント
const (
	PathFrameDecode    = "/api/v1/frame/decode"
	PathEAPDecode      = "/api/v1/eap/decode"
	PathEAPRespond     = "/api/v1/eap/respond"
	PathMilenageDerive = "/api/v1/milenage/derive"
	PathMilenageVerify = "/api/v1/milenage/verify"
	PathPairingLTK     = "/api/v1/pairing/ltk"
	PathAEADSeal       = "/api/v1/aead/seal"
	PathAEADOpen       = "/api/v1/aead/open"
)
