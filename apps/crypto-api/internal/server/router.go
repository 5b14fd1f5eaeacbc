package server

import (
	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/apps/crypto-api/internal/handler"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.CryptoHandler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/frame/decode", h.HandleFrameDecode)
		v1.POST("/eap/decode", h.HandleEAPDecode)
		v1.POST("/eap/respond", h.HandleEAPRespond)
		v1.POST("/milenage/derive", h.HandleMilenageDerive)
		v1.POST("/milenage/verify", h.HandleMilenageVerify)
		v1.POST("/pairing/ltk", h.HandlePairingLTK)
		v1.POST("/aead/seal", h.HandleAEADSeal)
		v1.POST("/aead/open", h.HandleAEADOpen)
	}
}
