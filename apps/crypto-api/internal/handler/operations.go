package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/pkg/model"
)

// 処理種別（ログのoperationフィールド）
const (
	OpFrameDecode    = "frame_decode"
	OpEAPDecode      = "eap_decode"
	OpEAPRespond     = "eap_respond"
	OpMilenageDerive = "milenage_derive"
	OpMilenageVerify = "milenage_verify"
	OpPairingLTK     = "pairing_ltk"
	OpAEADSeal       = "aead_seal"
	OpAEADOpen       = "aead_open"
)

// HandleFrameDecode はPOST /api/v1/frame/decode のハンドラー。
func (h *CryptoHandler) HandleFrameDecode(c *gin.Context) {
	var req model.FrameDecodeRequest
	if !h.bind(c, OpFrameDecode, &req) {
		return
	}
	resp, err := h.useCase.DecodeFrame(c.Request.Context(), &req)
	h.respond(c, OpFrameDecode, resp, err)
}

// HandleEAPDecode はPOST /api/v1/eap/decode のハンドラー。
func (h *CryptoHandler) HandleEAPDecode(c *gin.Context) {
	var req model.EAPDecodeRequest
	if !h.bind(c, OpEAPDecode, &req) {
		return
	}
	resp, err := h.useCase.DecodeEAP(c.Request.Context(), &req)
	h.respond(c, OpEAPDecode, resp, err)
}

// HandleEAPRespond はPOST /api/v1/eap/respond のハンドラー。
func (h *CryptoHandler) HandleEAPRespond(c *gin.Context) {
	var req model.EAPRespondRequest
	if !h.bind(c, OpEAPRespond, &req) {
		return
	}
	resp, err := h.useCase.RespondChallenge(c.Request.Context(), &req)
	h.respond(c, OpEAPRespond, resp, err)
}

// HandleMilenageDerive はPOST /api/v1/milenage/derive のハンドラー。
func (h *CryptoHandler) HandleMilenageDerive(c *gin.Context) {
	var req model.MilenageRequest
	if !h.bind(c, OpMilenageDerive, &req) {
		return
	}
	resp, err := h.useCase.DeriveMilenage(c.Request.Context(), &req)
	h.respond(c, OpMilenageDerive, resp, err)
}

// HandleMilenageVerify はPOST /api/v1/milenage/verify のハンドラー。
func (h *CryptoHandler) HandleMilenageVerify(c *gin.Context) {
	var req model.MilenageVerifyRequest
	if !h.bind(c, OpMilenageVerify, &req) {
		return
	}
	resp, err := h.useCase.VerifyMilenage(c.Request.Context(), &req)
	h.respond(c, OpMilenageVerify, resp, err)
}

// HandlePairingLTK はPOST /api/v1/pairing/ltk のハンドラー。
func (h *CryptoHandler) HandlePairingLTK(c *gin.Context) {
	var req model.PairingRequest
	if !h.bind(c, OpPairingLTK, &req) {
		return
	}
	resp, err := h.useCase.DeriveLTK(c.Request.Context(), &req)
	h.respond(c, OpPairingLTK, resp, err)
}

// HandleAEADSeal はPOST /api/v1/aead/seal のハンドラー。
func (h *CryptoHandler) HandleAEADSeal(c *gin.Context) {
	var req model.SealRequest
	if !h.bind(c, OpAEADSeal, &req) {
		return
	}
	resp, err := h.useCase.Seal(c.Request.Context(), &req)
	h.respond(c, OpAEADSeal, resp, err)
}

// HandleAEADOpen はPOST /api/v1/aead/open のハンドラー。
func (h *CryptoHandler) HandleAEADOpen(c *gin.Context) {
	var req model.OpenRequest
	if !h.bind(c, OpAEADOpen, &req) {
		return
	}
	resp, err := h.useCase.Open(c.Request.Context(), &req)
	h.respond(c, OpAEADOpen, resp, err)
}
