package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/pkg/model"
)

// HandleHealth はGET /health のハンドラー。
func (h *CryptoHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}
