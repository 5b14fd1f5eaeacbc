// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/apps/crypto-api/internal/usecase"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/logging"
)

// CryptoHandler はcrypto-apiのハンドラー。
type CryptoHandler struct {
	useCase usecase.CryptoUseCaseInterface
}

// NewCryptoHandler は新しいCryptoHandlerを生成する。
func NewCryptoHandler(useCase usecase.CryptoUseCaseInterface) *CryptoHandler {
	return &CryptoHandler{useCase: useCase}
}

// bind はリクエストボディをバインドする。失敗時は400を返してfalseを返す。
func (h *CryptoHandler) bind(c *gin.Context, op string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(httputil.TraceID(c)),
			logging.WithEventID(usecase.EventInputErr),
			logging.WithOperation(op),
			logging.WithError(err),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// respond は処理結果をレスポンスとして書き込む。
func (h *CryptoHandler) respond(c *gin.Context, op string, resp any, err error) {
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	slog.Info("operation completed",
		logging.WithTraceID(httputil.TraceID(c)),
		logging.WithEventID(usecase.EventCalcOK),
		logging.WithOperation(op),
		logging.WithHTTPStatus(http.StatusOK),
	)
	c.JSON(http.StatusOK, resp)
}

// handleError はエラーレスポンスを処理する。
func (h *CryptoHandler) handleError(c *gin.Context, op string, err error) {
	traceID := httputil.TraceID(c)

	var problemErr *usecase.ProblemError
	if errors.As(err, &problemErr) {
		slog.Log(c.Request.Context(), problemErr.LogLevel(), problemErr.Message,
			logging.WithTraceID(traceID),
			logging.WithEventID(problemErr.EventID),
			logging.WithOperation(op),
			logging.WithHTTPStatus(problemErr.Status),
			logging.WithError(err),
		)
		httputil.WriteError(c, problemErr.ToProblemDetail())
		return
	}

	// 予期しないエラー
	slog.Error("unexpected error",
		logging.WithTraceID(traceID),
		logging.WithEventID(usecase.EventCalcErr),
		logging.WithOperation(op),
		logging.WithError(err),
	)
	httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
}
