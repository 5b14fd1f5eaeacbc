package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/logging"
)

// TraceIDHeader はトレースIDを受け渡すHTTPヘッダ。
const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。
// ヘッダが無い場合はUUIDを採番し、レスポンスヘッダにも設定する。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(httputil.TraceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}

// LoggingMiddleware は1リクエストにつき1行のアクセスログを出力する。
// ヘルスチェックはDEBUGに落とす。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.FullPath() == "/health" {
			level = slog.LevelDebug
		}
		slog.Log(c.Request.Context(), level, "request completed",
			logging.WithTraceID(httputil.TraceID(c)),
			logging.WithOperation(c.Request.URL.Path),
			"method", c.Request.Method,
			logging.WithHTTPStatus(c.Writer.Status()),
			logging.WithLatency(time.Since(start).Milliseconds()),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered",
					logging.WithTraceID(httputil.TraceID(c)),
					logging.WithEventID("PANIC"),
					logging.WithOperation(c.Request.URL.Path),
					"panic", r,
				)
				httputil.AbortWithError(c, httputil.InternalServerError("An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}

// BodyLimitMiddleware はリクエストボディのサイズを制限する。
func BodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
