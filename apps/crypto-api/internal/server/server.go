// Package server はHTTPサーバーの構築と起動を提供する。
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/apps/crypto-api/internal/config"
	"github.com/randallknutson/pod/apps/crypto-api/internal/handler"
)

// Server はcrypto-apiのHTTPサーバー。
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *handler.CryptoHandler) *Server {
	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(
		TraceIDMiddleware(),
		LoggingMiddleware(),
		RecoveryMiddleware(),
		BodyLimitMiddleware(config.MaxBodyBytes),
	)
	SetupRouter(engine, h)

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           engine,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			ReadTimeout:       config.ReadTimeout,
			WriteTimeout:      config.WriteTimeout,
		},
	}
}

// Handler はルーティング済みのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run はサーバーを起動する。Shutdown後はhttp.ErrServerClosedを返す。
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown は処理中のリクエストを待ってサーバーを停止する。
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
