package config

import "time"

// 既定値の長さ
const (
	OPLen  = 16
	AMFLen = 2
	IVLen  = 4
)

// HTTPサーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 10 * time.Second
	WriteTimeout      = 10 * time.Second
	MaxBodyBytes      = 64 << 10
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 10 * time.Second
)
