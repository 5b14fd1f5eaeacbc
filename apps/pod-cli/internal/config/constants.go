package config

import "time"

// 実行モード
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// 既定値の長さ
const (
	OPLen  = 16
	AMFLen = 2
	IVLen  = 4
)

// crypto-api接続設定
const (
	APIRequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "crypto-api"
	CBMaxRequests      = 1
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 3
)

// 全体の実行タイムアウト
const (
	RunTimeout = 30 * time.Second
)
