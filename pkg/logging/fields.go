package logging

import "log/slog"

// ログフィールド名
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldMode       = "mode"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。nilは空文字列になる。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithOperation は操作名（APIパスまたはpod-cliのサブコマンド）のslog.Attrを返す。
func WithOperation(op string) slog.Attr {
	return slog.String(FieldOperation, op)
}

// WithMode はpod-cliの実行モード（local/remote）のslog.Attrを返す。
func WithMode(mode string) slog.Attr {
	return slog.String(FieldMode, mode)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// CommonFields は鍵素材のフィールドをマスキング設定に従って生成する。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。nilの場合はマスキング有効。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(true)
	}
	return &CommonFields{masker: masker}
}

// WithKey は鍵素材（CK, LTK等）のslog.Attrを返す。
func (cf *CommonFields) WithKey(name string, key []byte) slog.Attr {
	return slog.String(name, cf.masker.Key(key))
}
