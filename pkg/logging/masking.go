// Package logging はslog用のフィールドと鍵素材のマスキングを提供する。
package logging

import (
	"encoding/hex"
	"fmt"
)

// redactKeep はマスキング時に残す先頭バイト数。
const redactKeep = 2

// Redact は鍵素材を先頭2バイトと長さだけの表記にする。
// 例: 55799fd26664cbf6e476525e2dee52c6 → 5579..(16B)
// 4バイト以下の値は長さのみ出力する。
func Redact(b []byte) string {
	if len(b) <= 2*redactKeep {
		return fmt.Sprintf("..(%dB)", len(b))
	}
	return fmt.Sprintf("%x..(%dB)", b[:redactKeep], len(b))
}

// Masker は鍵素材をログに出すときの表記を決める。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。enabled=falseの場合は全体をHexで出力する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Key は鍵素材のログ表記を返す。nilのMaskerは常にマスキングする。
func (m *Masker) Key(b []byte) string {
	if m == nil || m.enabled {
		return Redact(b)
	}
	return hex.EncodeToString(b)
}
