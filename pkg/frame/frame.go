// Package frame はTWIリンクフレームのデコードを提供する。
package frame

import (
	"encoding/hex"

	"github.com/randallknutson/pod/pkg/apperr"
)

// フレームレイアウト
const (
	HeaderLen  = 16 // プリアンブルから宛先アドレスまで
	TrailerLen = 3  // 末尾の整合性バイト
	MinLen     = HeaderLen + TrailerLen
	AddressLen = 4
)

// Address は4バイトのリンクアドレス。
type Address [AddressLen]byte

// String はアドレスをHex文字列で返す。
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Frame はデコード済みのリンクフレームを表す。
// デコード後は不変で、元のバッファとはメモリを共有しない。
type Frame struct {
	Preamble    byte
	Reserved    []byte // raw[1:7]、このレイヤでは解釈しない
	Source      Address
	Destination Address
	Payload     []byte // raw[16:N-3]
	Trailer     []byte // raw[N-3:N]
}

// Decode は生バイト列を固定オフセットで分割する。
// プリアンブルと予約領域は検証しない。
func Decode(raw []byte) (*Frame, error) {
	if len(raw) < MinLen {
		return nil, apperr.NewDecodeError("frame", len(raw), ErrFrameTooShort)
	}

	buf := make([]byte, len(raw))
	copy(buf, raw)
	n := len(buf)

	f := &Frame{
		Preamble: buf[0],
		Reserved: buf[1:7:7],
		Payload:  buf[HeaderLen : n-TrailerLen : n-TrailerLen],
		Trailer:  buf[n-TrailerLen:],
	}
	copy(f.Source[:], buf[8:12])
	copy(f.Destination[:], buf[12:16])
	return f, nil
}
