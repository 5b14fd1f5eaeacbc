// Package eap はEAP-AKAメッセージとTLV属性のデコード・エンコードを提供する。
package eap

import (
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

const (
	headerLen     = 4
	akaHeaderLen  = 8
	maxMessageLen = 255
)

// Message はデコード済みのEAPメッセージを表す。
type Message struct {
	Code       Code
	Identifier uint8
	Length     int         // 宣言長（上位バイト×16 + 下位バイト）
	Type       uint8       // Type指示子（バイト4）。ヘッダのみの場合は0
	Subtype    Subtype     // ヘッダのみの場合はSubtypeNone
	Attributes []Attribute // ヘッダのみの場合はnil
}

// HeaderOnly はSubtypeと属性を持たないメッセージかどうかを返す。
func (m *Message) HeaderOnly() bool {
	return m.Subtype == SubtypeNone
}

// Decode はバイト列をEAPメッセージとしてデコードする。
func Decode(buf []byte) (*Message, error) {
	if len(buf) < headerLen {
		return nil, apperr.NewDecodeError("eap", len(buf), ErrMessageTooShort)
	}

	code := Code(buf[0])
	if _, ok := codeNames[code]; !ok {
		return nil, apperr.NewDecodeError("eap", 0, fmt.Errorf("%w: %d", ErrUnknownCode, buf[0]))
	}

	m := &Message{
		Code:       code,
		Identifier: buf[1],
		// 標準のビッグエンディアンではなく旧来の形式を維持する
		Length: int(buf[2])*16 + int(buf[3]),
	}
	if m.Length <= headerLen {
		return m, nil
	}

	if len(buf) < akaHeaderLen {
		return nil, apperr.NewDecodeError("eap", len(buf), ErrMessageTooShort)
	}
	m.Type = buf[4]
	m.Subtype = Subtype(buf[5])
	if _, ok := subtypeNames[m.Subtype]; !ok {
		return nil, apperr.NewDecodeError("eap", 5, fmt.Errorf("%w: %d", ErrUnknownSubtype, buf[5]))
	}

	attrs, err := decodeAttributes(buf[akaHeaderLen:], akaHeaderLen)
	if err != nil {
		return nil, err
	}
	m.Attributes = attrs
	return m, nil
}

// Marshal はメッセージをバイト列にエンコードする。
// Subtypeがない場合は4バイトのヘッダのみを出力する。
// 長さは255バイト以下に制限する（旧来形式とビッグエンディアンが一致する範囲）。
func (m *Message) Marshal() ([]byte, error) {
	if _, ok := codeNames[m.Code]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCode, uint8(m.Code))
	}

	if m.HeaderOnly() {
		return []byte{byte(m.Code), m.Identifier, 0, headerLen}, nil
	}

	if _, ok := subtypeNames[m.Subtype]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSubtype, uint8(m.Subtype))
	}

	attrs, err := EncodeAttributes(m.Attributes)
	if err != nil {
		return nil, err
	}
	total := akaHeaderLen + len(attrs)
	if total > maxMessageLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLong, total)
	}

	typ := m.Type
	if typ == 0 {
		typ = TypeAKA
	}

	buf := make([]byte, akaHeaderLen, total)
	buf[0] = byte(m.Code)
	buf[1] = m.Identifier
	buf[2] = 0
	buf[3] = byte(total)
	buf[4] = typ
	buf[5] = byte(m.Subtype)
	return append(buf, attrs...), nil
}

// Find は指定型の最初の属性を返す。
// 見つかった場合は(属性, true)、見つからない場合は(ゼロ値, false)を返す。
func Find[T Attribute](m *Message) (T, bool) {
	var zero T
	for _, attr := range m.Attributes {
		if v, ok := attr.(T); ok {
			return v, true
		}
	}
	return zero, false
}
