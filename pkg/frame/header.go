package frame

import (
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// MessageType はTWIヘッダのメッセージ種別。
type MessageType uint8

// メッセージ種別
const (
	MessageTypeClear MessageType = iota
	MessageTypeEncrypted
	MessageTypeSessionEstablishment
	MessageTypePairing
)

// Magic はTWIヘッダ先頭のマジック。
const Magic = "TW"

// MaxPayloadLen は11ビット長フィールドの上限。
const MaxPayloadLen = 1<<11 - 1

// String はメッセージ種別名を返す。
func (t MessageType) String() string {
	switch t {
	case MessageTypeClear:
		return "clear"
	case MessageTypeEncrypted:
		return "encrypted"
	case MessageTypeSessionEstablishment:
		return "session-establishment"
	case MessageTypePairing:
		return "pairing"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Header はTWIフレームの16バイトヘッダを表す。
type Header struct {
	Version        uint8 // 3ビット
	SAS            bool
	TFS            bool
	EQoS           uint8 // 3ビット
	Ack            bool
	Priority       bool
	LastMessage    bool
	Gateway        bool
	Type           MessageType
	SequenceNumber uint8
	AckNumber      uint8
	PayloadLength  int // 11ビット。暗号化フレームではタグ8バイトを含まない
	Source         Address
	Destination    Address
}

// フラグバイトはMSB側をインデックス0として扱う
func bit(b byte, index uint) bool {
	return b&(1<<(7-index)) != 0
}

func setBit(b *byte, index uint, v bool) {
	if v {
		*b |= 1 << (7 - index)
	}
}

// DecodeHeader は先頭16バイトをTWIヘッダとして解釈する。
func DecodeHeader(raw []byte) (*Header, error) {
	if len(raw) < HeaderLen {
		return nil, apperr.NewDecodeError("frame", len(raw), ErrFrameTooShort)
	}
	if string(raw[:2]) != Magic {
		return nil, apperr.NewDecodeError("frame", 0, ErrBadMagic)
	}

	h := &Header{
		Version: raw[2] >> 5,
		SAS:     bit(raw[2], 3),
		TFS:     bit(raw[2], 4),
		EQoS:    raw[2] & 0x07,

		Ack:         bit(raw[3], 0),
		Priority:    bit(raw[3], 1),
		LastMessage: bit(raw[3], 2),
		Gateway:     bit(raw[3], 3),
		Type:        MessageType(raw[3] & 0x0f),

		SequenceNumber: raw[4],
		AckNumber:      raw[5],
		PayloadLength:  int(raw[6])<<3 | int(raw[7])>>5,
	}
	if h.Type > MessageTypePairing {
		return nil, apperr.NewDecodeError("frame", 3, fmt.Errorf("%w: %d", ErrUnknownMessageType, uint8(h.Type)))
	}
	if h.Version != 0 {
		return nil, apperr.NewDecodeError("frame", 2, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version))
	}
	copy(h.Source[:], raw[8:12])
	copy(h.Destination[:], raw[12:16])
	return h, nil
}

// EncodeHeader はHeaderを16バイトにエンコードする。
func EncodeHeader(h *Header) ([]byte, error) {
	if h.Version > 7 || h.EQoS > 7 || h.Type > 0x0f {
		return nil, ErrFieldOverflow
	}
	if h.PayloadLength < 0 || h.PayloadLength > MaxPayloadLen {
		return nil, fmt.Errorf("%w: %d", ErrPayloadTooLong, h.PayloadLength)
	}

	buf := make([]byte, HeaderLen)
	copy(buf, Magic)

	buf[2] = h.Version<<5 | h.EQoS
	setBit(&buf[2], 3, h.SAS)
	setBit(&buf[2], 4, h.TFS)

	buf[3] = byte(h.Type)
	setBit(&buf[3], 0, h.Ack)
	setBit(&buf[3], 1, h.Priority)
	setBit(&buf[3], 2, h.LastMessage)
	setBit(&buf[3], 3, h.Gateway)

	buf[4] = h.SequenceNumber
	buf[5] = h.AckNumber
	buf[6] = byte(h.PayloadLength >> 3)
	buf[7] = byte(h.PayloadLength << 5)

	copy(buf[8:12], h.Source[:])
	copy(buf[12:16], h.Destination[:])
	return buf, nil
}
