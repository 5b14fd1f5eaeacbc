package eap

import (
	"bytes"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

const (
	tlvHeaderLen = 2
	wordLen      = 4
	maxWords     = 255
)

// DecodeAttributes はTLVストリームを属性列にデコードする。
// バッファがTLV境界でちょうど終わるまで読み進める。
func DecodeAttributes(buf []byte) ([]Attribute, error) {
	return decodeAttributes(buf, 0)
}

// base はエラーに記録するオフセットの起点
func decodeAttributes(buf []byte, base int) ([]Attribute, error) {
	attrs := []Attribute{}
	off := 0
	for off < len(buf) {
		remaining := len(buf) - off
		if remaining < tlvHeaderLen {
			return nil, apperr.NewDecodeError("tlv", base+off, ErrTruncatedAttribute)
		}

		typ := AttributeType(buf[off])
		span := int(buf[off+1]) * wordLen
		if span < tlvHeaderLen || span > remaining {
			return nil, apperr.NewDecodeError("tlv", base+off,
				fmt.Errorf("%w: type %d span %d remaining %d", ErrAttributeTooShort, typ, span, remaining))
		}

		value := bytes.Clone(buf[off+tlvHeaderLen : off+span])
		if value == nil {
			value = []byte{}
		}

		if reservedPrefixTypes[typ] {
			if len(value) < 2 || value[0] != 0 || value[1] != 0 {
				return nil, apperr.NewDecodeError("tlv", base+off+tlvHeaderLen,
					fmt.Errorf("%w: %s", ErrReservedBytesNonZero, typ))
			}
			value = value[2:]
		}

		var attr Attribute
		if dec, ok := decoders[typ]; ok {
			a, err := dec(value)
			if err != nil {
				return nil, apperr.NewDecodeError("tlv", base+off, err)
			}
			attr = a
		} else {
			attr = &AtGeneric{AttrType: typ, Data: value}
		}

		attrs = append(attrs, attr)
		off += span
	}
	return attrs, nil
}

// EncodeAttributes は属性列をTLVストリームにエンコードする。
// 各属性は4バイト境界まで0でパディングされる。
func EncodeAttributes(attrs []Attribute) ([]byte, error) {
	var buf bytes.Buffer
	for _, a := range attrs {
		body := a.body()
		span := tlvHeaderLen + len(body)
		if pad := span % wordLen; pad != 0 {
			span += wordLen - pad
		}
		words := span / wordLen
		if words > maxWords {
			return nil, fmt.Errorf("%w: %s is %d words", ErrAttributeTooLong, a.Type(), words)
		}

		buf.WriteByte(byte(a.Type()))
		buf.WriteByte(byte(words))
		buf.Write(body)
		buf.Write(make([]byte, span-tlvHeaderLen-len(body)))
	}
	return buf.Bytes(), nil
}
