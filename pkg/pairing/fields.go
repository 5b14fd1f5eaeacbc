package pairing

import (
	"bytes"
	"fmt"
)

// ペアリングメッセージのフィールド名
const (
	FieldSP1  = "SP1="
	FieldSP2  = ",SP2="
	FieldSPS1 = "SPS1="
	FieldSPS2 = "SPS2="
	FieldP0   = "P0="

	// SP0GP0 は長さ・値を持たないリテラルメッセージ
	SP0GP0 = "SP0,GP0"

	// P0Value はP0フィールドの固定値
	P0Value byte = 0xa5
)

const maxFieldLen = 0xffff

// ParseFields は「名前 || 2バイト長(BE) || 値」の並びを指定順に読む。
func ParseFields(data []byte, names ...string) (map[string][]byte, error) {
	ret := make(map[string][]byte, len(names))
	for _, name := range names {
		if !bytes.HasPrefix(data, []byte(name)) {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
		}
		data = data[len(name):]
		if len(data) < 2 {
			return nil, fmt.Errorf("%w: %q has no length", ErrFieldTruncated, name)
		}
		n := int(data[0])<<8 | int(data[1])
		if len(data)-2 < n {
			return nil, fmt.Errorf("%w: %q declares %d bytes, %d remaining", ErrFieldTruncated, name, n, len(data)-2)
		}
		ret[name] = bytes.Clone(data[2 : 2+n])
		data = data[2+n:]
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(data))
	}
	return ret, nil
}

// BuildFields はParseFieldsの逆変換。
func BuildFields(names []string, values map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range names {
		v := values[name]
		if len(v) > maxFieldLen {
			return nil, fmt.Errorf("%w: %q is %d bytes", ErrFieldTooLong, name, len(v))
		}
		buf.WriteString(name)
		buf.WriteByte(byte(len(v) >> 8))
		buf.WriteByte(byte(len(v)))
		buf.Write(v)
	}
	return buf.Bytes(), nil
}

// SplitSPS1 はSPS1の値を公開鍵（32バイト）とノンスに分割する。
func SplitSPS1(value []byte) (public, nonce []byte, err error) {
	if len(value) < KeyLen+MinNonceLen {
		return nil, nil, fmt.Errorf("%w: SPS1 is %d bytes", ErrFieldTruncated, len(value))
	}
	return bytes.Clone(value[:KeyLen]), bytes.Clone(value[KeyLen:]), nil
}

// BuildSPS1 は公開鍵とノンスからSPS1ペイロードを生成する。
func BuildSPS1(public, nonce []byte) ([]byte, error) {
	if err := checkKey("public", public); err != nil {
		return nil, err
	}
	return BuildFields([]string{FieldSPS1}, map[string][]byte{FieldSPS1: concat(public, nonce)})
}

// IsSP0GP0 はペイロードがSP0,GP0リテラルかどうかを返す。
func IsSP0GP0(payload []byte) bool {
	return string(payload) == SP0GP0
}
