package eap

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Attribute はデコード済みのTLV属性を表す。
// 実装は本パッケージの型（AtRand, AtAutn, AtRes, AtCustomIV, AtGeneric）に限られる。
type Attribute interface {
	// Type は属性Type値を返す
	Type() AttributeType
	// Name は属性名を返す（名前表にない場合は "unrecognized"）
	Name() string
	// Value は予約バイト等を除いた値を返す
	Value() []byte
	// Len は表示用の値長を返す
	Len() int

	// body はTLVヘッダとパディングを除いたワイヤ上の値を返す
	body() []byte
}

// AtRand はAT_RAND属性。
type AtRand struct {
	Rand []byte
}

// Type は属性Type値を返す。
func (a *AtRand) Type() AttributeType { return AtTypeRand }

// Name は属性名を返す。
func (a *AtRand) Name() string { return AtTypeRand.String() }

// Value はRANDを返す。
func (a *AtRand) Value() []byte { return a.Rand }

// Len はRANDのバイト長を返す。
func (a *AtRand) Len() int { return len(a.Rand) }

func (a *AtRand) body() []byte { return withReserved(a.Rand) }

// AtAutn はAT_AUTN属性。
type AtAutn struct {
	Autn []byte
}

// Type は属性Type値を返す。
func (a *AtAutn) Type() AttributeType { return AtTypeAutn }

// Name は属性名を返す。
func (a *AtAutn) Name() string { return AtTypeAutn.String() }

// Value はAUTNを返す。
func (a *AtAutn) Value() []byte { return a.Autn }

// Len はAUTNのバイト長を返す。
func (a *AtAutn) Len() int { return len(a.Autn) }

func (a *AtAutn) body() []byte { return withReserved(a.Autn) }

// AtRes はAT_RES属性。先頭2バイトのビット長でRESを切り出す。
type AtRes struct {
	Bits uint16
	Res  []byte
}

// Type は属性Type値を返す。
func (a *AtRes) Type() AttributeType { return AtTypeRes }

// Name は属性名を返す。
func (a *AtRes) Name() string { return AtTypeRes.String() }

// Value はRESを返す。
func (a *AtRes) Value() []byte { return a.Res }

// Len はビット長から求めたバイト長を返す（TLV長ではない）。
func (a *AtRes) Len() int { return int(a.Bits / 8) }

func (a *AtRes) body() []byte {
	b := make([]byte, 2+len(a.Res))
	binary.BigEndian.PutUint16(b, a.Bits)
	copy(b[2:], a.Res)
	return b
}

// AtCustomIV はベンダー拡張のIV属性（Type 126）。
type AtCustomIV struct {
	IV []byte
}

// Type は属性Type値を返す。
func (a *AtCustomIV) Type() AttributeType { return AtTypeCustomIV }

// Name は属性名を返す。
func (a *AtCustomIV) Name() string { return AtTypeCustomIV.String() }

// Value はIVを返す。
func (a *AtCustomIV) Value() []byte { return a.IV }

// Len はIVのバイト長を返す。
func (a *AtCustomIV) Len() int { return len(a.IV) }

func (a *AtCustomIV) body() []byte { return withReserved(a.IV) }

// AtGeneric は専用デコーダを持たない属性。未知のTypeもエラーにせず保持する。
type AtGeneric struct {
	AttrType AttributeType
	Data     []byte
}

// Type は属性Type値を返す。
func (a *AtGeneric) Type() AttributeType { return a.AttrType }

// Name は属性名または "unrecognized" を返す。
func (a *AtGeneric) Name() string { return a.AttrType.String() }

// Value は生の値を返す。
func (a *AtGeneric) Value() []byte { return a.Data }

// Len は値のバイト長を返す。
func (a *AtGeneric) Len() int { return len(a.Data) }

func (a *AtGeneric) body() []byte { return a.Data }

// 予約バイト2つを値の前に持つType
var reservedPrefixTypes = map[AttributeType]bool{
	AtTypeRand:     true,
	AtTypeAutn:     true,
	AtTypeCustomIV: true,
}

type decodeFunc func(value []byte) (Attribute, error)

// Type→デコーダ表。ここにないTypeはAtGenericになる。
var decoders = map[AttributeType]decodeFunc{
	AtTypeRand:     func(v []byte) (Attribute, error) { return &AtRand{Rand: v}, nil },
	AtTypeAutn:     func(v []byte) (Attribute, error) { return &AtAutn{Autn: v}, nil },
	AtTypeCustomIV: func(v []byte) (Attribute, error) { return &AtCustomIV{IV: v}, nil },
	AtTypeRes:      decodeRes,
}

func decodeRes(v []byte) (Attribute, error) {
	if len(v) < 2 {
		return nil, fmt.Errorf("%w: missing bit length", ErrInvalidResLength)
	}
	bits := binary.BigEndian.Uint16(v[:2])
	n := int(bits / 8)
	if bits%8 != 0 || n > len(v)-2 {
		return nil, fmt.Errorf("%w: %d bits in %d bytes", ErrInvalidResLength, bits, len(v)-2)
	}
	return &AtRes{Bits: bits, Res: v[2 : 2+n : 2+n]}, nil
}

func withReserved(v []byte) []byte {
	b := make([]byte, 2+len(v))
	copy(b[2:], v)
	return b
}

// Equal は2つの属性のTypeと値が等しいかを返す。
func Equal(a, b Attribute) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type() == b.Type() && bytes.Equal(a.body(), b.body())
}
