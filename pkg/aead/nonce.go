package aead

import (
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// PrefixLen はEAP-AKAで交換したIVから作るノンスプレフィックス長。
const PrefixLen = 8

// MaxSequence はノンスに載せられる最大シーケンス番号（39ビット）。
const MaxSequence uint64 = 1<<39 - 1

// Direction はフレームの送信方向。
type Direction int

// 送信方向
const (
	PDMToPod Direction = iota // 上位ビットをクリア
	PodToPDM                  // 上位ビットをセット
)

// String は送信方向の表示名を返す。
func (d Direction) String() string {
	switch d {
	case PDMToPod:
		return "pdm_to_pod"
	case PodToPDM:
		return "pod_to_pdm"
	default:
		return "unknown"
	}
}

// ParseDirection は表示名から送信方向を返す。
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "pdm_to_pod":
		return PDMToPod, true
	case "pod_to_pdm":
		return PodToPDM, true
	default:
		return 0, false
	}
}

// BuildNonce はprefix(8) || 方向ビット付き5バイトシーケンスの13バイトノンスを作る。
func BuildNonce(prefix []byte, seq uint64, dir Direction) ([]byte, error) {
	if len(prefix) != PrefixLen {
		return nil, apperr.NewFieldError("nonce_prefix", fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidNonceLength, PrefixLen, len(prefix)))
	}
	if seq > MaxSequence {
		return nil, apperr.NewFieldError("seq", fmt.Errorf("%w: %d", ErrInvalidSequence, seq))
	}

	nonce := make([]byte, NonceLen)
	copy(nonce, prefix)
	nonce[8] = byte(seq >> 32)
	nonce[9] = byte(seq >> 24)
	nonce[10] = byte(seq >> 16)
	nonce[11] = byte(seq >> 8)
	nonce[12] = byte(seq)
	if dir == PodToPDM {
		nonce[8] |= 0x80
	}
	return nonce, nil
}
