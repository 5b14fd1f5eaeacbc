package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
)

// Unverified はタグ検証なしで復号したデータ。真正性は保証されない。
type Unverified struct {
	Data []byte
}

// DecryptUnverified はCCMのCTR部分だけを適用して暗号文を復号する。デバッグ用。
func DecryptUnverified(key, nonce, ciphertext []byte) (Unverified, error) {
	if len(key) != KeyLen {
		return Unverified{}, apperr.NewFieldError("ck", fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidKeyLength, KeyLen, len(key)))
	}
	if len(nonce) != NonceLen {
		return Unverified{}, apperr.NewFieldError("nonce", fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidNonceLength, NonceLen, len(nonce)))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return Unverified{}, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	// A_1 = flags(L-1) || nonce || counter(1)
	ctr := make([]byte, aes.BlockSize)
	ctr[0] = byte(aes.BlockSize - 1 - NonceLen - 1)
	copy(ctr[1:], nonce)
	ctr[aes.BlockSize-1] = 1

	out := make([]byte, len(ciphertext))
	cipher.NewCTR(block, ctr).XORKeyStream(out, ciphertext)
	return Unverified{Data: out}, nil
}
