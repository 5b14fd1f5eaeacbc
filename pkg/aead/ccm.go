// Package aead はTWIフレームのAES-CCM暗号化・復号を提供する。
package aead

import (
	"bytes"
	"crypto/aes"
	"fmt"

	aesccm "github.com/pschlump/AesCCM"
	"github.com/randallknutson/pod/pkg/apperr"
)

// CCMパラメータ
const (
	KeyLen   = 16
	NonceLen = 13
	TagLen   = 8

	// MaxAADLen はAADの最大長。0xFF00以上は長さ符号化が変わるため扱わない。
	MaxAADLen = 0xFF00 - 1
)

// Seal は平文を暗号化し、暗号文とタグを分けて返す。
func Seal(key, nonce, aad, plaintext []byte) (ciphertext, tag []byte, err error) {
	ccm, err := newCCM(key, nonce, aad)
	if err != nil {
		return nil, nil, err
	}
	if len(plaintext) > ccm.MaxLength() {
		return nil, nil, apperr.NewFieldError("plaintext", fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLong, len(plaintext), ccm.MaxLength()))
	}

	sealed := ccm.Seal(nil, nonce, plaintext, aad)
	n := len(sealed) - TagLen
	return bytes.Clone(sealed[:n]), bytes.Clone(sealed[n:]), nil
}

// Open はタグを検証して平文を返す。検証に失敗した場合は平文を一切返さない。
func Open(key, nonce, aad, ciphertext, tag []byte) ([]byte, error) {
	if len(tag) != TagLen {
		return nil, apperr.NewFieldError("tag", fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidTagLength, TagLen, len(tag)))
	}
	ccm, err := newCCM(key, nonce, aad)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) > ccm.MaxLength() {
		return nil, apperr.NewFieldError("ciphertext", fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLong, len(ciphertext), ccm.MaxLength()))
	}

	sealed := make([]byte, 0, len(ciphertext)+TagLen)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := ccm.Open(nil, nonce, sealed, aad)
	if err != nil {
		clear(plaintext)
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newCCM(key, nonce, aad []byte) (aesccm.CCM, error) {
	if len(key) != KeyLen {
		return nil, apperr.NewFieldError("ck", fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidKeyLength, KeyLen, len(key)))
	}
	if len(nonce) != NonceLen {
		return nil, apperr.NewFieldError("nonce", fmt.Errorf("%w: want %d bytes, got %d", apperr.ErrInvalidNonceLength, NonceLen, len(nonce)))
	}
	if len(aad) > MaxAADLen {
		return nil, apperr.NewFieldError("aad", fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLong, len(aad), MaxAADLen))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	ccm, err := aesccm.NewCCM(block, TagLen, NonceLen)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES-CCM: %w", err)
	}
	return ccm, nil
}
