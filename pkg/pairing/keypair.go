package pairing

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// NonceLen はペアリングで交換するノンス長。
const NonceLen = 16

// KeyPair はX25519の鍵ペア。
type KeyPair struct {
	Secret []byte
	Public []byte
}

// GenerateKeyPair は乱数源から鍵ペアを生成する。rがnilの場合はcrypto/randを使う。
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	secret := make([]byte, KeyLen)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, fmt.Errorf("failed to read random secret: %w", err)
	}
	clamp(secret)

	public, err := PublicKey(secret)
	if err != nil {
		clear(secret)
		return nil, err
	}
	return &KeyPair{Secret: secret, Public: public}, nil
}

// GenerateNonce は乱数源から16バイトのノンスを生成する。
func GenerateNonce(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	nonce := make([]byte, NonceLen)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, fmt.Errorf("failed to read random nonce: %w", err)
	}
	return nonce, nil
}

// PublicKey は秘密鍵から公開鍵を計算する。
func PublicKey(secret []byte) ([]byte, error) {
	if err := checkKey("secret", secret); err != nil {
		return nil, err
	}
	clamped := make([]byte, KeyLen)
	copy(clamped, secret)
	defer clear(clamped)
	clamp(clamped)

	public, err := curve25519.X25519(clamped, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("failed to compute public key: %w", err)
	}
	return public, nil
}

func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
