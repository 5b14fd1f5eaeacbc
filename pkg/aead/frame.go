package aead

import (
	"fmt"

	"github.com/randallknutson/pod/pkg/frame"
)

// SealFrame はheader(16) || 平文のフレームを暗号化し、header || 暗号文 || タグを返す。
// ヘッダはそのままAADになる。
func SealFrame(key, nonce, raw []byte) ([]byte, error) {
	if len(raw) < frame.HeaderLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooShort, len(raw))
	}
	header := raw[:frame.HeaderLen]

	ciphertext, tag, err := Seal(key, nonce, header, raw[frame.HeaderLen:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(raw)+TagLen)
	out = append(out, header...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

// OpenFrame はheader || 暗号文 || タグのフレームを復号し、header || 平文を返す。
func OpenFrame(key, nonce, raw []byte) ([]byte, error) {
	if len(raw) < frame.HeaderLen+TagLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooShort, len(raw))
	}
	header := raw[:frame.HeaderLen]
	body := raw[frame.HeaderLen:]
	n := len(body) - TagLen

	plaintext, err := Open(key, nonce, header, body[:n], body[n:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, frame.HeaderLen+len(plaintext))
	out = append(out, header...)
	out = append(out, plaintext...)
	return out, nil
}
