// Package pairing はX25519とAES-CMACによるペアリング鍵導出を提供する。
package pairing

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	"github.com/jacobsa/crypto/cmac"
	"github.com/randallknutson/pod/pkg/apperr"
	"golang.org/x/crypto/curve25519"
)

// 鍵・ノンス長
const (
	KeyLen      = 32 // X25519の秘密鍵・公開鍵
	MinNonceLen = 4  // 導出に使うのは末尾4バイト
	TagLen      = 16
)

// ラダーのラベル
const (
	labelTWI    = "TWIt"
	labelPDMCnf = "KC_2_U"
	labelPodCnf = "KC_2_V"
)

// Keys はペアリングで得られる鍵と確認値。
type Keys struct {
	LTK             []byte // 長期鍵
	PDMConfirmation []byte // PDMが送る確認値（KC_2_U）
	PodConfirmation []byte // podが送る確認値（KC_2_V）
}

// VerifyPeerConfirmation はPDMから受信した確認値を定数時間で検証する。
func (k *Keys) VerifyPeerConfirmation(received []byte) error {
	if subtle.ConstantTimeCompare(k.PDMConfirmation, received) != 1 {
		return ErrConfirmationMismatch
	}
	return nil
}

// VerifyPodConfirmation はpodから受信した確認値を定数時間で検証する。
func (k *Keys) VerifyPodConfirmation(received []byte) error {
	if subtle.ConstantTimeCompare(k.PodConfirmation, received) != 1 {
		return ErrConfirmationMismatch
	}
	return nil
}

// DeriveLTK はpod側の秘密鍵とPDMの公開鍵からLTKと確認値を導出する。
// 共有秘密はKDFを通さずそのままCMACの入力にする。
func DeriveLTK(podSecret, podPublic, peerPublic, podNonce, peerNonce []byte) (*Keys, error) {
	if err := checkKey("pod_secret", podSecret); err != nil {
		return nil, err
	}
	if err := checkInputs(podPublic, peerPublic, podNonce, peerNonce); err != nil {
		return nil, err
	}

	shared, err := curve25519.X25519(podSecret, peerPublic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLowOrderPoint, err)
	}
	defer clear(shared)

	return ladder(shared, podPublic, peerPublic, podNonce, peerNonce)
}

// DeriveLTKAsController はPDM側の秘密鍵とpodの公開鍵から同じ鍵を導出する。
func DeriveLTKAsController(pdmSecret, pdmPublic, podPublic, pdmNonce, podNonce []byte) (*Keys, error) {
	if err := checkKey("pdm_secret", pdmSecret); err != nil {
		return nil, err
	}
	if err := checkInputs(podPublic, pdmPublic, podNonce, pdmNonce); err != nil {
		return nil, err
	}

	shared, err := curve25519.X25519(pdmSecret, podPublic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLowOrderPoint, err)
	}
	defer clear(shared)

	return ladder(shared, podPublic, pdmPublic, podNonce, pdmNonce)
}

// ladder は共有秘密からLTKと確認値を導出する。
// 中間鍵（temp key, bb）はどの経路で戻っても消去する。
func ladder(shared, podPublic, pdmPublic, podNonce, pdmNonce []byte) (*Keys, error) {
	// 1. salt = pod_public[-4:] || pdm_public[-4:] || pod_nonce[-4:] || pdm_nonce[-4:]
	salt := make([]byte, 0, 16)
	salt = append(salt, last4(podPublic)...)
	salt = append(salt, last4(pdmPublic)...)
	salt = append(salt, last4(podNonce)...)
	salt = append(salt, last4(pdmNonce)...)

	// 2. temp key = CMAC(salt, shared)
	tempKey, err := mac(salt, shared)
	if err != nil {
		return nil, err
	}
	defer clear(tempKey)

	// 3. bb = CMAC(temp key, 0x01 || "TWIt" || pod_nonce || pdm_nonce || 0x0001)
	bb, err := mac(tempKey, kdfInput(0x01, podNonce, pdmNonce))
	if err != nil {
		return nil, err
	}
	defer clear(bb)

	// 4. LTK = CMAC(temp key, 0x02 || ...)
	ltk, err := mac(tempKey, kdfInput(0x02, podNonce, pdmNonce))
	if err != nil {
		return nil, err
	}

	// 5. 確認値
	pdmConf, err := mac(bb, concat([]byte(labelPDMCnf), pdmNonce, podNonce))
	if err != nil {
		clear(ltk)
		return nil, err
	}
	podConf, err := mac(bb, concat([]byte(labelPodCnf), podNonce, pdmNonce))
	if err != nil {
		clear(ltk)
		return nil, err
	}

	return &Keys{
		LTK:             ltk,
		PDMConfirmation: pdmConf,
		PodConfirmation: podConf,
	}, nil
}

func mac(key, msg []byte) ([]byte, error) {
	h, err := cmac.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create CMAC: %w", err)
	}
	if _, err := h.Write(msg); err != nil {
		return nil, fmt.Errorf("failed to write CMAC input: %w", err)
	}
	return h.Sum(nil), nil
}

func kdfInput(prefix byte, podNonce, pdmNonce []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(prefix)
	buf.WriteString(labelTWI)
	buf.Write(podNonce)
	buf.Write(pdmNonce)
	buf.Write([]byte{0x00, 0x01})
	return buf.Bytes()
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func last4(b []byte) []byte {
	return b[len(b)-4:]
}

func checkKey(field string, k []byte) error {
	if len(k) != KeyLen {
		return apperr.NewFieldError(field, fmt.Errorf("%w: %s must be %d bytes, got %d", apperr.ErrInvalidKeyLength, field, KeyLen, len(k)))
	}
	return nil
}

func checkInputs(podPublic, pdmPublic, podNonce, pdmNonce []byte) error {
	if err := checkKey("pod_public", podPublic); err != nil {
		return err
	}
	if err := checkKey("pdm_public", pdmPublic); err != nil {
		return err
	}
	if len(podNonce) < MinNonceLen {
		return apperr.NewFieldError("pod_nonce", fmt.Errorf("%w: pod_nonce must be at least %d bytes", apperr.ErrInvalidNonceLength, MinNonceLen))
	}
	if len(pdmNonce) < MinNonceLen {
		return apperr.NewFieldError("pdm_nonce", fmt.Errorf("%w: pdm_nonce must be at least %d bytes", apperr.ErrInvalidNonceLength, MinNonceLen))
	}
	return nil
}
