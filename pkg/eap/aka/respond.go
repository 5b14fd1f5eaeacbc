// Package aka はEAP-AKA Challengeの1往復分の処理を提供する。
// 交換をまたぐ状態は保持しない。
package aka

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/eap"
	"github.com/randallknutson/pod/pkg/milenage"
)

// IVLen はPDM/podそれぞれのIV長。
const IVLen = 4

// Secrets はpod側の長期鍵素材。
type Secrets struct {
	K     []byte // 16 bytes
	OPc   []byte // 16 bytes
	AMF   []byte // 期待するAMF（2 bytes）
	PodIV []byte // 応答に載せるpodのIV（4 bytes）
}

// Result はChallenge応答の結果。
type Result struct {
	Response    []byte // EAP-Response/AKA-Challenge
	Identifier  uint8
	Vector      *milenage.Vector
	CK          []byte // セッション鍵
	NoncePrefix []byte // pdmIV || podIV（8 bytes）
}

// Respond はAKA-Challengeを検証し、AT_RESとAT_CUSTOM_IVを含む応答を生成する。
func Respond(challenge []byte, s Secrets) (*Result, error) {
	if len(s.PodIV) != IVLen {
		return nil, apperr.NewFieldError("pod_iv", fmt.Errorf("%w: pod IV must be %d bytes", apperr.ErrInvalidLength, IVLen))
	}
	if len(s.AMF) != milenage.AMFLen {
		return nil, apperr.NewFieldError("amf", fmt.Errorf("%w: amf must be %d bytes", apperr.ErrInvalidLength, milenage.AMFLen))
	}

	// 1. Challengeのデコード
	msg, err := eap.Decode(challenge)
	if err != nil {
		return nil, fmt.Errorf("failed to decode challenge: %w", err)
	}
	if msg.Code != eap.CodeRequest || msg.Subtype != eap.SubtypeAKAChallenge {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotChallenge, msg.Code, msg.Subtype)
	}

	rand, ok := eap.Find[*eap.AtRand](msg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, eap.AtTypeRand)
	}
	autn, ok := eap.Find[*eap.AtAutn](msg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, eap.AtTypeAutn)
	}
	pdmIV, ok := eap.Find[*eap.AtCustomIV](msg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, eap.AtTypeCustomIV)
	}
	if len(pdmIV.IV) != IVLen {
		return nil, apperr.NewFieldError("pdm_iv", fmt.Errorf("%w: pdm IV must be %d bytes", apperr.ErrInvalidLength, IVLen))
	}

	// 2. AUTN検証（MAC-AとAMF）
	v, err := milenage.NewCalculator().VerifyAUTN(s.K, s.OPc, rand.Rand, autn.Autn)
	if err != nil {
		if errors.Is(err, milenage.ErrMACMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrAUTNMismatch, err)
		}
		return nil, err
	}
	if subtle.ConstantTimeCompare(v.AMF, s.AMF) != 1 {
		return nil, fmt.Errorf("%w: unexpected AMF %x", ErrAUTNMismatch, v.AMF)
	}

	// 3. 応答の生成
	resp := &eap.Message{
		Code:       eap.CodeResponse,
		Identifier: msg.Identifier,
		Type:       eap.TypeAKA,
		Subtype:    eap.SubtypeAKAChallenge,
		Attributes: []eap.Attribute{
			&eap.AtRes{Bits: uint16(len(v.RES) * 8), Res: v.RES},
			&eap.AtCustomIV{IV: bytes.Clone(s.PodIV)},
		},
	}
	raw, err := resp.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	prefix := make([]byte, 0, 2*IVLen)
	prefix = append(prefix, pdmIV.IV...)
	prefix = append(prefix, s.PodIV...)

	return &Result{
		Response:    raw,
		Identifier:  msg.Identifier,
		Vector:      v,
		CK:          v.CK,
		NoncePrefix: prefix,
	}, nil
}

// VerifyResponse はPDM側でpodの応答を検証し、podのIVを返す。
func VerifyResponse(response, xres []byte) ([]byte, error) {
	msg, err := eap.Decode(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if msg.Code != eap.CodeResponse || msg.Subtype != eap.SubtypeAKAChallenge {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotChallengeResponse, msg.Code, msg.Subtype)
	}

	res, ok := eap.Find[*eap.AtRes](msg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, eap.AtTypeRes)
	}
	if subtle.ConstantTimeCompare(res.Res, xres) != 1 {
		return nil, ErrRESMismatch
	}

	podIV, ok := eap.Find[*eap.AtCustomIV](msg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, eap.AtTypeCustomIV)
	}
	return podIV.IV, nil
}
