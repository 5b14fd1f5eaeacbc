package usecase

import (
	"context"

	"github.com/randallknutson/pod/pkg/aead"
	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/model"
)

// Seal はAES-CCMで暗号化する。
func (u *CryptoUseCase) Seal(ctx context.Context, req *model.SealRequest) (*model.SealResponse, error) {
	key, err := decodeRequiredHex("ck", req.CK)
	if err != nil {
		return nil, err
	}
	nonce, err := resolveNonce(&req.NonceSpec)
	if err != nil {
		return nil, err
	}
	aad, err := decodeHex("aad", req.AAD)
	if err != nil {
		return nil, err
	}
	plaintext, err := decodeHex("plaintext", req.Plaintext)
	if err != nil {
		return nil, err
	}

	ciphertext, tag, err := aead.Seal(key, nonce, aad, plaintext)
	if err != nil {
		return nil, toProblem(err)
	}
	return &model.SealResponse{
		Nonce:      encodeHex(nonce),
		Ciphertext: encodeHex(ciphertext),
		Tag:        encodeHex(tag),
	}, nil
}

// Open はタグを検証してAES-CCMで復号する。失敗時は平文を返さない。
func (u *CryptoUseCase) Open(ctx context.Context, req *model.OpenRequest) (*model.OpenResponse, error) {
	key, err := decodeRequiredHex("ck", req.CK)
	if err != nil {
		return nil, err
	}
	nonce, err := resolveNonce(&req.NonceSpec)
	if err != nil {
		return nil, err
	}
	aad, err := decodeHex("aad", req.AAD)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeHex("ciphertext", req.Ciphertext)
	if err != nil {
		return nil, err
	}
	tag, err := decodeRequiredHex("tag", req.Tag)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(key, nonce, aad, ciphertext, tag)
	if err != nil {
		return nil, toProblem(err)
	}
	return &model.OpenResponse{
		Nonce:     encodeHex(nonce),
		Plaintext: encodeHex(plaintext),
	}, nil
}

// resolveNonce はnonce、またはnonce_prefix・seq・directionからノンスを求める。
func resolveNonce(spec *model.NonceSpec) ([]byte, error) {
	if spec.Nonce != "" {
		return decodeHex("nonce", spec.Nonce)
	}
	if spec.NoncePrefix == "" {
		return nil, toProblem(apperr.NewFieldError("nonce", apperr.ErrMissingField))
	}

	prefix, err := decodeHex("nonce_prefix", spec.NoncePrefix)
	if err != nil {
		return nil, err
	}
	if spec.Seq == nil {
		return nil, toProblem(apperr.NewFieldError("seq", apperr.ErrMissingField))
	}
	dir, ok := aead.ParseDirection(spec.Direction)
	if !ok {
		return nil, newInputError("direction must be pod_to_pdm or pdm_to_pod")
	}

	nonce, err := aead.BuildNonce(prefix, *spec.Seq, dir)
	if err != nil {
		return nil, toProblem(err)
	}
	return nonce, nil
}
