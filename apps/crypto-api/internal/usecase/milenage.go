package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
)

// milenageInput はデコード済みのMilenage入力。
type milenageInput struct {
	k, opc, rand, sqn, amf []byte
}

// DeriveMilenage は認証ベクターを計算する。
func (u *CryptoUseCase) DeriveMilenage(ctx context.Context, req *model.MilenageRequest) (*model.MilenageResponse, error) {
	in, err := u.milenageInput(req)
	if err != nil {
		return nil, err
	}

	v, err := u.calculator.Derive(in.k, in.opc, in.rand, in.sqn, in.amf)
	if err != nil {
		return nil, toProblem(err)
	}

	slog.Debug("milenage vector derived",
		"sqn", encodeHex(v.SQN),
		u.fields.WithKey("ck", v.CK),
	)
	return model.NewMilenageResponse(in.opc, v), nil
}

// VerifyMilenage はRESとCKを再計算値と比較する。
func (u *CryptoUseCase) VerifyMilenage(ctx context.Context, req *model.MilenageVerifyRequest) (*model.VerifyResponse, error) {
	in, err := u.milenageInput(&req.MilenageRequest)
	if err != nil {
		return nil, err
	}
	res, err := decodeRequiredHex("res", req.RES)
	if err != nil {
		return nil, err
	}
	ck, err := decodeRequiredHex("ck", req.CK)
	if err != nil {
		return nil, err
	}

	if _, err := u.calculator.Verify(in.k, in.opc, in.rand, in.sqn, in.amf, res, ck); err != nil {
		return nil, toProblem(err)
	}
	return &model.VerifyResponse{Verified: true}, nil
}

func (u *CryptoUseCase) milenageInput(req *model.MilenageRequest) (*milenageInput, error) {
	k, err := decodeRequiredHex("k", req.K)
	if err != nil {
		return nil, err
	}
	rand, err := decodeRequiredHex("rand", req.RAND)
	if err != nil {
		return nil, err
	}
	if req.Seq == nil {
		return nil, toProblem(apperr.NewFieldError("seq", apperr.ErrMissingField))
	}
	if *req.Seq > milenage.MaxSQN {
		return nil, toProblem(apperr.NewFieldError("seq", fmt.Errorf("%w: seq exceeds 48 bits", apperr.ErrInvalidLength)))
	}
	amf, err := u.orDefault("amf", req.AMF, u.cfg.AMF)
	if err != nil {
		return nil, err
	}
	opc, err := u.resolveOPc(k, req.OP, req.OPc)
	if err != nil {
		return nil, err
	}
	return &milenageInput{
		k:    k,
		opc:  opc,
		rand: rand,
		sqn:  milenage.SQNToBytes(*req.Seq),
		amf:  amf,
	}, nil
}
