package usecase

import (
	"context"
	"log/slog"

	"github.com/randallknutson/pod/pkg/eap"
	"github.com/randallknutson/pod/pkg/eap/aka"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
)

// DecodeEAP はEAPメッセージをデコードする。
func (u *CryptoUseCase) DecodeEAP(ctx context.Context, req *model.EAPDecodeRequest) (*model.EAPMessageResponse, error) {
	raw, err := decodeRequiredHex("eap", req.EAP)
	if err != nil {
		return nil, err
	}
	msg, err := eap.Decode(raw)
	if err != nil {
		return nil, toProblem(err)
	}
	return model.NewEAPMessageResponse(msg), nil
}

// RespondChallenge はAKA-Challengeを検証してpodの応答を生成する。
func (u *CryptoUseCase) RespondChallenge(ctx context.Context, req *model.EAPRespondRequest) (*model.EAPRespondResponse, error) {
	// 1. 入力変換
	challenge, err := decodeRequiredHex("challenge", req.Challenge)
	if err != nil {
		return nil, err
	}
	k, err := decodeRequiredHex("k", req.K)
	if err != nil {
		return nil, err
	}
	opc, err := u.resolveOPc(k, req.OP, req.OPc)
	if err != nil {
		return nil, err
	}
	amf, err := u.orDefault("amf", req.AMF, u.cfg.AMF)
	if err != nil {
		return nil, err
	}
	podIV, err := u.orDefault("pod_iv", req.PodIV, u.cfg.IV)
	if err != nil {
		return nil, err
	}

	// 2. 応答生成
	res, err := aka.Respond(challenge, aka.Secrets{K: k, OPc: opc, AMF: amf, PodIV: podIV})
	if err != nil {
		return nil, toProblem(err)
	}

	slog.Debug("challenge answered",
		"identifier", res.Identifier,
		u.fields.WithKey("ck", res.CK),
	)

	return &model.EAPRespondResponse{
		Response:    encodeHex(res.Response),
		Identifier:  res.Identifier,
		SQN:         encodeHex(res.Vector.SQN),
		RES:         encodeHex(res.Vector.RES),
		CK:          encodeHex(res.CK),
		NoncePrefix: encodeHex(res.NoncePrefix),
	}, nil
}

// resolveOPc はOP/OPcのどちらか一方からOPcを求める。両方省略時は既定のOPを使う。
func (u *CryptoUseCase) resolveOPc(k []byte, opHex, opcHex string) ([]byte, error) {
	if opHex != "" && opcHex != "" {
		return nil, newInputError("op and opc are mutually exclusive")
	}
	if opcHex != "" {
		return decodeHex("opc", opcHex)
	}

	op := u.cfg.OP
	if opHex != "" {
		var err error
		if op, err = decodeHex("op", opHex); err != nil {
			return nil, err
		}
	}
	opc, err := milenage.ComputeOPc(k, op)
	if err != nil {
		return nil, toProblem(err)
	}
	return opc, nil
}

// orDefault はHex文字列が空なら既定値を返す。
func (u *CryptoUseCase) orDefault(field, s string, def []byte) ([]byte, error) {
	if s == "" {
		return def, nil
	}
	return decodeHex(field, s)
}
