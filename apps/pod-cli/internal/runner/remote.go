package runner

import (
	"context"
	"fmt"

	"github.com/randallknutson/pod/apps/pod-cli/internal/exchange"
	"github.com/randallknutson/pod/pkg/model"
)

// remote は交換ファイルをリクエストに変換してcrypto-apiを呼び出す。
func (r *Runner) remote(ctx context.Context, op string, ex *exchange.Exchange) (any, error) {
	switch op {
	case OpFrame:
		return r.api.DecodeFrame(ctx, &model.FrameDecodeRequest{
			PacketData: ex.PacketData.String(),
			EAP:        ex.DecodeEAP,
		})
	case OpEAP:
		return r.api.DecodeEAP(ctx, &model.EAPDecodeRequest{EAP: ex.EAP.String()})
	case OpRespond:
		return r.api.RespondChallenge(ctx, &model.EAPRespondRequest{
			Challenge: challengeOf(ex).String(),
			K:         ex.K.String(),
			OP:        ex.OP.String(),
			OPc:       ex.OPc.String(),
			AMF:       ex.AMF.String(),
			PodIV:     ex.PodIV.String(),
		})
	case OpMilenage:
		return r.api.DeriveMilenage(ctx, milenageRequest(ex))
	case OpVerify:
		return r.api.VerifyMilenage(ctx, &model.MilenageVerifyRequest{
			MilenageRequest: *milenageRequest(ex),
			RES:             ex.RES.String(),
			CK:              ex.CK.String(),
		})
	case OpPairing:
		return r.api.DeriveLTK(ctx, &model.PairingRequest{
			PodSecret: ex.PodSecret.String(),
			PodPublic: ex.PodPublic.String(),
			PDMPublic: ex.PDMPublic.String(),
			PodNonce:  ex.PodNonce.String(),
			PDMNonce:  ex.PDMNonce.String(),
			PDMConf:   ex.PDMConf.String(),
			PodConf:   ex.PodConf.String(),
		})
	case OpSeal:
		return r.api.Seal(ctx, &model.SealRequest{
			CK:        ex.CK.String(),
			NonceSpec: nonceSpec(ex),
			AAD:       ex.AAD.String(),
			Plaintext: ex.Plaintext.String(),
		})
	case OpOpen:
		return r.api.Open(ctx, &model.OpenRequest{
			CK:         ex.CK.String(),
			NonceSpec:  nonceSpec(ex),
			AAD:        ex.AAD.String(),
			Ciphertext: ex.Ciphertext.String(),
			Tag:        ex.Tag.String(),
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

func milenageRequest(ex *exchange.Exchange) *model.MilenageRequest {
	return &model.MilenageRequest{
		K:    ex.K.String(),
		OP:   ex.OP.String(),
		OPc:  ex.OPc.String(),
		RAND: ex.RAND.String(),
		Seq:  ex.Seq,
		AMF:  ex.AMF.String(),
	}
}

func nonceSpec(ex *exchange.Exchange) model.NonceSpec {
	return model.NonceSpec{
		Nonce:       ex.Nonce.String(),
		NoncePrefix: ex.NoncePrefix.String(),
		Seq:         ex.Seq,
		Direction:   ex.Direction,
	}
}

// challengeOf はchallengeを優先し、なければeapを返す。
func challengeOf(ex *exchange.Exchange) exchange.Hex {
	if len(ex.Challenge) > 0 {
		return ex.Challenge
	}
	return ex.EAP
}
