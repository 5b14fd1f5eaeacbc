package runner

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/randallknutson/pod/apps/pod-cli/internal/exchange"
	"github.com/randallknutson/pod/pkg/aead"
	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/randallknutson/pod/pkg/eap"
	"github.com/randallknutson/pod/pkg/eap/aka"
	"github.com/randallknutson/pod/pkg/frame"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
	"github.com/randallknutson/pod/pkg/pairing"
)

func (r *Runner) decodeFrame(ex *exchange.Exchange) (*model.FrameDecodeResponse, error) {
	raw, err := require("packet_data", ex.PacketData)
	if err != nil {
		return nil, err
	}
	f, err := frame.Decode(raw)
	if err != nil {
		return nil, err
	}
	resp := model.NewFrameDecodeResponse(f)

	// ヘッダ解釈に失敗しても分割結果は出力する
	eapBytes := f.Payload
	h, err := frame.DecodeHeader(raw)
	if err != nil {
		resp.HeaderError = err.Error()
	} else {
		resp.Header = model.NewHeaderResponse(h)
		if end := frame.HeaderLen + h.PayloadLength; end <= len(raw) {
			eapBytes = raw[frame.HeaderLen:end]
		}
	}

	if ex.DecodeEAP {
		msg, err := eap.Decode(eapBytes)
		if err != nil {
			return nil, err
		}
		resp.EAP = model.NewEAPMessageResponse(msg)
	}
	return resp, nil
}

func (r *Runner) decodeEAP(ex *exchange.Exchange) (*model.EAPMessageResponse, error) {
	raw, err := require("eap", ex.EAP)
	if err != nil {
		return nil, err
	}
	msg, err := eap.Decode(raw)
	if err != nil {
		return nil, err
	}
	return model.NewEAPMessageResponse(msg), nil
}

func (r *Runner) respond(ex *exchange.Exchange) (*model.EAPRespondResponse, error) {
	challenge, err := require("challenge", challengeOf(ex))
	if err != nil {
		return nil, err
	}
	k, err := require("k", ex.K)
	if err != nil {
		return nil, err
	}
	opc, err := r.resolveOPc(k, ex)
	if err != nil {
		return nil, err
	}

	res, err := aka.Respond(challenge, aka.Secrets{
		K:     k,
		OPc:   opc,
		AMF:   orDefault(ex.AMF, r.cfg.AMF),
		PodIV: orDefault(ex.PodIV, r.cfg.IV),
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("challenge answered",
		"identifier", res.Identifier,
		r.fields.WithKey("ck", res.CK),
	)

	return &model.EAPRespondResponse{
		Response:    hex.EncodeToString(res.Response),
		Identifier:  res.Identifier,
		SQN:         hex.EncodeToString(res.Vector.SQN),
		RES:         hex.EncodeToString(res.Vector.RES),
		CK:          hex.EncodeToString(res.CK),
		NoncePrefix: hex.EncodeToString(res.NoncePrefix),
	}, nil
}

// milenageInputs はMilenageの入力（k, opc, rand, sqn, amf）を揃える。
func (r *Runner) milenageInputs(ex *exchange.Exchange) (k, opc, rand, sqn, amf []byte, err error) {
	if k, err = require("k", ex.K); err != nil {
		return
	}
	if rand, err = require("rand", ex.RAND); err != nil {
		return
	}
	if ex.Seq == nil {
		err = apperr.NewFieldError("seq", apperr.ErrMissingField)
		return
	}
	if *ex.Seq > milenage.MaxSQN {
		err = apperr.NewFieldError("seq", fmt.Errorf("%w: seq exceeds 48 bits", apperr.ErrInvalidLength))
		return
	}
	if opc, err = r.resolveOPc(k, ex); err != nil {
		return
	}
	return k, opc, rand, milenage.SQNToBytes(*ex.Seq), orDefault(ex.AMF, r.cfg.AMF), nil
}

func (r *Runner) deriveMilenage(ex *exchange.Exchange) (*model.MilenageResponse, error) {
	k, opc, rand, sqn, amf, err := r.milenageInputs(ex)
	if err != nil {
		return nil, err
	}
	v, err := r.calculator.Derive(k, opc, rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	slog.Debug("milenage vector derived", r.fields.WithKey("ck", v.CK))
	return model.NewMilenageResponse(opc, v), nil
}

func (r *Runner) verifyMilenage(ex *exchange.Exchange) (*model.VerifyResponse, error) {
	k, opc, rand, sqn, amf, err := r.milenageInputs(ex)
	if err != nil {
		return nil, err
	}
	res, err := require("res", ex.RES)
	if err != nil {
		return nil, err
	}
	ck, err := require("ck", ex.CK)
	if err != nil {
		return nil, err
	}
	if _, err := r.calculator.Verify(k, opc, rand, sqn, amf, res, ck); err != nil {
		return nil, err
	}
	return &model.VerifyResponse{Verified: true}, nil
}

func (r *Runner) deriveLTK(ex *exchange.Exchange) (*model.PairingResponse, error) {
	podSecret, err := require("pod_secret", ex.PodSecret)
	if err != nil {
		return nil, err
	}
	pdmPublic, err := require("pdm_public", ex.PDMPublic)
	if err != nil {
		return nil, err
	}
	podNonce, err := require("pod_nonce", ex.PodNonce)
	if err != nil {
		return nil, err
	}
	pdmNonce, err := require("pdm_nonce", ex.PDMNonce)
	if err != nil {
		return nil, err
	}

	podPublic := []byte(ex.PodPublic)
	if len(podPublic) == 0 {
		if podPublic, err = pairing.PublicKey(podSecret); err != nil {
			return nil, err
		}
	}

	keys, err := pairing.DeriveLTK(podSecret, podPublic, pdmPublic, podNonce, pdmNonce)
	if err != nil {
		return nil, err
	}
	resp := &model.PairingResponse{
		PodPublic: hex.EncodeToString(podPublic),
		LTK:       hex.EncodeToString(keys.LTK),
		PDMConf:   hex.EncodeToString(keys.PDMConfirmation),
		PodConf:   hex.EncodeToString(keys.PodConfirmation),
	}

	if len(ex.PDMConf) > 0 {
		if err := keys.VerifyPeerConfirmation(ex.PDMConf); err != nil {
			return nil, err
		}
		resp.PDMConfVerified = true
	}
	if len(ex.PodConf) > 0 {
		if err := keys.VerifyPodConfirmation(ex.PodConf); err != nil {
			return nil, err
		}
		resp.PodConfVerified = true
	}

	slog.Debug("pairing keys derived", r.fields.WithKey("ltk", keys.LTK))
	return resp, nil
}

func (r *Runner) seal(ex *exchange.Exchange) (*model.SealResponse, error) {
	key, err := require("ck", ex.CK)
	if err != nil {
		return nil, err
	}
	nonce, err := resolveNonce(ex)
	if err != nil {
		return nil, err
	}
	ciphertext, tag, err := aead.Seal(key, nonce, ex.AAD, ex.Plaintext)
	if err != nil {
		return nil, err
	}
	return &model.SealResponse{
		Nonce:      hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(ciphertext),
		Tag:        hex.EncodeToString(tag),
	}, nil
}

func (r *Runner) open(ex *exchange.Exchange) (*model.OpenResponse, error) {
	key, err := require("ck", ex.CK)
	if err != nil {
		return nil, err
	}
	nonce, err := resolveNonce(ex)
	if err != nil {
		return nil, err
	}
	tag, err := require("tag", ex.Tag)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(key, nonce, ex.AAD, ex.Ciphertext, tag)
	if err != nil {
		return nil, err
	}
	return &model.OpenResponse{
		Nonce:     hex.EncodeToString(nonce),
		Plaintext: hex.EncodeToString(plaintext),
	}, nil
}

// resolveOPc はop/opcのどちらか一方からOPcを求める。両方省略時は既定のOPを使う。
func (r *Runner) resolveOPc(k []byte, ex *exchange.Exchange) ([]byte, error) {
	if len(ex.OP) > 0 && len(ex.OPc) > 0 {
		return nil, apperr.NewValidationError("op", "op and opc are mutually exclusive")
	}
	if len(ex.OPc) > 0 {
		return ex.OPc, nil
	}
	return milenage.ComputeOPc(k, orDefault(ex.OP, r.cfg.OP))
}

// resolveNonce はnonce、またはnonce_prefix・seq・directionからノンスを求める。
func resolveNonce(ex *exchange.Exchange) ([]byte, error) {
	if len(ex.Nonce) > 0 {
		return ex.Nonce, nil
	}
	if len(ex.NoncePrefix) == 0 {
		return nil, apperr.NewFieldError("nonce", apperr.ErrMissingField)
	}
	if ex.Seq == nil {
		return nil, apperr.NewFieldError("seq", apperr.ErrMissingField)
	}
	dir, ok := aead.ParseDirection(ex.Direction)
	if !ok {
		return nil, apperr.NewValidationError("direction", "direction must be pod_to_pdm or pdm_to_pod")
	}
	return aead.BuildNonce(ex.NoncePrefix, *ex.Seq, dir)
}

func require(field string, h exchange.Hex) ([]byte, error) {
	if len(h) == 0 {
		return nil, apperr.NewFieldError(field, apperr.ErrMissingField)
	}
	return h, nil
}

func orDefault(h exchange.Hex, def []byte) []byte {
	if len(h) == 0 {
		return def
	}
	return h
}
