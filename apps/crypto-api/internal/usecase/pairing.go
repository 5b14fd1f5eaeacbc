package usecase

import (
	"context"
	"log/slog"

	"github.com/randallknutson/pod/pkg/model"
	"github.com/randallknutson/pod/pkg/pairing"
)

// DeriveLTK はpod側のペアリング鍵導出を行い、指定された確認値を検証する。
func (u *CryptoUseCase) DeriveLTK(ctx context.Context, req *model.PairingRequest) (*model.PairingResponse, error) {
	// 1. 入力変換
	podSecret, err := decodeRequiredHex("pod_secret", req.PodSecret)
	if err != nil {
		return nil, err
	}
	pdmPublic, err := decodeRequiredHex("pdm_public", req.PDMPublic)
	if err != nil {
		return nil, err
	}
	podNonce, err := decodeRequiredHex("pod_nonce", req.PodNonce)
	if err != nil {
		return nil, err
	}
	pdmNonce, err := decodeRequiredHex("pdm_nonce", req.PDMNonce)
	if err != nil {
		return nil, err
	}

	// 2. pod公開鍵（省略時は秘密鍵から計算）
	var podPublic []byte
	if req.PodPublic == "" {
		if podPublic, err = pairing.PublicKey(podSecret); err != nil {
			return nil, toProblem(err)
		}
	} else if podPublic, err = decodeHex("pod_public", req.PodPublic); err != nil {
		return nil, err
	}

	// 3. 鍵導出
	keys, err := pairing.DeriveLTK(podSecret, podPublic, pdmPublic, podNonce, pdmNonce)
	if err != nil {
		return nil, toProblem(err)
	}
	resp := &model.PairingResponse{
		PodPublic: encodeHex(podPublic),
		LTK:       encodeHex(keys.LTK),
		PDMConf:   encodeHex(keys.PDMConfirmation),
		PodConf:   encodeHex(keys.PodConfirmation),
	}

	// 4. 確認値検証
	if req.PDMConf != "" {
		conf, err := decodeHex("pdm_conf", req.PDMConf)
		if err != nil {
			return nil, err
		}
		if err := keys.VerifyPeerConfirmation(conf); err != nil {
			return nil, toProblem(err)
		}
		resp.PDMConfVerified = true
	}
	if req.PodConf != "" {
		conf, err := decodeHex("pod_conf", req.PodConf)
		if err != nil {
			return nil, err
		}
		if err := keys.VerifyPodConfirmation(conf); err != nil {
			return nil, toProblem(err)
		}
		resp.PodConfVerified = true
	}

	slog.Debug("pairing keys derived", u.fields.WithKey("ltk", keys.LTK))
	return resp, nil
}
