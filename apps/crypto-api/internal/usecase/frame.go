package usecase

import (
	"context"

	"github.com/randallknutson/pod/pkg/eap"
	"github.com/randallknutson/pod/pkg/frame"
	"github.com/randallknutson/pod/pkg/model"
)

// DecodeFrame はTWIフレームを分割し、必要に応じてペイロードをEAPとしてデコードする。
func (u *CryptoUseCase) DecodeFrame(ctx context.Context, req *model.FrameDecodeRequest) (*model.FrameDecodeResponse, error) {
	// 1. 入力変換
	raw, err := decodeRequiredHex("packet_data", req.PacketData)
	if err != nil {
		return nil, err
	}

	// 2. 固定オフセットでの分割
	f, err := frame.Decode(raw)
	if err != nil {
		return nil, toProblem(err)
	}
	resp := model.NewFrameDecodeResponse(f)

	// 3. ヘッダ解釈（失敗してもフレーム分割結果は返す）
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

	// 4. EAPデコード
	if req.EAP {
		msg, err := eap.Decode(eapBytes)
		if err != nil {
			return nil, toProblem(err)
		}
		resp.EAP = model.NewEAPMessageResponse(msg)
	}
	return resp, nil
}
