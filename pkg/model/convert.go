package model

import (
	"encoding/hex"

	"github.com/randallknutson/pod/pkg/eap"
	"github.com/randallknutson/pod/pkg/frame"
	"github.com/randallknutson/pod/pkg/milenage"
)

// NewHeaderResponse はデコード済みヘッダからHeaderResponseを生成する。
func NewHeaderResponse(h *frame.Header) *HeaderResponse {
	return &HeaderResponse{
		Version:        h.Version,
		SAS:            h.SAS,
		TFS:            h.TFS,
		EQoS:           h.EQoS,
		Ack:            h.Ack,
		Priority:       h.Priority,
		LastMessage:    h.LastMessage,
		Gateway:        h.Gateway,
		Type:           h.Type.String(),
		SequenceNumber: h.SequenceNumber,
		AckNumber:      h.AckNumber,
		PayloadLength:  h.PayloadLength,
	}
}

// NewFrameDecodeResponse はフレーム分割結果からFrameDecodeResponseを生成する。
// ヘッダ・EAPは呼び出し側で設定する。
func NewFrameDecodeResponse(f *frame.Frame) *FrameDecodeResponse {
	return &FrameDecodeResponse{
		Preamble:    hex.EncodeToString([]byte{f.Preamble}),
		Reserved:    hex.EncodeToString(f.Reserved),
		Source:      f.Source.String(),
		Destination: f.Destination.String(),
		Payload:     hex.EncodeToString(f.Payload),
		Trailer:     hex.EncodeToString(f.Trailer),
	}
}

// NewEAPMessageResponse はデコード済みEAPメッセージからEAPMessageResponseを生成する。
func NewEAPMessageResponse(m *eap.Message) *EAPMessageResponse {
	resp := &EAPMessageResponse{
		Code:       uint8(m.Code),
		CodeName:   m.Code.String(),
		Identifier: m.Identifier,
		Length:     m.Length,
		HeaderOnly: m.HeaderOnly(),
		Attributes: make([]AttributeResponse, 0, len(m.Attributes)),
	}
	if !m.HeaderOnly() {
		resp.Type = m.Type
		resp.Subtype = uint8(m.Subtype)
		resp.SubtypeName = m.Subtype.String()
	}
	for _, a := range m.Attributes {
		resp.Attributes = append(resp.Attributes, AttributeResponse{
			Type:   uint8(a.Type()),
			Name:   a.Name(),
			Length: a.Len(),
			Value:  hex.EncodeToString(a.Value()),
		})
	}
	return resp
}

// NewMilenageResponse は認証ベクターからMilenageResponseを生成する。
func NewMilenageResponse(opc []byte, v *milenage.Vector) *MilenageResponse {
	return &MilenageResponse{
		OPc:  hex.EncodeToString(opc),
		RAND: hex.EncodeToString(v.RAND),
		SQN:  hex.EncodeToString(v.SQN),
		AMF:  hex.EncodeToString(v.AMF),
		AUTN: hex.EncodeToString(v.AUTN),
		RES:  hex.EncodeToString(v.RES),
		CK:   hex.EncodeToString(v.CK),
		IK:   hex.EncodeToString(v.IK),
		AK:   hex.EncodeToString(v.AK),
		MACA: hex.EncodeToString(v.MACA),
	}
}
