// Package usecase はcrypto-apiのビジネスロジックを提供する。
package usecase

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=usecase

import (
	"context"

	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
)

// MilenageCalculator はMilenage計算のインターフェース。
type MilenageCalculator interface {
	Derive(k, opc, rand, sqn, amf []byte) (*milenage.Vector, error)
	Verify(k, opc, rand, sqn, amf, res, ck []byte) (*milenage.Vector, error)
}

// CryptoUseCaseInterface はcrypto-apiユースケースのインターフェース。
type CryptoUseCaseInterface interface {
	DecodeFrame(ctx context.Context, req *model.FrameDecodeRequest) (*model.FrameDecodeResponse, error)
	DecodeEAP(ctx context.Context, req *model.EAPDecodeRequest) (*model.EAPMessageResponse, error)
	RespondChallenge(ctx context.Context, req *model.EAPRespondRequest) (*model.EAPRespondResponse, error)
	DeriveMilenage(ctx context.Context, req *model.MilenageRequest) (*model.MilenageResponse, error)
	VerifyMilenage(ctx context.Context, req *model.MilenageVerifyRequest) (*model.VerifyResponse, error)
	DeriveLTK(ctx context.Context, req *model.PairingRequest) (*model.PairingResponse, error)
	Seal(ctx context.Context, req *model.SealRequest) (*model.SealResponse, error)
	Open(ctx context.Context, req *model.OpenRequest) (*model.OpenResponse, error)
}
