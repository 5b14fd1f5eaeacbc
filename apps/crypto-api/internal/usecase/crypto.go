package usecase

import (
	"github.com/randallknutson/pod/apps/crypto-api/internal/config"
	"github.com/randallknutson/pod/pkg/logging"
)

// CryptoUseCase はcrypto-apiのユースケースを実装する。
// 状態を持たず、各呼び出しは独立している。
type CryptoUseCase struct {
	calculator MilenageCalculator
	cfg        *config.Config
	fields     *logging.CommonFields
}

// NewCryptoUseCase は新しいCryptoUseCaseを生成する。
func NewCryptoUseCase(calculator MilenageCalculator, cfg *config.Config) *CryptoUseCase {
	return &CryptoUseCase{
		calculator: calculator,
		cfg:        cfg,
		fields:     logging.NewCommonFields(logging.NewMasker(cfg.LogMaskKeys)),
	}
}
