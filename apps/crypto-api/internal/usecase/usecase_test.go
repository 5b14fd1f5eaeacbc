package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"

	"github.com/randallknutson/pod/apps/crypto-api/internal/config"
	"github.com/randallknutson/pod/pkg/frame"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/milenage"
	"github.com/randallknutson/pod/pkg/model"
	"go.uber.org/mock/gomock"
)

// キャプチャしたpodとの交換
const (
	capturedK         = "c0772899720972a314f557de66d571dd"
	capturedOP        = "cdc202d5123e20f62b6d676ac72cb318"
	capturedOPc       = "44194968cdb4b6f775dc8041bf6e4030"
	capturedRAND      = "c2cd1248451103bd77a6c7ef88c441ba"
	capturedRES       = "a40bc6d13861447e"
	capturedCK        = "55799fd26664cbf6e476525e2dee52c6"
	capturedAUTN      = "00c55c78e8d3b9b9e935860a7259f6c0"
	capturedChallenge = "01bd0038170100000205000000c55c78e8d3b9b9e935860a7259f6c001050000c2cd1248451103bd77a6c7ef88c441ba7e0200006cff5d18"
	capturedResponse  = "02bd001c1701000003030040a40bc6d13861447e7e020000b7616cae"
)

func testConfig() *config.Config {
	return &config.Config{
		LogMaskKeys: true,
		OP:          mustHex(capturedOP),
		AMF:         mustHex("b9b9"),
		IV:          mustHex("b7616cae"),
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func seq(n uint64) *uint64 { return &n }

// wantProblem はエラーが指定ステータスのProblemErrorであることを確認する。
func wantProblem(t *testing.T, err error, status int, typeURI string) *ProblemError {
	t.Helper()
	var pe *ProblemError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v (%T), want *ProblemError", err, err)
	}
	if pe.Status != status {
		t.Errorf("Status = %d, want %d (detail=%q)", pe.Status, status, pe.Detail)
	}
	if typeURI != "" && pe.Type != typeURI {
		t.Errorf("Type = %q, want %q", pe.Type, typeURI)
	}
	return pe
}

func TestDeriveMilenage_Captured(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())

	tests := []struct {
		name string
		req  model.MilenageRequest
	}{
		{"default op", model.MilenageRequest{K: capturedK, RAND: capturedRAND, Seq: seq(2)}},
		{"explicit op", model.MilenageRequest{K: capturedK, OP: capturedOP, RAND: capturedRAND, Seq: seq(2), AMF: "b9b9"}},
		{"explicit opc", model.MilenageRequest{K: capturedK, OPc: capturedOPc, RAND: capturedRAND, Seq: seq(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.DeriveMilenage(context.Background(), &tt.req)
			if err != nil {
				t.Fatalf("DeriveMilenage() error = %v", err)
			}
			if resp.OPc != capturedOPc {
				t.Errorf("OPc = %s, want %s", resp.OPc, capturedOPc)
			}
			if resp.RES != capturedRES {
				t.Errorf("RES = %s, want %s", resp.RES, capturedRES)
			}
			if resp.CK != capturedCK {
				t.Errorf("CK = %s, want %s", resp.CK, capturedCK)
			}
			if resp.AUTN != capturedAUTN {
				t.Errorf("AUTN = %s, want %s", resp.AUTN, capturedAUTN)
			}
			if resp.SQN != "000000000002" {
				t.Errorf("SQN = %s, want 000000000002", resp.SQN)
			}
		})
	}
}

func TestDeriveMilenage_InputErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockMilenageCalculator(ctrl)
	// 入力エラーでは計算を呼ばない
	mockCalc.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	uc := NewCryptoUseCase(mockCalc, testConfig())

	tests := []struct {
		name string
		req  model.MilenageRequest
	}{
		{"bad hex k", model.MilenageRequest{K: "zz", RAND: capturedRAND, Seq: seq(1)}},
		{"empty rand", model.MilenageRequest{K: capturedK, Seq: seq(1)}},
		{"missing seq", model.MilenageRequest{K: capturedK, RAND: capturedRAND}},
		{"seq over 48 bits", model.MilenageRequest{K: capturedK, RAND: capturedRAND, Seq: seq(milenage.MaxSQN + 1)}},
		{"op and opc", model.MilenageRequest{K: capturedK, OP: capturedOP, OPc: capturedOPc, RAND: capturedRAND, Seq: seq(1)}},
		{"short op", model.MilenageRequest{K: capturedK, OP: "cdc2", RAND: capturedRAND, Seq: seq(1)}},
		{"short k with op", model.MilenageRequest{K: "c077", RAND: capturedRAND, Seq: seq(1)}},
		{"bad amf", model.MilenageRequest{K: capturedK, RAND: capturedRAND, Seq: seq(1), AMF: "b9x9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.DeriveMilenage(context.Background(), &tt.req)
			wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
		})
	}
}

func TestDeriveMilenage_CalculatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCalc := NewMockMilenageCalculator(ctrl)
	uc := NewCryptoUseCase(mockCalc, testConfig())

	t.Run("length error", func(t *testing.T) {
		_, lenErr := milenage.NewCalculator().Derive(make([]byte, 15), make([]byte, 16), make([]byte, 16), make([]byte, 6), make([]byte, 2))
		mockCalc.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, lenErr)

		_, err := uc.DeriveMilenage(context.Background(), &model.MilenageRequest{K: capturedK, OPc: capturedOPc, RAND: capturedRAND, Seq: seq(1)})
		wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
	})

	t.Run("unexpected error", func(t *testing.T) {
		mockCalc.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := uc.DeriveMilenage(context.Background(), &model.MilenageRequest{K: capturedK, OPc: capturedOPc, RAND: capturedRAND, Seq: seq(1)})
		pe := wantProblem(t, err, http.StatusInternalServerError, "")
		if pe != ErrCalculation {
			t.Errorf("ProblemError = %v, want ErrCalculation", pe)
		}
	})

	t.Run("passes decoded inputs", func(t *testing.T) {
		want := &milenage.Vector{SQN: mustHex("000000000005"), AMF: mustHex("8000")}
		mockCalc.EXPECT().
			Derive(mustHex(capturedK), mustHex(capturedOPc), mustHex(capturedRAND), mustHex("000000000005"), mustHex("8000")).
			Return(want, nil)

		resp, err := uc.DeriveMilenage(context.Background(), &model.MilenageRequest{K: capturedK, OPc: capturedOPc, RAND: capturedRAND, Seq: seq(5), AMF: "8000"})
		if err != nil {
			t.Fatalf("DeriveMilenage() error = %v", err)
		}
		if resp.SQN != "000000000005" || resp.AMF != "8000" {
			t.Errorf("resp = %+v", resp)
		}
	})
}

func TestVerifyMilenage(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())
	base := model.MilenageRequest{K: capturedK, RAND: capturedRAND, Seq: seq(2)}

	tests := []struct {
		name       string
		res        string
		ck         string
		wantStatus int
		wantDetail string
	}{
		{"ok", capturedRES, capturedCK, http.StatusOK, ""},
		{"res mismatch", "a40bc6d13861447f", capturedCK, http.StatusUnprocessableEntity, "RES mismatch"},
		{"ck mismatch", capturedRES, "55799fd26664cbf6e476525e2dee52c7", http.StatusUnprocessableEntity, "CK mismatch"},
		{"missing res", "", capturedCK, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.VerifyMilenage(context.Background(), &model.MilenageVerifyRequest{MilenageRequest: base, RES: tt.res, CK: tt.ck})
			if tt.wantStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("VerifyMilenage() error = %v", err)
				}
				if !resp.Verified {
					t.Error("Verified = false, want true")
				}
				return
			}
			pe := wantProblem(t, err, tt.wantStatus, "")
			if tt.wantDetail != "" && pe.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", pe.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDecodeEAP(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())

	t.Run("captured challenge", func(t *testing.T) {
		resp, err := uc.DecodeEAP(context.Background(), &model.EAPDecodeRequest{EAP: capturedChallenge})
		if err != nil {
			t.Fatalf("DecodeEAP() error = %v", err)
		}
		if resp.Code != 1 || resp.Identifier != 0xbd || resp.Length != 56 {
			t.Errorf("header = %d/%d/%d", resp.Code, resp.Identifier, resp.Length)
		}
		if resp.Subtype != 1 {
			t.Errorf("Subtype = %d (%s)", resp.Subtype, resp.SubtypeName)
		}
		wantAttrs := []struct {
			typ   uint8
			value string
		}{
			{2, capturedAUTN},
			{1, capturedRAND},
			{126, "6cff5d18"},
		}
		if len(resp.Attributes) != len(wantAttrs) {
			t.Fatalf("len(Attributes) = %d, want %d", len(resp.Attributes), len(wantAttrs))
		}
		for i, w := range wantAttrs {
			if resp.Attributes[i].Type != w.typ || resp.Attributes[i].Value != w.value {
				t.Errorf("Attributes[%d] = %+v, want type %d value %s", i, resp.Attributes[i], w.typ, w.value)
			}
		}
	})

	t.Run("header only", func(t *testing.T) {
		resp, err := uc.DecodeEAP(context.Background(), &model.EAPDecodeRequest{EAP: "03bd0004"})
		if err != nil {
			t.Fatalf("DecodeEAP() error = %v", err)
		}
		if !resp.HeaderOnly || len(resp.Attributes) != 0 {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("decode error", func(t *testing.T) {
		_, err := uc.DecodeEAP(context.Background(), &model.EAPDecodeRequest{EAP: "01bd"})
		wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeDecode)
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := uc.DecodeEAP(context.Background(), &model.EAPDecodeRequest{EAP: "01bd0"})
		wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
	})
}

func TestRespondChallenge(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())

	t.Run("captured", func(t *testing.T) {
		resp, err := uc.RespondChallenge(context.Background(), &model.EAPRespondRequest{Challenge: capturedChallenge, K: capturedK})
		if err != nil {
			t.Fatalf("RespondChallenge() error = %v", err)
		}
		if resp.Response != capturedResponse {
			t.Errorf("Response = %s, want %s", resp.Response, capturedResponse)
		}
		if resp.CK != capturedCK {
			t.Errorf("CK = %s, want %s", resp.CK, capturedCK)
		}
		if resp.NoncePrefix != "6cff5d18b7616cae" {
			t.Errorf("NoncePrefix = %s", resp.NoncePrefix)
		}
	})

	t.Run("wrong amf", func(t *testing.T) {
		_, err := uc.RespondChallenge(context.Background(), &model.EAPRespondRequest{Challenge: capturedChallenge, K: capturedK, AMF: "8000"})
		wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeVerificationFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := uc.RespondChallenge(context.Background(), &model.EAPRespondRequest{Challenge: capturedChallenge, K: "00772899720972a314f557de66d571dd"})
		wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeVerificationFailed)
	})

	t.Run("not a challenge", func(t *testing.T) {
		_, err := uc.RespondChallenge(context.Background(), &model.EAPRespondRequest{Challenge: capturedResponse, K: capturedK})
		wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeDecode)
	})
}

func TestDecodeFrame(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())

	eapBytes := mustHex(capturedResponse)
	header, err := frame.EncodeHeader(&frame.Header{
		SequenceNumber: 3,
		AckNumber:      2,
		PayloadLength:  len(eapBytes),
		Source:         frame.Address{0x08, 0x20, 0x2e, 0xa9},
		Destination:    frame.Address{0x08, 0x20, 0x2e, 0xa8},
	})
	if err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}
	raw := append(append(header, eapBytes...), 0x00, 0x00, 0x00)

	t.Run("with eap", func(t *testing.T) {
		resp, err := uc.DecodeFrame(context.Background(), &model.FrameDecodeRequest{PacketData: hex.EncodeToString(raw), EAP: true})
		if err != nil {
			t.Fatalf("DecodeFrame() error = %v", err)
		}
		if resp.Source != "08202ea9" || resp.Destination != "08202ea8" {
			t.Errorf("addresses = %s -> %s", resp.Source, resp.Destination)
		}
		if resp.Payload != capturedResponse {
			t.Errorf("Payload = %s, want %s", resp.Payload, capturedResponse)
		}
		if resp.Trailer != "000000" {
			t.Errorf("Trailer = %s", resp.Trailer)
		}
		if resp.Header == nil || resp.Header.PayloadLength != len(eapBytes) || resp.Header.SequenceNumber != 3 {
			t.Fatalf("Header = %+v", resp.Header)
		}
		if resp.EAP == nil || len(resp.EAP.Attributes) != 2 {
			t.Fatalf("EAP = %+v", resp.EAP)
		}
		if resp.EAP.Attributes[0].Value != capturedRES {
			t.Errorf("RES = %s, want %s", resp.EAP.Attributes[0].Value, capturedRES)
		}
	})

	t.Run("header error is reported", func(t *testing.T) {
		bad := append([]byte(nil), raw...)
		bad[0] = 'X'
		resp, err := uc.DecodeFrame(context.Background(), &model.FrameDecodeRequest{PacketData: hex.EncodeToString(bad)})
		if err != nil {
			t.Fatalf("DecodeFrame() error = %v", err)
		}
		if resp.Header != nil || resp.HeaderError == "" {
			t.Errorf("Header = %+v, HeaderError = %q", resp.Header, resp.HeaderError)
		}
		if resp.EAP != nil {
			t.Error("EAP decoded without request")
		}
	})

	t.Run("too short", func(t *testing.T) {
		_, err := uc.DecodeFrame(context.Background(), &model.FrameDecodeRequest{PacketData: "5457"})
		wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeDecode)
	})
}

func TestDeriveLTK(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())
	base := model.PairingRequest{
		PodSecret: "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a",
		PDMPublic: "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f",
		PodNonce:  "d52da52f1d6e0b5c60bcfb3558087451",
		PDMNonce:  "54b3829f968cd66d108f440bc60b89ee",
	}

	t.Run("derived public key", func(t *testing.T) {
		req := base
		req.PDMConf = "bf134c8b1151f2bcd5c8d1adc6a39530"
		req.PodConf = "fd7b5be644d417c42418e68943f9f29a"

		resp, err := uc.DeriveLTK(context.Background(), &req)
		if err != nil {
			t.Fatalf("DeriveLTK() error = %v", err)
		}
		if resp.PodPublic != "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a" {
			t.Errorf("PodPublic = %s", resp.PodPublic)
		}
		if resp.LTK != "6513aa156fb4f08bc2ddb038424f794c" {
			t.Errorf("LTK = %s", resp.LTK)
		}
		if !resp.PDMConfVerified || !resp.PodConfVerified {
			t.Errorf("verified = %v/%v", resp.PDMConfVerified, resp.PodConfVerified)
		}
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		req := base
		req.PDMConf = "fd7b5be644d417c42418e68943f9f29a"

		_, err := uc.DeriveLTK(context.Background(), &req)
		pe := wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeVerificationFailed)
		if pe.Detail != "confirmation mismatch" {
			t.Errorf("Detail = %q", pe.Detail)
		}
	})

	t.Run("short nonce", func(t *testing.T) {
		req := base
		req.PodNonce = "d52da5"

		_, err := uc.DeriveLTK(context.Background(), &req)
		wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
	})

	t.Run("low order public key", func(t *testing.T) {
		req := base
		req.PDMPublic = hex.EncodeToString(make([]byte, 32))

		_, err := uc.DeriveLTK(context.Background(), &req)
		wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
	})
}

func TestSealOpen(t *testing.T) {
	uc := NewCryptoUseCase(milenage.NewCalculator(), testConfig())

	// pod -> PDM, seq 2
	const (
		aad        = "545711a1050804a008202ea908202ea8"
		plaintext  = "302e303d001fffffffff30170115031d00080800040208139a510011929100ffffffff8371"
		ciphertext = "6dfdd5e9266d549e820ea9a2680c8a88180fd3df342a13e88ecd3adb4fa095eb0aedc1e0e8"
		tag        = "b6c948078ed0c972"
	)

	t.Run("seal with built nonce", func(t *testing.T) {
		resp, err := uc.Seal(context.Background(), &model.SealRequest{
			CK:        capturedCK,
			NonceSpec: model.NonceSpec{NoncePrefix: "6cff5d18b7616cae", Seq: seq(2), Direction: "pod_to_pdm"},
			AAD:       aad,
			Plaintext: plaintext,
		})
		if err != nil {
			t.Fatalf("Seal() error = %v", err)
		}
		if resp.Nonce != "6cff5d18b7616cae8000000002" {
			t.Errorf("Nonce = %s", resp.Nonce)
		}
		if resp.Ciphertext != ciphertext || resp.Tag != tag {
			t.Errorf("Seal() = %s/%s, want %s/%s", resp.Ciphertext, resp.Tag, ciphertext, tag)
		}
	})

	t.Run("open", func(t *testing.T) {
		resp, err := uc.Open(context.Background(), &model.OpenRequest{
			CK:         capturedCK,
			NonceSpec:  model.NonceSpec{Nonce: "6cff5d18b7616cae8000000002"},
			AAD:        aad,
			Ciphertext: ciphertext,
			Tag:        tag,
		})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if resp.Plaintext != plaintext {
			t.Errorf("Plaintext = %s, want %s", resp.Plaintext, plaintext)
		}
	})

	t.Run("open tampered", func(t *testing.T) {
		resp, err := uc.Open(context.Background(), &model.OpenRequest{
			CK:         capturedCK,
			NonceSpec:  model.NonceSpec{Nonce: "6cff5d18b7616cae8000000002"},
			AAD:        aad,
			Ciphertext: ciphertext,
			Tag:        "b6c948078ed0c973",
		})
		if resp != nil {
			t.Errorf("Open() resp = %+v, want nil", resp)
		}
		pe := wantProblem(t, err, http.StatusUnprocessableEntity, httputil.TypeAuthenticationFailed)
		if pe != ErrAuthenticationFailed {
			t.Errorf("ProblemError = %v, want ErrAuthenticationFailed", pe)
		}
	})

	t.Run("input errors", func(t *testing.T) {
		reqs := map[string]*model.SealRequest{
			"missing nonce": {CK: capturedCK},
			"missing seq":   {CK: capturedCK, NonceSpec: model.NonceSpec{NoncePrefix: "6cff5d18b7616cae", Direction: "pod_to_pdm"}},
			"bad direction": {CK: capturedCK, NonceSpec: model.NonceSpec{NoncePrefix: "6cff5d18b7616cae", Seq: seq(1), Direction: "up"}},
			"short prefix":  {CK: capturedCK, NonceSpec: model.NonceSpec{NoncePrefix: "6cff5d18", Seq: seq(1), Direction: "pod_to_pdm"}},
			"short nonce":   {CK: capturedCK, NonceSpec: model.NonceSpec{Nonce: "6cff5d18"}},
			"aes-256 key":   {CK: capturedCK + capturedCK, NonceSpec: model.NonceSpec{Nonce: "6cff5d18b7616cae8000000002"}},
			"bad plaintext": {CK: capturedCK, NonceSpec: model.NonceSpec{Nonce: "6cff5d18b7616cae8000000002"}, Plaintext: "0"},
		}
		for name, req := range reqs {
			t.Run(name, func(t *testing.T) {
				_, err := uc.Seal(context.Background(), req)
				wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
			})
		}
	})

	t.Run("short tag", func(t *testing.T) {
		_, err := uc.Open(context.Background(), &model.OpenRequest{
			CK:         capturedCK,
			NonceSpec:  model.NonceSpec{Nonce: "6cff5d18b7616cae8000000002"},
			Ciphertext: ciphertext,
			Tag:        "b6c9",
		})
		wantProblem(t, err, http.StatusBadRequest, httputil.TypeValidation)
	})
}
