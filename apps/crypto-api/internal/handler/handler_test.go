package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/randallknutson/pod/apps/crypto-api/internal/usecase"
	"github.com/randallknutson/pod/pkg/httputil"
	"github.com/randallknutson/pod/pkg/model"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext はJSONボディ付きのテスト用コンテキストを生成する。
func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(httputil.TraceIDKey, "trace-123")
	return c, w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) httputil.ProblemDetail {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
	}
	var p httputil.ProblemDetail
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return p
}

func TestHandleHealth(t *testing.T) {
	h := NewCryptoHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.HandleHealth(c)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp model.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want %q", resp.Status, "ok")
	}
}

func TestHandleMilenageDerive(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := usecase.NewMockCryptoUseCaseInterface(ctrl)
		mockUC.EXPECT().
			DeriveMilenage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *model.MilenageRequest) (*model.MilenageResponse, error) {
				if req.Seq == nil || *req.Seq != 2 {
					t.Errorf("Seq = %v, want 2", req.Seq)
				}
				return &model.MilenageResponse{RES: "a40bc6d13861447e"}, nil
			})
		h := NewCryptoHandler(mockUC)

		c, w := newTestContext(t, `{"k":"c0772899720972a314f557de66d571dd","rand":"c2cd1248451103bd77a6c7ef88c441ba","seq":2}`)
		h.HandleMilenageDerive(c)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}
		var resp model.MilenageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if resp.RES != "a40bc6d13861447e" {
			t.Errorf("RES = %q", resp.RES)
		}
	})

	t.Run("missing seq", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := usecase.NewMockCryptoUseCaseInterface(ctrl)
		h := NewCryptoHandler(mockUC)

		c, w := newTestContext(t, `{"k":"00","rand":"00"}`)
		h.HandleMilenageDerive(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		p := decodeProblem(t, w)
		if p.Type != httputil.TypeValidation {
			t.Errorf("Type = %q, want %q", p.Type, httputil.TypeValidation)
		}
		if p.Instance != "trace-123" {
			t.Errorf("Instance = %q, want trace-123", p.Instance)
		}
	})
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"authentication failed", usecase.ErrAuthenticationFailed, http.StatusUnprocessableEntity, httputil.TypeAuthenticationFailed},
		{"wrapped calculation error", errors.Join(usecase.ErrCalculation, errors.New("boom")), http.StatusInternalServerError, httputil.TypeBlank},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, httputil.TypeBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := usecase.NewMockCryptoUseCaseInterface(ctrl)
			mockUC.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			h := NewCryptoHandler(mockUC)

			c, w := newTestContext(t, `{"ck":"00","nonce":"00","tag":"00"}`)
			h.HandleAEADOpen(c)

			if w.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", w.Code, tt.wantStatus)
			}
			p := decodeProblem(t, w)
			if p.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", p.Type, tt.wantType)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("body Status = %d, want %d", p.Status, tt.wantStatus)
			}
		})
	}
}

func TestHandlers_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := usecase.NewMockCryptoUseCaseInterface(ctrl)
	h := NewCryptoHandler(mockUC)

	mockUC.EXPECT().DecodeFrame(gomock.Any(), &model.FrameDecodeRequest{PacketData: "5457", EAP: true}).Return(&model.FrameDecodeResponse{}, nil)
	mockUC.EXPECT().DecodeEAP(gomock.Any(), &model.EAPDecodeRequest{EAP: "03bd0004"}).Return(&model.EAPMessageResponse{}, nil)
	mockUC.EXPECT().RespondChallenge(gomock.Any(), gomock.Any()).Return(&model.EAPRespondResponse{}, nil)
	mockUC.EXPECT().VerifyMilenage(gomock.Any(), gomock.Any()).Return(&model.VerifyResponse{Verified: true}, nil)
	mockUC.EXPECT().DeriveLTK(gomock.Any(), gomock.Any()).Return(&model.PairingResponse{}, nil)
	mockUC.EXPECT().Seal(gomock.Any(), gomock.Any()).Return(&model.SealResponse{}, nil)

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		body    string
	}{
		{"frame", h.HandleFrameDecode, `{"packet_data":"5457","eap":true}`},
		{"eap", h.HandleEAPDecode, `{"eap":"03bd0004"}`},
		{"respond", h.HandleEAPRespond, `{"challenge":"01","k":"00"}`},
		{"verify", h.HandleMilenageVerify, `{"k":"00","rand":"00","seq":1,"res":"00","ck":"00"}`},
		{"pairing", h.HandlePairingLTK, `{"pod_secret":"00","pdm_public":"00","pod_nonce":"00","pdm_nonce":"00"}`},
		{"seal", h.HandleAEADSeal, `{"ck":"00","nonce":"00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, tt.body)
			tt.handler(c)
			if w.Code != http.StatusOK {
				t.Errorf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
			}
		})
	}
}

func TestHandlers_RequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewCryptoHandler(usecase.NewMockCryptoUseCaseInterface(ctrl))

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		body    string
	}{
		{"frame without packet_data", h.HandleFrameDecode, `{"eap":true}`},
		{"eap empty body", h.HandleEAPDecode, ``},
		{"verify without res", h.HandleMilenageVerify, `{"k":"00","rand":"00","seq":1,"ck":"00"}`},
		{"pairing without nonce", h.HandlePairingLTK, `{"pod_secret":"00","pdm_public":"00","pod_nonce":"00"}`},
		{"open without tag", h.HandleAEADOpen, `{"ck":"00","nonce":"00"}`},
		{"malformed json", h.HandleAEADSeal, `{"ck":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, tt.body)
			tt.handler(c)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
