// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import (
	"encoding/json"
	"net/http"
)

// ContentType はRFC 7807で定義されたContent-Typeヘッダー値。
const ContentType = "application/problem+json"

// 問題種別URI
const (
	TypeBlank                = "about:blank"
	TypeValidation           = "urn:pod:problem:validation"
	TypeDecode               = "urn:pod:problem:decode"
	TypeAuthenticationFailed = "urn:pod:problem:authentication-failed"
	TypeVerificationFailed   = "urn:pod:problem:verification-failed"
)

// ProblemDetail はRFC 7807準拠のエラーレスポンス構造体。
type ProblemDetail struct {
	Type     string `json:"type"`               // エラータイプのURI
	Title    string `json:"title"`              // エラータイトル
	Status   int    `json:"status"`             // HTTPステータスコード
	Detail   string `json:"detail,omitempty"`   // 詳細説明
	Instance string `json:"instance,omitempty"` // トレースID
}

// NewProblemDetail は新しいProblemDetailを生成する。
func NewProblemDetail(status int, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   TypeBlank,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithType は問題種別URIを設定したコピーを返す。
func (p *ProblemDetail) WithType(typeURI string) *ProblemDetail {
	cp := *p
	cp.Type = typeURI
	return &cp
}

// WithInstance はinstance（トレースID）を設定したコピーを返す。
func (p *ProblemDetail) WithInstance(instance string) *ProblemDetail {
	cp := *p
	cp.Instance = instance
	return &cp
}

// BadRequest は400 Bad Requestのエラーレスポンスを生成する。
func BadRequest(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadRequest, "Bad Request", detail).WithType(TypeValidation)
}

// DecodeFailed は422のデコード失敗レスポンスを生成する。
func DecodeFailed(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusUnprocessableEntity, "Decode Failed", detail).WithType(TypeDecode)
}

// AuthenticationFailed は422の認証失敗レスポンスを生成する。
// 詳細は部分一致情報を含めないよう固定文言にする。
func AuthenticationFailed() *ProblemDetail {
	return NewProblemDetail(http.StatusUnprocessableEntity, "Authentication Failed", "authentication failed").
		WithType(TypeAuthenticationFailed)
}

// VerificationFailed は422の検証値不一致レスポンスを生成する。
func VerificationFailed(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusUnprocessableEntity, "Verification Failed", detail).
		WithType(TypeVerificationFailed)
}

// NotFound は404 Not Foundのエラーレスポンスを生成する。
func NotFound(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusNotFound, "Not Found", detail)
}

// InternalServerError は500 Internal Server Errorのエラーレスポンスを生成する。
func InternalServerError(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusInternalServerError, "Internal Server Error", detail)
}

// JSON はProblemDetailをJSON形式にエンコードする。
func (p *ProblemDetail) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// ParseProblem はproblem+jsonのレスポンスボディを解析する。
// typeまたはstatusが欠落している場合はok=falseを返す。
func ParseProblem(body []byte) (*ProblemDetail, bool) {
	var p ProblemDetail
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, false
	}
	if p.Type == "" || p.Status == 0 {
		return nil, false
	}
	return &p, true
}
