// Package exchange はpod-cliが読み込むYAML形式の交換ファイルを扱う。
package exchange

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Exchange は1回の操作に使う入力値の集合。
// 操作ごとに必要なフィールドだけを記述する。
type Exchange struct {
	// フレーム・EAP
	PacketData Hex  `yaml:"packet_data"`
	DecodeEAP  bool `yaml:"decode_eap"`
	EAP        Hex  `yaml:"eap"`
	Challenge  Hex  `yaml:"challenge"`

	// Milenage
	K    Hex     `yaml:"k"`
	OP   Hex     `yaml:"op"`
	OPc  Hex     `yaml:"opc"`
	RAND Hex     `yaml:"rand"`
	Seq  *uint64 `yaml:"seq"`
	AMF  Hex     `yaml:"amf"`
	RES  Hex     `yaml:"res"`
	CK   Hex     `yaml:"ck"`

	// ペアリング
	PodSecret Hex `yaml:"pod_secret"`
	PodPublic Hex `yaml:"pod_public"`
	PDMPublic Hex `yaml:"pdm_public"`
	PodNonce  Hex `yaml:"pod_nonce"`
	PDMNonce  Hex `yaml:"pdm_nonce"`
	PDMConf   Hex `yaml:"pdm_conf"`
	PodConf   Hex `yaml:"pod_conf"`

	// AES-CCM
	Nonce       Hex    `yaml:"nonce"`
	NoncePrefix Hex    `yaml:"nonce_prefix"`
	Direction   string `yaml:"direction"`
	AAD         Hex    `yaml:"aad"`
	Plaintext   Hex    `yaml:"plaintext"`
	Ciphertext  Hex    `yaml:"ciphertext"`
	Tag         Hex    `yaml:"tag"`
	PodIV       Hex    `yaml:"pod_iv"`
}

// LoadError は交換ファイルの読み込みエラーを表す。
type LoadError struct {
	File    string
	Message string
	Cause   error
}

// Error はerrorインターフェースを実装する。
func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap は根本原因を返す。
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse はYAMLバイト列を交換ファイルとして解析する。
// 未知のキーはタイプミスとしてエラーにする。
func Parse(data []byte) (*Exchange, error) {
	var ex Exchange
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ex); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	return &ex, nil
}

// Load はファイルから交換ファイルを読み込む。
func Load(path string) (*Exchange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	ex, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
		}
		return nil, err
	}
	return ex, nil
}
