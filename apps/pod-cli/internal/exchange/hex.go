package exchange

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/randallknutson/pod/pkg/apperr"
	"gopkg.in/yaml.v3"
)

// Hex はYAML上でHex表記されたバイト列。
//
// 受け付ける形式:
//   - 連続したHex文字列（"545711a1"、"0x545711a1"、空白区切り可）
//   - キャプチャ形式のカンマ区切り（"0x54, 0x57, 0x11"）
//   - 整数のシーケンス（[0x54, 87, 17]）
type Hex []byte

// UnmarshalYAML はyaml.Unmarshalerを実装する。
func (h *Hex) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		b, err := ParseHex(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*h = b
		return nil
	case yaml.SequenceNode:
		b := make([]byte, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := strconv.ParseUint(item.Value, 0, 8)
			if err != nil {
				return fmt.Errorf("line %d: %w: %q is not a byte", item.Line, apperr.ErrInvalidHex, item.Value)
			}
			b = append(b, byte(v))
		}
		*h = b
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected string or sequence", node.Line, apperr.ErrInvalidHex)
	}
}

// String はHex文字列を返す。
func (h Hex) String() string {
	return hex.EncodeToString(h)
}

// ParseHex はHex表記をバイト列に変換する。
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []byte{}, nil
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		b := make([]byte, 0, len(parts))
		for _, p := range parts {
			p = trimPrefix(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			v, err := strconv.ParseUint(p, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a byte", apperr.ErrInvalidHex, p)
			}
			b = append(b, byte(v))
		}
		return b, nil
	}

	s = trimPrefix(strings.Join(strings.Fields(s), ""))
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidHex, err)
	}
	return b, nil
}

func trimPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}
