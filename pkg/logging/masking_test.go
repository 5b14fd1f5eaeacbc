package logging

import (
	"encoding/hex"
	"testing"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ck", in: "55799fd26664cbf6e476525e2dee52c6", want: "5579..(16B)"},
		{name: "x25519 secret", in: "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a", want: "7707..(32B)"},
		{name: "five bytes", in: "0102030405", want: "0102..(5B)"},
		{name: "iv length only", in: "b7616cae", want: "..(4B)"},
		{name: "empty", in: "", want: "..(0B)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := hex.DecodeString(tt.in)
			if got := Redact(b); got != tt.want {
				t.Errorf("Redact(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskerKey(t *testing.T) {
	ck, _ := hex.DecodeString("55799fd26664cbf6e476525e2dee52c6")

	if got := NewMasker(true).Key(ck); got != "5579..(16B)" {
		t.Errorf("enabled Key() = %q", got)
	}
	if got := NewMasker(false).Key(ck); got != "55799fd26664cbf6e476525e2dee52c6" {
		t.Errorf("disabled Key() = %q", got)
	}

	var m *Masker
	if got := m.Key(ck); got != "5579..(16B)" {
		t.Errorf("nil Key() = %q", got)
	}
}
