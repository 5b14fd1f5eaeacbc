package aead

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/randallknutson/pod/pkg/apperr"
)

func TestBuildNonce(t *testing.T) {
	tests := []struct {
		name string
		seq  uint64
		dir  Direction
		want string
	}{
		{"captured pod to pdm", 2, PodToPDM, frameANonce},
		{"captured pdm to pod", 1, PDMToPod, frameBNonce},
		{"zero", 0, PDMToPod, "6cff5d18b7616cae0000000000"},
		{"max pdm to pod", MaxSequence, PDMToPod, "6cff5d18b7616cae7fffffffff"},
		{"max pod to pdm", MaxSequence, PodToPDM, "6cff5d18b7616caeffffffffff"},
		{"40 bit boundary", 0x0102030405, PodToPDM, "6cff5d18b7616cae8102030405"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildNonce(mustHex(t, noncePrefixHex), tt.seq, tt.dir)
			if err != nil {
				t.Fatalf("BuildNonce() error = %v", err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("BuildNonce() = %x, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildNonce_Errors(t *testing.T) {
	prefix := mustHex(t, noncePrefixHex)

	if _, err := BuildNonce(prefix[:7], 1, PodToPDM); !errors.Is(err, apperr.ErrInvalidNonceLength) {
		t.Errorf("short prefix error = %v, want %v", err, apperr.ErrInvalidNonceLength)
	}
	if _, err := BuildNonce(prefix, MaxSequence+1, PodToPDM); !errors.Is(err, ErrInvalidSequence) {
		t.Errorf("overflow error = %v, want %v", err, ErrInvalidSequence)
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{PDMToPod, PodToPDM} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection(sideways) ok = true")
	}
	if Direction(7).String() != "unknown" {
		t.Errorf("Direction(7).String() = %q", Direction(7).String())
	}
}
