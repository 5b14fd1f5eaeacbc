package milenage

import (
	"bytes"
	"testing"
)

func TestRotate(t *testing.T) {
	in := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	tests := []struct {
		n    int
		want []byte
	}{
		{0, in},
		{4, []byte{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3}},
		{8, []byte{8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		if got := rotate(in, tt.n); !bytes.Equal(got, tt.want) {
			t.Errorf("rotate(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestRotateFourEqualsPlacementTwelve(t *testing.T) {
	// 「バイトiを(i+12) mod 16に置く」形式と同じ結果になる
	in := []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf}
	placed := make([]byte, 16)
	for i := range in {
		placed[(i+12)%16] = in[i]
	}
	if got := rotate(in, r3); !bytes.Equal(got, placed) {
		t.Errorf("rotate(r3) = %x, want %x", got, placed)
	}
}

func TestWithConst(t *testing.T) {
	in := make([]byte, 16)
	got := withConst(in, c3)
	if got[15] != 0x02 {
		t.Errorf("last byte = %#x, want 0x02", got[15])
	}
	if in[15] != 0 {
		t.Error("withConst modified its input")
	}
}
