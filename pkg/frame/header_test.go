package frame

import (
	"bytes"
	"errors"
	"testing"
)

const capturedFrameB = "54,57,11,01,07,00,03,40,08,20,2e,a8,08,20,2e,a9,ab,35,d8,31,60,9b,b8,fe,3a,3b,de,5b,18,37,24,9a,16,db,f8,e4,d3,05,e9,75,dc,81,7c,37,07,cc,41,5f,af,8a"

// ペアリング開始フレーム（SPS1フィールド）
const capturedPairingFrame = "54,57,00,03,00,00,06,e0,ff,ff,ff,fe,00,00,02,42,00,00,00,00,53,50,53,31,3d,00,30,2f,e5,7d,a3,47,cd,62,43,15,28,da,ac,5f,bb,29,07,30,ff,f6,84,af,c4,cf,c2,ed,90,99,5f,58,cb,3b,74,00,00,00,00,00,00,00,00,00,00,00,00,00,00,00,00"

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  Header
	}{
		{
			name:  "Encrypted pod to PDM",
			frame: capturedFrameA,
			want: Header{
				SAS:            true,
				EQoS:           1,
				Ack:            true,
				LastMessage:    true,
				Type:           MessageTypeEncrypted,
				SequenceNumber: 5,
				AckNumber:      8,
				PayloadLength:  37,
				Source:         Address{0x08, 0x20, 0x2e, 0xa9},
				Destination:    Address{0x08, 0x20, 0x2e, 0xa8},
			},
		},
		{
			name:  "Encrypted PDM to pod",
			frame: capturedFrameB,
			want: Header{
				SAS:            true,
				EQoS:           1,
				Type:           MessageTypeEncrypted,
				SequenceNumber: 7,
				PayloadLength:  26,
				Source:         Address{0x08, 0x20, 0x2e, 0xa8},
				Destination:    Address{0x08, 0x20, 0x2e, 0xa9},
			},
		},
		{
			name:  "Pairing",
			frame: capturedPairingFrame,
			want: Header{
				Type:          MessageTypePairing,
				PayloadLength: 55,
				Source:        Address{0xff, 0xff, 0xff, 0xfe},
				Destination:   Address{0x00, 0x00, 0x02, 0x42},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustHexCSV(t, tt.frame)
			got, err := DecodeHeader(raw)
			if err != nil {
				t.Fatalf("DecodeHeader() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("DecodeHeader() = %+v, want %+v", *got, tt.want)
			}

			// 再エンコードで元のヘッダに戻る
			enc, err := EncodeHeader(got)
			if err != nil {
				t.Fatalf("EncodeHeader() error = %v", err)
			}
			if !bytes.Equal(enc, raw[:HeaderLen]) {
				t.Errorf("EncodeHeader() = %x, want %x", enc, raw[:HeaderLen])
			}
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	valid := func() []byte { return mustHexCSV(t, capturedFrameB)[:HeaderLen] }

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{"too short", func(b []byte) []byte { return b[:15] }, ErrFrameTooShort},
		{"bad magic", func(b []byte) []byte { b[1] = 'X'; return b }, ErrBadMagic},
		{"unknown type", func(b []byte) []byte { b[3] = 0x04; return b }, ErrUnknownMessageType},
		{"unsupported version", func(b []byte) []byte { b[2] |= 0x20; return b }, ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHeader(tt.mutate(valid()))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		h       Header
		wantErr error
	}{
		{"payload too long", Header{PayloadLength: MaxPayloadLen + 1}, ErrPayloadTooLong},
		{"negative payload", Header{PayloadLength: -1}, ErrPayloadTooLong},
		{"eqos overflow", Header{EQoS: 8}, ErrFieldOverflow},
		{"version overflow", Header{Version: 8}, ErrFieldOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeHeader(&tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EncodeHeader() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageTypeString(t *testing.T) {
	tests := []struct {
		t    MessageType
		want string
	}{
		{MessageTypeClear, "clear"},
		{MessageTypeEncrypted, "encrypted"},
		{MessageTypeSessionEstablishment, "session-establishment"},
		{MessageTypePairing, "pairing"},
		{MessageType(9), "unknown(9)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
