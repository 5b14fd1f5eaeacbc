package milenage

import (
	"crypto/aes"
	"fmt"
)

// encrypt は1ブロックをAES暗号化する。呼び出しごとに鍵スケジュールを生成する。
func encrypt(k, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	out := make([]byte, aes.BlockSize)
	block.Encrypt(out, in)
	return out, nil
}

// output は E_K(in) ⊕ OPc を計算し、入力ブロックを消去する
func output(k, in, opc []byte) ([]byte, error) {
	defer clear(in)
	out, err := encrypt(k, in)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] ^= opc[i]
	}
	return out, nil
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// rotate は16バイトブロックをnバイト左回転する
func rotate(in []byte, n int) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[(i+n)%len(in)]
	}
	return out
}

// withConst は末尾バイトに定数をXORしたコピーを返す
func withConst(in []byte, c byte) []byte {
	out := clone(in)
	out[len(out)-1] ^= c
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
