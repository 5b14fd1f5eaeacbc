// Package milenage はMilenage（3GPP TS 35.206）による認証ベクター計算を提供する。
package milenage

import (
	"crypto/subtle"
	"fmt"

	"github.com/randallknutson/pod/pkg/apperr"
	"github.com/wmnsk/milenage"
)

// 入出力長
const (
	KeyLen  = 16
	RANDLen = 16
	SQNLen  = 6
	AMFLen  = 2
	AUTNLen = 16
	RESLen  = 8
	AKLen   = 6
	MACLen  = 8
)

// 回転量（バイト単位）と定数 c2..c4 の末尾バイト
const (
	r1 = 8
	r3 = 4
	r4 = 8

	c2 = 0x01
	c3 = 0x02
	c4 = 0x04
)

// Vector は認証ベクターを表す。
type Vector struct {
	RAND []byte // 16 bytes
	SQN  []byte // 6 bytes
	AMF  []byte // 2 bytes
	AUTN []byte // 16 bytes
	RES  []byte // 8 bytes
	CK   []byte // 16 bytes
	IK   []byte // 16 bytes
	AK   []byte // 6 bytes
	MACA []byte // 8 bytes
}

// Calculator はMilenage計算を行う。
// 状態を持たないため並行利用できる。
type Calculator struct{}

// NewCalculator は新しいCalculatorを生成する。
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Derive は K, OPc, RAND, SQN, AMF から認証ベクターを計算する。
// 各AES呼び出しごとに鍵から新しいブロック暗号を生成する。
func (c *Calculator) Derive(k, opc, rand, sqn, amf []byte) (*Vector, error) {
	if err := checkInputs(k, opc, rand); err != nil {
		return nil, err
	}
	if len(sqn) != SQNLen {
		return nil, apperr.NewFieldError("sqn", fmt.Errorf("%w: sqn must be %d bytes, got %d", apperr.ErrInvalidLength, SQNLen, len(sqn)))
	}
	if len(amf) != AMFLen {
		return nil, apperr.NewFieldError("amf", fmt.Errorf("%w: amf must be %d bytes, got %d", apperr.ErrInvalidLength, AMFLen, len(amf)))
	}

	// 1. TEMP = E_K(RAND ⊕ OPc)
	in := xor(rand, opc)
	temp, err := encrypt(k, in)
	clear(in)
	if err != nil {
		return nil, err
	}
	defer clear(temp)

	// TEMP ⊕ OPc は OUT2..OUT4 の共通入力
	tOPc := xor(temp, opc)
	defer clear(tOPc)

	// 2. OUT1 = E_K(TEMP ⊕ rot(IN1 ⊕ OPc, r1)) ⊕ OPc
	in1 := make([]byte, 16)
	copy(in1[0:6], sqn)
	copy(in1[6:8], amf)
	copy(in1[8:14], sqn)
	copy(in1[14:16], amf)
	out1, err := output(k, xor(temp, rotate(xor(in1, opc), r1)), opc)
	if err != nil {
		return nil, err
	}

	// 3. OUT2 = E_K(TEMP ⊕ OPc ⊕ c2) ⊕ OPc → RES, AK
	out2, err := output(k, withConst(tOPc, c2), opc)
	if err != nil {
		return nil, err
	}

	// 4. OUT3 = E_K(rot(TEMP ⊕ OPc, r3) ⊕ c3) ⊕ OPc → CK
	out3, err := output(k, withConst(rotate(tOPc, r3), c3), opc)
	if err != nil {
		return nil, err
	}

	// 5. OUT4 = E_K(rot(TEMP ⊕ OPc, r4) ⊕ c4) ⊕ OPc → IK
	out4, err := output(k, withConst(rotate(tOPc, r4), c4), opc)
	if err != nil {
		return nil, err
	}

	v := &Vector{
		RAND: clone(rand),
		SQN:  clone(sqn),
		AMF:  clone(amf),
		RES:  clone(out2[8:16]),
		CK:   out3,
		IK:   out4,
		AK:   clone(out2[0:6]),
		MACA: clone(out1[0:8]),
	}
	clear(out1)
	clear(out2)

	// 6. AUTN = (SQN ⊕ AK) || AMF || MAC-A
	v.AUTN = computeAUTN(v.SQN, v.AK, v.AMF, v.MACA)
	return v, nil
}

// Verify はベクターを再計算し、RESとCKを期待値と定数時間で比較する。
func (c *Calculator) Verify(k, opc, rand, sqn, amf, res, ck []byte) (*Vector, error) {
	v, err := c.Derive(k, opc, rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(v.RES, res) != 1 {
		return nil, ErrRESMismatch
	}
	if subtle.ConstantTimeCompare(v.CK, ck) != 1 {
		return nil, ErrCKMismatch
	}
	return v, nil
}

// VerifyAUTN はAUTNからAKでSQNを復元し、MAC-Aを検証してベクターを返す。
func (c *Calculator) VerifyAUTN(k, opc, rand, autn []byte) (*Vector, error) {
	if err := checkInputs(k, opc, rand); err != nil {
		return nil, err
	}
	if len(autn) != AUTNLen {
		return nil, apperr.NewFieldError("autn", fmt.Errorf("%w: autn must be %d bytes, got %d", apperr.ErrInvalidLength, AUTNLen, len(autn)))
	}

	// 1. AK = f5(K, RAND) でSQNを復元
	ak, err := c.anonymityKey(k, opc, rand)
	if err != nil {
		return nil, err
	}
	sqn := xor(autn[0:6], ak)
	clear(ak)

	// 2. 復元したSQNとAUTN内のAMFで再計算
	v, err := c.Derive(k, opc, rand, sqn, autn[6:8])
	if err != nil {
		return nil, err
	}

	// 3. MAC-A比較（タイミング攻撃対策で定数時間比較）
	if subtle.ConstantTimeCompare(v.MACA, autn[8:16]) != 1 {
		return nil, ErrMACMismatch
	}
	return v, nil
}

// anonymityKey は f5 のみを計算する
func (c *Calculator) anonymityKey(k, opc, rand []byte) ([]byte, error) {
	temp, err := encrypt(k, xor(rand, opc))
	if err != nil {
		return nil, err
	}
	defer clear(temp)

	out2, err := output(k, withConst(xor(temp, opc), c2), opc)
	if err != nil {
		return nil, err
	}
	defer clear(out2)
	return clone(out2[0:AKLen]), nil
}

// ComputeOPc はOPからOPcを計算する。
func ComputeOPc(k, op []byte) ([]byte, error) {
	if len(k) != KeyLen {
		return nil, apperr.NewFieldError("k", fmt.Errorf("%w: k must be %d bytes, got %d", apperr.ErrInvalidKeyLength, KeyLen, len(k)))
	}
	if len(op) != 16 {
		return nil, apperr.NewFieldError("op", fmt.Errorf("%w: op must be 16 bytes, got %d", apperr.ErrInvalidLength, len(op)))
	}
	opc, err := milenage.ComputeOPc(k, op)
	if err != nil {
		return nil, fmt.Errorf("failed to compute OPc: %w", err)
	}
	return opc, nil
}

func checkInputs(k, opc, rand []byte) error {
	if len(k) != KeyLen {
		return apperr.NewFieldError("k", fmt.Errorf("%w: k must be %d bytes, got %d", apperr.ErrInvalidKeyLength, KeyLen, len(k)))
	}
	if len(opc) != 16 {
		return apperr.NewFieldError("opc", fmt.Errorf("%w: opc must be 16 bytes, got %d", apperr.ErrInvalidLength, len(opc)))
	}
	if len(rand) != RANDLen {
		return apperr.NewFieldError("rand", fmt.Errorf("%w: rand must be %d bytes, got %d", apperr.ErrInvalidLength, RANDLen, len(rand)))
	}
	return nil
}

// computeAUTN はAUTNを計算する。
// AUTN = (SQN ⊕ AK) || AMF || MAC-A
func computeAUTN(sqn, ak, amf, macA []byte) []byte {
	autn := make([]byte, AUTNLen)
	for i := 0; i < SQNLen; i++ {
		autn[i] = sqn[i] ^ ak[i]
	}
	copy(autn[6:8], amf)
	copy(autn[8:16], macA)
	return autn
}
