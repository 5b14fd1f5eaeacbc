package milenage

import "encoding/binary"

// MaxSQN はSQN（48ビット）の最大値。
const MaxSQN uint64 = 1<<48 - 1

// SQNToBytes はSQNを6バイトのビッグエンディアン表現に変換する。48ビットを超える上位ビットは捨てる。
func SQNToBytes(sqn uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sqn&MaxSQN)
	return buf[8-SQNLen:]
}

// BytesToSQN は6バイトのSQNを数値に変換する。
func BytesToSQN(b []byte) uint64 {
	var buf [8]byte
	copy(buf[8-SQNLen:], b[:SQNLen])
	return binary.BigEndian.Uint64(buf[:])
}
