package dertlv

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

/*
integer.go implements the INTEGER decoder, grounded on
bigEndianToInt64/bigEndianFitsInt64 (int.go) but made generic over the
caller's chosen signed word type via golang.org/x/exp/constraints, so a
caller can decode directly into int32, int64, or platform int without
a second narrowing conversion.

Minimum-encoding validation (rejecting redundant leading 0x00/0xFF
octets) is intentionally not enforced; a decoder can reconstruct the
correct value either way, and the DER minimality rule is better
checked at the encoder that produced the bytes.
*/

// DecodeInteger decodes tok's content as a two's-complement
// big-endian ASN.1 INTEGER into T. It fails with ErrMemory if the
// content is longer than sizeof(T).
func DecodeInteger[T constraints.Signed](tok Token) (T, error) {
	var zero T
	if tok.Class != ClassUniversal || tok.Tag != TagInteger {
		return zero, newError(KindInvalid, "not an INTEGER token")
	}

	wordSize := int(unsafe.Sizeof(zero))
	data := tok.Content
	if len(data) == 0 {
		return zero, newError(KindInvalid, "empty INTEGER content")
	}
	if len(data) > wordSize {
		return zero, newError(KindMemory, "INTEGER content exceeds target word size")
	}

	pad := byte(0x00)
	if data[0]&0x80 != 0 {
		pad = 0xFF
	}

	var u uint64
	for i := 0; i < wordSize-len(data); i++ {
		u = u<<8 | uint64(pad)
	}
	for _, b := range data {
		u = u<<8 | uint64(b)
	}

	return T(int64(u)), nil
}
