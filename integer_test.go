package dertlv

import (
	"errors"
	"testing"
)

func intToken(content []byte) Token {
	return Token{Class: ClassUniversal, Tag: TagInteger, Primitive: true, Content: content}
}

func TestDecodeInteger_Int64(t *testing.T) {
	for idx, tt := range []struct {
		content []byte
		want    int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x05}, 5},
		{[]byte{0x7F}, 127},
		{[]byte{0x00, 0x80}, 128},
		{[]byte{0xFF}, -1},
		{[]byte{0x80}, -128},
		{[]byte{0xFF, 0x7F}, -129},
	} {
		got, err := DecodeInteger[int64](intToken(tt.content))
		if err != nil {
			t.Fatalf("case %d: DecodeInteger: %v", idx, err)
		}
		if got != tt.want {
			t.Fatalf("case %d: got %d, want %d", idx, got, tt.want)
		}
	}
}

func TestDecodeInteger_SmallerWordSizes(t *testing.T) {
	v32, err := DecodeInteger[int32](intToken([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	if err != nil || v32 != -1 {
		t.Fatalf("int32: got %d, err %v, want -1", v32, err)
	}

	v8, err := DecodeInteger[int8](intToken([]byte{0x80}))
	if err != nil || v8 != -128 {
		t.Fatalf("int8: got %d, err %v, want -128", v8, err)
	}
}

func TestDecodeInteger_RejectsOverflow(t *testing.T) {
	content := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if _, err := DecodeInteger[int32](intToken(content)); !errors.Is(err, ErrMemory) {
		t.Fatalf("err = %v, want ErrMemory", err)
	}
}

func TestDecodeInteger_RejectsEmptyContent(t *testing.T) {
	if _, err := DecodeInteger[int64](intToken(nil)); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestDecodeInteger_RejectsWrongTag(t *testing.T) {
	tok := Token{Class: ClassUniversal, Tag: TagBoolean, Primitive: true, Content: []byte{0x01}}
	if _, err := DecodeInteger[int64](tok); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
