package intcode

import (
	"testing"
)

func TestBinary_encode(t *testing.T) {
	var sink wordSink
	WriteBinary(&sink, 0x12345678, 64)
	if sink.value != 0x12345678 {
		t.Errorf("expected %#x, got %#x", 0x12345678, sink.value)
	}
}

func TestBinary_decode(t *testing.T) {
	src := wordSource{value: 0x12345678}
	if got := ReadBinary(&src, 64); got != 0x12345678 {
		t.Errorf("expected %#x, got %#x", 0x12345678, got)
	}
}

func TestBinary_universe(t *testing.T) {
	u := MakeUniverse(10, 20)

	var sink wordSink
	EncodeBinary(&sink, 17, u)
	if got := sink.BitsWritten(); got != 4 {
		t.Errorf("expected 4 bits, got %d", got)
	}
	if sink.value != 7 {
		t.Errorf("expected relative value 7, got %d", sink.value)
	}

	src := wordSource{value: sink.value}
	if got := DecodeBinary(&src, u); got != 17 {
		t.Errorf("expected 17, got %d", got)
	}
}
