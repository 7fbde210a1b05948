package intcode

import (
	"testing"
)

var riceTestData = []struct {
	x    uint64
	p    byte
	bits uint64
}{
	{0, 5, 0b00000_0}, // gamma(1) + 00000
	{31, 5, 0b11111_0},
	{32, 5, 0b00000_0_01}, // gamma(2) + 00000
	{63, 5, 0b11111_0_01},
	{64, 5, 0b00000_1_01}, // gamma(3) + 00000
	{95, 5, 0b11111_1_01},
	{96, 5, 0b00000_00_011}, // gamma(4) + 00000
	{127, 5, 0b11111_00_011},
	{0, 6, 0b000000_0},
	{63, 6, 0b111111_0},
	{64, 6, 0b000000_0_01},
	{127, 6, 0b111111_0_01},
}

func TestRice_encode(t *testing.T) {
	for _, row := range riceTestData {
		var sink wordSink
		WriteRice(&sink, row.x, row.p)
		if sink.value != row.bits {
			t.Errorf("WriteRice(%d, %d): expected %#b, got %#b", row.x, row.p, row.bits, sink.value)
		}
	}
}

func TestRice_decode(t *testing.T) {
	for _, row := range riceTestData {
		src := wordSource{value: row.bits}
		if got := ReadRice(&src, row.p); got != row.x {
			t.Errorf("ReadRice(%#b, %d): expected %d, got %d", row.bits, row.p, row.x, got)
		}
	}
}

func TestRice_universe(t *testing.T) {
	u := MakeUniverse(10, 20)

	var sink wordSink
	EncodeRice(&sink, 13, 3, u) // encodes 13-10 = 3

	src := wordSource{value: sink.value}
	if got := DecodeRice(&src, 3, u); got != 13 {
		t.Errorf("expected 13, got %d", got)
	}
}
