package intcode

import (
	"math"
	"testing"
)

func TestUniverse_entropy(t *testing.T) {
	testData := []struct {
		u       Universe
		entropy uint64
	}{
		{BinaryUniverse(), 1},
		{MakeEntropyUniverse(8), 8},
		{MakeEntropyUniverse(16), 16},
		{MakeEntropyUniverse(32), 32},
		{MakeEntropyUniverse(64), 64},
		{MaxUniverse(), 64},
		{MakeUniverse(0, 2), 2},
		{MakeUniverse(0, 3), 2},
		{MakeUniverse(0, 4), 3},
		{MakeUniverse(0, 0x0FFFFFF), 24},
		{MakeUniverse(0, 0x1000000), 25},
		{MakeUniverse(1, 2), 1},
		{MakeUniverse(1, 3), 2},
		{MakeUniverse(0x0FFFFFF, 0x1000000), 1},
		{MakeUniverse(0, 0), 1},
	}
	for _, row := range testData {
		if got := row.u.Entropy(); got != row.entropy {
			t.Errorf("universe [%d, %d]: expected entropy %d, got %d", row.u.Min(), row.u.Max(), row.entropy, got)
		}
	}
}

func TestUniverse_withEntropy(t *testing.T) {
	if got := MakeEntropyUniverse(5).Max(); got != 0x1F {
		t.Errorf("expected max 0x1F, got %#x", got)
	}
	if got := MakeEntropyUniverse(20).Max(); got != 0xFFFFF {
		t.Errorf("expected max 0xFFFFF, got %#x", got)
	}
	if got := MakeEntropyUniverse(64).Max(); got != uint64(math.MaxUint64) {
		t.Errorf("expected max MaxUint64, got %#x", got)
	}
}

func TestUniverse_relAbs(t *testing.T) {
	u := MakeUniverse(53748, 1287536)
	if got := u.Delta(); got != 1233788 {
		t.Errorf("expected delta 1233788, got %d", got)
	}
	if got := u.Entropy(); got != 21 {
		t.Errorf("expected entropy 21, got %d", got)
	}
	if got := u.Rel(u.Min()); got != 0 {
		t.Errorf("expected rel(min) 0, got %d", got)
	}
	if got := u.Rel(u.Min() + 1); got != 1 {
		t.Errorf("expected rel(min+1) 1, got %d", got)
	}
	if got := u.Rel(u.Max()); got != u.Delta() {
		t.Errorf("expected rel(max) %d, got %d", u.Delta(), got)
	}
	if got := u.Abs(0); got != u.Min() {
		t.Errorf("expected abs(0) %d, got %d", u.Min(), got)
	}
	if got := u.Abs(1); got != u.Min()+1 {
		t.Errorf("expected abs(1) %d, got %d", u.Min()+1, got)
	}
	if got := u.Abs(u.Delta()); got != u.Max() {
		t.Errorf("expected abs(delta) %d, got %d", u.Max(), got)
	}
}

func TestUniverse_delta(t *testing.T) {
	u := MakeDeltaUniverse(100, 27)
	if got := u.Max(); got != 127 {
		t.Errorf("expected max 127, got %d", got)
	}
	if u != MakeUniverse(100, 127) {
		t.Errorf("expected %v, got %v", MakeUniverse(100, 127), u)
	}
}

func TestUniverse_atLeast(t *testing.T) {
	u := AtLeastUniverse(42)
	if got := u.Min(); got != 42 {
		t.Errorf("expected min 42, got %d", got)
	}
	if got := u.Max(); got != uint64(math.MaxUint64) {
		t.Errorf("expected max MaxUint64, got %d", got)
	}
}
