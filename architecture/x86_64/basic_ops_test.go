package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x64encode/architecture/x86_64"
)

func TestBasicRegRegAllClasses(t *testing.T) {
	// REX byte's high nibble must always be 0b0100 (invariant #2).
	ops := []x86_64.BasicOpClass{
		x86_64.OpAdd, x86_64.OpOr, x86_64.OpAdc, x86_64.OpSbb,
		x86_64.OpAnd, x86_64.OpSub, x86_64.OpXor, x86_64.OpCmp,
	}
	for _, op := range ops {
		c := x86_64.NewCode()
		n := x86_64.BasicRegReg(c, op, x86_64.RDX, x86_64.RSI)
		if n != 3 {
			t.Errorf("op %v: BasicRegReg returned %d, want 3", op, n)
		}
		if c.Bytes()[0]&0xF0 != 0x40 {
			t.Errorf("op %v: first byte %#x is not REX family", op, c.Bytes()[0])
		}
	}
}

func TestBasicAccumImm32(t *testing.T) {
	c := x86_64.NewCode()
	n := x86_64.BasicAccumImm32(c, x86_64.OpAdd, 10)
	if n != 6 {
		t.Fatalf("BasicAccumImm32 returned %d, want 6", n)
	}
	want := []byte{0x48, 0x05, 0x0A, 0x00, 0x00, 0x00}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("got % x, want % x", c.Bytes(), want)
	}
}

func TestBasicRegImm32DispatchesRAXToAccum(t *testing.T) {
	c1 := x86_64.NewCode()
	x86_64.BasicRegImm32(c1, x86_64.OpXor, x86_64.RAX, 5)
	c2 := x86_64.NewCode()
	x86_64.BasicAccumImm32(c2, x86_64.OpXor, 5)
	if !bytes.Equal(c1.Bytes(), c2.Bytes()) {
		t.Errorf("BasicRegImm32(RAX) = % x, want accumulator form % x", c1.Bytes(), c2.Bytes())
	}
}

func TestBasicRegImm32NonAccum(t *testing.T) {
	c := x86_64.NewCode()
	n := x86_64.BasicRegImm32(c, x86_64.OpAnd, x86_64.R10, 1)
	if n != 7 {
		t.Fatalf("BasicRegImm32 returned %d, want 7", n)
	}
	want := []byte{0x49, 0x81, 0xE2, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("got % x, want % x", c.Bytes(), want)
	}
}

func TestBasicIndirectImm32(t *testing.T) {
	c := x86_64.NewCode()
	n := x86_64.BasicIndirectImm32(c, x86_64.OpOr, x86_64.R13, 2)
	want := []byte{0x49, 0x81, 0x4D, 0x00, 0x02, 0x00, 0x00, 0x00}
	if n != len(want) {
		t.Fatalf("BasicIndirectImm32 returned %d, want %d", n, len(want))
	}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("got % x, want % x", c.Bytes(), want)
	}
}

func TestBasicIndirectDstRegAllBases(t *testing.T) {
	for base := x86_64.RAX; base <= x86_64.R15; base++ {
		c := x86_64.NewCode()
		n := x86_64.BasicIndirectDstReg(c, x86_64.OpAdd, base, x86_64.RCX)
		if n != c.Len() {
			t.Errorf("base %v: returned count %d != appended %d", base, n, c.Len())
		}
		if c.Bytes()[0]&0xF0 != 0x40 {
			t.Errorf("base %v: first byte not REX family", base)
		}
	}
}

func TestBasicRegIndirectSrc(t *testing.T) {
	c := x86_64.NewCode()
	n := x86_64.BasicRegIndirectSrc(c, x86_64.OpSub, x86_64.RAX, x86_64.R12)
	want := []byte{0x49, 0x2B, 0x04, 0x24}
	if n != len(want) {
		t.Fatalf("BasicRegIndirectSrc returned %d, want %d", n, len(want))
	}
	if !bytes.Equal(c.Bytes(), want) {
		t.Errorf("got % x, want % x", c.Bytes(), want)
	}
}
