package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/keurnel/x64encode/architecture/x86_64"
)

// TestEndToEndScenarios checks the ten literal byte sequences a
// conforming encoder must produce, independent of how the rest of the
// suite exercises each family in isolation.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		run  func(*x86_64.Code) int
		want []byte
	}{
		{
			"mov RAX, RCX",
			func(c *x86_64.Code) int { return x86_64.MovRegReg(c, x86_64.RAX, x86_64.RCX) },
			[]byte{0x48, 0x8B, 0xC1},
		},
		{
			"mov R9, 21",
			func(c *x86_64.Code) int { return x86_64.MovRegImm64(c, x86_64.R9, 21) },
			[]byte{0x49, 0xB9, 0x15, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"ret",
			func(c *x86_64.Code) int { return x86_64.Ret(c) },
			[]byte{0xC3},
		},
		{
			"push RBP",
			func(c *x86_64.Code) int { return x86_64.PushReg(c, x86_64.RBP) },
			[]byte{0x55},
		},
		{
			"mov RBP, RSP",
			func(c *x86_64.Code) int { return x86_64.MovRegReg(c, x86_64.RBP, x86_64.RSP) },
			[]byte{0x48, 0x8B, 0xEC},
		},
		{
			"mov RAX, [R12]",
			func(c *x86_64.Code) int { return x86_64.MovRegIndirect(c, x86_64.RAX, x86_64.R12) },
			[]byte{0x49, 0x8B, 0x04, 0x24},
		},
		{
			"mov RAX, [RBP]",
			func(c *x86_64.Code) int { return x86_64.MovRegIndirect(c, x86_64.RAX, x86_64.RBP) },
			[]byte{0x48, 0x8B, 0x45, 0x00},
		},
		{
			"nop(5)",
			func(c *x86_64.Code) int { return x86_64.Nop(c, 5) },
			[]byte{0x0F, 0x1F, 0x44, 0x00, 0x00},
		},
		{
			"syscall",
			func(c *x86_64.Code) int { return x86_64.Syscall(c) },
			[]byte{0x0F, 0x05},
		},
		{
			"addsd xmm9, xmm9",
			func(c *x86_64.Code) int { return x86_64.AddSD(c, x86_64.XMM9, x86_64.XMM9) },
			[]byte{0xF2, 0x45, 0x0F, 0x58, 0xC9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := x86_64.NewCode()
			n := tt.run(c)
			if n != len(tt.want) {
				t.Errorf("%s returned %d bytes, want %d", tt.name, n, len(tt.want))
			}
			if !bytes.Equal(c.Bytes(), tt.want) {
				t.Errorf("%s = % x, want % x", tt.name, c.Bytes(), tt.want)
			}
		})
	}
}

// TestReturnedCountMatchesAppendedLength is invariant #1: for every
// successful encoder call, the returned count equals the number of
// bytes appended.
func TestReturnedCountMatchesAppendedLength(t *testing.T) {
	calls := []func(*x86_64.Code) int{
		func(c *x86_64.Code) int { return x86_64.BasicRegReg(c, x86_64.OpAdd, x86_64.RAX, x86_64.RCX) },
		func(c *x86_64.Code) int { return x86_64.MulIndirect(c, x86_64.R13) },
		func(c *x86_64.Code) int { return x86_64.Jcc(c, x86_64.CondNE, 0) },
		func(c *x86_64.Code) int { return x86_64.MovIndirectImm32(c, x86_64.RSP, 9) },
		func(c *x86_64.Code) int { return x86_64.CmpSDIndirect(c, x86_64.XMM3, x86_64.R12, x86_64.SDCmpEQ) },
		func(c *x86_64.Code) int { return x86_64.Nop(c, 17) },
	}
	for i, call := range calls {
		c := x86_64.NewCode()
		n := call(c)
		if n != c.Len() {
			t.Errorf("call #%d: returned %d, appended %d", i, n, c.Len())
		}
	}
}
