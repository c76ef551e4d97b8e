package x86_64

// Jcc emits a conditional jump with a 32-bit displacement: two-byte
// opcode 0F (80|cc) followed by disp32. Displacement is relative to
// the byte after the instruction; the caller computes it.
func Jcc(c *Code, cc CondTest, disp32 int32) int {
	n := c.Append(0x0F, 0x80|byte(cc))
	n += appendImm32(c, disp32)
	return n
}

// Jmp emits "JMP rel32" — opcode 0xE9 + disp32.
func Jmp(c *Code, disp32 int32) int {
	n := c.Append(0xE9)
	n += appendImm32(c, disp32)
	return n
}

// JmpReg emits "JMP reg" — opcode 0xFF with ModR/M.reg extension 4. A
// REX (W=0) is prepended only when the register's high bit is set.
func JmpReg(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0xFF)
	n += c.Append(makeModRM(ModeDirect, 4, reg.low3()))
	return n
}

// Call emits "CALL rel32" — opcode 0xE8 + disp32.
func Call(c *Code, disp32 int32) int {
	n := c.Append(0xE8)
	n += appendImm32(c, disp32)
	return n
}

// CallReg emits "CALL reg" — opcode 0xFF with ModR/M.reg extension 2.
func CallReg(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0xFF)
	n += c.Append(makeModRM(ModeDirect, 2, reg.low3()))
	return n
}

// Ret emits the single-byte RET.
func Ret(c *Code) int {
	return c.Append(0xC3)
}

// Syscall emits the two-byte SYSCALL instruction.
func Syscall(c *Code) int {
	return c.Append(0x0F, 0x05)
}

// Loop emits LOOP — opcode 0xE2 + disp8.
func Loop(c *Code, disp8 int8) int {
	n := c.Append(0xE2)
	n += appendImm8(c, disp8)
	return n
}

// LoopE emits LOOPE/LOOPZ — opcode 0xE1 + disp8.
func LoopE(c *Code, disp8 int8) int {
	n := c.Append(0xE1)
	n += appendImm8(c, disp8)
	return n
}

// LoopNE emits LOOPNE/LOOPNZ — opcode 0xE0 + disp8.
func LoopNE(c *Code, disp8 int8) int {
	n := c.Append(0xE0)
	n += appendImm8(c, disp8)
	return n
}
