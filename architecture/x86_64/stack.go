package x86_64

// PushReg emits "PUSH reg" — optional REX (W=0) when reg.hi, then
// 0x50|(reg&7).
func PushReg(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0x50 | reg.low3())
	return n
}

// PushIndirect emits "PUSH [reg]" — optional REX, 0xFF,
// indirect-emit(ext=6, reg).
func PushIndirect(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0xFF)
	n += emitIndirect(c, 6, reg)
	return n
}

// PushImm32 emits "PUSH imm32" — 0x68 + imm32.
func PushImm32(c *Code, imm int32) int {
	n := c.Append(0x68)
	n += appendImm32(c, imm)
	return n
}

// PopReg emits "POP reg" — symmetric with PushReg, opcode 0x58|(reg&7).
func PopReg(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0x58 | reg.low3())
	return n
}

// PopIndirect emits "POP [reg]" — opcode 0x8F, indirect-emit(ext=0, reg).
func PopIndirect(c *Code, reg GPReg) int {
	n := 0
	if needsRex(0, 0, reg.hi()) {
		n += c.Append(makeRex(false, 0, 0, reg.hi()))
	}
	n += c.Append(0x8F)
	n += emitIndirect(c, 0, reg)
	return n
}
