package x86_64

// opMR is the register/memory opcode for each BasicOpClass in
// "[regD] op= regS" form; adding 2 yields the "regD op= [regS]" form.
var opMR = [8]byte{0x01, 0x09, 0x11, 0x19, 0x21, 0x29, 0x31, 0x39}

// BasicAccumImm32 emits "RAX op= imm32" — the accumulator-immediate
// short form: REX.W, (op<<3)|0x05, imm32.
func BasicAccumImm32(c *Code, op BasicOpClass, imm int32) int {
	n := c.Append(makeRex(true, 0, 0, 0))
	n += c.Append((byte(op) << 3) | 0x05)
	n += appendImm32(c, imm)
	return n
}

// BasicRegImm32 emits "reg op= imm32". Dispatches to
// BasicAccumImm32 when reg is RAX, matching the source's preference
// for the shorter accumulator encoding.
func BasicRegImm32(c *Code, op BasicOpClass, reg GPReg, imm int32) int {
	if reg == RAX {
		return BasicAccumImm32(c, op, imm)
	}
	n := c.Append(makeRex(true, 0, 0, reg.hi()))
	n += c.Append(0x81)
	n += c.Append(makeModRM(ModeDirect, byte(op), reg.low3()))
	n += appendImm32(c, imm)
	return n
}

// BasicIndirectImm32 emits "[reg] op= imm32".
func BasicIndirectImm32(c *Code, op BasicOpClass, reg GPReg, imm int32) int {
	n := c.Append(makeRex(true, 0, 0, reg.hi()))
	n += c.Append(0x81)
	n += emitIndirect(c, byte(op), reg)
	n += appendImm32(c, imm)
	return n
}

// BasicRegReg emits "regD op= regS".
func BasicRegReg(c *Code, op BasicOpClass, dst, src GPReg) int {
	n := c.Append(makeRex(true, dst.hi(), 0, src.hi()))
	n += c.Append((byte(op) << 3) | 0x03)
	n += c.Append(makeModRM(ModeDirect, dst.low3(), src.low3()))
	return n
}

// BasicIndirectDstReg emits "[regD] op= regS".
func BasicIndirectDstReg(c *Code, op BasicOpClass, dst, src GPReg) int {
	n := c.Append(makeRex(true, src.hi(), 0, dst.hi()))
	n += c.Append(opMR[op])
	n += emitIndirectReg(c, src, dst)
	return n
}

// BasicRegIndirectSrc emits "regD op= [regS]".
func BasicRegIndirectSrc(c *Code, op BasicOpClass, dst, src GPReg) int {
	n := c.Append(makeRex(true, dst.hi(), 0, src.hi()))
	n += c.Append(opMR[op] + 2)
	n += emitIndirectReg(c, dst, src)
	return n
}
