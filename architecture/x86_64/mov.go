package x86_64

// MovRegReg emits "dst <- src": REX.W, 0x8B, ModR/M(DIR, dst, src).
func MovRegReg(c *Code, dst, src GPReg) int {
	n := c.Append(makeRex(true, dst.hi(), 0, src.hi()))
	n += c.Append(0x8B)
	n += c.Append(makeModRM(ModeDirect, dst.low3(), src.low3()))
	return n
}

// MovRegIndirect emits "dst <- [srcBase]": REX.W, 0x8B, indirect-emit.
func MovRegIndirect(c *Code, dst GPReg, srcBase GPReg) int {
	n := c.Append(makeRex(true, dst.hi(), 0, srcBase.hi()))
	n += c.Append(0x8B)
	n += emitIndirectReg(c, dst, srcBase)
	return n
}

// MovIndirectReg emits "[dstBase] <- src": REX.W, 0x89, indirect-emit.
func MovIndirectReg(c *Code, dstBase GPReg, src GPReg) int {
	n := c.Append(makeRex(true, src.hi(), 0, dstBase.hi()))
	n += c.Append(0x89)
	n += emitIndirectReg(c, src, dstBase)
	return n
}

// MovRegImm64 emits "reg <- imm64": REX.W with B=reg.hi, opcode
// 0xB8|(reg&7), then the 8 little-endian immediate bytes.
func MovRegImm64(c *Code, reg GPReg, imm int64) int {
	n := c.Append(makeRex(true, 0, 0, reg.hi()))
	n += c.Append(0xB8 | reg.low3())
	n += appendImm64(c, imm)
	return n
}

// MovIndirectImm32 emits "[dstBase] <- imm32": REX.W, 0xC7,
// indirect-emit(ext=0, dstBase), imm32. The returned count is computed
// directly as rex(1) + opcode(1) + indirectBytes + imm32(4) rather
// than by summing the original source's double-counted arithmetic.
func MovIndirectImm32(c *Code, dstBase GPReg, imm int32) int {
	c.Append(makeRex(true, 0, 0, dstBase.hi()))
	c.Append(0xC7)
	indirectBytes := emitIndirect(c, 0, dstBase)
	appendImm32(c, imm)
	return 1 + 1 + indirectBytes + 4
}
