package x86_64

// sdPrefix writes the shared scalar-double prefix block: mandatory
// 0xF2, an optional REX, then the 0x0F escape. Integer-conversion
// forms (CVTSI2SD, CVTSD2SI) pass forceW=true so a REX.W is always
// emitted even when neither operand uses the extended-register range;
// every other scalar-double form only emits a REX (W=0) when regHi or
// baseHi is set.
func sdPrefix(c *Code, forceW bool, regHi, baseHi byte) int {
	n := c.Append(0xF2)
	if forceW {
		n += c.Append(makeRex(true, regHi, 0, baseHi))
	} else if regHi != 0 || baseHi != 0 {
		n += c.Append(makeRex(false, regHi, 0, baseHi))
	}
	n += c.Append(0x0F)
	return n
}

// comisdPrefix writes COMISD's distinct prefix block: optional REX,
// then 0x66, then the 0x0F escape. No 0xF2.
func comisdPrefix(c *Code, regHi, baseHi byte) int {
	n := 0
	if regHi != 0 || baseHi != 0 {
		n += c.Append(makeRex(false, regHi, 0, baseHi))
	}
	n += c.Append(0x66)
	n += c.Append(0x0F)
	return n
}

func sdRegReg(c *Code, op sdOpcode, dst, src XmmReg) int {
	n := sdPrefix(c, false, dst.hi(), src.hi())
	n += c.Append(byte(op))
	n += c.Append(makeModRM(ModeDirect, dst.low3(), src.low3()))
	return n
}

func sdRegIndirect(c *Code, op sdOpcode, dst XmmReg, srcBase GPReg) int {
	n := sdPrefix(c, false, dst.hi(), srcBase.hi())
	n += c.Append(byte(op))
	n += emitIndirect(c, dst.low3(), srcBase)
	return n
}

// MovSD emits "dst <- src" (register/register scalar-double move).
func MovSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdMov, dst, src) }

// MovSDFromIndirect emits "dst <- [srcBase]".
func MovSDFromIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdMov, dst, srcBase)
}

// MovSDToIndirect emits "[dstBase] <- src", the store form (opcode
// 0x11): the roles of the ModR/M.reg and base fields are the mirror of
// the load form.
func MovSDToIndirect(c *Code, dstBase GPReg, src XmmReg) int {
	n := sdPrefix(c, false, src.hi(), dstBase.hi())
	n += c.Append(byte(sdMovR))
	n += emitIndirect(c, src.low3(), dstBase)
	return n
}

// AddSD emits "dst += src" (register/register).
func AddSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdAdd, dst, src) }

// AddSDIndirect emits "dst += [srcBase]".
func AddSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdAdd, dst, srcBase)
}

// SubSD emits "dst -= src" (register/register).
func SubSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdSub, dst, src) }

// SubSDIndirect emits "dst -= [srcBase]".
func SubSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdSub, dst, srcBase)
}

// MulSD emits "dst *= src" (register/register).
func MulSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdMul, dst, src) }

// MulSDIndirect emits "dst *= [srcBase]".
func MulSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdMul, dst, srcBase)
}

// DivSD emits "dst /= src" (register/register).
func DivSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdDiv, dst, src) }

// DivSDIndirect emits "dst /= [srcBase]".
func DivSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdDiv, dst, srcBase)
}

// SqrtSD emits "dst <- sqrt(src)" (register/register).
func SqrtSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdSqrt, dst, src) }

// SqrtSDIndirect emits "dst <- sqrt([srcBase])".
func SqrtSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdSqrt, dst, srcBase)
}

// MaxSD emits "dst <- max(dst, src)" (register/register).
func MaxSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdMax, dst, src) }

// MaxSDIndirect emits "dst <- max(dst, [srcBase])".
func MaxSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdMax, dst, srcBase)
}

// MinSD emits "dst <- min(dst, src)" (register/register).
func MinSD(c *Code, dst, src XmmReg) int { return sdRegReg(c, sdMin, dst, src) }

// MinSDIndirect emits "dst <- min(dst, [srcBase])".
func MinSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	return sdRegIndirect(c, sdMin, dst, srcBase)
}

// CmpSD emits the register/register scalar-double compare, with a
// trailing imm8 predicate byte.
func CmpSD(c *Code, dst, src XmmReg, predicate SDcmp) int {
	n := sdRegReg(c, sdCmp, dst, src)
	n += c.Append(byte(predicate))
	return n
}

// CmpSDIndirect emits the register/memory scalar-double compare, with
// a trailing imm8 predicate byte.
func CmpSDIndirect(c *Code, dst XmmReg, srcBase GPReg, predicate SDcmp) int {
	n := sdRegIndirect(c, sdCmp, dst, srcBase)
	n += c.Append(byte(predicate))
	return n
}

// ComiSD emits the register/register scalar-double compare that sets
// EFLAGS rather than producing a result register (its own prefix:
// optional REX, 0x66, 0x0F, 0x2F; no 0xF2, no trailing imm8).
func ComiSD(c *Code, dst, src XmmReg) int {
	n := comisdPrefix(c, dst.hi(), src.hi())
	n += c.Append(byte(sdComi))
	n += c.Append(makeModRM(ModeDirect, dst.low3(), src.low3()))
	return n
}

// ComiSDIndirect emits the register/memory form of ComiSD.
func ComiSDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	n := comisdPrefix(c, dst.hi(), srcBase.hi())
	n += c.Append(byte(sdComi))
	n += emitIndirect(c, dst.low3(), srcBase)
	return n
}

// CvtSI2SD emits "dst <- (double)src", converting a 64-bit integer
// register into a scalar double. REX.W is always emitted (forceW),
// resolving the asymmetry in the source this module was distilled
// from: both this form and CvtSI2SDIndirect force REX.W regardless of
// whether either operand uses the extended-register range.
func CvtSI2SD(c *Code, dst XmmReg, src GPReg) int {
	srcX := gpAsXmm(src)
	n := sdPrefix(c, true, dst.hi(), srcX.hi())
	n += c.Append(byte(sdCvt2SD))
	n += c.Append(makeModRM(ModeDirect, dst.low3(), srcX.low3()))
	return n
}

// CvtSI2SDIndirect emits "dst <- (double)*(int64*)srcBase".
func CvtSI2SDIndirect(c *Code, dst XmmReg, srcBase GPReg) int {
	n := sdPrefix(c, true, dst.hi(), srcBase.hi())
	n += c.Append(byte(sdCvt2SD))
	n += emitIndirect(c, dst.low3(), srcBase)
	return n
}

// CvtSD2SI emits "dst <- (int64)src", converting a scalar double into
// a 64-bit integer register. REX.W is always emitted.
func CvtSD2SI(c *Code, dst GPReg, src XmmReg) int {
	dstX := gpAsXmm(dst)
	n := sdPrefix(c, true, dstX.hi(), src.hi())
	n += c.Append(byte(sdCvt2SI))
	n += c.Append(makeModRM(ModeDirect, dstX.low3(), src.low3()))
	return n
}

// CvtSD2SIIndirect emits "dst <- (int64)*(double*)srcBase".
func CvtSD2SIIndirect(c *Code, dst GPReg, srcBase GPReg) int {
	dstX := gpAsXmm(dst)
	n := sdPrefix(c, true, dstX.hi(), srcBase.hi())
	n += c.Append(byte(sdCvt2SI))
	n += emitIndirect(c, dstX.low3(), srcBase)
	return n
}
