package x86_64

// emitIndirect writes the ModR/M byte (and any SIB or forced
// displacement byte) for the "[base]" addressing form with zero
// displacement, placing regOrExt in ModR/M.reg. This is the single
// most error-prone corner of x86 encoding: base&7==4 (RSP/R12)
// collides with the SIB-follows encoding, and base&7==5 (RBP/R13)
// collides with the disp32-no-base encoding, so both must be
// disambiguated explicitly rather than falling through to the plain
// case.
func emitIndirect(c *Code, regOrExt byte, base GPReg) int {
	switch base.low3() {
	case 4:
		return c.Append(
			makeModRM(ModeInd, regOrExt, 4),
			makeSIB(Scale1, 4, base.low3()),
		)
	case 5:
		return c.Append(
			makeModRM(ModeInd8, regOrExt, base.low3()),
			0x00,
		)
	default:
		return c.Append(makeModRM(ModeInd, regOrExt, base.low3()))
	}
}

// emitIndirectReg is emitIndirect for the common case where
// regOrExt comes from another general-purpose register rather than an
// opcode extension.
func emitIndirectReg(c *Code, reg GPReg, base GPReg) int {
	return emitIndirect(c, reg.low3(), base)
}
