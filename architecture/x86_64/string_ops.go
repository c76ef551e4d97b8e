package x86_64

// MovS emits the byte-form string-move instruction 0xA4. Named MovS,
// not MovSD, to keep it distinct from the scalar-double MOVSD the
// mnemonic collides with in some assemblers.
func MovS(c *Code) int {
	return c.Append(0xA4)
}

// Rep emits the REP prefix byte 0xF3, intended to precede MovS.
func Rep(c *Code) int {
	return c.Append(0xF3)
}
