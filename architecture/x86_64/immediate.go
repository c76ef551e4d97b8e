package x86_64

// imm32Bytes returns the little-endian four-byte encoding of a signed
// 32-bit immediate, via its two's-complement bit pattern.
func imm32Bytes(v int32) [4]byte {
	u := uint32(v)
	return [4]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}

// imm64Bytes returns the little-endian eight-byte encoding of a signed
// 64-bit immediate.
func imm64Bytes(v int64) [8]byte {
	u := uint64(v)
	return [8]byte{
		byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24),
		byte(u >> 32), byte(u >> 40), byte(u >> 48), byte(u >> 56),
	}
}

func appendImm32(c *Code, v int32) int {
	b := imm32Bytes(v)
	return c.Append(b[:]...)
}

func appendImm64(c *Code, v int64) int {
	b := imm64Bytes(v)
	return c.Append(b[:]...)
}

func appendImm8(c *Code, v int8) int {
	return c.Append(byte(v))
}
