package x86_64

// nopTable holds the canonical single-instruction multi-byte NOP
// encodings, indexed by length 1..9. Entry 0 is unused.
var nopTable = [10][]byte{
	{},
	{0x90},
	{0x66, 0x90},
	{0x0F, 0x1F, 0x00},
	{0x0F, 0x1F, 0x40, 0x00},
	{0x0F, 0x1F, 0x44, 0x00, 0x00},
	{0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00},
	{0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00},
	{0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// Nop pads the buffer with n bytes of NOPs, composed from nopTable:
// repeatedly appends the 9-byte entry while n >= 9, then the entry at
// index n if n > 0. The returned count always equals n.
func Nop(c *Code, n int) int {
	written := 0
	for n >= 9 {
		written += c.Append(nopTable[9]...)
		n -= 9
	}
	if n > 0 {
		written += c.Append(nopTable[n]...)
	}
	return written
}
