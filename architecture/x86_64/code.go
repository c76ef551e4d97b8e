package x86_64

// Code is a growable ordered byte sequence. It is the only mutable
// state any encoder function touches: callers own it, construct it
// with NewCode (or take the address of a zero Code value, which is
// equally empty), and pass it by reference into each encoder call.
//
// Concurrent calls against distinct Code values are safe; concurrent
// calls against the same Code value are not and must be serialized by
// the caller.
type Code struct {
	bytes []byte
}

// NewCode returns an empty Code ready for appending.
func NewCode() *Code {
	return &Code{}
}

// Bytes returns the accumulated byte sequence. The returned slice
// aliases Code's backing array; callers that need an independent copy
// should clone it.
func (c *Code) Bytes() []byte {
	return c.bytes
}

// Len reports the number of bytes appended so far.
func (c *Code) Len() int {
	return len(c.bytes)
}

// Append adds bs to the end of the sequence and returns how many bytes
// were appended, matching the encoder convention that every emitter
// returns its own byte count.
func (c *Code) Append(bs ...byte) int {
	c.bytes = append(c.bytes, bs...)
	return len(bs)
}
