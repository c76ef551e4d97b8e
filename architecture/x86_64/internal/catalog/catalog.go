// Package catalog is a declarative registry describing the opcode
// shape of a subset of the exported encoder operations, adapted from the
// Instruction/InstructionForm metadata the parent module's teacher
// keeps for its instruction tables. It is not on the runtime dispatch
// path — every encoder call in architecture/x86_64 is a direct
// function call — but it gives instruction shapes a name and a home
// for cross-checking against what the encoders actually emit.
package catalog

// Shape names the operand combination a Form encodes.
type Shape uint8

const (
	ShapeRegReg Shape = iota
	ShapeRegIndirect
	ShapeIndirectReg
	ShapeRegImm32
	ShapeIndirectImm32
	ShapeAccumImm32
	ShapeReg
	ShapeIndirect
	ShapeImm32
	ShapeNone
)

// Form describes one operand shape of an Instruction: the leading
// opcode byte(s), whether a REX.W is mandatory, and whether a ModR/M
// byte follows the opcode.
type Form struct {
	Shape     Shape
	Opcode    []byte
	RexW      bool
	HasModRM  bool
	ExtOrSize int // ModR/M.reg opcode-extension value, or -1 when not a group opcode
}

// Instruction is one mnemonic and the set of operand shapes it
// supports.
type Instruction struct {
	Mnemonic string
	Forms    []Form
}

// Registry catalogs a subset of the encoder operations exposed by
// architecture/x86_64, keyed by mnemonic. Operations such as OR, SUB,
// JMP, CALL and the shifts have no entry.
var Registry = map[string]Instruction{
	"ADD": {"ADD", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0x03}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegImm32, Opcode: []byte{0x81}, RexW: true, HasModRM: true, ExtOrSize: 0},
		{Shape: ShapeAccumImm32, Opcode: []byte{0x05}, RexW: true, HasModRM: false, ExtOrSize: -1},
	}},
	"MOV": {"MOV", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0x8B}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegIndirect, Opcode: []byte{0x8B}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeIndirectReg, Opcode: []byte{0x89}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeImm32, Opcode: []byte{0xB8}, RexW: true, HasModRM: false, ExtOrSize: -1},
		{Shape: ShapeIndirectImm32, Opcode: []byte{0xC7}, RexW: true, HasModRM: true, ExtOrSize: 0},
	}},
	"MUL": {"MUL", []Form{
		{Shape: ShapeReg, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 5},
		{Shape: ShapeIndirect, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 5},
	}},
	"IMUL": {"IMUL", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0x0F, 0xAF}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegImm32, Opcode: []byte{0x69}, RexW: true, HasModRM: true, ExtOrSize: -1},
	}},
	"DIV": {"DIV", []Form{
		{Shape: ShapeReg, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 7},
		{Shape: ShapeIndirect, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 7},
	}},
	"PUSH": {"PUSH", []Form{
		{Shape: ShapeReg, Opcode: []byte{0x50}, RexW: false, HasModRM: false, ExtOrSize: -1},
		{Shape: ShapeIndirect, Opcode: []byte{0xFF}, RexW: false, HasModRM: true, ExtOrSize: 6},
		{Shape: ShapeImm32, Opcode: []byte{0x68}, RexW: false, HasModRM: false, ExtOrSize: -1},
	}},
	"POP": {"POP", []Form{
		{Shape: ShapeReg, Opcode: []byte{0x58}, RexW: false, HasModRM: false, ExtOrSize: -1},
		{Shape: ShapeIndirect, Opcode: []byte{0x8F}, RexW: false, HasModRM: true, ExtOrSize: 0},
	}},
	"RET":     {"RET", []Form{{Shape: ShapeNone, Opcode: []byte{0xC3}, ExtOrSize: -1}}},
	"SYSCALL": {"SYSCALL", []Form{{Shape: ShapeNone, Opcode: []byte{0x0F, 0x05}, ExtOrSize: -1}}},
	"NOT":     {"NOT", []Form{{Shape: ShapeReg, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 2}}},
	"NEG":     {"NEG", []Form{{Shape: ShapeReg, Opcode: []byte{0xF7}, RexW: true, HasModRM: true, ExtOrSize: 3}}},
	"INC":     {"INC", []Form{{Shape: ShapeReg, Opcode: []byte{0xFF}, RexW: true, HasModRM: true, ExtOrSize: 0}}},
	"DEC":     {"DEC", []Form{{Shape: ShapeReg, Opcode: []byte{0xFF}, RexW: true, HasModRM: true, ExtOrSize: 1}}},
	"MOVSD": {"MOVSD", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0xF2, 0x0F, 0x10}, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegIndirect, Opcode: []byte{0xF2, 0x0F, 0x10}, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeIndirectReg, Opcode: []byte{0xF2, 0x0F, 0x11}, HasModRM: true, ExtOrSize: -1},
	}},
	"ADDSD": {"ADDSD", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0xF2, 0x0F, 0x58}, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegIndirect, Opcode: []byte{0xF2, 0x0F, 0x58}, HasModRM: true, ExtOrSize: -1},
	}},
	"CVTSI2SD": {"CVTSI2SD", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0xF2, 0x0F, 0x2A}, RexW: true, HasModRM: true, ExtOrSize: -1},
		{Shape: ShapeRegIndirect, Opcode: []byte{0xF2, 0x0F, 0x2A}, RexW: true, HasModRM: true, ExtOrSize: -1},
	}},
	"CVTSD2SI": {"CVTSD2SI", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0xF2, 0x0F, 0x2D}, RexW: true, HasModRM: true, ExtOrSize: -1},
	}},
	"COMISD": {"COMISD", []Form{
		{Shape: ShapeRegReg, Opcode: []byte{0x66, 0x0F, 0x2F}, HasModRM: true, ExtOrSize: -1},
	}},
	"NOP": {"NOP", []Form{{Shape: ShapeNone, ExtOrSize: -1}}},
}

// FirstOpcode returns the leading opcode byte(s) of the given
// mnemonic's shape, or nil if no matching form is registered.
func FirstOpcode(mnemonic string, shape Shape) []byte {
	ins, ok := Registry[mnemonic]
	if !ok {
		return nil
	}
	for _, f := range ins.Forms {
		if f.Shape == shape {
			return f.Opcode
		}
	}
	return nil
}
