package tpu

import "fmt"

// RegId names one of the ten 16-bit registers. A is the implicit
// accumulator for arithmetic and logic results.
type RegId uint8

const (
	A RegId = iota
	X
	Y
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	numRegisters
)

var regNames = [numRegisters]string{"A", "X", "Y", "R0", "R1", "R2", "R3", "R4", "R5", "R6"}

func (r RegId) String() string {
	if int(r) >= len(regNames) {
		return fmt.Sprintf("REG(%d)", uint8(r))
	}
	return regNames[r]
}

var regByName = map[string]RegId{
	"A": A, "X": X, "Y": Y,
	"R0": R0, "R1": R1, "R2": R2, "R3": R3, "R4": R4, "R5": R5, "R6": R6,
}

// RegisterByName resolves a register mnemonic to its RegId.
func RegisterByName(name string) (RegId, bool) {
	r, ok := regByName[name]
	return r, ok
}

// DigitalPin names one of the eight boolean I/O lines.
type DigitalPin uint8

// NumDigitalPins is the fixed digital pin count of the ISA.
const NumDigitalPins = 8

const numDigitalPins = NumDigitalPins

// DigitalPinFromIndex validates a runtime pin index.
func DigitalPinFromIndex(i uint16) (DigitalPin, bool) {
	if i >= numDigitalPins {
		return 0, false
	}
	return DigitalPin(i), true
}

// AnalogPin names one of the four 16-bit analog channels.
type AnalogPin uint8

// NumAnalogPins is the fixed analog pin count of the ISA.
const NumAnalogPins = 4

const numAnalogPins = NumAnalogPins

// AnalogPinFromIndex validates a runtime pin index.
func AnalogPinFromIndex(i uint16) (AnalogPin, bool) {
	if i >= numAnalogPins {
		return 0, false
	}
	return AnalogPin(i), true
}

// OperandKind distinguishes the two forms an "any" operand can take.
type OperandKind uint8

const (
	KindImmediate OperandKind = iota
	KindRegister
)

// Operand is the any-value sum type: an immediate 16-bit literal or a
// register reference. Register-only instruction slots also use this
// type, with the parser guaranteeing Kind == KindRegister for them —
// see Instruction below.
type Operand struct {
	Kind OperandKind
	Imm  uint16
	Reg  RegId
}

// Immediate builds an Operand carrying a literal value.
func Immediate(v uint16) Operand { return Operand{Kind: KindImmediate, Imm: v} }

// Register builds an Operand referencing a register.
func Register(r RegId) Operand { return Operand{Kind: KindRegister, Reg: r} }

// AsRegister reports whether this operand is a register reference.
func (o Operand) AsRegister() (RegId, bool) {
	if o.Kind != KindRegister {
		return 0, false
	}
	return o.Reg, true
}

func (o Operand) String() string {
	if o.Kind == KindRegister {
		return o.Reg.String()
	}
	return fmt.Sprintf("%d", o.Imm)
}

// Opcode is the instruction mnemonic. The arity and operand shape for a
// given Opcode is fixed and documented in the parser's per-shape tables;
// unlike the original Rust enum, Go has no tagged union, so Instruction
// below carries three generic Operand slots and each Opcode's execute/
// decode body only reads the slots its shape defines.
type Opcode uint8

const (
	OpPUSH Opcode = iota
	OpPOP
	OpPEEK
	OpSCR
	OpRSP

	OpXMIT
	OpRECV
	OpTXBS
	OpRXBS
	OpWRX

	OpADD
	OpSUB
	OpMUL
	OpDIV
	OpMOD
	OpAND
	OpOR
	OpXOR
	OpNOT
	OpINC
	OpDEC

	OpSLL
	OpSLC
	OpSLR
	OpSRC
	OpROL
	OpROR

	OpRCY
	OpRMV
	OpLDR
	OpLDO
	OpLDOI
	OpSTM
	OpSTMO
	OpSMOI

	OpDPW
	OpDPR
	OpDPWW
	OpDPRW

	OpAPW
	OpAPR

	OpNOP
	OpSLP
	OpHLT

	OpJMP
	OpBEZ
	OpBNZ
	OpBEQ
	OpBNE
	OpBGE
	OpBLE
	OpBGT
	OpBLT

	OpJPR
	OpBREZ
	OpBRNZ
	OpBREQ
	OpBRNE
	OpBRGE
	OpBRLE
	OpBRGT
	OpBRLT

	OpJSR
	OpRTS

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpPUSH: "PUSH", OpPOP: "POP", OpPEEK: "PEEK", OpSCR: "SCR", OpRSP: "RSP",
	OpXMIT: "XMIT", OpRECV: "RECV", OpTXBS: "TXBS", OpRXBS: "RXBS", OpWRX: "WRX",
	OpADD: "ADD", OpSUB: "SUB", OpMUL: "MUL", OpDIV: "DIV", OpMOD: "MOD",
	OpAND: "AND", OpOR: "OR", OpXOR: "XOR", OpNOT: "NOT", OpINC: "INC", OpDEC: "DEC",
	OpSLL: "SLL", OpSLC: "SLC", OpSLR: "SLR", OpSRC: "SRC", OpROL: "ROL", OpROR: "ROR",
	OpRCY: "RCY", OpRMV: "RMV", OpLDR: "LDR", OpLDO: "LDO", OpLDOI: "LDOI",
	OpSTM: "STM", OpSTMO: "STMO", OpSMOI: "SMOI",
	OpDPW: "DPW", OpDPR: "DPR", OpDPWW: "DPWW", OpDPRW: "DPRW",
	OpAPW: "APW", OpAPR: "APR",
	OpNOP: "NOP", OpSLP: "SLP", OpHLT: "HLT",
	OpJMP: "JMP", OpBEZ: "BEZ", OpBNZ: "BNZ",
	OpBEQ: "BEQ", OpBNE: "BNE", OpBGE: "BGE", OpBLE: "BLE", OpBGT: "BGT", OpBLT: "BLT",
	OpJPR: "JPR", OpBREZ: "BREZ", OpBRNZ: "BRNZ",
	OpBREQ: "BREQ", OpBRNE: "BRNE", OpBRGE: "BRGE", OpBRLE: "BRLE", OpBRGT: "BRGT", OpBRLT: "BRLT",
	OpJSR: "JSR", OpRTS: "RTS",
}

func (op Opcode) String() string {
	if int(op) >= len(opcodeNames) {
		return fmt.Sprintf("OP(%d)", uint8(op))
	}
	return opcodeNames[op]
}

// Instruction is a decoded program word: an opcode plus up to three
// operand slots. Which slots are populated, and whether each is
// register-only or any-value, is fixed per Opcode and enforced by the
// parser's shape tables (4.1) — the decoder and executor switch
// exhaustively on Op and read only the slots that opcode defines.
type Instruction struct {
	Op Opcode
	A  Operand
	B  Operand
	C  Operand
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %s", i.Op, i.operandString())
}

func (i Instruction) operandString() string {
	shape := instructionShapes[i.Op]
	switch shape.arity {
	case 0:
		return ""
	case 1:
		return i.A.String()
	case 2:
		return i.A.String() + ", " + i.B.String()
	default:
		return i.A.String() + ", " + i.B.String() + ", " + i.C.String()
	}
}

// NetPacket is one point-to-point message on a TPU's packet network.
type NetPacket struct {
	Sender uint16
	Target uint16
	Data   uint16
}

// DecodeResult is what the decoder returns for a fetched instruction:
// how many cycles must elapse before the body runs, and whether the
// body should be re-invoked on every intervening tick.
type DecodeResult struct {
	Cycles         uint16
	CallEveryCycle bool
}

// HaltReason names why a TPU stopped executing.
type HaltReason uint8

const (
	HaltNone HaltReason = iota
	HaltDiv0
	HaltHLTOpcode
	HaltInvalidPC
	HaltInvalidValue
	HaltStackOverflow
	HaltIndexOutOfRange
)

func (h HaltReason) String() string {
	switch h {
	case HaltNone:
		return "none"
	case HaltDiv0:
		return "Div0"
	case HaltHLTOpcode:
		return "HLTOpcode"
	case HaltInvalidPC:
		return "InvalidPC"
	case HaltInvalidValue:
		return "InvalidValue"
	case HaltStackOverflow:
		return "StackOverflow"
	case HaltIndexOutOfRange:
		return "IndexOutOfRange"
	default:
		return "unknown"
	}
}

// ExecuteOutcomeKind tags the result an execute body returns: exactly
// one of the four cases below. Go has no sum type, so the zero value
// (PCAdvance) is the common case and Reason is only meaningful when
// Kind == ExecHalt.
type ExecuteOutcomeKind uint8

const (
	ExecPCAdvance ExecuteOutcomeKind = iota
	ExecPCModified
	ExecNoPCAdvance
	ExecHalt
)

type ExecuteResult struct {
	Kind   ExecuteOutcomeKind
	Reason HaltReason
}

var (
	ResultPCAdvance   = ExecuteResult{Kind: ExecPCAdvance}
	ResultPCModified  = ExecuteResult{Kind: ExecPCModified}
	ResultNoPCAdvance = ExecuteResult{Kind: ExecNoPCAdvance}
)

// ResultHalt builds a Halt outcome carrying reason.
func ResultHalt(reason HaltReason) ExecuteResult {
	return ExecuteResult{Kind: ExecHalt, Reason: reason}
}
