package tpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError carries the 1-based line of the offending instruction and
// a column alongside a descriptive message, per spec.md §4.1/§7. The
// column is always reported as 1; the position within the line is not
// tracked.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func parseErr(line, col int, format string, args ...interface{}) error {
	return errors.WithStack(&ParseError{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
}

var commentPattern = regexp.MustCompile(`//.*`)

// instrShape pins, per opcode, how many operands it takes and which
// slots must be registers (the rest accept any value, including a
// register). Shape is a fixed property of the mnemonic — not derived
// from what kind of token happens to appear in a given line: the
// mnemonic is looked up first and its operands are validated against
// its shape afterwards.
type instrShape struct {
	arity    int
	regSlots [3]bool // true at index i means operand i must be a register
}

var instructionShapes = map[Opcode]instrShape{
	OpSCR:  {0, [3]bool{}},
	OpRECV: {0, [3]bool{}},
	OpTXBS: {0, [3]bool{}},
	OpRXBS: {0, [3]bool{}},
	OpWRX:  {0, [3]bool{}},
	OpNOP:  {0, [3]bool{}},
	OpHLT:  {0, [3]bool{}},
	OpRTS:  {0, [3]bool{}},

	OpPOP:  {1, [3]bool{true}},
	OpRSP:  {1, [3]bool{true}},
	OpNOT:  {1, [3]bool{true}},
	OpINC:  {1, [3]bool{true}},
	OpDEC:  {1, [3]bool{true}},
	OpDPRW: {1, [3]bool{true}},

	OpPUSH: {1, [3]bool{}},
	OpJMP:  {1, [3]bool{}},
	OpJPR:  {1, [3]bool{}},
	OpSLP:  {1, [3]bool{}},
	OpJSR:  {1, [3]bool{}},
	OpDPWW: {1, [3]bool{}},

	OpADD: {2, [3]bool{true, true}},
	OpSUB: {2, [3]bool{true, true}},
	OpMUL: {2, [3]bool{true, true}},
	OpDIV: {2, [3]bool{true, true}},
	OpMOD: {2, [3]bool{true, true}},
	OpAND: {2, [3]bool{true, true}},
	OpOR:  {2, [3]bool{true, true}},
	OpXOR: {2, [3]bool{true, true}},
	OpRCY: {2, [3]bool{true, true}},
	OpRMV: {2, [3]bool{true, true}},

	OpPEEK: {2, [3]bool{true, false}},
	OpXMIT: {2, [3]bool{true, false}},
	OpLDR:  {2, [3]bool{true, false}},
	OpDPR:  {2, [3]bool{true, false}},
	OpAPR:  {2, [3]bool{true, false}},

	OpBEZ:  {2, [3]bool{false, true}},
	OpBNZ:  {2, [3]bool{false, true}},
	OpBREZ: {2, [3]bool{false, true}},
	OpBRNZ: {2, [3]bool{false, true}},

	OpSTM: {2, [3]bool{}},
	OpDPW: {2, [3]bool{}},
	OpAPW: {2, [3]bool{}},

	OpSLL: {3, [3]bool{true, true, false}},
	OpSLC: {3, [3]bool{true, true, false}},
	OpSLR: {3, [3]bool{true, true, false}},
	OpSRC: {3, [3]bool{true, true, false}},
	OpROL: {3, [3]bool{true, true, false}},
	OpROR: {3, [3]bool{true, true, false}},

	OpBEQ:  {3, [3]bool{false, true, false}},
	OpBNE:  {3, [3]bool{false, true, false}},
	OpBGE:  {3, [3]bool{false, true, false}},
	OpBLE:  {3, [3]bool{false, true, false}},
	OpBGT:  {3, [3]bool{false, true, false}},
	OpBLT:  {3, [3]bool{false, true, false}},
	OpBREQ: {3, [3]bool{false, true, false}},
	OpBRNE: {3, [3]bool{false, true, false}},
	OpBRGE: {3, [3]bool{false, true, false}},
	OpBRLE: {3, [3]bool{false, true, false}},
	OpBRGT: {3, [3]bool{false, true, false}},
	OpBRLT: {3, [3]bool{false, true, false}},

	OpLDO:  {3, [3]bool{true, false, true}},
	OpLDOI: {3, [3]bool{true, false, true}},

	OpSTMO: {3, [3]bool{false, false, true}},
	OpSMOI: {3, [3]bool{false, false, true}},
}

// mnemonicToOpcode is the flat name table the tokenizer looks up after
// splitting a line; every legal mnemonic appears exactly once.
var mnemonicToOpcode = map[string]Opcode{
	"PUSH": OpPUSH, "POP": OpPOP, "PEEK": OpPEEK, "SCR": OpSCR, "RSP": OpRSP,
	"XMIT": OpXMIT, "RECV": OpRECV, "TXBS": OpTXBS, "RXBS": OpRXBS, "WRX": OpWRX,
	"ADD": OpADD, "SUB": OpSUB, "MUL": OpMUL, "DIV": OpDIV, "MOD": OpMOD,
	"AND": OpAND, "OR": OpOR, "XOR": OpXOR, "NOT": OpNOT, "INC": OpINC, "DEC": OpDEC,
	"SLL": OpSLL, "SLC": OpSLC, "SLR": OpSLR, "SRC": OpSRC, "ROL": OpROL, "ROR": OpROR,
	"RCY": OpRCY, "RMV": OpRMV, "LDR": OpLDR, "LDO": OpLDO, "LDOI": OpLDOI,
	"STM": OpSTM, "STMO": OpSTMO, "SMOI": OpSMOI,
	"DPW": OpDPW, "DPR": OpDPR, "DPWW": OpDPWW, "DPRW": OpDPRW,
	"APW": OpAPW, "APR": OpAPR,
	"NOP": OpNOP, "SLP": OpSLP, "HLT": OpHLT,
	"JMP": OpJMP, "BEZ": OpBEZ, "BNZ": OpBNZ,
	"BEQ": OpBEQ, "BNE": OpBNE, "BGE": OpBGE, "BLE": OpBLE, "BGT": OpBGT, "BLT": OpBLT,
	"JPR": OpJPR, "BREZ": OpBREZ, "BRNZ": OpBRNZ,
	"BREQ": OpBREQ, "BRNE": OpBRNE, "BRGE": OpBRGE, "BRLE": OpBRLE, "BRGT": OpBRGT, "BRLT": OpBRLT,
	"JSR": OpJSR, "RTS": OpRTS,
}

// ParseProgram turns RGAL source text into an ordered instruction
// stream. Blank lines and "//" comments are skipped.
func ParseProgram(source string) ([]Instruction, error) {
	var program []Instruction

	for lineNo, rawLine := range strings.Split(source, "\n") {
		line := commentPattern.ReplaceAllString(rawLine, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		instr, err := parseLine(line, lineNo+1)
		if err != nil {
			return nil, err
		}
		program = append(program, instr)
	}

	return program, nil
}

// ParseInstruction parses exactly one RGAL line, with no surrounding
// program context.
func ParseInstruction(line string) (Instruction, error) {
	line = strings.TrimSpace(commentPattern.ReplaceAllString(line, ""))
	if line == "" {
		return Instruction{}, parseErr(1, 1, "empty instruction")
	}
	return parseLine(line, 1)
}

func parseLine(line string, lineNo int) (Instruction, error) {
	mnemonicEnd := strings.IndexAny(line, " \t")
	var mnemonic, rest string
	if mnemonicEnd < 0 {
		mnemonic, rest = line, ""
	} else {
		mnemonic, rest = line[:mnemonicEnd], strings.TrimSpace(line[mnemonicEnd:])
	}
	mnemonic = strings.ToUpper(mnemonic)

	var operandTokens []string
	if rest != "" {
		for _, tok := range strings.Split(rest, ",") {
			operandTokens = append(operandTokens, strings.TrimSpace(tok))
		}
	}

	op, ok := mnemonicToOpcode[mnemonic]
	if !ok {
		return Instruction{}, parseErr(lineNo, 1, "%q is not a recognized mnemonic", mnemonic)
	}

	shape := instructionShapes[op]
	if len(operandTokens) != shape.arity {
		return Instruction{}, parseErr(lineNo, 1, "%q takes %d operand(s), got %d", mnemonic, shape.arity, len(operandTokens))
	}

	operands := make([]Operand, len(operandTokens))
	for i, tok := range operandTokens {
		o, err := parseOperand(tok, lineNo)
		if err != nil {
			return Instruction{}, err
		}
		if shape.regSlots[i] && o.Kind != KindRegister {
			return Instruction{}, parseErr(lineNo, 1, "%q operand %d must be a register, got %q", mnemonic, i+1, tok)
		}
		operands[i] = o
	}

	return buildInstruction(op, operands), nil
}

// buildInstruction packs validated operands into the three generic
// slots an Instruction carries; unused slots stay zero.
func buildInstruction(op Opcode, operands []Operand) Instruction {
	instr := Instruction{Op: op}
	if len(operands) > 0 {
		instr.A = operands[0]
	}
	if len(operands) > 1 {
		instr.B = operands[1]
	}
	if len(operands) > 2 {
		instr.C = operands[2]
	}
	return instr
}

func parseOperand(tok string, lineNo int) (Operand, error) {
	if tok == "" {
		return Operand{}, parseErr(lineNo, 1, "empty operand")
	}

	if r, ok := RegisterByName(strings.ToUpper(tok)); ok {
		return Register(r), nil
	}

	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err := strconv.ParseUint(tok[2:], 16, 16)
		if err != nil {
			return Operand{}, parseErr(lineNo, 1, "invalid hex literal %q: %s", tok, err)
		}
		return Immediate(uint16(v)), nil
	case strings.HasPrefix(tok, "0b") || strings.HasPrefix(tok, "0B"):
		v, err := strconv.ParseUint(tok[2:], 2, 16)
		if err != nil {
			return Operand{}, parseErr(lineNo, 1, "invalid binary literal %q: %s", tok, err)
		}
		return Immediate(uint16(v)), nil
	default:
		v, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return Operand{}, parseErr(lineNo, 1, "invalid operand %q: %s", tok, err)
		}
		return Immediate(uint16(v)), nil
	}
}
