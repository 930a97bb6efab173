package tpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstructionByShape(t *testing.T) {
	cases := []struct {
		source string
		want   Instruction
	}{
		{"HLT", Instruction{Op: OpHLT}},
		{"POP A", Instruction{Op: OpPOP, A: Register(A)}},
		{"PUSH 42", Instruction{Op: OpPUSH, A: Immediate(42)}},
		{"ADD A, X", Instruction{Op: OpADD, A: Register(A), B: Register(X)}},
		{"PEEK A, 0", Instruction{Op: OpPEEK, A: Register(A), B: Immediate(0)}},
		{"BEZ 7, A", Instruction{Op: OpBEZ, A: Immediate(7), B: Register(A)}},
		{"STM 10, 5", Instruction{Op: OpSTM, A: Immediate(10), B: Immediate(5)}},
		{"SLL X, X, 1", Instruction{Op: OpSLL, A: Register(X), B: Register(X), C: Immediate(1)}},
		{"BEQ 3, A, 0", Instruction{Op: OpBEQ, A: Immediate(3), B: Register(A), C: Immediate(0)}},
		{"LDO A, 0x10, X", Instruction{Op: OpLDO, A: Register(A), B: Immediate(0x10), C: Register(X)}},
		{"STMO 1, 2, X", Instruction{Op: OpSTMO, A: Immediate(1), B: Immediate(2), C: Register(X)}},
	}

	for _, c := range cases {
		got, err := ParseInstruction(c.source)
		require.NoError(t, err, c.source)
		assert.Equal(t, c.want, got, c.source)
	}
}

func TestParseInstructionWrongShapeFails(t *testing.T) {
	_, err := ParseInstruction("POP 5")
	assert.Error(t, err)

	_, err = ParseInstruction("ADD A")
	assert.Error(t, err)

	_, err = ParseInstruction("NOTAREALOP A")
	assert.Error(t, err)
}

func TestParseNumericLiterals(t *testing.T) {
	instr, err := ParseInstruction("PUSH 0xFF")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFF), instr.A.Imm)

	instr, err = ParseInstruction("PUSH 0b1010")
	require.NoError(t, err)
	assert.Equal(t, uint16(0b1010), instr.A.Imm)

	_, err = ParseInstruction("PUSH 99999")
	assert.Error(t, err, "out of range decimal literal must fail to parse")

	_, err = ParseInstruction("PUSH 0xFFFFF")
	assert.Error(t, err, "out of range hex literal must fail to parse")
}

func TestParseProgramSkipsCommentsAndBlankLines(t *testing.T) {
	src := `
		// a comment on its own line
		LDR X, 5  // trailing comment

		LDR Y, 3
		ADD X, Y
		HLT
	`
	program, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, program, 4)
	assert.Equal(t, OpLDR, program[0].Op)
	assert.Equal(t, OpHLT, program[3].Op)
}
