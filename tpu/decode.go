package tpu

// decode maps a fetched instruction to how long the engine must wait
// before running its body (spec.md §4.2). Every variant's cost is a
// fixed base plus one cycle per register-typed operand among the ones
// that matter for that opcode — the "operand-kind surcharge".
//
// decode takes the TPU only so SLP can read its operand's current
// value up front and fold the full sleep duration into Cycles; every
// other opcode ignores it. The original's decoder has no TPU access at
// all and instead lets SLP's execute body overwrite the wait counter —
// but that body runs on the same tick its own PCAdvance result clears
// the counter again, so the sleep never actually takes effect. Baking
// the value in here is the fix spec.md §9 calls out as acceptable; SLP's
// execute body is consequently a no-op (see misc.go).
func decode(t *TPU, instr Instruction) DecodeResult {
	switch instr.Op {

	// Stack (MMU)
	case OpPUSH:
		return DecodeResult{Cycles: checkOperandCost(instr.A) + 1}
	case OpPOP:
		return DecodeResult{Cycles: 2}
	case OpPEEK:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 1}
	case OpSCR:
		return DecodeResult{Cycles: 2}
	case OpRSP:
		return DecodeResult{Cycles: 1}

	// Networking (I/O matrix)
	case OpXMIT:
		return DecodeResult{Cycles: 10}
	case OpRECV:
		return DecodeResult{Cycles: 10}
	case OpTXBS:
		return DecodeResult{Cycles: 2}
	case OpRXBS:
		return DecodeResult{Cycles: 2}
	case OpWRX:
		return DecodeResult{Cycles: 65535, CallEveryCycle: true}

	// Arithmetic (ALU)
	case OpINC, OpDEC, OpADD, OpSUB:
		return DecodeResult{Cycles: 2}
	case OpMUL:
		return DecodeResult{Cycles: 4}
	case OpDIV, OpMOD:
		return DecodeResult{Cycles: 6}
	case OpAND, OpOR, OpXOR:
		return DecodeResult{Cycles: 3}
	case OpNOT:
		return DecodeResult{Cycles: 2}

	// Bitwise (ALU)
	case OpSLL, OpSLC, OpSLR, OpSRC, OpROL, OpROR:
		return DecodeResult{Cycles: checkOperandCost(instr.C) + 2}

	// Memory/register movement (MMU)
	case OpRCY:
		return DecodeResult{Cycles: 2}
	case OpRMV:
		return DecodeResult{Cycles: 3}
	case OpLDR:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 1}
	case OpLDO:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 2}
	case OpLDOI:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 3}
	case OpSTM:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 1}
	case OpSTMO:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 4}
	case OpSMOI:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 5}

	// Digital I/O
	case OpDPW:
		return DecodeResult{Cycles: checkOperandCost(instr.A, instr.B) + 4}
	case OpDPR:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 2}
	case OpDPWW:
		return DecodeResult{Cycles: checkOperandCost(instr.A) + 4}
	case OpDPRW:
		return DecodeResult{Cycles: 2}

	// Analog I/O
	case OpAPW:
		return DecodeResult{Cycles: checkOperandCost(instr.A, instr.B) + 4}
	case OpAPR:
		return DecodeResult{Cycles: checkOperandCost(instr.B) + 4}

	// Misc
	case OpNOP:
		return DecodeResult{Cycles: 1}
	case OpSLP:
		delay := checkOperandCost(instr.A) + t.getOperandValue(instr.A)
		return DecodeResult{Cycles: delay + 1}
	case OpHLT:
		return DecodeResult{Cycles: 1}

	// Branching - absolute
	case OpJMP:
		return DecodeResult{Cycles: checkOperandCost(instr.A) + 1, CallEveryCycle: true}
	case OpBEZ, OpBNZ, OpBEQ, OpBNE, OpBGE, OpBLE, OpBGT, OpBLT:
		return DecodeResult{Cycles: 3, CallEveryCycle: true}

	// Branching - relative
	case OpJPR:
		return DecodeResult{Cycles: checkOperandCost(instr.A) + 1, CallEveryCycle: true}
	case OpBREZ, OpBRNZ, OpBREQ, OpBRNE, OpBRGE, OpBRLE, OpBRGT, OpBRLT:
		return DecodeResult{Cycles: 3, CallEveryCycle: true}

	// Subroutines
	case OpJSR:
		return DecodeResult{Cycles: checkOperandCost(instr.A) + 4, CallEveryCycle: true}
	case OpRTS:
		return DecodeResult{Cycles: 2, CallEveryCycle: true}

	default:
		return DecodeResult{Cycles: 1}
	}
}
