package tpu

// execute dispatches a fetched instruction to its family's execute
// body, mirroring execution.rs's exhaustive match. The third parameter
// the original threads through (an unused wait_cycles value, bound to
// `_` at every call site) is dropped entirely here.
func execute(t *TPU, instr Instruction) ExecuteResult {
	switch instr.Op {

	// Stack (MMU)
	case OpPUSH:
		return opPush(t, instr.A)
	case OpPOP:
		reg, _ := instr.A.AsRegister()
		return opPop(t, reg)
	case OpPEEK:
		reg, _ := instr.A.AsRegister()
		return opPeek(t, reg, instr.B)
	case OpSCR:
		return opScr(t)
	case OpRSP:
		reg, _ := instr.A.AsRegister()
		return opRsp(t, reg)

	// Networking (I/O matrix)
	case OpXMIT:
		reg, _ := instr.A.AsRegister()
		return opXmit(t, reg, instr.B)
	case OpRECV:
		return opRecv(t)
	case OpTXBS:
		return opTxbs(t)
	case OpRXBS:
		return opRxbs(t)
	case OpWRX:
		return opWrx(t)

	// Arithmetic (ALU)
	case OpINC:
		reg, _ := instr.A.AsRegister()
		return opInc(t, reg)
	case OpDEC:
		reg, _ := instr.A.AsRegister()
		return opDec(t, reg)
	case OpADD:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opAdd(t, a, b)
	case OpSUB:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opSub(t, a, b)
	case OpMUL:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opMul(t, a, b)
	case OpDIV:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opDiv(t, a, b)
	case OpMOD:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opMod(t, a, b)
	case OpAND:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opAnd(t, a, b)
	case OpOR:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opOr(t, a, b)
	case OpXOR:
		a, _ := instr.A.AsRegister()
		b, _ := instr.B.AsRegister()
		return opXor(t, a, b)
	case OpNOT:
		reg, _ := instr.A.AsRegister()
		return opNot(t, reg)

	// Bitwise (ALU)
	case OpSLL:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opSll(t, target, source, instr.C)
	case OpSLC:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opSlc(t, target, source, instr.C)
	case OpSLR:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opSlr(t, target, source, instr.C)
	case OpSRC:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opSrc(t, target, source, instr.C)
	case OpROL:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opRol(t, target, source, instr.C)
	case OpROR:
		target, _ := instr.A.AsRegister()
		source, _ := instr.B.AsRegister()
		return opRor(t, target, source, instr.C)

	// Memory/register movement (MMU)
	case OpRCY:
		dst, _ := instr.A.AsRegister()
		src, _ := instr.B.AsRegister()
		return opRcy(t, dst, src)
	case OpRMV:
		dst, _ := instr.A.AsRegister()
		src, _ := instr.B.AsRegister()
		return opRmv(t, dst, src)
	case OpLDR:
		target, _ := instr.A.AsRegister()
		return opLdr(t, target, instr.B)
	case OpLDO:
		target, _ := instr.A.AsRegister()
		offset, _ := instr.C.AsRegister()
		return opLdo(t, target, instr.B, offset)
	case OpLDOI:
		target, _ := instr.A.AsRegister()
		offset, _ := instr.C.AsRegister()
		return opLdoi(t, target, instr.B, offset)
	case OpSTM:
		return opStm(t, instr.A, instr.B)
	case OpSTMO:
		offset, _ := instr.C.AsRegister()
		return opStmo(t, instr.A, instr.B, offset)
	case OpSMOI:
		offset, _ := instr.C.AsRegister()
		return opSmoi(t, instr.A, instr.B, offset)

	// Digital I/O
	case OpDPW:
		return opDpw(t, instr.A, instr.B)
	case OpDPR:
		target, _ := instr.A.AsRegister()
		return opDpr(t, target, instr.B)
	case OpDPWW:
		return opDpww(t, instr.A)
	case OpDPRW:
		target, _ := instr.A.AsRegister()
		return opDprw(t, target)

	// Analog I/O
	case OpAPW:
		return opApw(t, instr.A, instr.B)
	case OpAPR:
		target, _ := instr.A.AsRegister()
		return opApr(t, target, instr.B)

	// Misc
	case OpNOP:
		return opNop()
	case OpSLP:
		return opSlp()
	case OpHLT:
		return opHlt()

	// Branching - absolute
	case OpJMP:
		return opJmp(t, instr.A)
	case OpBEZ:
		reg, _ := instr.B.AsRegister()
		return opBez(t, instr.A, reg)
	case OpBNZ:
		reg, _ := instr.B.AsRegister()
		return opBnz(t, instr.A, reg)
	case OpBEQ:
		reg, _ := instr.B.AsRegister()
		return opBeq(t, instr.A, reg, instr.C)
	case OpBNE:
		reg, _ := instr.B.AsRegister()
		return opBne(t, instr.A, reg, instr.C)
	case OpBGE:
		reg, _ := instr.B.AsRegister()
		return opBge(t, instr.A, reg, instr.C)
	case OpBLE:
		reg, _ := instr.B.AsRegister()
		return opBle(t, instr.A, reg, instr.C)
	case OpBGT:
		reg, _ := instr.B.AsRegister()
		return opBgt(t, instr.A, reg, instr.C)
	case OpBLT:
		reg, _ := instr.B.AsRegister()
		return opBlt(t, instr.A, reg, instr.C)

	// Branching - relative
	case OpJPR:
		return opJpr(t, instr.A)
	case OpBREZ:
		reg, _ := instr.B.AsRegister()
		return opBrez(t, instr.A, reg)
	case OpBRNZ:
		reg, _ := instr.B.AsRegister()
		return opBrnz(t, instr.A, reg)
	case OpBREQ:
		reg, _ := instr.B.AsRegister()
		return opBreq(t, instr.A, reg, instr.C)
	case OpBRNE:
		reg, _ := instr.B.AsRegister()
		return opBrne(t, instr.A, reg, instr.C)
	case OpBRGE:
		reg, _ := instr.B.AsRegister()
		return opBrge(t, instr.A, reg, instr.C)
	case OpBRLE:
		reg, _ := instr.B.AsRegister()
		return opBrle(t, instr.A, reg, instr.C)
	case OpBRGT:
		reg, _ := instr.B.AsRegister()
		return opBrgt(t, instr.A, reg, instr.C)
	case OpBRLT:
		reg, _ := instr.B.AsRegister()
		return opBrlt(t, instr.A, reg, instr.C)

	// Subroutines
	case OpJSR:
		return opJsr(t, instr.A)
	case OpRTS:
		return opRts(t)

	default:
		return ResultHalt(HaltInvalidValue)
	}
}
