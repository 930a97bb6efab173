package tpu

// Stack and memory-movement execute bodies, grounded on tpu/mmu/mod.rs.
// op_str from that source has no live Instruction variant reaching it
// (dead even in the original) and is not ported.

func opPush(t *TPU, value Operand) ExecuteResult {
	if len(t.stack) >= stackSize {
		return ResultHalt(HaltStackOverflow)
	}
	t.push(t.getOperandValue(value))
	return ResultPCAdvance
}

func opPop(t *TPU, target RegId) ExecuteResult {
	t.WriteRegister(target, t.pop())
	return ResultPCAdvance
}

// opPeek halts only when the index strictly exceeds depth or
// capacity, matching "exceeds the current depth or capacity" exactly.
// That leaves index == depth as a permitted read one slot past the
// top; treat it like any other never-pushed slot and read 0, the same
// soft-failure convention POP/RAM already use, rather than indexing
// past the live portion of the backing slice.
func opPeek(t *TPU, target RegId, indexOperand Operand) ExecuteResult {
	index := int(t.getOperandValue(indexOperand))
	if index > stackSize || index > len(t.stack) {
		return ResultHalt(HaltIndexOutOfRange)
	}
	if index == len(t.stack) {
		t.WriteRegister(target, 0)
		return ResultPCAdvance
	}
	t.WriteRegister(target, t.stack[index])
	return ResultPCAdvance
}

func opScr(t *TPU) ExecuteResult {
	t.stack = t.stack[:0]
	return ResultPCAdvance
}

func opRsp(t *TPU, target RegId) ExecuteResult {
	t.WriteRegister(target, uint16(len(t.stack)))
	return ResultPCAdvance
}

func opRcy(t *TPU, dst, src RegId) ExecuteResult {
	t.WriteRegister(dst, t.ReadRegister(src))
	return ResultPCAdvance
}

func opRmv(t *TPU, dst, src RegId) ExecuteResult {
	t.WriteRegister(dst, t.ReadRegister(src))
	t.WriteRegister(src, 0)
	return ResultPCAdvance
}

func opLdr(t *TPU, target RegId, source Operand) ExecuteResult {
	t.WriteRegister(target, t.getOperandValue(source))
	return ResultPCAdvance
}

func opLdo(t *TPU, target RegId, source Operand, offset RegId) ExecuteResult {
	address := int(t.getOperandValue(source)) + int(t.ReadRegister(offset))
	t.WriteRegister(target, t.ReadRAM(address))
	return ResultPCAdvance
}

func opLdoi(t *TPU, target RegId, source Operand, offset RegId) ExecuteResult {
	result := opLdo(t, target, source, offset)
	t.WriteRegister(offset, t.ReadRegister(offset)+1)
	return result
}

func opStm(t *TPU, targetAddr Operand, source Operand) ExecuteResult {
	t.WriteRAM(int(t.getOperandValue(targetAddr)), t.getOperandValue(source))
	return ResultPCAdvance
}

func opStmo(t *TPU, targetAddr Operand, source Operand, offset RegId) ExecuteResult {
	address := int(t.getOperandValue(targetAddr)) + int(t.ReadRegister(offset))
	t.WriteRAM(address, t.getOperandValue(source))
	return ResultPCAdvance
}

func opSmoi(t *TPU, targetAddr Operand, source Operand, offset RegId) ExecuteResult {
	result := opStmo(t, targetAddr, source, offset)
	t.WriteRegister(offset, t.ReadRegister(offset)+1)
	return result
}
