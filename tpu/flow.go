package tpu

// Branching and subroutine execute bodies, grounded on tpu/flow/mod.rs.
// Every branch funnels through setProgramCounterConditionally so a
// branch not taken and a branch taken-but-out-of-range are both
// handled by one bounds check.

func opJmp(t *TPU, address Operand) ExecuteResult {
	return setProgramCounterConditionally(t, true, int(t.getOperandValue(address)))
}

func opBez(t *TPU, value Operand, source RegId) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) == 0, int(t.getOperandValue(value)))
}

func opBnz(t *TPU, value Operand, source RegId) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) != 0, int(t.getOperandValue(value)))
}

func opBeq(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) == t.getOperandValue(value), int(t.getOperandValue(address)))
}

func opBne(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) != t.getOperandValue(value), int(t.getOperandValue(address)))
}

func opBge(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) >= t.getOperandValue(value), int(t.getOperandValue(address)))
}

func opBle(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) <= t.getOperandValue(value), int(t.getOperandValue(address)))
}

func opBgt(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) > t.getOperandValue(value), int(t.getOperandValue(address)))
}

func opBlt(t *TPU, address Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) < t.getOperandValue(value), int(t.getOperandValue(address)))
}

// Relative forms: the landing address is PC + offset, always forward
// since offsets are unsigned operand values.

func opJpr(t *TPU, offset Operand) ExecuteResult {
	return setProgramCounterConditionally(t, true, t.programCounter+int(t.getOperandValue(offset)))
}

func opBrez(t *TPU, offset Operand, source RegId) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) == 0, t.programCounter+int(t.getOperandValue(offset)))
}

func opBrnz(t *TPU, offset Operand, source RegId) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) != 0, t.programCounter+int(t.getOperandValue(offset)))
}

func opBreq(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) == t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

func opBrne(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) != t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

func opBrge(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) >= t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

func opBrle(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) <= t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

func opBrgt(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) > t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

func opBrlt(t *TPU, offset Operand, source RegId, value Operand) ExecuteResult {
	return setProgramCounterConditionally(t, t.ReadRegister(source) < t.getOperandValue(value), t.programCounter+int(t.getOperandValue(offset)))
}

// opJsr pushes its own address only once the jump target has
// already been validated, never before and never on an invalid
// target — matching the original's push-after-PCModified ordering.
func opJsr(t *TPU, address Operand) ExecuteResult {
	if len(t.stack) >= stackSize {
		return ResultHalt(HaltStackOverflow)
	}
	returnPC := t.programCounter
	result := setProgramCounterConditionally(t, true, int(t.getOperandValue(address)))
	if result.Kind == ExecPCModified {
		t.push(uint16(returnPC))
	}
	return result
}

// opRts pops the address JSR pushed (the JSR's own address) and resumes
// at the instruction after it. An empty stack sends PC to 0 instead,
// which is still routed through the normal bounds check — valid
// whenever ROM has at least one instruction, so this never halts in
// practice.
func opRts(t *TPU) ExecuteResult {
	if len(t.stack) == 0 {
		return setProgramCounterConditionally(t, true, 0)
	}
	address := int(t.pop()) + 1
	return setProgramCounterConditionally(t, true, address)
}
