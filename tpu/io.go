package tpu

// Digital/analog pin and packet-network execute bodies, grounded on
// tpu/io_matrix/mod.rs.

func opDpw(t *TPU, pinOperand, value Operand) ExecuteResult {
	pin, ok := DigitalPinFromIndex(t.getOperandValue(pinOperand))
	if !ok {
		return ResultHalt(HaltIndexOutOfRange)
	}
	t.setDigitalPin(pin, t.getOperandValue(value) != 0)
	return ResultPCAdvance
}

func opDpr(t *TPU, target RegId, pinOperand Operand) ExecuteResult {
	pin, ok := DigitalPinFromIndex(t.getOperandValue(pinOperand))
	if !ok {
		return ResultHalt(HaltIndexOutOfRange)
	}
	var v uint16
	if t.getDigitalPin(pin) {
		v = 1
	}
	t.WriteRegister(target, v)
	return ResultPCAdvance
}

func opApw(t *TPU, pinOperand, value Operand) ExecuteResult {
	pin, ok := AnalogPinFromIndex(t.getOperandValue(pinOperand))
	if !ok {
		return ResultHalt(HaltIndexOutOfRange)
	}
	t.setAnalogPin(pin, t.getOperandValue(value))
	return ResultPCAdvance
}

func opApr(t *TPU, target RegId, pinOperand Operand) ExecuteResult {
	pin, ok := AnalogPinFromIndex(t.getOperandValue(pinOperand))
	if !ok {
		return ResultHalt(HaltIndexOutOfRange)
	}
	t.WriteRegister(target, t.getAnalogPin(pin))
	return ResultPCAdvance
}

func opDpww(t *TPU, bitmask Operand) ExecuteResult {
	t.setDigitalPins(t.getOperandValue(bitmask))
	return ResultPCAdvance
}

func opDprw(t *TPU, target RegId) ExecuteResult {
	t.WriteRegister(target, t.getDigitalPins())
	return ResultPCAdvance
}

// opXmit silently drops the packet when the outgoing queue is already
// at capacity — no halt, no flag, per the original.
func opXmit(t *TPU, target RegId, data Operand) ExecuteResult {
	if len(t.outgoing) < netBufSize {
		t.sendPacket(t.ReadRegister(target), t.getOperandValue(data))
	}
	return ResultPCAdvance
}

// opRecv always writes sender into X and data into Y, even for an
// empty queue (receivePacket returns the zero packet in that case).
func opRecv(t *TPU) ExecuteResult {
	p := t.receivePacket()
	t.WriteRegister(X, p.Sender)
	t.WriteRegister(Y, p.Data)
	return ResultPCAdvance
}

// opTxbs and opRxbs always report into X regardless of any operand —
// these are 0-operand instructions by shape.
func opTxbs(t *TPU) ExecuteResult {
	t.WriteRegister(X, uint16(len(t.outgoing)))
	return ResultPCAdvance
}

func opRxbs(t *TPU) ExecuteResult {
	t.WriteRegister(X, uint16(len(t.incoming)))
	return ResultPCAdvance
}
