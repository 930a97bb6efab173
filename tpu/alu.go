package tpu

// Arithmetic and bitwise execute bodies, grounded on tpu/alu/mod.rs.
// Every two-register form writes its result to A, the implicit
// accumulator; INC and DEC write back in place, and NOT writes A.

func opInc(t *TPU, r RegId) ExecuteResult {
	t.WriteRegister(r, t.ReadRegister(r)+1)
	return ResultPCAdvance
}

func opDec(t *TPU, r RegId) ExecuteResult {
	t.WriteRegister(r, t.ReadRegister(r)-1)
	return ResultPCAdvance
}

func opAdd(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)+t.ReadRegister(b))
	return ResultPCAdvance
}

func opSub(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)-t.ReadRegister(b))
	return ResultPCAdvance
}

// opMul implements true multiplication. The original source's op_mul
// is a verbatim copy of op_sub's body, never actually multiplying —
// this fixes that so MUL computes a*b, matching the decoder's 4-cycle
// cost already earmarked for a multiply.
func opMul(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)*t.ReadRegister(b))
	return ResultPCAdvance
}

func opDiv(t *TPU, a, b RegId) ExecuteResult {
	divisor := t.ReadRegister(b)
	if divisor == 0 {
		return ResultHalt(HaltDiv0)
	}
	t.WriteRegister(A, t.ReadRegister(a)/divisor)
	return ResultPCAdvance
}

func opMod(t *TPU, a, b RegId) ExecuteResult {
	divisor := t.ReadRegister(b)
	if divisor == 0 {
		return ResultHalt(HaltDiv0)
	}
	t.WriteRegister(A, t.ReadRegister(a)%divisor)
	return ResultPCAdvance
}

func opAnd(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)&t.ReadRegister(b))
	return ResultPCAdvance
}

func opOr(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)|t.ReadRegister(b))
	return ResultPCAdvance
}

func opXor(t *TPU, a, b RegId) ExecuteResult {
	t.WriteRegister(A, t.ReadRegister(a)^t.ReadRegister(b))
	return ResultPCAdvance
}

func opNot(t *TPU, r RegId) ExecuteResult {
	t.WriteRegister(A, ^t.ReadRegister(r))
	return ResultPCAdvance
}

// shiftCarryLeft and shiftCarryRight compute the bits a logical shift
// pushes off the end, for SLC/SRC's carry-into-A behavior. Callers
// always pass shift already reduced mod 16, so it is in [0,15].
func shiftCarryLeft(value, shift uint16) uint16 {
	if shift == 0 {
		return 0
	}
	return (value >> (16 - shift)) & ((1 << shift) - 1)
}

func shiftCarryRight(value, shift uint16) uint16 {
	if shift == 0 {
		return 0
	}
	return (value & ((1 << shift) - 1)) << (16 - shift)
}

// All four shift ops reduce their amount mod 16 before shifting, same
// as opRol/opRor below: spec.md defines SLL/SLR as target = source <<
// (n mod 16) (and SLC/SRC's target write identically), so an amount in
// [16,31] must behave like amount-16, not zero out the result.

func opSll(t *TPU, target, source RegId, shift Operand) ExecuteResult {
	value := t.ReadRegister(source)
	amount := t.getOperandValue(shift) % 16
	t.WriteRegister(target, value<<amount)
	return ResultPCAdvance
}

func opSlc(t *TPU, target, source RegId, shift Operand) ExecuteResult {
	value := t.ReadRegister(source)
	amount := t.getOperandValue(shift) % 16
	t.WriteRegister(target, value<<amount)
	t.WriteRegister(A, shiftCarryLeft(value, amount))
	return ResultPCAdvance
}

func opSlr(t *TPU, target, source RegId, shift Operand) ExecuteResult {
	value := t.ReadRegister(source)
	amount := t.getOperandValue(shift) % 16
	t.WriteRegister(target, value>>amount)
	return ResultPCAdvance
}

func opSrc(t *TPU, target, source RegId, shift Operand) ExecuteResult {
	value := t.ReadRegister(source)
	amount := t.getOperandValue(shift) % 16
	t.WriteRegister(target, value>>amount)
	t.WriteRegister(A, shiftCarryRight(value, amount))
	return ResultPCAdvance
}

// opRol and opRor rotate by amount % 16. The zero-rotate case is
// special-cased explicitly: Go defines a uint16 right-shifted by 16 as
// 0, not as the value itself, so the naive (value<<0)|(value>>16)
// formula the original's wrapping arithmetic tolerates would silently
// zero the result here if left unguarded.
func opRol(t *TPU, target, source RegId, rotateOperand Operand) ExecuteResult {
	value := t.ReadRegister(source)
	rotate := t.getOperandValue(rotateOperand) % 16
	var result uint16
	if rotate == 0 {
		result = value
	} else {
		result = (value << rotate) | (value >> (16 - rotate))
	}
	t.WriteRegister(target, result)
	return ResultPCAdvance
}

func opRor(t *TPU, target, source RegId, rotateOperand Operand) ExecuteResult {
	value := t.ReadRegister(source)
	rotate := t.getOperandValue(rotateOperand) % 16
	var result uint16
	if rotate == 0 {
		result = value
	} else {
		result = (value >> rotate) | (value << (16 - rotate))
	}
	t.WriteRegister(target, result)
	return ResultPCAdvance
}
