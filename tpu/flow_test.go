package tpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tpuWithROMLen(n int) *TPU {
	rom := make([]Instruction, n)
	for i := range rom {
		rom[i] = Instruction{Op: OpNOP}
	}
	return NewBasic(rom)
}

func TestJmpToValidTarget(t *testing.T) {
	tpu := tpuWithROMLen(5)
	result := opJmp(tpu, Immediate(3))
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 3, tpu.ProgramCounter())
}

func TestJmpOutOfRangeHaltsAndLeavesPC(t *testing.T) {
	tpu := tpuWithROMLen(3)
	result := opJmp(tpu, Immediate(100))
	assert.Equal(t, ResultHalt(HaltInvalidPC), result)
	assert.Equal(t, 0, tpu.ProgramCounter())
}

func TestBezTakenAndNotTaken(t *testing.T) {
	tpu := tpuWithROMLen(5)
	tpu.WriteRegister(X, 0)
	result := opBez(tpu, Immediate(4), X)
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 4, tpu.ProgramCounter())

	tpu2 := tpuWithROMLen(5)
	tpu2.WriteRegister(X, 1)
	result = opBez(tpu2, Immediate(4), X)
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 1, tpu2.ProgramCounter(), "not taken still advances by one")
}

func TestJprIsForwardOnly(t *testing.T) {
	tpu := tpuWithROMLen(5)
	result := opJpr(tpu, Immediate(3))
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 3, tpu.ProgramCounter())
}

func TestJsrPushesReturnAddressOnlyOnSuccess(t *testing.T) {
	tpu := tpuWithROMLen(5)
	result := opJsr(tpu, Immediate(3))
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 3, tpu.ProgramCounter())
	assert.Equal(t, uint16(1), tpu.StackDepth())
	assert.Equal(t, uint16(0), tpu.StackSnapshot()[0])
}

func TestJsrToInvalidTargetDoesNotPush(t *testing.T) {
	tpu := tpuWithROMLen(3)
	result := opJsr(tpu, Immediate(100))
	assert.Equal(t, ResultHalt(HaltInvalidPC), result)
	assert.Equal(t, uint16(0), tpu.StackDepth())
}

func TestRtsOnEmptyStackSetsPCZeroSilently(t *testing.T) {
	tpu := tpuWithROMLen(5)
	tpu.programCounter = 2

	result := opRts(tpu)
	assert.Equal(t, ResultPCModified, result)
	assert.Equal(t, 0, tpu.ProgramCounter())
}

func TestJsrStackOverflowHalts(t *testing.T) {
	tpu := tpuWithROMLen(5)
	for i := 0; i < stackSize; i++ {
		tpu.push(0)
	}
	result := opJsr(tpu, Immediate(1))
	assert.Equal(t, ResultHalt(HaltStackOverflow), result)
}
