package tpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopRoundTrip(t *testing.T) {
	tpu := newTestTPU()

	opPush(tpu, Immediate(42))
	opPush(tpu, Immediate(7))

	assert.Equal(t, uint16(2), tpu.StackDepth())

	opPop(tpu, X)
	opPop(tpu, Y)

	assert.Equal(t, uint16(7), tpu.ReadRegister(X))
	assert.Equal(t, uint16(42), tpu.ReadRegister(Y))
	assert.Equal(t, uint16(0), tpu.StackDepth())
}

func TestPopEmptyYieldsZero(t *testing.T) {
	tpu := newTestTPU()
	opPop(tpu, X)
	assert.Equal(t, uint16(0), tpu.ReadRegister(X))
}

func TestPushOverflowHaltsAndLeavesDepthUnchanged(t *testing.T) {
	tpu := newTestTPU()
	for i := 0; i < stackSize; i++ {
		result := opPush(tpu, Immediate(1))
		assert.Equal(t, ResultPCAdvance, result)
	}

	result := opPush(tpu, Immediate(1))
	assert.Equal(t, ResultHalt(HaltStackOverflow), result)
	assert.Equal(t, uint16(stackSize), tpu.StackDepth())
}

func TestPeekWithinDepth(t *testing.T) {
	tpu := newTestTPU()
	opPush(tpu, Immediate(10))
	opPush(tpu, Immediate(20))

	result := opPeek(tpu, X, Immediate(0))
	assert.Equal(t, ResultPCAdvance, result)
	assert.Equal(t, uint16(10), tpu.ReadRegister(X))
}

func TestPeekAtDepthReadsZeroWithoutHalting(t *testing.T) {
	tpu := newTestTPU()
	opPush(tpu, Immediate(10))

	result := opPeek(tpu, X, Immediate(1))
	assert.Equal(t, ResultPCAdvance, result)
	assert.Equal(t, uint16(0), tpu.ReadRegister(X))
}

func TestPeekBeyondDepthHalts(t *testing.T) {
	tpu := newTestTPU()
	opPush(tpu, Immediate(10))

	result := opPeek(tpu, X, Immediate(2))
	assert.Equal(t, ResultHalt(HaltIndexOutOfRange), result)
}

func TestScrClearsStack(t *testing.T) {
	tpu := newTestTPU()
	opPush(tpu, Immediate(1))
	opPush(tpu, Immediate(2))
	opScr(tpu)
	assert.Equal(t, uint16(0), tpu.StackDepth())
}

func TestRspWritesDepth(t *testing.T) {
	tpu := newTestTPU()
	opPush(tpu, Immediate(1))
	opPush(tpu, Immediate(2))
	opRsp(tpu, X)
	assert.Equal(t, uint16(2), tpu.ReadRegister(X))
}

func TestRmvZeroesSource(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 5)
	opRmv(tpu, Y, X)
	assert.Equal(t, uint16(5), tpu.ReadRegister(Y))
	assert.Equal(t, uint16(0), tpu.ReadRegister(X))
}

func TestLdoiIncrementsOffsetAfterLoad(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRAM(10, 0xAB)
	tpu.WriteRegister(R0, 0)

	opLdoi(tpu, X, Immediate(10), R0)

	assert.Equal(t, uint16(0xAB), tpu.ReadRegister(X))
	assert.Equal(t, uint16(1), tpu.ReadRegister(R0))
}

func TestSmoiIncrementsOffsetAfterStore(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(R0, 0)

	opSmoi(tpu, Immediate(10), Immediate(0xCD), R0)

	assert.Equal(t, uint16(0xCD), tpu.ReadRAM(10))
	assert.Equal(t, uint16(1), tpu.ReadRegister(R0))
}

func TestRAMOutOfRangeIsClampedNotFatal(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRAM(-1, 1)
	tpu.WriteRAM(ramSize, 1)
	assert.Equal(t, uint16(0), tpu.ReadRAM(-1))
	assert.Equal(t, uint16(0), tpu.ReadRAM(ramSize))
}
