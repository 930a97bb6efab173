package tpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTPU() *TPU {
	return NewBasic(nil)
}

func TestArithmeticWritesAccumulator(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 5)
	tpu.WriteRegister(Y, 3)

	opAdd(tpu, X, Y)
	assert.Equal(t, uint16(8), tpu.ReadRegister(A))

	opSub(tpu, X, Y)
	assert.Equal(t, uint16(2), tpu.ReadRegister(A))

	opMul(tpu, X, Y)
	assert.Equal(t, uint16(15), tpu.ReadRegister(A))
}

func TestAddWrapsOnOverflow(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0xFFFF)
	tpu.WriteRegister(Y, 2)

	opAdd(tpu, X, Y)
	assert.Equal(t, uint16(1), tpu.ReadRegister(A))
}

func TestDivByZeroHaltsAndLeavesAUnchanged(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(A, 77)
	tpu.WriteRegister(X, 10)
	tpu.WriteRegister(Y, 0)

	result := opDiv(tpu, X, Y)
	assert.Equal(t, ResultHalt(HaltDiv0), result)
	assert.Equal(t, uint16(77), tpu.ReadRegister(A))
}

func TestModByZeroHalts(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 10)
	tpu.WriteRegister(Y, 0)

	result := opMod(tpu, X, Y)
	assert.Equal(t, ResultHalt(HaltDiv0), result)
}

func TestRolEqualsRorByComplementaryAmount(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0x5555)

	for n := uint16(1); n < 16; n++ {
		opRol(tpu, R0, X, Immediate(n))
		opRor(tpu, R1, X, Immediate(16-n))
		assert.Equal(t, tpu.ReadRegister(R0), tpu.ReadRegister(R1), "n=%d", n)
	}
}

func TestRolByZeroIsIdentity(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0xABCD)

	opRol(tpu, R0, X, Immediate(0))
	assert.Equal(t, uint16(0xABCD), tpu.ReadRegister(R0))

	opRor(tpu, R1, X, Immediate(0))
	assert.Equal(t, uint16(0xABCD), tpu.ReadRegister(R1))
}

func TestSlcCarriesShiftedOutBits(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0xF000)

	opSlc(tpu, R0, X, Immediate(4))
	assert.Equal(t, uint16(0x0000), tpu.ReadRegister(R0))
	assert.Equal(t, uint16(0x000F), tpu.ReadRegister(A))
}

func TestSrcCarriesShiftedOutBits(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0x000F)

	opSrc(tpu, R0, X, Immediate(4))
	assert.Equal(t, uint16(0x0000), tpu.ReadRegister(R0))
	assert.Equal(t, uint16(0xF000), tpu.ReadRegister(A))
}

func TestShiftAmountWrapsModulo16(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0x0001)

	opSll(tpu, R0, X, Immediate(17))
	assert.Equal(t, uint16(0x0002), tpu.ReadRegister(R0), "SLL by 17 must equal SLL by 1")

	tpu.WriteRegister(X, 0x8000)
	opSlr(tpu, R0, X, Immediate(20))
	assert.Equal(t, uint16(0x8000)>>4, tpu.ReadRegister(R0), "SLR by 20 must equal SLR by 4")

	tpu.WriteRegister(X, 0xF000)
	opSlc(tpu, R0, X, Immediate(20))
	assert.Equal(t, uint16(0x0000), tpu.ReadRegister(R0))
	assert.Equal(t, uint16(0x000F), tpu.ReadRegister(A), "SLC by 20 must carry the same bits as SLC by 4")

	tpu.WriteRegister(X, 0x000F)
	opSrc(tpu, R0, X, Immediate(20))
	assert.Equal(t, uint16(0x000F)>>4, tpu.ReadRegister(R0))
	assert.Equal(t, uint16(0xF000), tpu.ReadRegister(A), "SRC by 20 must carry the same bits as SRC by 4")
}

func TestNotComplementsIntoAccumulator(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0x0000)

	opNot(tpu, X)
	assert.Equal(t, uint16(0xFFFF), tpu.ReadRegister(A))
}

func TestIncDecWrapAndWriteBackInPlace(t *testing.T) {
	tpu := newTestTPU()
	tpu.WriteRegister(X, 0xFFFF)
	opInc(tpu, X)
	assert.Equal(t, uint16(0), tpu.ReadRegister(X))

	opDec(tpu, X)
	assert.Equal(t, uint16(0xFFFF), tpu.ReadRegister(X))
}
