package tpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrxSpinsUntilPacketArrives(t *testing.T) {
	tpu := NewBasic(mustProgram(t, `
		WRX
		HLT
	`))

	for i := 0; i < 5; i++ {
		tpu.Tick()
	}
	assert.Equal(t, 0, tpu.ProgramCounter(), "still spinning with no incoming packet")
	assert.False(t, tpu.Halted())

	tpu.PushIncoming(NetPacket{Sender: 0x4, Target: 0x1, Data: 55})

	for tpu.ProgramCounter() == 0 && !tpu.Halted() {
		tpu.Tick()
	}

	assert.Equal(t, uint16(0x4), tpu.ReadRegister(X))
	assert.Equal(t, uint16(55), tpu.ReadRegister(Y))
}

func TestSlpDelaysExactCycleCount(t *testing.T) {
	tpu := NewBasic(mustProgram(t, `
		SLP 3
		HLT
	`))

	for i := 0; i < 3; i++ {
		tpu.Tick()
		assert.Equal(t, 0, tpu.ProgramCounter(), "tick %d: PC must not advance yet", i)
	}

	tpu.Tick()
	assert.Equal(t, 1, tpu.ProgramCounter())
}

func TestHltHaltsWithHLTOpcodeReason(t *testing.T) {
	tpu := NewBasic(mustProgram(t, `HLT`))
	tpu.Step()
	assert.True(t, tpu.Halted())
	assert.Equal(t, HaltHLTOpcode, tpu.HaltedReason())
}

func TestNopAdvancesOneCyclePerTick(t *testing.T) {
	tpu := NewBasic(mustProgram(t, `
		NOP
		NOP
		HLT
	`))

	tpu.Tick()
	assert.Equal(t, 1, tpu.ProgramCounter())
	tpu.Tick()
	assert.Equal(t, 2, tpu.ProgramCounter())
}
