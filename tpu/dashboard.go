package tpu

import (
	"fmt"
	"strings"
)

// String renders a plain tabular snapshot of TPU state: PC, halt
// reason, registers, stack, and pin values. Mirrors the teacher's
// printCurrentState in spirit; the original's box-drawing dashboard is
// rendering, which is out of scope here.
func (t *TPU) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "pc=%d halted=%v", t.programCounter, t.halted)
	if t.halted {
		fmt.Fprintf(&b, " reason=%s", t.haltReason)
	}
	b.WriteByte('\n')

	fmt.Fprint(&b, "registers>")
	for r := RegId(0); r < numRegisters; r++ {
		fmt.Fprintf(&b, " %s=%d", r, t.registers[r])
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "stack> %v\n", t.stack)

	fmt.Fprint(&b, "digital>")
	for i := 0; i < numDigitalPins; i++ {
		fmt.Fprintf(&b, " %d=%v", i, t.digitalPins[i])
	}
	b.WriteByte('\n')

	fmt.Fprint(&b, "analog>")
	for i := 0; i < numAnalogPins; i++ {
		fmt.Fprintf(&b, " %d=%d", i, t.analogPins[i])
	}
	b.WriteByte('\n')

	return b.String()
}

// NextInstructionString formats the instruction at the current PC the
// way the teacher's formatInstructionStr does, for debug-REPL listing.
func (t *TPU) NextInstructionString() string {
	if t.programCounter >= len(t.rom) {
		return ""
	}
	return fmt.Sprintf("%d: %s", t.programCounter, t.rom[t.programCounter])
}

// ProgramString disassembles the full ROM, one instruction per line,
// for the CLI's asm subcommand.
func (t *TPU) ProgramString() string {
	var b strings.Builder
	for i, instr := range t.rom {
		fmt.Fprintf(&b, "%d: %s\n", i, instr)
	}
	return b.String()
}
