package tpu

// Sizing constants from the ISA (spec.md §3).
const (
	stackSize  = 16
	ramSize    = 128
	netBufSize = 8
)

// executionState mirrors the original's ExecutionState: the in-flight
// decoded instruction, if any, and how many ticks remain before its
// body runs.
type executionState struct {
	instruction    *Instruction
	waitCycles     uint16
	callEveryCycle bool
}

func (s *executionState) clear() {
	s.instruction = nil
	s.waitCycles = 0
	s.callEveryCycle = false
}

func (s *executionState) inFlight() bool {
	return s.instruction != nil
}

// TPU is a single Traffic Processing Unit: registers, RAM, stack,
// program ROM, pins, and packet queues, driven one clock cycle at a
// time by Tick. The type is pure — it never logs, never touches the
// filesystem, and holds no reference to anything outside itself.
type TPU struct {
	networkAddress uint16

	registers [numRegisters]uint16
	ram       [ramSize]uint16
	stack     []uint16

	rom            []Instruction
	programCounter int
	halted         bool
	haltReason     HaltReason
	state          executionState

	analogInputMask   [numAnalogPins]bool
	digitalInputMask  [numDigitalPins]bool
	analogPins        [numAnalogPins]uint16
	digitalPins       [numDigitalPins]bool

	incoming []NetPacket
	outgoing []NetPacket
}

// New constructs a TPU with a fixed ROM and pin configuration. A mask
// entry of true means that pin is configured as an input.
func New(networkAddress uint16, analogInputMask [numAnalogPins]bool, digitalInputMask [numDigitalPins]bool, program []Instruction) *TPU {
	t := &TPU{
		networkAddress:   networkAddress,
		rom:              program,
		analogInputMask:  analogInputMask,
		digitalInputMask: digitalInputMask,
	}
	t.Reset()
	return t
}

// NewBasic is the convenience constructor for a TPU at network address
// 0x1 with every pin configured as an output, mirroring the original
// source's create_basic_tpu_config helper.
func NewBasic(program []Instruction) *TPU {
	return New(0x1, [numAnalogPins]bool{}, [numDigitalPins]bool{}, program)
}

// Reset zeroes all mutable state and re-arms the fetch stage at PC 0.
// Pin configuration and ROM are untouched.
func (t *TPU) Reset() {
	t.registers = [numRegisters]uint16{}
	t.ram = [ramSize]uint16{}
	t.stack = t.stack[:0]
	t.programCounter = 0
	t.halted = false
	t.haltReason = HaltNone
	t.state.clear()
	t.analogPins = [numAnalogPins]uint16{}
	t.digitalPins = [numDigitalPins]bool{}
	t.incoming = nil
	t.outgoing = nil
}

// Halted reports whether the TPU has latched a halt condition.
func (t *TPU) Halted() bool { return t.halted }

// HaltedReason reports why the TPU halted; meaningless while running.
func (t *TPU) HaltedReason() HaltReason { return t.haltReason }

// Busy reports whether an instruction is in flight (decoded but not yet
// executed).
func (t *TPU) Busy() bool { return t.state.inFlight() }

// ProgramCounter returns the current ROM index.
func (t *TPU) ProgramCounter() int { return t.programCounter }

// ReadRegister returns the current value of a register.
func (t *TPU) ReadRegister(r RegId) uint16 { return t.registers[r] }

// WriteRegister sets a register's value.
func (t *TPU) WriteRegister(r RegId, v uint16) { t.registers[r] = v }

// StackDepth returns the number of words currently on the stack.
func (t *TPU) StackDepth() uint16 { return uint16(len(t.stack)) }

// StackSnapshot returns a read-only copy of the current stack contents,
// bottom first.
func (t *TPU) StackSnapshot() []uint16 {
	out := make([]uint16, len(t.stack))
	copy(out, t.stack)
	return out
}

func (t *TPU) push(v uint16) { t.stack = append(t.stack, v) }

func (t *TPU) pop() uint16 {
	if len(t.stack) == 0 {
		return 0
	}
	v := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return v
}

// ReadRAM returns RAM[addr], or 0 if addr is out of range.
func (t *TPU) ReadRAM(addr int) uint16 {
	if addr < 0 || addr >= ramSize {
		return 0
	}
	return t.ram[addr]
}

// WriteRAM sets RAM[addr], silently dropping out-of-range writes.
func (t *TPU) WriteRAM(addr int, v uint16) {
	if addr < 0 || addr >= ramSize {
		return
	}
	t.ram[addr] = v
}

// RAMSize returns the fixed RAM word count.
func (t *TPU) RAMSize() int { return ramSize }

// ROM returns the read-only program.
func (t *TPU) ROM() []Instruction { return t.rom }

func (t *TPU) setAnalogPin(p AnalogPin, v uint16) {
	if t.analogInputMask[p] {
		return
	}
	t.analogPins[p] = v
}

func (t *TPU) getAnalogPin(p AnalogPin) uint16 { return t.analogPins[p] }

func (t *TPU) setDigitalPin(p DigitalPin, v bool) {
	if t.digitalInputMask[p] {
		return
	}
	t.digitalPins[p] = v
}

func (t *TPU) getDigitalPin(p DigitalPin) bool { return t.digitalPins[p] }

// setDigitalPins packs bitmask bits into the pin array in pin-index
// order, respecting input-configured pins.
func (t *TPU) setDigitalPins(bitmask uint16) {
	for i := 0; i < numDigitalPins; i++ {
		t.setDigitalPin(DigitalPin(i), (bitmask>>uint(i))&1 != 0)
	}
}

// getDigitalPins unpacks the pin array into a bitmask in pin-index order.
func (t *TPU) getDigitalPins() uint16 {
	var v uint16
	for i := 0; i < numDigitalPins; i++ {
		if t.digitalPins[i] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// AnalogPinValue and DigitalPinValue expose pin state for observation
// by an external driver (spec.md §6).
func (t *TPU) AnalogPinValue(p AnalogPin) uint16  { return t.analogPins[p] }
func (t *TPU) DigitalPinValue(p DigitalPin) bool  { return t.digitalPins[p] }

// PushIncoming appends a packet to the incoming queue; called by the
// external fabric, never by the core itself.
func (t *TPU) PushIncoming(p NetPacket) { t.incoming = append(t.incoming, p) }

// DrainOutgoing pops the oldest outgoing packet, if any.
func (t *TPU) DrainOutgoing() (NetPacket, bool) {
	if len(t.outgoing) == 0 {
		return NetPacket{}, false
	}
	p := t.outgoing[0]
	t.outgoing = t.outgoing[1:]
	return p, true
}

// IncomingLen and OutgoingLen report current queue depths.
func (t *TPU) IncomingLen() int { return len(t.incoming) }
func (t *TPU) OutgoingLen() int { return len(t.outgoing) }

func (t *TPU) sendPacket(target, data uint16) {
	t.outgoing = append(t.outgoing, NetPacket{Sender: t.networkAddress, Target: target, Data: data})
}

func (t *TPU) receivePacket() NetPacket {
	if len(t.incoming) == 0 {
		return NetPacket{}
	}
	p := t.incoming[0]
	t.incoming = t.incoming[1:]
	return p
}

// getOperandValue dereferences an any-operand: an immediate is returned
// as-is, a register operand reads the named register.
func (t *TPU) getOperandValue(o Operand) uint16 {
	if r, ok := o.AsRegister(); ok {
		return t.ReadRegister(r)
	}
	return o.Imm
}

// checkOperandCost is the decoder's operand-kind surcharge: one extra
// cycle per register-typed operand among those given.
func checkOperandCost(operands ...Operand) uint16 {
	var cost uint16
	for _, o := range operands {
		if o.Kind == KindRegister {
			cost++
		}
	}
	return cost
}

// Tick advances the TPU by one simulated clock cycle. No-op once
// halted. Within one tick the sequence is atomic: decrement the wait
// counter, optionally run the body, then update PC/halt — the fabric
// only observes queue changes between ticks, never inside one.
func (t *TPU) Tick() {
	if t.state.waitCycles > 0 {
		t.state.waitCycles--
	}

	if t.halted {
		return
	}

	if !t.state.callEveryCycle && t.state.waitCycles > 0 {
		return
	}

	if t.state.inFlight() {
		instr := *t.state.instruction
		t.state.instruction = nil
		t.executeInstruction(instr)
		return
	}

	t.fetchInstruction()
}

// Step ticks until the program counter changes or the TPU halts.
func (t *TPU) Step() {
	startPC := t.programCounter
	for !t.halted && t.programCounter == startPC {
		t.Tick()
	}
}

func (t *TPU) fetchInstruction() {
	instr := t.rom[t.programCounter]
	decoded := decode(t, instr)

	if decoded.Cycles <= 1 {
		t.executeInstruction(instr)
		return
	}

	cp := instr
	t.state = executionState{
		instruction:    &cp,
		waitCycles:     decoded.Cycles - 1,
		callEveryCycle: decoded.CallEveryCycle,
	}
}

func (t *TPU) executeInstruction(instr Instruction) {
	result := execute(t, instr)

	switch result.Kind {
	case ExecPCAdvance:
		t.state.clear()
		next := t.programCounter + 1
		if next > len(t.rom)-1 {
			t.halted = true
			t.haltReason = HaltInvalidPC
		}
		t.programCounter = next
	case ExecPCModified:
		t.state.clear()
	case ExecNoPCAdvance:
		// Keep the in-flight instruction so the engine re-ticks it.
		t.state.instruction = &instr
	case ExecHalt:
		t.halted = true
		t.haltReason = result.Reason
	}
}

// setProgramCounterConditionally is shared by every branch and jump
// instruction: when condition is false the landing address is PC+1
// (a "branch not taken" still counts as a PC modification, not a
// PCAdvance, matching the original), when true it's address. Either
// way the result is bounds-checked against ROM before PC is touched.
func setProgramCounterConditionally(t *TPU, condition bool, address int) ExecuteResult {
	target := t.programCounter + 1
	if condition {
		target = address
	}
	if target < 0 || target > len(t.rom)-1 {
		return ResultHalt(HaltInvalidPC)
	}
	t.programCounter = target
	return ResultPCModified
}
