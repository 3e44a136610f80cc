// Package cpu emulates the Ricoh 2A03 core used in the NES: a 6502
// without decimal mode. Execution is cycle accurate at whole cycle
// granularity. Every bus transaction advances the clock exactly once,
// so instruction timing (page cross penalties, dummy reads, RMW double
// writes) emerges from the bus traffic rather than from a cycle table.
package cpu

import (
	"fmt"

	"github.com/jmchacon/2a03/disassemble"
	"github.com/jmchacon/2a03/irq"
	"github.com/jmchacon/2a03/memory"
	"github.com/jmchacon/2a03/monitor"
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1
	P_B         = uint8(0x10) // Set by Reset and in BRK/PHP pushes. Cleared in IRQ/NMI pushes and by PLP/RTI.
	P_DECIMAL   = uint8(0x08) // Storage only on the 2A03, the ALU ignores it.
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)

	// OAM_DMA is the register whose write starts a 256 byte sprite copy.
	OAM_DMA = uint16(0x4014)
	// OAM_DATA is the PPU port the copy feeds.
	OAM_DATA = uint16(0x2004)
)

// CycleSink is advanced exactly once per CPU cycle. It drives the APU
// and, through the APU's master clock, the PPU (three dots per CPU
// cycle on NTSC).
type CycleSink interface {
	Tick()
}

// phase is the fetch/decode/execute micro state.
type phase int

const (
	phaseFetch0 phase = iota // opcode fetch, the sync cycle
	phaseFetch1              // first operand byte (or dummy read)
	phaseFetch2              // second operand byte
	phaseExecute             // addressing resolution + semantics
)

// Chip is a 2A03 CPU core.
type Chip struct {
	A  uint8  // Accumulator register
	X  uint8  // X register
	Y  uint8  // Y register
	S  uint8  // Stack pointer
	P  uint8  // Status register
	PC uint16 // Program counter

	bus    memory.Bus
	sink   CycleSink
	irqIn  irq.Sender // optional external IRQ line, ORed with the named sources
	nmiIn  irq.Sender // optional external NMI line, edge detected
	tracer monitor.Tracer
	cdl    monitor.CdLogger
	breaks monitor.Breakpoints

	cycles uint64 // monotonic cycle counter
	budget int64  // remaining cycles granted by the host

	phase      phase
	op         uint8    // current opcode
	opPC       uint16   // address the opcode was fetched from
	operand    [2]uint8 // raw operand bytes
	opBase     uint16   // pre-index base address for indexed modes
	ea         uint16   // last resolved effective address
	eaValid    bool
	sync       bool // true only on the opcode fetch cycle
	writeCycle bool // true while the current cycle is a bus write
	lastAddr   uint16
	syncSample int // tracer id of the current instruction's sync sample

	killed bool // a KIL opcode executed; only Reset recovers
	haltOp uint8

	irqLine     *irq.Line
	nmiAsserted bool
	nmiLast     bool // previous sample of the external NMI line
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode represents an opcode which halts the CPU.
type HaltOpcode struct {
	Opcode uint8
}

// Error implements the interface for error types.
func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// ChipDef defines a 2A03 core. Bus is required; everything else is
// optional.
type ChipDef struct {
	// Bus is the memory the core borrows for the run.
	Bus memory.Bus
	// Sink advances the APU/PPU one unit per CPU cycle.
	Sink CycleSink
	// Irq is an external IRQ source checked alongside the named lines.
	Irq irq.Sender
	// Nmi is an external NMI source, sampled for a rising edge at the
	// end of every instruction.
	Nmi irq.Sender
	// Tracer receives one sample per bus transaction.
	Tracer monitor.Tracer
	// CdLog receives code/data attribution per access.
	CdLog monitor.CdLogger
	// Breakpoints is notified of executions, accesses and events.
	Breakpoints monitor.Breakpoints
}

// Init creates a 2A03 core and runs the power on reset.
func Init(def *ChipDef) (*Chip, error) {
	if def.Bus == nil {
		return nil, InvalidCPUState{"no bus provided"}
	}
	p := &Chip{
		bus:     def.Bus,
		sink:    def.Sink,
		irqIn:   def.Irq,
		nmiIn:   def.Nmi,
		tracer:  def.Tracer,
		cdl:     def.CdLog,
		breaks:  def.Breakpoints,
		irqLine: irq.NewLine(),
	}
	p.Reset()
	return p, nil
}

// Reset performs the power on / hard reset sequence: registers cleared,
// stack at 0xFD, I set, RAM cleared, PC loaded from the reset vector.
// Nothing is pushed and no cycles are consumed. It also recovers a
// killed core.
func (p *Chip) Reset() {
	p.A, p.X, p.Y = 0, 0, 0
	p.S = 0xFD
	p.P = P_S1 | P_B | P_INTERRUPT
	p.bus.PowerOn()
	p.PC = uint16(p.bus.Peek(RESET_VECTOR)) | uint16(p.bus.Peek(RESET_VECTOR+1))<<8
	p.killed = false
	p.haltOp = 0
	p.irqLine = irq.NewLine()
	p.nmiAsserted = false
	p.nmiLast = false
	p.phase = phaseFetch0
	p.sync = false
	p.writeCycle = false
	p.eaValid = false
	p.budget = 0
	if p.tracer != nil {
		p.tracer.AddEvent(p.cycles, monitor.EventReset)
	}
	if p.breaks != nil {
		p.breaks.CheckEvent(monitor.EventReset)
	}
}

// Emulate grants the core a cycle budget and runs instructions until it
// is exhausted. The final instruction may overrun the budget by its own
// length plus what it triggers: an interrupt entry taken after it (7
// cycles) or an OAM DMA stall (513/514 cycles). Returns HaltOpcode once a KIL opcode has
// executed; only Reset clears that state.
func (p *Chip) Emulate(cycles int) error {
	p.budget = int64(cycles)
	// An instruction in flight always finishes even if its fetch phases
	// drained the budget, so interrupts are only ever sampled between
	// instructions.
	for !p.killed && (p.budget > 0 || p.phase != phaseFetch0) {
		p.step()
	}
	if p.killed {
		return HaltOpcode{p.haltOp}
	}
	return nil
}

// Cycles returns the monotonic cycle counter.
func (p *Chip) Cycles() uint64 {
	return p.cycles
}

// Sync reports whether the current cycle is an opcode fetch.
func (p *Chip) Sync() bool {
	return p.sync
}

// WriteCycle reports whether the current cycle is a bus write. The APU
// uses this to decide how DMC DMA steals overlap CPU traffic.
func (p *Chip) WriteCycle() bool {
	return p.writeCycle
}

// Killed reports whether a KIL opcode has halted the core.
func (p *Chip) Killed() bool {
	return p.killed
}

// EffectiveAddress returns the last resolved effective address, if the
// current instruction computed one.
func (p *Chip) EffectiveAddress() (uint16, bool) {
	return p.ea, p.eaValid
}

// AssertIRQ pulls the level sensitive IRQ line on behalf of source.
func (p *Chip) AssertIRQ(source string) {
	p.irqLine.Assert(source)
}

// ReleaseIRQ drops source's IRQ assertion.
func (p *Chip) ReleaseIRQ(source string) {
	p.irqLine.Release(source)
}

// AssertNMI latches an NMI edge. The latch clears when the NMI is
// taken.
func (p *Chip) AssertNMI() {
	p.nmiAsserted = true
}

// ReadMem is the non-intrusive debugger read: no cycles, no observer
// entries, no peripheral side effects.
func (p *Chip) ReadMem(addr uint16) uint8 {
	return p.bus.Peek(addr)
}

// WriteMem is the non-intrusive debugger write.
func (p *Chip) WriteMem(addr uint16, val uint8) {
	p.bus.Poke(addr, val)
}

// advanceClock is the single cycle pump: the sink runs one unit, the
// cycle counter moves, the budget drains. Every observable effect in
// the core funnels through here exactly once per cycle.
func (p *Chip) advanceClock() {
	if p.sink != nil {
		p.sink.Tick()
	}
	p.cycles++
	p.budget--
}

// busRead performs one read cycle and feeds the observers.
func (p *Chip) busRead(addr uint16, kind monitor.Kind) uint8 {
	p.writeCycle = false
	p.lastAddr = addr
	p.advanceClock()
	val, region := p.bus.Load(addr)
	if p.tracer != nil {
		id := p.tracer.AddSample(p.cycles, kind, monitor.SourceCPU, region, addr, val)
		if p.sync {
			p.syncSample = id
			p.tracer.SetRegisters(id, monitor.Registers{A: p.A, X: p.X, Y: p.Y, S: p.S, P: p.P, PC: p.opPC})
			text, _ := disassemble.Step(p.opPC, p.bus)
			p.tracer.SetDisassembly(id, text)
		}
	}
	if p.cdl != nil {
		p.cdl.Log(p.cycles, addr, val, kind, monitor.SourceCPU)
	}
	if p.breaks != nil && kind != monitor.KindFetch {
		p.breaks.CheckAccess(kind, addr, val)
	}
	return val
}

// read performs a data read cycle.
func (p *Chip) read(addr uint16) uint8 {
	return p.busRead(addr, monitor.KindRead)
}

// fetch performs an opcode/operand read cycle from the PC stream.
func (p *Chip) fetch(addr uint16) uint8 {
	return p.busRead(addr, monitor.KindFetch)
}

// write performs one write cycle and feeds the observers. A write to
// the OAM DMA register suspends the instruction stream for the copy.
func (p *Chip) write(addr uint16, val uint8) {
	p.writeCycle = true
	p.lastAddr = addr
	p.advanceClock()
	region := p.bus.Store(addr, val)
	if p.tracer != nil {
		p.tracer.AddSample(p.cycles, monitor.KindWrite, monitor.SourceCPU, region, addr, val)
	}
	if p.cdl != nil {
		p.cdl.Log(p.cycles, addr, val, monitor.KindWrite, monitor.SourceCPU)
	}
	if p.breaks != nil {
		p.breaks.CheckAccess(monitor.KindWrite, addr, val)
	}
	if addr == OAM_DMA {
		p.oamDMA(val)
	}
}

// dmaRead performs one DMA sourced read cycle.
func (p *Chip) dmaRead(addr uint16) uint8 {
	p.writeCycle = false
	p.lastAddr = addr
	p.advanceClock()
	val, region := p.bus.Load(addr)
	if p.tracer != nil {
		p.tracer.AddSample(p.cycles, monitor.KindDMARead, monitor.SourceDMA, region, addr, val)
	}
	if p.cdl != nil {
		p.cdl.Log(p.cycles, addr, val, monitor.KindDMARead, monitor.SourceDMA)
	}
	if p.breaks != nil {
		p.breaks.CheckAccess(monitor.KindDMARead, addr, val)
	}
	return val
}

// dmaWrite performs one DMA sourced write cycle.
func (p *Chip) dmaWrite(addr uint16, val uint8) {
	p.writeCycle = true
	p.lastAddr = addr
	p.advanceClock()
	region := p.bus.Store(addr, val)
	if p.tracer != nil {
		p.tracer.AddSample(p.cycles, monitor.KindDMAWrite, monitor.SourceDMA, region, addr, val)
	}
	if p.cdl != nil {
		p.cdl.Log(p.cycles, addr, val, monitor.KindDMAWrite, monitor.SourceDMA)
	}
	if p.breaks != nil {
		p.breaks.CheckAccess(monitor.KindDMAWrite, addr, val)
	}
}

// oamDMA copies 256 bytes from page<<8 into the PPU's OAM port. The
// stall costs 513 cycles, 514 when the first stall cycle leaves the
// cycle counter odd (that is, when the write's cycle number is even).
func (p *Chip) oamDMA(page uint8) {
	p.advanceClock()
	if p.cycles&1 == 1 {
		p.advanceClock()
	}
	src := uint16(page) << 8
	for i := 0; i < 256; i++ {
		v := p.dmaRead(src + uint16(i))
		p.dmaWrite(OAM_DATA, v)
	}
}

// StealCycles suspends the CPU for n cycles on behalf of an external
// DMA unit (the APU's DMC). While the CPU was mid-read the stalled
// cycles replay the last address; after a write the bus is left alone.
func (p *Chip) StealCycles(n int) {
	for i := 0; i < n; i++ {
		if p.writeCycle {
			p.advanceClock()
			continue
		}
		p.dmaRead(p.lastAddr)
	}
}

// DMARead is the bus entry point for DMC sample fetches: one cycle, one
// DMA tagged read.
func (p *Chip) DMARead(addr uint16) uint8 {
	return p.dmaRead(addr)
}

// step advances the fetch/decode/execute machine by one quantum: a
// single cycle for the fetch phases, the remainder of the instruction
// for the execute phase.
func (p *Chip) step() {
	switch p.phase {
	case phaseFetch0:
		p.eaValid = false
		p.writeCycle = false
		p.opPC = p.PC
		p.sync = true
		p.op = p.fetch(p.PC)
		p.sync = false
		if isHalt(p.op) {
			// The CPU jams: no more bus activity until Reset.
			p.killed = true
			p.haltOp = p.op
			if p.tracer != nil {
				p.tracer.AddEvent(p.cycles, monitor.EventKIL)
			}
			if p.breaks != nil {
				p.breaks.CheckEvent(monitor.EventKIL)
				p.breaks.ForceBreak()
			}
			return
		}
		p.PC++
		if p.breaks != nil {
			p.breaks.CheckExecute(p.opPC, p.op, opcodes[p.op].documented)
		}
		p.phase = phaseFetch1
	case phaseFetch1:
		d := &opcodes[p.op]
		if d.size() == 1 {
			// Single byte instructions still read the next byte and
			// throw it away.
			p.read(p.PC)
			p.phase = phaseExecute
			return
		}
		p.operand[0] = p.fetch(p.PC)
		p.PC++
		if d.size() == 2 {
			p.phase = phaseExecute
		} else {
			p.phase = phaseFetch2
		}
	case phaseFetch2:
		p.operand[1] = p.fetch(p.PC)
		p.PC++
		p.phase = phaseExecute
	case phaseExecute:
		d := &opcodes[p.op]
		d.exec(p, d)
		if p.tracer != nil && p.eaValid {
			p.tracer.SetEffectiveAddress(p.syncSample, p.ea)
		}
		p.sampleInterrupts()
		p.phase = phaseFetch0
	}
}

// irqRaised reports the level of the combined IRQ line.
func (p *Chip) irqRaised() bool {
	return p.irqLine.Raised() || (p.irqIn != nil && p.irqIn.Raised())
}

// sampleInterrupts runs between instructions. NMI wins over IRQ; IRQ
// honors the I mask and the one instruction latency after CLI.
func (p *Chip) sampleInterrupts() {
	if p.nmiIn != nil {
		raised := p.nmiIn.Raised()
		if raised && !p.nmiLast {
			p.nmiAsserted = true
		}
		p.nmiLast = raised
	}
	if p.nmiAsserted {
		p.nmiAsserted = false
		p.interruptSequence(NMI_VECTOR)
		if p.tracer != nil {
			p.tracer.AddEvent(p.cycles, monitor.EventNMI)
		}
		if p.breaks != nil {
			p.breaks.CheckEvent(monitor.EventNMI)
		}
		return
	}
	// An IRQ landing right after CLI waits one more instruction, which
	// the hardware pipeline provides for free and we special case.
	if p.irqRaised() && p.P&P_INTERRUPT == 0 && p.op != 0x58 {
		p.interruptSequence(IRQ_VECTOR)
		if p.tracer != nil {
			p.tracer.AddEvent(p.cycles, monitor.EventIRQ)
		}
		if p.breaks != nil {
			p.breaks.CheckEvent(monitor.EventIRQ)
		}
	}
}

// interruptSequence is the 7 cycle IRQ/NMI entry: two internal cycles
// reading the PC, three pushes with B clear, then the vector fetch.
// None of the cycles are sync cycles.
func (p *Chip) interruptSequence(vector uint16) {
	p.read(p.PC)
	p.read(p.PC)
	p.pushStack(uint8(p.PC >> 8))
	p.pushStack(uint8(p.PC & 0xFF))
	p.pushStack((p.P | P_S1) &^ P_B)
	lo := p.read(vector)
	hi := p.read(vector + 1)
	p.PC = uint16(hi)<<8 | uint16(lo)
	p.P |= P_INTERRUPT
}

// pushStack pushes the given byte onto the stack and adjusts the stack
// pointer accordingly. The stack wraps within page 1.
func (p *Chip) pushStack(val uint8) {
	p.write(0x0100|uint16(p.S), val)
	p.S--
}

// popStack pops the top byte off the stack and adjusts the stack
// pointer accordingly.
func (p *Chip) popStack() uint8 {
	p.S++
	return p.read(0x0100 | uint16(p.S))
}
