// Package monitor defines the observation side channels the CPU core
// drives: the instruction/bus tracer, the code/data logger, and the
// breakpoint dispatcher. All of them are optional and none of them may
// alter CPU state; when a buffer fills, samples are discarded silently.
package monitor

import "github.com/jmchacon/2a03/memory"

// Kind classifies a bus transaction for observers.
type Kind int

const (
	KindFetch    Kind = iota // opcode or operand fetch from PC
	KindRead                 // data read, including hardware dummy reads
	KindWrite                // data write, including RMW dummy writes
	KindDMARead              // DMA sourced read (OAM copy, DMC sample)
	KindDMAWrite             // DMA sourced write
)

// String implements fmt.Stringer for trace output.
func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "FETCH"
	case KindRead:
		return "READ"
	case KindWrite:
		return "WRITE"
	case KindDMARead:
		return "DMARD"
	case KindDMAWrite:
		return "DMAWR"
	}
	return "UNKNOWN"
}

// Source names the unit that drove a transaction.
type Source int

const (
	SourceCPU Source = iota
	SourceDMA
)

// String implements fmt.Stringer for trace output.
func (s Source) String() string {
	if s == SourceDMA {
		return "DMA"
	}
	return "CPU"
}

// Event marks the out of band occurrences the core reports.
type Event int

const (
	EventReset Event = iota
	EventNMI
	EventIRQ
	EventKIL
)

// String implements fmt.Stringer for trace output.
func (e Event) String() string {
	switch e {
	case EventReset:
		return "RESET"
	case EventNMI:
		return "NMI"
	case EventIRQ:
		return "IRQ"
	case EventKIL:
		return "KIL"
	}
	return "UNKNOWN"
}

// Registers is a snapshot of the CPU register file attached to the sync
// sample of each instruction.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16
}

// Tracer receives one sample per bus transaction. AddSample returns an
// id the core uses to annotate the sample after the fact (registers and
// disassembly on the sync fetch, effective address once resolved).
// Implementations must tolerate ids for samples they have already
// dropped.
type Tracer interface {
	AddSample(cycle uint64, kind Kind, source Source, region memory.Region, addr uint16, data uint8) int
	SetDisassembly(id int, text string)
	SetRegisters(id int, regs Registers)
	SetEffectiveAddress(id int, ea uint16)
	AddEvent(cycle uint64, ev Event)
}

// CdLogger receives every access for code/data attribution.
type CdLogger interface {
	Log(cycle uint64, addr uint16, data uint8, kind Kind, source Source)
}

// Breakpoints is the dispatcher the core notifies from inside the
// instruction stream. Hits latch a forced break flag the host polls
// between instructions; nothing here unwinds the current instruction.
type Breakpoints interface {
	// CheckExecute fires on every opcode fetch with the opcode's
	// documented status so undocumented-opcode conditions can match.
	CheckExecute(pc uint16, opcode uint8, documented bool)
	// CheckAccess fires on every non-fetch bus transaction.
	CheckAccess(kind Kind, addr uint16, data uint8)
	// CheckEvent fires on RESET/NMI/IRQ/KIL.
	CheckEvent(ev Event)
	// ForceBreak latches the break flag directly (KIL does this).
	ForceBreak()
	// BreakRequested reports whether a break is latched.
	BreakRequested() bool
	// ClearBreak drops the latch so the host can resume.
	ClearBreak()
}
