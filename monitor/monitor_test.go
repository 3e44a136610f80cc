package monitor

import (
	"testing"

	"github.com/jmchacon/2a03/memory"
	"github.com/stretchr/testify/assert"
)

func TestRingAnnotations(t *testing.T) {
	r := NewRing(4)
	id := r.AddSample(10, KindFetch, SourceCPU, memory.RegionPRG, 0x8000, 0xA9)
	r.SetRegisters(id, Registers{A: 1, PC: 0x8000})
	r.SetDisassembly(id, "LDA #$12")
	r.SetEffectiveAddress(id, 0x1234)

	samples := r.Samples()
	assert.Len(t, samples, 1)
	s := samples[0]
	assert.Equal(t, uint64(10), s.Cycle)
	assert.True(t, s.HasRegs)
	assert.Equal(t, "LDA #$12", s.Disassembly)
	assert.True(t, s.HasEA)
	assert.Equal(t, uint16(0x1234), s.EA)
}

func TestRingOverwrite(t *testing.T) {
	r := NewRing(2)
	first := r.AddSample(1, KindRead, SourceCPU, memory.RegionRAM, 0x0000, 0x00)
	r.AddSample(2, KindRead, SourceCPU, memory.RegionRAM, 0x0001, 0x01)
	r.AddSample(3, KindRead, SourceCPU, memory.RegionRAM, 0x0002, 0x02)

	// Annotating the overwritten sample is a silent no-op.
	r.SetDisassembly(first, "stale")

	samples := r.Samples()
	assert.Len(t, samples, 2)
	assert.Equal(t, uint16(0x0001), samples[0].Addr)
	assert.Equal(t, uint16(0x0002), samples[1].Addr)
	for _, s := range samples {
		assert.Empty(t, s.Disassembly)
	}
}

func TestRingEvents(t *testing.T) {
	r := NewRing(8)
	r.AddEvent(5, EventReset)
	r.AddEvent(100, EventNMI)
	evs := r.Events()
	assert.Equal(t, []EventMark{{Cycle: 5, Event: EventReset}, {Cycle: 100, Event: EventNMI}}, evs)
}

func TestCodeDataLog(t *testing.T) {
	l := NewCodeDataLog()
	l.Log(1, 0x8000, 0xA9, KindFetch, SourceCPU)
	l.Log(2, 0x8001, 0x12, KindFetch, SourceCPU)
	l.Log(3, 0x0200, 0x34, KindRead, SourceCPU)
	l.Log(4, 0x0200, 0x35, KindDMAWrite, SourceDMA)

	assert.True(t, l.Mark(0x8000).Code)
	assert.False(t, l.Mark(0x8000).DataRead)
	m := l.Mark(0x0200)
	assert.True(t, m.DataRead)
	assert.True(t, m.DataWritten)
	assert.Equal(t, SourceDMA, m.Source)
	assert.Equal(t, uint64(4), m.LastCycle)

	mask := l.CodeMask(0x8000, 4)
	assert.Equal(t, []bool{true, true, false, false}, mask)
}

func TestBreakpointExecute(t *testing.T) {
	s := NewSet()
	idx := s.Add(Breakpoint{On: OnExecute, Addr: 0x8000})
	s.CheckExecute(0x8001, 0xA9, true)
	assert.False(t, s.BreakRequested())
	s.CheckExecute(0x8000, 0xA9, true)
	assert.True(t, s.BreakRequested())
	assert.Equal(t, 1, s.Items()[idx].Hits)

	s.ClearBreak()
	assert.False(t, s.BreakRequested())
}

func TestBreakpointOpcodeAndUndocumented(t *testing.T) {
	s := NewSet()
	s.Add(Breakpoint{On: OnOpcode, Opcode: 0x00})
	s.Add(Breakpoint{On: OnUndocumentedOpcode, Opcode: 0xA7})

	s.CheckExecute(0x8000, 0xA7, false)
	assert.True(t, s.BreakRequested())
	s.ClearBreak()

	// The exact undocumented match ignores documented executions of
	// other bytes.
	s.CheckExecute(0x8000, 0xA9, true)
	assert.False(t, s.BreakRequested())

	s.CheckExecute(0x8000, 0x00, true)
	assert.True(t, s.BreakRequested())
}

func TestBreakpointAccessAndEvents(t *testing.T) {
	s := NewSet()
	s.Add(Breakpoint{On: OnWrite, Addr: 0x2000})
	s.Add(Breakpoint{On: OnEvent, Event: EventNMI})

	s.CheckAccess(KindRead, 0x2000, 0x00)
	assert.False(t, s.BreakRequested())
	s.CheckAccess(KindWrite, 0x2000, 0x80)
	assert.True(t, s.BreakRequested())
	s.ClearBreak()

	s.CheckEvent(EventIRQ)
	assert.False(t, s.BreakRequested())
	s.CheckEvent(EventNMI)
	assert.True(t, s.BreakRequested())
}

func TestBreakpointDisabled(t *testing.T) {
	s := NewSet()
	idx := s.Add(Breakpoint{On: OnExecute, AnyAddr: true, Disabled: true})
	s.CheckExecute(0x8000, 0xEA, true)
	assert.False(t, s.BreakRequested())
	assert.Zero(t, s.Items()[idx].Hits)
}
