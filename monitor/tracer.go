package monitor

import (
	"fmt"

	"github.com/jmchacon/2a03/memory"
)

// Sample is one recorded bus transaction.
type Sample struct {
	ID     int
	Cycle  uint64
	Kind   Kind
	Source Source
	Region memory.Region
	Addr   uint16
	Data   uint8

	// Annotations filled in after the sample lands.
	Disassembly string
	Regs        Registers
	HasRegs     bool
	EA          uint16
	HasEA       bool
}

// String renders the sample as one trace line.
func (s Sample) String() string {
	out := fmt.Sprintf("%8d %-5s %s %-5s $%04X = $%02X", s.Cycle, s.Kind, s.Source, s.Region, s.Addr, s.Data)
	if s.Disassembly != "" {
		out += "  " + s.Disassembly
	}
	if s.HasRegs {
		out += fmt.Sprintf("  A:%02X X:%02X Y:%02X S:%02X P:%02X", s.Regs.A, s.Regs.X, s.Regs.Y, s.Regs.S, s.Regs.P)
	}
	if s.HasEA {
		out += fmt.Sprintf("  EA:$%04X", s.EA)
	}
	return out
}

// EventMark records an out of band event in the trace stream.
type EventMark struct {
	Cycle uint64
	Event Event
}

// Ring is a fixed depth circular Tracer. Once full, new samples
// overwrite the oldest; annotations addressed to overwritten samples
// are dropped silently.
type Ring struct {
	samples []Sample
	events  []EventMark
	next    int
}

const defaultDepth = 1 << 15

// NewRing creates a Ring holding depth samples. depth <= 0 selects the
// default depth.
func NewRing(depth int) *Ring {
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Ring{samples: make([]Sample, 0, depth)}
}

// AddSample implements the Tracer interface.
func (r *Ring) AddSample(cycle uint64, kind Kind, source Source, region memory.Region, addr uint16, data uint8) int {
	id := r.next
	r.next++
	s := Sample{
		ID:     id,
		Cycle:  cycle,
		Kind:   kind,
		Source: source,
		Region: region,
		Addr:   addr,
		Data:   data,
	}
	if len(r.samples) < cap(r.samples) {
		r.samples = append(r.samples, s)
	} else {
		r.samples[id%cap(r.samples)] = s
	}
	return id
}

// at returns the live sample for id or nil if it has been overwritten.
func (r *Ring) at(id int) *Sample {
	if len(r.samples) == 0 || id < 0 || id >= r.next {
		return nil
	}
	s := &r.samples[id%cap(r.samples)]
	if s.ID != id {
		return nil
	}
	return s
}

// SetDisassembly implements the Tracer interface.
func (r *Ring) SetDisassembly(id int, text string) {
	if s := r.at(id); s != nil {
		s.Disassembly = text
	}
}

// SetRegisters implements the Tracer interface.
func (r *Ring) SetRegisters(id int, regs Registers) {
	if s := r.at(id); s != nil {
		s.Regs = regs
		s.HasRegs = true
	}
}

// SetEffectiveAddress implements the Tracer interface.
func (r *Ring) SetEffectiveAddress(id int, ea uint16) {
	if s := r.at(id); s != nil {
		s.EA = ea
		s.HasEA = true
	}
}

// AddEvent implements the Tracer interface. The event list is bounded
// by the sample depth as well.
func (r *Ring) AddEvent(cycle uint64, ev Event) {
	if len(r.events) >= cap(r.samples) {
		return
	}
	r.events = append(r.events, EventMark{Cycle: cycle, Event: ev})
}

// Samples returns the recorded samples oldest first.
func (r *Ring) Samples() []Sample {
	if r.next <= cap(r.samples) {
		out := make([]Sample, len(r.samples))
		copy(out, r.samples)
		return out
	}
	out := make([]Sample, 0, cap(r.samples))
	for id := r.next - cap(r.samples); id < r.next; id++ {
		out = append(out, r.samples[id%cap(r.samples)])
	}
	return out
}

// Events returns the recorded event marks oldest first.
func (r *Ring) Events() []EventMark {
	out := make([]EventMark, len(r.events))
	copy(out, r.events)
	return out
}
