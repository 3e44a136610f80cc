package cpu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/jmchacon/2a03/memory"
	"github.com/jmchacon/2a03/monitor"
)

// stubPPU records register traffic, capturing the OAM port stream.
type stubPPU struct {
	regs [8]uint8
	oam  []uint8
}

func (p *stubPPU) ReadRegister(reg uint16) uint8 {
	return p.regs[reg]
}

func (p *stubPPU) WriteRegister(reg uint16, val uint8) {
	p.regs[reg] = val
	if reg == 0x4 {
		p.oam = append(p.oam, val)
	}
}

// stubMapper exposes a flat 32k PRG window.
type stubMapper struct {
	prg [0x8000]uint8
}

func (m *stubMapper) Load(addr uint16) uint8 {
	if addr >= 0x8000 {
		return m.prg[addr-0x8000]
	}
	return 0
}

func (m *stubMapper) Store(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.prg[addr-0x8000] = val
	}
}

func TestOAMDMA(t *testing.T) {
	ppu := &stubPPU{}
	mapper := &stubMapper{}
	bus := memory.NewNesBus(ppu, nil, mapper, nil)

	// LDA #$02; STA $4014 at the top of PRG.
	prog := []uint8{0xA9, 0x02, 0x8D, 0x14, 0x40}
	for i, b := range prog {
		mapper.prg[i] = b
	}
	mapper.Store(RESET_VECTOR, 0x00)
	mapper.Store(RESET_VECTOR+1, 0x80)

	c, err := Init(&ChipDef{Bus: bus})
	if err != nil {
		t.Fatalf("can't initialize cpu - %v", err)
	}
	// Sprite page $0200 gets a recognizable ramp.
	for i := 0; i < 256; i++ {
		bus.Poke(0x0200+uint16(i), uint8(i))
	}

	step(t, c) // LDA
	cycles := step(t, c)
	// Store is 4 cycles, the stall 513 or 514 depending on alignment.
	if cycles != 4+513 && cycles != 4+514 {
		t.Errorf("wrong DMA cost. Got %d, want 517 or 518", cycles)
	}
	if len(ppu.oam) != 256 {
		t.Fatalf("OAM stream wrong length. Got %d, want 256", len(ppu.oam))
	}
	want := make([]uint8, 256)
	for i := range want {
		want[i] = uint8(i)
	}
	if diff := deep.Equal(ppu.oam, want); diff != nil {
		t.Errorf("OAM contents wrong: %v", diff)
	}
	if c.PC != 0x8005 {
		t.Errorf("wrong PC after DMA. Got 0x%.4X, want 0x8005", c.PC)
	}
}

func TestStealCyclesAfterRead(t *testing.T) {
	tracer := monitor.NewRing(64)
	c, r, _ := setup(t, 0xEA, &ChipDef{Tracer: tracer})
	r.Poke(0x0040, 0x99)
	load(c, r, RESET, 0xA5, 0x40) // LDA $40
	step(t, c)

	before := c.Cycles()
	c.StealCycles(4)
	if c.Cycles() != before+4 {
		t.Errorf("wrong steal cost. Got %d, want %d", c.Cycles()-before, 4)
	}
	// The CPU ended on a read so the stall replays the last address.
	replays := 0
	for _, s := range tracer.Samples() {
		if s.Kind == monitor.KindDMARead && s.Addr == 0x0040 {
			replays++
		}
	}
	if replays != 4 {
		t.Errorf("wrong replay count. Got %d, want 4", replays)
	}
}

func TestStealCyclesAfterWrite(t *testing.T) {
	tracer := monitor.NewRing(64)
	c, r, _ := setup(t, 0xEA, &ChipDef{Tracer: tracer})
	load(c, r, RESET, 0x85, 0x40) // STA $40
	step(t, c)

	before := c.Cycles()
	c.StealCycles(3)
	if c.Cycles() != before+3 {
		t.Errorf("wrong steal cost. Got %d, want %d", c.Cycles()-before, 3)
	}
	// Reads are suppressed right after a write cycle.
	for _, s := range tracer.Samples() {
		if s.Kind == monitor.KindDMARead {
			t.Errorf("unexpected DMA read during post-write stall: %v", s)
		}
	}
}

func TestDMCSampleRead(t *testing.T) {
	tracer := monitor.NewRing(16)
	c, r, _ := setup(t, 0xEA, &ChipDef{Tracer: tracer})
	r.Poke(0xC123, 0x77)
	before := c.Cycles()
	if got := c.DMARead(0xC123); got != 0x77 {
		t.Errorf("wrong sample byte. Got 0x%.2X, want 0x77", got)
	}
	if c.Cycles() != before+1 {
		t.Errorf("sample fetch cost %d cycles, want 1", c.Cycles()-before)
	}
	samples := tracer.Samples()
	if len(samples) != 1 || samples[0].Kind != monitor.KindDMARead || samples[0].Source != monitor.SourceDMA {
		t.Errorf("sample not DMA tagged: %+v", samples)
	}
}
