package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRegion(t *testing.T) {
	for _, tc := range []struct {
		addr uint16
		want Region
	}{
		{0x0000, RegionRAM},
		{0x07FF, RegionRAM},
		{0x1FFF, RegionRAM},
		{0x2000, RegionPPURegs},
		{0x3FFF, RegionPPURegs},
		{0x4000, RegionIORegs},
		{0x4014, RegionIORegs},
		{0x4017, RegionIORegs},
		{0x4018, RegionMapperLow},
		{0x5000, RegionMapperLow},
		{0x5BFF, RegionMapperLow},
		{0x5C00, RegionEXRAM},
		{0x5FFF, RegionEXRAM},
		{0x6000, RegionSRAM},
		{0x7FFF, RegionSRAM},
		{0x8000, RegionPRG},
		{0xFFFF, RegionPRG},
	} {
		assert.Equal(t, tc.want, DecodeRegion(tc.addr), "addr $%04X", tc.addr)
	}
}

func TestRAMMirroring(t *testing.T) {
	b := NewNesBus(nil, nil, nil, nil)
	b.Store(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		v, region := b.Load(mirror)
		assert.Equal(t, uint8(0x42), v, "mirror $%04X", mirror)
		assert.Equal(t, RegionRAM, region)
	}
	b.Store(0x1801, 0x24)
	v, _ := b.Load(0x0001)
	assert.Equal(t, uint8(0x24), v)
}

type recordPPU struct {
	reads  []uint16
	writes map[uint16]uint8
}

func (p *recordPPU) ReadRegister(reg uint16) uint8 {
	p.reads = append(p.reads, reg)
	return 0x21
}

func (p *recordPPU) WriteRegister(reg uint16, val uint8) {
	if p.writes == nil {
		p.writes = make(map[uint16]uint8)
	}
	p.writes[reg] = val
}

func TestPPUMirroring(t *testing.T) {
	ppu := &recordPPU{}
	b := NewNesBus(ppu, nil, nil, nil)
	// $2000 + n*8 all hit the same 8 registers.
	v, region := b.Load(0x3FFA)
	assert.Equal(t, uint8(0x21), v)
	assert.Equal(t, RegionPPURegs, region)
	assert.Equal(t, []uint16{0x2}, ppu.reads)

	b.Store(0x2009, 0x17)
	assert.Equal(t, uint8(0x17), ppu.writes[0x1])
}

type recordInput struct {
	strobes []uint8
	port    [2]uint8
}

func (i *recordInput) Strobe(val uint8) {
	i.strobes = append(i.strobes, val)
}

func (i *recordInput) Read(port int) uint8 {
	return i.port[port]
}

func TestControllerPorts(t *testing.T) {
	in := &recordInput{port: [2]uint8{0x01, 0x00}}
	b := NewNesBus(nil, nil, nil, in)
	b.Store(0x4016, 0x01)
	b.Store(0x4016, 0x00)
	assert.Equal(t, []uint8{0x01, 0x00}, in.strobes)
	v, _ := b.Load(0x4016)
	assert.Equal(t, uint8(0x01), v)
	v, _ = b.Load(0x4017)
	assert.Equal(t, uint8(0x00), v)
}

func TestOpenBusLatch(t *testing.T) {
	b := NewNesBus(nil, nil, nil, nil)
	b.Store(0x0000, 0x5A)
	b.Load(0x0000)
	// No PPU attached: its region floats at the last driven value.
	v, region := b.Load(0x2002)
	assert.Equal(t, uint8(0x5A), v)
	assert.Equal(t, RegionPPURegs, region)
	// $4014 is write only and floats on reads too.
	v, _ = b.Load(0x4014)
	assert.Equal(t, uint8(0x5A), v)
}

func TestCartridgeRegions(t *testing.T) {
	b := NewNesBus(nil, nil, nil, nil)
	b.Store(0x5C00, 0x11)
	v, region := b.Load(0x5C00)
	assert.Equal(t, uint8(0x11), v)
	assert.Equal(t, RegionEXRAM, region)

	b.Store(0x6000, 0x22)
	v, region = b.Load(0x7FFF)
	assert.Equal(t, RegionSRAM, region)
	assert.Equal(t, uint8(0x00), v)
	v, _ = b.Load(0x6000)
	assert.Equal(t, uint8(0x22), v)
}

func TestPeekIsNonIntrusive(t *testing.T) {
	ppu := &recordPPU{}
	b := NewNesBus(ppu, nil, nil, nil)
	b.Store(0x0000, 0x99)
	// Peek of a live register region must not touch the PPU or the
	// open bus latch.
	assert.Equal(t, uint8(0x99), b.Peek(0x2002))
	assert.Empty(t, ppu.reads)
	assert.Equal(t, uint8(0x99), b.Peek(0x0000))
}

func TestPowerOnClearsRAM(t *testing.T) {
	b := NewNesBus(nil, nil, nil, nil)
	b.Store(0x0123, 0xFF)
	b.Store(0x6000, 0x33)
	b.PowerOn()
	v, _ := b.Load(0x0123)
	assert.Equal(t, uint8(0x00), v)
	// Battery backed SRAM survives.
	v, _ = b.Load(0x6000)
	assert.Equal(t, uint8(0x33), v)
}

func TestFlat(t *testing.T) {
	f := NewFlat()
	f.Poke(0x8000, 0xA9)
	v, region := f.Load(0x8000)
	assert.Equal(t, uint8(0xA9), v)
	assert.Equal(t, RegionPRG, region)
	assert.Equal(t, RegionRAM, f.Store(0x0000, 0x01))
	assert.Equal(t, uint8(0x01), f.Peek(0x0000))
	f.PowerOn()
	// Flat banks keep their contents across power on so preloaded
	// programs survive reset.
	assert.Equal(t, uint8(0xA9), f.Peek(0x8000))
}
