package memory

// NesBus is the standard NES CPU bus: 2 KiB of system RAM mirrored
// through $0000-$1FFF, PPU registers mirrored every 8 bytes through
// $2000-$3FFF, the APU/IO block, and the cartridge regions. Any
// collaborator may be nil, in which case its region reads as open bus
// and writes are dropped.
//
// The open bus latch holds the last value driven on the data bus;
// unmapped reads return it.
type NesBus struct {
	ram    [0x800]uint8
	exram  [0x400]uint8
	sram   [0x2000]uint8
	ppu    PPU
	apu    APU
	mapper Mapper
	input  Input

	databus uint8
}

// NewNesBus wires up a bus with the given collaborators.
func NewNesBus(ppu PPU, apu APU, mapper Mapper, input Input) *NesBus {
	return &NesBus{
		ppu:    ppu,
		apu:    apu,
		mapper: mapper,
		input:  input,
	}
}

// Load implements the Bus interface.
func (b *NesBus) Load(addr uint16) (uint8, Region) {
	region := DecodeRegion(addr)
	val := b.databus
	switch region {
	case RegionRAM:
		val = b.ram[addr&0x7FF]
	case RegionPPURegs:
		if b.ppu != nil {
			val = b.ppu.ReadRegister(addr & 0x7)
		}
	case RegionIORegs:
		switch addr {
		case 0x4014:
			// Write only, reads float.
		case 0x4016:
			if b.input != nil {
				val = b.input.Read(0)
			}
		case 0x4017:
			if b.input != nil {
				val = b.input.Read(1)
			}
		default:
			if b.apu != nil {
				val = b.apu.ReadRegister(addr)
			}
		}
	case RegionMapperLow, RegionPRG:
		if b.mapper != nil {
			val = b.mapper.Load(addr)
		}
	case RegionEXRAM:
		val = b.exram[addr&0x3FF]
	case RegionSRAM:
		val = b.sram[addr&0x1FFF]
	}
	b.databus = val
	return val, region
}

// Store implements the Bus interface.
func (b *NesBus) Store(addr uint16, val uint8) Region {
	region := DecodeRegion(addr)
	b.databus = val
	switch region {
	case RegionRAM:
		b.ram[addr&0x7FF] = val
	case RegionPPURegs:
		if b.ppu != nil {
			b.ppu.WriteRegister(addr&0x7, val)
		}
	case RegionIORegs:
		switch addr {
		case 0x4014:
			// OAM DMA. The copy itself is driven by the CPU since it
			// owns the cycle stealing, not the bus.
		case 0x4016:
			if b.input != nil {
				b.input.Strobe(val)
			}
		default:
			if b.apu != nil {
				b.apu.WriteRegister(addr, val)
			}
		}
	case RegionMapperLow, RegionPRG:
		if b.mapper != nil {
			b.mapper.Store(addr, val)
		}
	case RegionEXRAM:
		b.exram[addr&0x3FF] = val
	case RegionSRAM:
		b.sram[addr&0x1FFF] = val
	}
	return region
}

// Peek implements the Bus interface. Registers with read side effects
// (PPU, APU, controllers) are not touched; their regions return the
// current open bus value.
func (b *NesBus) Peek(addr uint16) uint8 {
	switch DecodeRegion(addr) {
	case RegionRAM:
		return b.ram[addr&0x7FF]
	case RegionEXRAM:
		return b.exram[addr&0x3FF]
	case RegionSRAM:
		return b.sram[addr&0x1FFF]
	case RegionMapperLow, RegionPRG:
		if b.mapper != nil {
			return b.mapper.Load(addr)
		}
	}
	return b.databus
}

// Poke implements the Bus interface.
func (b *NesBus) Poke(addr uint16, val uint8) {
	switch DecodeRegion(addr) {
	case RegionRAM:
		b.ram[addr&0x7FF] = val
	case RegionEXRAM:
		b.exram[addr&0x3FF] = val
	case RegionSRAM:
		b.sram[addr&0x1FFF] = val
	case RegionMapperLow, RegionPRG:
		if b.mapper != nil {
			b.mapper.Store(addr, val)
		}
	}
}

// PowerOn implements the Bus interface and clears system RAM and the
// open bus latch. Cartridge SRAM is battery backed and survives.
func (b *NesBus) PowerOn() {
	for i := range b.ram {
		b.ram[i] = 0
	}
	for i := range b.exram {
		b.exram[i] = 0
	}
	b.databus = 0
}

// Flat is a 64 KiB flat memory with standard region decode. It backs
// test programs and the CLI harness where no real peripherals exist.
type Flat struct {
	mem     [1 << 16]uint8
	databus uint8
}

// NewFlat returns a zeroed Flat bank.
func NewFlat() *Flat {
	return &Flat{}
}

// Load implements the Bus interface.
func (f *Flat) Load(addr uint16) (uint8, Region) {
	val := f.mem[addr]
	f.databus = val
	return val, DecodeRegion(addr)
}

// Store implements the Bus interface.
func (f *Flat) Store(addr uint16, val uint8) Region {
	f.databus = val
	f.mem[addr] = val
	return DecodeRegion(addr)
}

// Peek implements the Bus interface.
func (f *Flat) Peek(addr uint16) uint8 {
	return f.mem[addr]
}

// Poke implements the Bus interface.
func (f *Flat) Poke(addr uint16, val uint8) {
	f.mem[addr] = val
}

// PowerOn implements the Bus interface. Contents are preserved so a
// preloaded program survives the CPU's reset sequence.
func (f *Flat) PowerOn() {
	f.databus = 0
}
