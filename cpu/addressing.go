package cpu

// This file resolves addressing modes into effective addresses,
// performing the dummy reads the hardware performs along the way.
// Operand bytes were already consumed by the fetch phases, so only the
// post-fetch bus traffic happens here.

// resolveEA computes the effective address for the current instruction
// and records it for tracing. Indexed modes burn the extra cycle when
// the index crosses a page or when the descriptor always pays it
// (stores and RMW instructions).
func (p *Chip) resolveEA(d *opcodeDef) uint16 {
	var ea uint16
	switch d.mode {
	case ModeZeroPage:
		ea = uint16(p.operand[0])
	case ModeZeroPageX:
		// The un-indexed zero page address is read and discarded while
		// the index adds.
		p.read(uint16(p.operand[0]))
		ea = uint16(p.operand[0] + p.X)
	case ModeZeroPageY:
		p.read(uint16(p.operand[0]))
		ea = uint16(p.operand[0] + p.Y)
	case ModeAbsolute:
		ea = uint16(p.operand[0]) | uint16(p.operand[1])<<8
	case ModeAbsoluteX:
		ea = p.indexAbsolute(d, p.X)
	case ModeAbsoluteY:
		ea = p.indexAbsolute(d, p.Y)
	case ModeIndirectX:
		// Dummy read of the pointer byte, then the 16 bit pointer is
		// fetched from (d+X) wrapping within the zero page.
		p.read(uint16(p.operand[0]))
		ptr := p.operand[0] + p.X
		lo := p.read(uint16(ptr))
		hi := p.read(uint16(uint8(ptr + 1)))
		ea = uint16(hi)<<8 | uint16(lo)
		p.opBase = ea
	case ModeIndirectY:
		ptr := p.operand[0]
		lo := p.read(uint16(ptr))
		hi := p.read(uint16(uint8(ptr + 1)))
		base := uint16(hi)<<8 | uint16(lo)
		p.opBase = base
		ea = base + uint16(p.Y)
		if (ea^base)&0xFF00 != 0 || d.forceExtra {
			p.read(base&0xFF00 | ea&0x00FF)
		}
	default:
		// Immediate/implied/accumulator/relative have no memory
		// operand; Indirect is JMP only and handled there.
		return 0
	}
	p.ea = ea
	p.eaValid = true
	return ea
}

// indexAbsolute adds reg to the absolute base with the hardware's
// partial-sum dummy read on page cross (or always for descriptors that
// force it).
func (p *Chip) indexAbsolute(d *opcodeDef, reg uint8) uint16 {
	base := uint16(p.operand[0]) | uint16(p.operand[1])<<8
	p.opBase = base
	ea := base + uint16(reg)
	if (ea^base)&0xFF00 != 0 || d.forceExtra {
		p.read(base&0xFF00 | ea&0x00FF)
	}
	return ea
}

// fetchOperand produces the instruction's input value, consuming the
// read cycle for memory modes.
func (p *Chip) fetchOperand(d *opcodeDef) uint8 {
	switch d.mode {
	case ModeImmediate:
		return p.operand[0]
	case ModeAccumulator:
		return p.A
	}
	return p.read(p.resolveEA(d))
}

// storeOperand routes a register value out through the addressing mode.
func (p *Chip) storeOperand(d *opcodeDef, val uint8) {
	p.write(p.resolveEA(d), val)
}

// modify runs the read-modify-write bus pattern: read the operand,
// write the unmodified value back while the ALU works, then write the
// result. Returns the result for combo instructions that fold it into
// A.
func (p *Chip) modify(d *opcodeDef, f func(uint8) uint8) uint8 {
	addr := p.resolveEA(d)
	old := p.read(addr)
	p.write(addr, old)
	val := f(old)
	p.write(addr, val)
	return val
}
