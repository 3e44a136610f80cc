package cpu

// Instruction semantics. Handlers run during the execute phase with the
// operand bytes already fetched; any bus traffic they generate costs
// real cycles through the pump.

// zeroCheck sets the Z flag based on the register contents.
func (p *Chip) zeroCheck(reg uint8) {
	p.P &^= P_ZERO
	if reg == 0 {
		p.P |= P_ZERO
	}
}

// negativeCheck sets the N flag based on the register contents.
func (p *Chip) negativeCheck(reg uint8) {
	p.P &^= P_NEGATIVE
	if reg&P_NEGATIVE != 0 {
		p.P |= P_NEGATIVE
	}
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value
// >= 0x100.
func (p *Chip) carryCheck(res uint16) {
	p.P &^= P_CARRY
	if res >= 0x100 {
		p.P |= P_CARRY
	}
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Chip) overflowCheck(reg uint8, arg uint8, res uint8) {
	p.P &^= P_OVERFLOW
	// If the original signs differ from the end sign bit
	if (reg^res)&(arg^res)&0x80 != 0 {
		p.P |= P_OVERFLOW
	}
}

// loadRegister inserts val into the register passed in and then does
// Z and N checks against the new value.
func (p *Chip) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroCheck(val)
	p.negativeCheck(val)
}

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results.
func (p *Chip) compare(reg uint8, val uint8) {
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
	// A-M done as 2's complement addition by ones complement and add 1.
	// This way we get valid sign extension and a carry bit test.
	p.carryCheck(uint16(reg) + uint16(^val) + 1)
}

// addCarry is the ADC core shared by ADC/SBC/RRA/ISC. The 2A03 has no
// decimal mode so this is pure binary math; SBC callers pass the ones
// complement of their operand.
func (p *Chip) addCarry(val uint8) {
	carry := p.P & P_CARRY
	sum := p.A + val + carry
	p.overflowCheck(p.A, val, sum)
	p.carryCheck(uint16(p.A) + uint16(val) + uint16(carry))
	p.loadRegister(&p.A, sum)
}

// Loads and stores.

func (p *Chip) iLDA(d *opcodeDef) { p.loadRegister(&p.A, p.fetchOperand(d)) }
func (p *Chip) iLDX(d *opcodeDef) { p.loadRegister(&p.X, p.fetchOperand(d)) }
func (p *Chip) iLDY(d *opcodeDef) { p.loadRegister(&p.Y, p.fetchOperand(d)) }

func (p *Chip) iSTA(d *opcodeDef) { p.storeOperand(d, p.A) }
func (p *Chip) iSTX(d *opcodeDef) { p.storeOperand(d, p.X) }
func (p *Chip) iSTY(d *opcodeDef) { p.storeOperand(d, p.Y) }

// iSAX stores A AND X without touching flags.
func (p *Chip) iSAX(d *opcodeDef) { p.storeOperand(d, p.A&p.X) }

// iLAX loads A and X with the same value.
func (p *Chip) iLAX(d *opcodeDef) {
	val := p.fetchOperand(d)
	p.loadRegister(&p.A, val)
	p.loadRegister(&p.X, val)
}

// iOAL is the immediate LAX variant. Hardware behaviour depends on bus
// contention; the stable A = X = A AND #i result is emulated.
func (p *Chip) iOAL(d *opcodeDef) {
	val := p.A & p.operand[0]
	p.loadRegister(&p.A, val)
	p.loadRegister(&p.X, val)
}

// iLAS ANDs memory with S and loads A, X and S from the result.
func (p *Chip) iLAS(d *opcodeDef) {
	p.S &= p.fetchOperand(d)
	p.loadRegister(&p.X, p.S)
	p.loadRegister(&p.A, p.S)
}

// Transfers.

func (p *Chip) iTAX(d *opcodeDef) { p.loadRegister(&p.X, p.A) }
func (p *Chip) iTAY(d *opcodeDef) { p.loadRegister(&p.Y, p.A) }
func (p *Chip) iTXA(d *opcodeDef) { p.loadRegister(&p.A, p.X) }
func (p *Chip) iTYA(d *opcodeDef) { p.loadRegister(&p.A, p.Y) }
func (p *Chip) iTSX(d *opcodeDef) { p.loadRegister(&p.X, p.S) }

// iTXS is the only transfer that doesn't touch flags.
func (p *Chip) iTXS(d *opcodeDef) { p.S = p.X }

// Stack operations.

func (p *Chip) iPHA(d *opcodeDef) { p.pushStack(p.A) }

// iPHP pushes P with S1 and B forced on, as the hardware does for
// everything except IRQ/NMI entry.
func (p *Chip) iPHP(d *opcodeDef) { p.pushStack(p.P | P_S1 | P_B) }

func (p *Chip) iPLA(d *opcodeDef) {
	// A read of the current stack happens while S increments.
	p.read(0x0100 | uint16(p.S))
	p.loadRegister(&p.A, p.popStack())
}

// iPLP pops the flags. S1 reads back as one and B is cleared in the
// live register.
func (p *Chip) iPLP(d *opcodeDef) {
	p.read(0x0100 | uint16(p.S))
	p.P = (p.popStack() | P_S1) &^ P_B
}

// Logical operations.

func (p *Chip) iAND(d *opcodeDef) { p.loadRegister(&p.A, p.A&p.fetchOperand(d)) }
func (p *Chip) iORA(d *opcodeDef) { p.loadRegister(&p.A, p.A|p.fetchOperand(d)) }
func (p *Chip) iEOR(d *opcodeDef) { p.loadRegister(&p.A, p.A^p.fetchOperand(d)) }

// iBIT ANDs against A for Z and copies the operand's top bits to N/V.
func (p *Chip) iBIT(d *opcodeDef) {
	val := p.fetchOperand(d)
	p.zeroCheck(p.A & val)
	p.negativeCheck(val)
	p.P &^= P_OVERFLOW
	if val&P_OVERFLOW != 0 {
		p.P |= P_OVERFLOW
	}
}

// Shifts and rotates.

func (p *Chip) iASL(d *opcodeDef) {
	if d.mode == ModeAccumulator {
		p.carryCheck(uint16(p.A) << 1)
		p.loadRegister(&p.A, p.A<<1)
		return
	}
	val := p.modify(d, func(old uint8) uint8 {
		p.carryCheck(uint16(old) << 1)
		return old << 1
	})
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func (p *Chip) iLSR(d *opcodeDef) {
	if d.mode == ModeAccumulator {
		p.carryCheck(uint16(p.A&0x01) << 8)
		p.loadRegister(&p.A, p.A>>1)
		return
	}
	val := p.modify(d, func(old uint8) uint8 {
		p.carryCheck(uint16(old&0x01) << 8)
		return old >> 1
	})
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func (p *Chip) iROL(d *opcodeDef) {
	if d.mode == ModeAccumulator {
		carry := p.P & P_CARRY
		p.carryCheck(uint16(p.A) << 1)
		p.loadRegister(&p.A, p.A<<1|carry)
		return
	}
	val := p.modify(d, func(old uint8) uint8 {
		carry := p.P & P_CARRY
		p.carryCheck(uint16(old) << 1)
		return old<<1 | carry
	})
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func (p *Chip) iROR(d *opcodeDef) {
	if d.mode == ModeAccumulator {
		carry := (p.P & P_CARRY) << 7
		p.carryCheck(uint16(p.A&0x01) << 8)
		p.loadRegister(&p.A, p.A>>1|carry)
		return
	}
	val := p.modify(d, func(old uint8) uint8 {
		carry := (p.P & P_CARRY) << 7
		p.carryCheck(uint16(old&0x01) << 8)
		return old>>1 | carry
	})
	p.zeroCheck(val)
	p.negativeCheck(val)
}

// Arithmetic.

func (p *Chip) iADC(d *opcodeDef) { p.addCarry(p.fetchOperand(d)) }

// iSBC is ones complement plus ADC in binary mode.
func (p *Chip) iSBC(d *opcodeDef) { p.addCarry(^p.fetchOperand(d)) }

func (p *Chip) iCMP(d *opcodeDef) { p.compare(p.A, p.fetchOperand(d)) }
func (p *Chip) iCPX(d *opcodeDef) { p.compare(p.X, p.fetchOperand(d)) }
func (p *Chip) iCPY(d *opcodeDef) { p.compare(p.Y, p.fetchOperand(d)) }

// Increments and decrements.

func (p *Chip) iINC(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 { return old + 1 })
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func (p *Chip) iDEC(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 { return old - 1 })
	p.zeroCheck(val)
	p.negativeCheck(val)
}

func (p *Chip) iINX(d *opcodeDef) { p.loadRegister(&p.X, p.X+1) }
func (p *Chip) iINY(d *opcodeDef) { p.loadRegister(&p.Y, p.Y+1) }
func (p *Chip) iDEX(d *opcodeDef) { p.loadRegister(&p.X, p.X-1) }
func (p *Chip) iDEY(d *opcodeDef) { p.loadRegister(&p.Y, p.Y-1) }

// Branches.

// performBranch pays the taken cycle and, when the target sits on a
// different page than the branch instruction, the fixup cycle. Both are
// pipeline reads on the bus.
func (p *Chip) performBranch() {
	p.read(p.PC)
	target := p.PC + uint16(int16(int8(p.operand[0])))
	if (target^p.opPC)&0xFF00 != 0 {
		p.read(p.PC&0xFF00 | target&0x00FF)
	}
	p.PC = target
}

func (p *Chip) iBCC(d *opcodeDef) {
	if p.P&P_CARRY == 0 {
		p.performBranch()
	}
}

func (p *Chip) iBCS(d *opcodeDef) {
	if p.P&P_CARRY != 0 {
		p.performBranch()
	}
}

func (p *Chip) iBEQ(d *opcodeDef) {
	if p.P&P_ZERO != 0 {
		p.performBranch()
	}
}

func (p *Chip) iBNE(d *opcodeDef) {
	if p.P&P_ZERO == 0 {
		p.performBranch()
	}
}

func (p *Chip) iBMI(d *opcodeDef) {
	if p.P&P_NEGATIVE != 0 {
		p.performBranch()
	}
}

func (p *Chip) iBPL(d *opcodeDef) {
	if p.P&P_NEGATIVE == 0 {
		p.performBranch()
	}
}

func (p *Chip) iBVS(d *opcodeDef) {
	if p.P&P_OVERFLOW != 0 {
		p.performBranch()
	}
}

func (p *Chip) iBVC(d *opcodeDef) {
	if p.P&P_OVERFLOW == 0 {
		p.performBranch()
	}
}

// Jumps and returns.

func (p *Chip) iJMP(d *opcodeDef) {
	p.PC = uint16(p.operand[0]) | uint16(p.operand[1])<<8
}

// iJMPIndirect reads the target through a pointer, reproducing the
// page wrap bug: a pointer ending in 0xFF fetches its high byte from
// the start of the same page.
func (p *Chip) iJMPIndirect(d *opcodeDef) {
	ptr := uint16(p.operand[0]) | uint16(p.operand[1])<<8
	lo := p.read(ptr)
	hi := p.read(ptr&0xFF00 | uint16(uint8(ptr)+1))
	p.PC = uint16(hi)<<8 | uint16(lo)
	p.ea = p.PC
	p.eaValid = true
}

func (p *Chip) iJSR(d *opcodeDef) {
	// A stack read burns the internal cycle, then the address of the
	// last operand byte is pushed. RTS adds one to compensate.
	p.read(0x0100 | uint16(p.S))
	ret := p.PC - 1
	p.pushStack(uint8(ret >> 8))
	p.pushStack(uint8(ret & 0xFF))
	p.PC = uint16(p.operand[0]) | uint16(p.operand[1])<<8
}

func (p *Chip) iRTS(d *opcodeDef) {
	p.read(0x0100 | uint16(p.S))
	lo := p.popStack()
	hi := p.popStack()
	p.PC = uint16(hi)<<8 | uint16(lo)
	p.read(p.PC)
	p.PC++
}

func (p *Chip) iRTI(d *opcodeDef) {
	p.read(0x0100 | uint16(p.S))
	p.P = (p.popStack() | P_S1) &^ P_B
	lo := p.popStack()
	hi := p.popStack()
	p.PC = uint16(hi)<<8 | uint16(lo)
}

// iBRK runs the interrupt entry with B set in the pushed status and the
// padding byte already skipped. A pending NMI hijacks the sequence: the
// BRK is suppressed and the NMI entry that follows this instruction
// takes its place.
func (p *Chip) iBRK(d *opcodeDef) {
	if p.nmiAsserted {
		return
	}
	p.pushStack(uint8(p.PC >> 8))
	p.pushStack(uint8(p.PC & 0xFF))
	p.pushStack(p.P | P_S1 | P_B)
	lo := p.read(IRQ_VECTOR)
	hi := p.read(IRQ_VECTOR + 1)
	p.PC = uint16(hi)<<8 | uint16(lo)
	p.P |= P_INTERRUPT
}

// Flag operations.

func (p *Chip) iCLC(d *opcodeDef) { p.P &^= P_CARRY }
func (p *Chip) iSEC(d *opcodeDef) { p.P |= P_CARRY }
func (p *Chip) iCLI(d *opcodeDef) { p.P &^= P_INTERRUPT }
func (p *Chip) iSEI(d *opcodeDef) { p.P |= P_INTERRUPT }
func (p *Chip) iCLD(d *opcodeDef) { p.P &^= P_DECIMAL }
func (p *Chip) iSED(d *opcodeDef) { p.P |= P_DECIMAL }
func (p *Chip) iCLV(d *opcodeDef) { p.P &^= P_OVERFLOW }

// iNOP covers the whole NOP family. The addressed variants still
// perform their operand read so mapper side effects and timing match.
func (p *Chip) iNOP(d *opcodeDef) {
	switch d.mode {
	case ModeImplied, ModeImmediate:
	default:
		p.fetchOperand(d)
	}
}

// iKIL never runs; the fetch phase jams the core first. Kept so every
// table entry has a handler.
func (p *Chip) iKIL(d *opcodeDef) {}

// Undocumented read-modify-write compounds.

// iSLO shifts memory left and ORs the result into A.
func (p *Chip) iSLO(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 {
		p.carryCheck(uint16(old) << 1)
		return old << 1
	})
	p.loadRegister(&p.A, p.A|val)
}

// iRLA rotates memory left and ANDs the result into A.
func (p *Chip) iRLA(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 {
		carry := p.P & P_CARRY
		p.carryCheck(uint16(old) << 1)
		return old<<1 | carry
	})
	p.loadRegister(&p.A, p.A&val)
}

// iSRE shifts memory right and EORs the result into A.
func (p *Chip) iSRE(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 {
		p.carryCheck(uint16(old&0x01) << 8)
		return old >> 1
	})
	p.loadRegister(&p.A, p.A^val)
}

// iRRA rotates memory right and ADCs the result, consuming the carry
// the rotate just produced.
func (p *Chip) iRRA(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 {
		carry := (p.P & P_CARRY) << 7
		p.carryCheck(uint16(old&0x01) << 8)
		return old>>1 | carry
	})
	p.addCarry(val)
}

// iDCP decrements memory then compares it against A.
func (p *Chip) iDCP(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 { return old - 1 })
	p.compare(p.A, val)
}

// iISC increments memory then SBCs it from A.
func (p *Chip) iISC(d *opcodeDef) {
	val := p.modify(d, func(old uint8) uint8 { return old + 1 })
	p.addCarry(^val)
}

// Undocumented immediate compounds.

// iANC ANDs immediate and copies N into C.
func (p *Chip) iANC(d *opcodeDef) {
	p.loadRegister(&p.A, p.A&p.operand[0])
	p.carryCheck(uint16(p.A) << 1)
}

// iALR ANDs immediate then LSRs the accumulator.
func (p *Chip) iALR(d *opcodeDef) {
	val := p.A & p.operand[0]
	p.carryCheck(uint16(val&0x01) << 8)
	p.loadRegister(&p.A, val>>1)
}

// iARR ANDs immediate then RORs the accumulator with the ALU quirks:
// C comes from bit 6 of the result and V from bit 6 XOR bit 5.
func (p *Chip) iARR(d *opcodeDef) {
	carry := (p.P & P_CARRY) << 7
	val := (p.A&p.operand[0])>>1 | carry
	p.loadRegister(&p.A, val)
	p.carryCheck(uint16(val) << 2 & 0x0100)
	p.P &^= P_OVERFLOW
	if (val>>6^val>>5)&0x01 != 0 {
		p.P |= P_OVERFLOW
	}
}

// iAXS sets X to (A AND X) minus the immediate, no borrow in.
func (p *Chip) iAXS(d *opcodeDef) {
	val := p.A & p.X
	p.carryCheck(uint16(val) + uint16(^p.operand[0]) + 1)
	p.loadRegister(&p.X, val-p.operand[0])
}

// iXAA is unstable on silicon. The conventional magic constant model
// (A OR 0xEE) AND X AND #i is emulated.
func (p *Chip) iXAA(d *opcodeDef) {
	p.loadRegister(&p.A, (p.A|0xEE)&p.X&p.operand[0])
}

// Unstable indexed stores. The stored value is masked by the high byte
// of the pre-index base address plus one, the typical silicon result.

func (p *Chip) unstableStore(d *opcodeDef, reg uint8) {
	addr := p.resolveEA(d)
	p.write(addr, reg&(uint8(p.opBase>>8)+1))
}

func (p *Chip) iSHY(d *opcodeDef) { p.unstableStore(d, p.Y) }
func (p *Chip) iSHX(d *opcodeDef) { p.unstableStore(d, p.X) }
func (p *Chip) iAHX(d *opcodeDef) { p.unstableStore(d, p.A&p.X) }

// iTAS additionally loads S from A AND X before the store.
func (p *Chip) iTAS(d *opcodeDef) {
	p.S = p.A & p.X
	p.unstableStore(d, p.S)
}
