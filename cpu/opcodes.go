package cpu

// Mode enumerates the 2A03 addressing modes.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// opcodeDef describes one opcode: its handler, addressing mode, base
// cycle cost, whether it is a documented instruction, and whether its
// indexed addressing always pays the page cross cycle (stores and RMW
// instructions do).
type opcodeDef struct {
	mnemonic   string
	exec       func(*Chip, *opcodeDef)
	mode       Mode
	cycles     int
	documented bool
	forceExtra bool
}

// size returns the instruction length in bytes including the opcode.
func (d *opcodeDef) size() int {
	switch d.mode {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 3
	}
	return 2
}

// isHalt reports membership in the KIL/JAM set: executing any of these
// stops the clock until reset.
func isHalt(op uint8) bool {
	switch op {
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		return true
	}
	return false
}

// Descriptor is the read only public view of an opcode table entry.
type Descriptor struct {
	Mnemonic   string
	Mode       Mode
	Size       int
	Cycles     int
	Documented bool
	ForceExtra bool
}

// Describe returns the descriptor for an opcode byte.
func Describe(op uint8) Descriptor {
	d := &opcodes[op]
	return Descriptor{
		Mnemonic:   d.mnemonic,
		Mode:       d.mode,
		Size:       d.size(),
		Cycles:     d.cycles,
		Documented: d.documented,
		ForceExtra: d.forceExtra,
	}
}

// Opcode matrix taken from:
// http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes
//
// NOTE: The above lists 0xAB as LAX #i but we call it OAL since it has
// odd behavior and needs its own code compared to other LAX.
//
// Description of undocumented opcodes:
//
// http://www.ffd2.com/fridge/docs/6502-NMOS.extra.opcodes
// http://nesdev.com/6502_cpu.txt
var opcodes = [256]opcodeDef{
	0x00: {"BRK", (*Chip).iBRK, ModeImmediate, 7, true, false},
	0x01: {"ORA", (*Chip).iORA, ModeIndirectX, 6, true, false},
	0x02: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x03: {"SLO", (*Chip).iSLO, ModeIndirectX, 8, false, false},
	0x04: {"NOP", (*Chip).iNOP, ModeZeroPage, 3, false, false},
	0x05: {"ORA", (*Chip).iORA, ModeZeroPage, 3, true, false},
	0x06: {"ASL", (*Chip).iASL, ModeZeroPage, 5, true, false},
	0x07: {"SLO", (*Chip).iSLO, ModeZeroPage, 5, false, false},
	0x08: {"PHP", (*Chip).iPHP, ModeImplied, 3, true, false},
	0x09: {"ORA", (*Chip).iORA, ModeImmediate, 2, true, false},
	0x0A: {"ASL", (*Chip).iASL, ModeAccumulator, 2, true, false},
	0x0B: {"ANC", (*Chip).iANC, ModeImmediate, 2, false, false},
	0x0C: {"NOP", (*Chip).iNOP, ModeAbsolute, 4, false, false},
	0x0D: {"ORA", (*Chip).iORA, ModeAbsolute, 4, true, false},
	0x0E: {"ASL", (*Chip).iASL, ModeAbsolute, 6, true, false},
	0x0F: {"SLO", (*Chip).iSLO, ModeAbsolute, 6, false, false},
	0x10: {"BPL", (*Chip).iBPL, ModeRelative, 2, true, false},
	0x11: {"ORA", (*Chip).iORA, ModeIndirectY, 5, true, false},
	0x12: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x13: {"SLO", (*Chip).iSLO, ModeIndirectY, 8, false, true},
	0x14: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0x15: {"ORA", (*Chip).iORA, ModeZeroPageX, 4, true, false},
	0x16: {"ASL", (*Chip).iASL, ModeZeroPageX, 6, true, false},
	0x17: {"SLO", (*Chip).iSLO, ModeZeroPageX, 6, false, false},
	0x18: {"CLC", (*Chip).iCLC, ModeImplied, 2, true, false},
	0x19: {"ORA", (*Chip).iORA, ModeAbsoluteY, 4, true, false},
	0x1A: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0x1B: {"SLO", (*Chip).iSLO, ModeAbsoluteY, 7, false, true},
	0x1C: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0x1D: {"ORA", (*Chip).iORA, ModeAbsoluteX, 4, true, false},
	0x1E: {"ASL", (*Chip).iASL, ModeAbsoluteX, 7, true, true},
	0x1F: {"SLO", (*Chip).iSLO, ModeAbsoluteX, 7, false, true},
	0x20: {"JSR", (*Chip).iJSR, ModeAbsolute, 6, true, false},
	0x21: {"AND", (*Chip).iAND, ModeIndirectX, 6, true, false},
	0x22: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x23: {"RLA", (*Chip).iRLA, ModeIndirectX, 8, false, false},
	0x24: {"BIT", (*Chip).iBIT, ModeZeroPage, 3, true, false},
	0x25: {"AND", (*Chip).iAND, ModeZeroPage, 3, true, false},
	0x26: {"ROL", (*Chip).iROL, ModeZeroPage, 5, true, false},
	0x27: {"RLA", (*Chip).iRLA, ModeZeroPage, 5, false, false},
	0x28: {"PLP", (*Chip).iPLP, ModeImplied, 4, true, false},
	0x29: {"AND", (*Chip).iAND, ModeImmediate, 2, true, false},
	0x2A: {"ROL", (*Chip).iROL, ModeAccumulator, 2, true, false},
	0x2B: {"ANC", (*Chip).iANC, ModeImmediate, 2, false, false},
	0x2C: {"BIT", (*Chip).iBIT, ModeAbsolute, 4, true, false},
	0x2D: {"AND", (*Chip).iAND, ModeAbsolute, 4, true, false},
	0x2E: {"ROL", (*Chip).iROL, ModeAbsolute, 6, true, false},
	0x2F: {"RLA", (*Chip).iRLA, ModeAbsolute, 6, false, false},
	0x30: {"BMI", (*Chip).iBMI, ModeRelative, 2, true, false},
	0x31: {"AND", (*Chip).iAND, ModeIndirectY, 5, true, false},
	0x32: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x33: {"RLA", (*Chip).iRLA, ModeIndirectY, 8, false, true},
	0x34: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0x35: {"AND", (*Chip).iAND, ModeZeroPageX, 4, true, false},
	0x36: {"ROL", (*Chip).iROL, ModeZeroPageX, 6, true, false},
	0x37: {"RLA", (*Chip).iRLA, ModeZeroPageX, 6, false, false},
	0x38: {"SEC", (*Chip).iSEC, ModeImplied, 2, true, false},
	0x39: {"AND", (*Chip).iAND, ModeAbsoluteY, 4, true, false},
	0x3A: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0x3B: {"RLA", (*Chip).iRLA, ModeAbsoluteY, 7, false, true},
	0x3C: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0x3D: {"AND", (*Chip).iAND, ModeAbsoluteX, 4, true, false},
	0x3E: {"ROL", (*Chip).iROL, ModeAbsoluteX, 7, true, true},
	0x3F: {"RLA", (*Chip).iRLA, ModeAbsoluteX, 7, false, true},
	0x40: {"RTI", (*Chip).iRTI, ModeImplied, 6, true, false},
	0x41: {"EOR", (*Chip).iEOR, ModeIndirectX, 6, true, false},
	0x42: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x43: {"SRE", (*Chip).iSRE, ModeIndirectX, 8, false, false},
	0x44: {"NOP", (*Chip).iNOP, ModeZeroPage, 3, false, false},
	0x45: {"EOR", (*Chip).iEOR, ModeZeroPage, 3, true, false},
	0x46: {"LSR", (*Chip).iLSR, ModeZeroPage, 5, true, false},
	0x47: {"SRE", (*Chip).iSRE, ModeZeroPage, 5, false, false},
	0x48: {"PHA", (*Chip).iPHA, ModeImplied, 3, true, false},
	0x49: {"EOR", (*Chip).iEOR, ModeImmediate, 2, true, false},
	0x4A: {"LSR", (*Chip).iLSR, ModeAccumulator, 2, true, false},
	0x4B: {"ALR", (*Chip).iALR, ModeImmediate, 2, false, false},
	0x4C: {"JMP", (*Chip).iJMP, ModeAbsolute, 3, true, false},
	0x4D: {"EOR", (*Chip).iEOR, ModeAbsolute, 4, true, false},
	0x4E: {"LSR", (*Chip).iLSR, ModeAbsolute, 6, true, false},
	0x4F: {"SRE", (*Chip).iSRE, ModeAbsolute, 6, false, false},
	0x50: {"BVC", (*Chip).iBVC, ModeRelative, 2, true, false},
	0x51: {"EOR", (*Chip).iEOR, ModeIndirectY, 5, true, false},
	0x52: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x53: {"SRE", (*Chip).iSRE, ModeIndirectY, 8, false, true},
	0x54: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0x55: {"EOR", (*Chip).iEOR, ModeZeroPageX, 4, true, false},
	0x56: {"LSR", (*Chip).iLSR, ModeZeroPageX, 6, true, false},
	0x57: {"SRE", (*Chip).iSRE, ModeZeroPageX, 6, false, false},
	0x58: {"CLI", (*Chip).iCLI, ModeImplied, 2, true, false},
	0x59: {"EOR", (*Chip).iEOR, ModeAbsoluteY, 4, true, false},
	0x5A: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0x5B: {"SRE", (*Chip).iSRE, ModeAbsoluteY, 7, false, true},
	0x5C: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0x5D: {"EOR", (*Chip).iEOR, ModeAbsoluteX, 4, true, false},
	0x5E: {"LSR", (*Chip).iLSR, ModeAbsoluteX, 7, true, true},
	0x5F: {"SRE", (*Chip).iSRE, ModeAbsoluteX, 7, false, true},
	0x60: {"RTS", (*Chip).iRTS, ModeImplied, 6, true, false},
	0x61: {"ADC", (*Chip).iADC, ModeIndirectX, 6, true, false},
	0x62: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x63: {"RRA", (*Chip).iRRA, ModeIndirectX, 8, false, false},
	0x64: {"NOP", (*Chip).iNOP, ModeZeroPage, 3, false, false},
	0x65: {"ADC", (*Chip).iADC, ModeZeroPage, 3, true, false},
	0x66: {"ROR", (*Chip).iROR, ModeZeroPage, 5, true, false},
	0x67: {"RRA", (*Chip).iRRA, ModeZeroPage, 5, false, false},
	0x68: {"PLA", (*Chip).iPLA, ModeImplied, 4, true, false},
	0x69: {"ADC", (*Chip).iADC, ModeImmediate, 2, true, false},
	0x6A: {"ROR", (*Chip).iROR, ModeAccumulator, 2, true, false},
	0x6B: {"ARR", (*Chip).iARR, ModeImmediate, 2, false, false},
	0x6C: {"JMP", (*Chip).iJMPIndirect, ModeIndirect, 5, true, false},
	0x6D: {"ADC", (*Chip).iADC, ModeAbsolute, 4, true, false},
	0x6E: {"ROR", (*Chip).iROR, ModeAbsolute, 6, true, false},
	0x6F: {"RRA", (*Chip).iRRA, ModeAbsolute, 6, false, false},
	0x70: {"BVS", (*Chip).iBVS, ModeRelative, 2, true, false},
	0x71: {"ADC", (*Chip).iADC, ModeIndirectY, 5, true, false},
	0x72: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x73: {"RRA", (*Chip).iRRA, ModeIndirectY, 8, false, true},
	0x74: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0x75: {"ADC", (*Chip).iADC, ModeZeroPageX, 4, true, false},
	0x76: {"ROR", (*Chip).iROR, ModeZeroPageX, 6, true, false},
	0x77: {"RRA", (*Chip).iRRA, ModeZeroPageX, 6, false, false},
	0x78: {"SEI", (*Chip).iSEI, ModeImplied, 2, true, false},
	0x79: {"ADC", (*Chip).iADC, ModeAbsoluteY, 4, true, false},
	0x7A: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0x7B: {"RRA", (*Chip).iRRA, ModeAbsoluteY, 7, false, true},
	0x7C: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0x7D: {"ADC", (*Chip).iADC, ModeAbsoluteX, 4, true, false},
	0x7E: {"ROR", (*Chip).iROR, ModeAbsoluteX, 7, true, true},
	0x7F: {"RRA", (*Chip).iRRA, ModeAbsoluteX, 7, false, true},
	0x80: {"NOP", (*Chip).iNOP, ModeImmediate, 2, false, false},
	0x81: {"STA", (*Chip).iSTA, ModeIndirectX, 6, true, false},
	0x82: {"NOP", (*Chip).iNOP, ModeImmediate, 2, false, false},
	0x83: {"SAX", (*Chip).iSAX, ModeIndirectX, 6, false, false},
	0x84: {"STY", (*Chip).iSTY, ModeZeroPage, 3, true, false},
	0x85: {"STA", (*Chip).iSTA, ModeZeroPage, 3, true, false},
	0x86: {"STX", (*Chip).iSTX, ModeZeroPage, 3, true, false},
	0x87: {"SAX", (*Chip).iSAX, ModeZeroPage, 3, false, false},
	0x88: {"DEY", (*Chip).iDEY, ModeImplied, 2, true, false},
	0x89: {"NOP", (*Chip).iNOP, ModeImmediate, 2, false, false},
	0x8A: {"TXA", (*Chip).iTXA, ModeImplied, 2, true, false},
	0x8B: {"XAA", (*Chip).iXAA, ModeImmediate, 2, false, false},
	0x8C: {"STY", (*Chip).iSTY, ModeAbsolute, 4, true, false},
	0x8D: {"STA", (*Chip).iSTA, ModeAbsolute, 4, true, false},
	0x8E: {"STX", (*Chip).iSTX, ModeAbsolute, 4, true, false},
	0x8F: {"SAX", (*Chip).iSAX, ModeAbsolute, 4, false, false},
	0x90: {"BCC", (*Chip).iBCC, ModeRelative, 2, true, false},
	0x91: {"STA", (*Chip).iSTA, ModeIndirectY, 6, true, true},
	0x92: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0x93: {"AHX", (*Chip).iAHX, ModeIndirectY, 6, false, true},
	0x94: {"STY", (*Chip).iSTY, ModeZeroPageX, 4, true, false},
	0x95: {"STA", (*Chip).iSTA, ModeZeroPageX, 4, true, false},
	0x96: {"STX", (*Chip).iSTX, ModeZeroPageY, 4, true, false},
	0x97: {"SAX", (*Chip).iSAX, ModeZeroPageY, 4, false, false},
	0x98: {"TYA", (*Chip).iTYA, ModeImplied, 2, true, false},
	0x99: {"STA", (*Chip).iSTA, ModeAbsoluteY, 5, true, true},
	0x9A: {"TXS", (*Chip).iTXS, ModeImplied, 2, true, false},
	0x9B: {"TAS", (*Chip).iTAS, ModeAbsoluteY, 5, false, true},
	0x9C: {"SHY", (*Chip).iSHY, ModeAbsoluteX, 5, false, true},
	0x9D: {"STA", (*Chip).iSTA, ModeAbsoluteX, 5, true, true},
	0x9E: {"SHX", (*Chip).iSHX, ModeAbsoluteY, 5, false, true},
	0x9F: {"AHX", (*Chip).iAHX, ModeAbsoluteY, 5, false, true},
	0xA0: {"LDY", (*Chip).iLDY, ModeImmediate, 2, true, false},
	0xA1: {"LDA", (*Chip).iLDA, ModeIndirectX, 6, true, false},
	0xA2: {"LDX", (*Chip).iLDX, ModeImmediate, 2, true, false},
	0xA3: {"LAX", (*Chip).iLAX, ModeIndirectX, 6, false, false},
	0xA4: {"LDY", (*Chip).iLDY, ModeZeroPage, 3, true, false},
	0xA5: {"LDA", (*Chip).iLDA, ModeZeroPage, 3, true, false},
	0xA6: {"LDX", (*Chip).iLDX, ModeZeroPage, 3, true, false},
	0xA7: {"LAX", (*Chip).iLAX, ModeZeroPage, 3, false, false},
	0xA8: {"TAY", (*Chip).iTAY, ModeImplied, 2, true, false},
	0xA9: {"LDA", (*Chip).iLDA, ModeImmediate, 2, true, false},
	0xAA: {"TAX", (*Chip).iTAX, ModeImplied, 2, true, false},
	0xAB: {"OAL", (*Chip).iOAL, ModeImmediate, 2, false, false},
	0xAC: {"LDY", (*Chip).iLDY, ModeAbsolute, 4, true, false},
	0xAD: {"LDA", (*Chip).iLDA, ModeAbsolute, 4, true, false},
	0xAE: {"LDX", (*Chip).iLDX, ModeAbsolute, 4, true, false},
	0xAF: {"LAX", (*Chip).iLAX, ModeAbsolute, 4, false, false},
	0xB0: {"BCS", (*Chip).iBCS, ModeRelative, 2, true, false},
	0xB1: {"LDA", (*Chip).iLDA, ModeIndirectY, 5, true, false},
	0xB2: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0xB3: {"LAX", (*Chip).iLAX, ModeIndirectY, 5, false, false},
	0xB4: {"LDY", (*Chip).iLDY, ModeZeroPageX, 4, true, false},
	0xB5: {"LDA", (*Chip).iLDA, ModeZeroPageX, 4, true, false},
	0xB6: {"LDX", (*Chip).iLDX, ModeZeroPageY, 4, true, false},
	0xB7: {"LAX", (*Chip).iLAX, ModeZeroPageY, 4, false, false},
	0xB8: {"CLV", (*Chip).iCLV, ModeImplied, 2, true, false},
	0xB9: {"LDA", (*Chip).iLDA, ModeAbsoluteY, 4, true, false},
	0xBA: {"TSX", (*Chip).iTSX, ModeImplied, 2, true, false},
	0xBB: {"LAS", (*Chip).iLAS, ModeAbsoluteY, 4, false, false},
	0xBC: {"LDY", (*Chip).iLDY, ModeAbsoluteX, 4, true, false},
	0xBD: {"LDA", (*Chip).iLDA, ModeAbsoluteX, 4, true, false},
	0xBE: {"LDX", (*Chip).iLDX, ModeAbsoluteY, 4, true, false},
	0xBF: {"LAX", (*Chip).iLAX, ModeAbsoluteY, 4, false, false},
	0xC0: {"CPY", (*Chip).iCPY, ModeImmediate, 2, true, false},
	0xC1: {"CMP", (*Chip).iCMP, ModeIndirectX, 6, true, false},
	0xC2: {"NOP", (*Chip).iNOP, ModeImmediate, 2, false, false},
	0xC3: {"DCP", (*Chip).iDCP, ModeIndirectX, 8, false, false},
	0xC4: {"CPY", (*Chip).iCPY, ModeZeroPage, 3, true, false},
	0xC5: {"CMP", (*Chip).iCMP, ModeZeroPage, 3, true, false},
	0xC6: {"DEC", (*Chip).iDEC, ModeZeroPage, 5, true, false},
	0xC7: {"DCP", (*Chip).iDCP, ModeZeroPage, 5, false, false},
	0xC8: {"INY", (*Chip).iINY, ModeImplied, 2, true, false},
	0xC9: {"CMP", (*Chip).iCMP, ModeImmediate, 2, true, false},
	0xCA: {"DEX", (*Chip).iDEX, ModeImplied, 2, true, false},
	0xCB: {"AXS", (*Chip).iAXS, ModeImmediate, 2, false, false},
	0xCC: {"CPY", (*Chip).iCPY, ModeAbsolute, 4, true, false},
	0xCD: {"CMP", (*Chip).iCMP, ModeAbsolute, 4, true, false},
	0xCE: {"DEC", (*Chip).iDEC, ModeAbsolute, 6, true, false},
	0xCF: {"DCP", (*Chip).iDCP, ModeAbsolute, 6, false, false},
	0xD0: {"BNE", (*Chip).iBNE, ModeRelative, 2, true, false},
	0xD1: {"CMP", (*Chip).iCMP, ModeIndirectY, 5, true, false},
	0xD2: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0xD3: {"DCP", (*Chip).iDCP, ModeIndirectY, 8, false, true},
	0xD4: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0xD5: {"CMP", (*Chip).iCMP, ModeZeroPageX, 4, true, false},
	0xD6: {"DEC", (*Chip).iDEC, ModeZeroPageX, 6, true, false},
	0xD7: {"DCP", (*Chip).iDCP, ModeZeroPageX, 6, false, false},
	0xD8: {"CLD", (*Chip).iCLD, ModeImplied, 2, true, false},
	0xD9: {"CMP", (*Chip).iCMP, ModeAbsoluteY, 4, true, false},
	0xDA: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0xDB: {"DCP", (*Chip).iDCP, ModeAbsoluteY, 7, false, true},
	0xDC: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0xDD: {"CMP", (*Chip).iCMP, ModeAbsoluteX, 4, true, false},
	0xDE: {"DEC", (*Chip).iDEC, ModeAbsoluteX, 7, true, true},
	0xDF: {"DCP", (*Chip).iDCP, ModeAbsoluteX, 7, false, true},
	0xE0: {"CPX", (*Chip).iCPX, ModeImmediate, 2, true, false},
	0xE1: {"SBC", (*Chip).iSBC, ModeIndirectX, 6, true, false},
	0xE2: {"NOP", (*Chip).iNOP, ModeImmediate, 2, false, false},
	0xE3: {"ISC", (*Chip).iISC, ModeIndirectX, 8, false, false},
	0xE4: {"CPX", (*Chip).iCPX, ModeZeroPage, 3, true, false},
	0xE5: {"SBC", (*Chip).iSBC, ModeZeroPage, 3, true, false},
	0xE6: {"INC", (*Chip).iINC, ModeZeroPage, 5, true, false},
	0xE7: {"ISC", (*Chip).iISC, ModeZeroPage, 5, false, false},
	0xE8: {"INX", (*Chip).iINX, ModeImplied, 2, true, false},
	0xE9: {"SBC", (*Chip).iSBC, ModeImmediate, 2, true, false},
	0xEA: {"NOP", (*Chip).iNOP, ModeImplied, 2, true, false},
	0xEB: {"SBC", (*Chip).iSBC, ModeImmediate, 2, false, false},
	0xEC: {"CPX", (*Chip).iCPX, ModeAbsolute, 4, true, false},
	0xED: {"SBC", (*Chip).iSBC, ModeAbsolute, 4, true, false},
	0xEE: {"INC", (*Chip).iINC, ModeAbsolute, 6, true, false},
	0xEF: {"ISC", (*Chip).iISC, ModeAbsolute, 6, false, false},
	0xF0: {"BEQ", (*Chip).iBEQ, ModeRelative, 2, true, false},
	0xF1: {"SBC", (*Chip).iSBC, ModeIndirectY, 5, true, false},
	0xF2: {"KIL", (*Chip).iKIL, ModeImplied, 0, false, false},
	0xF3: {"ISC", (*Chip).iISC, ModeIndirectY, 8, false, true},
	0xF4: {"NOP", (*Chip).iNOP, ModeZeroPageX, 4, false, false},
	0xF5: {"SBC", (*Chip).iSBC, ModeZeroPageX, 4, true, false},
	0xF6: {"INC", (*Chip).iINC, ModeZeroPageX, 6, true, false},
	0xF7: {"ISC", (*Chip).iISC, ModeZeroPageX, 6, false, false},
	0xF8: {"SED", (*Chip).iSED, ModeImplied, 2, true, false},
	0xF9: {"SBC", (*Chip).iSBC, ModeAbsoluteY, 4, true, false},
	0xFA: {"NOP", (*Chip).iNOP, ModeImplied, 2, false, false},
	0xFB: {"ISC", (*Chip).iISC, ModeAbsoluteY, 7, false, true},
	0xFC: {"NOP", (*Chip).iNOP, ModeAbsoluteX, 4, false, false},
	0xFD: {"SBC", (*Chip).iSBC, ModeAbsoluteX, 4, true, false},
	0xFE: {"INC", (*Chip).iINC, ModeAbsoluteX, 7, true, true},
	0xFF: {"ISC", (*Chip).iISC, ModeAbsoluteX, 7, false, true},
}
