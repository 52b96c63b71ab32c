package cpu

// An Opcode associates a byte value (0x00-0xFF) with the mnemonic, addressing
// mode, operation, and base cycle count of the instruction it invokes.
//
// All 256 possible byte values are populated: the 151 legal opcodes, the
// nineteen commonly-emulated illegal opcodes, and the remaining undefined
// bytes mapped to NOP or KIL variants, exactly as the source's lookup table
// does. A map (as opposed to this fixed array) cannot express that
// exhaustiveness as directly.
type Opcode struct {
	Name string

	Mode AddressingMode
	Op   func(c *Chip) bool

	// Cycles is the base cycle count; Clock adds one more if both the
	// addressing mode's and the operation's page-cross hints are true.
	Cycles byte
}

func (o Opcode) addr() func(c *Chip) bool { return addressingFuncs[o.Mode] }

// Opcodes is the 256-entry dispatch table, reproduced bit-for-bit from the
// source's lookup array (name, operation, addressing mode, cycles per row).
var Opcodes = [256]Opcode{
	0x00: {"BRK", Implied, (*Chip).BRK, 7},
	0x01: {"ORA", IndirectX, (*Chip).ORA, 6},
	0x02: {"KIL", Implied, (*Chip).KIL, 2},
	0x03: {"SLO", IndirectX, (*Chip).SLO, 8},
	0x04: {"NOP", ZeroPage, (*Chip).NOP, 3},
	0x05: {"ORA", ZeroPage, (*Chip).ORA, 3},
	0x06: {"ASL", ZeroPage, (*Chip).ASL, 5},
	0x07: {"SLO", ZeroPage, (*Chip).SLO, 5},
	0x08: {"PHP", Implied, (*Chip).PHP, 3},
	0x09: {"ORA", Immediate, (*Chip).ORA, 2},
	0x0A: {"ASL", Accumulator, (*Chip).ASL, 2},
	0x0B: {"ANC", Immediate, (*Chip).ANC, 2},
	0x0C: {"NOP", Absolute, (*Chip).NOP, 4},
	0x0D: {"ORA", Absolute, (*Chip).ORA, 4},
	0x0E: {"ASL", Absolute, (*Chip).ASL, 6},
	0x0F: {"SLO", Absolute, (*Chip).SLO, 6},

	0x10: {"BPL", Relative, (*Chip).BPL, 2},
	0x11: {"ORA", IndirectY, (*Chip).ORA, 5},
	0x12: {"KIL", Implied, (*Chip).KIL, 2},
	0x13: {"SLO", IndirectY, (*Chip).SLO, 8},
	0x14: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0x15: {"ORA", ZeroPageX, (*Chip).ORA, 4},
	0x16: {"ASL", ZeroPageX, (*Chip).ASL, 6},
	0x17: {"SLO", ZeroPageX, (*Chip).SLO, 6},
	0x18: {"CLC", Implied, (*Chip).CLC, 2},
	0x19: {"ORA", AbsoluteY, (*Chip).ORA, 4},
	0x1A: {"NOP", Implied, (*Chip).NOP, 2},
	0x1B: {"SLO", AbsoluteY, (*Chip).SLO, 7},
	0x1C: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0x1D: {"ORA", AbsoluteX, (*Chip).ORA, 4},
	0x1E: {"ASL", AbsoluteX, (*Chip).ASL, 7},
	0x1F: {"SLO", AbsoluteX, (*Chip).SLO, 7},

	0x20: {"JSR", Absolute, (*Chip).JSR, 6},
	0x21: {"AND", IndirectX, (*Chip).AND, 6},
	0x22: {"KIL", Implied, (*Chip).KIL, 2},
	0x23: {"RLA", IndirectX, (*Chip).RLA, 8},
	0x24: {"BIT", ZeroPage, (*Chip).BIT, 3},
	0x25: {"AND", ZeroPage, (*Chip).AND, 3},
	0x26: {"ROL", ZeroPage, (*Chip).ROL, 5},
	0x27: {"RLA", ZeroPage, (*Chip).RLA, 5},
	0x28: {"PLP", Implied, (*Chip).PLP, 4},
	0x29: {"AND", Immediate, (*Chip).AND, 2},
	0x2A: {"ROL", Accumulator, (*Chip).ROL, 2},
	0x2B: {"ANC", Immediate, (*Chip).ANC, 2},
	0x2C: {"BIT", Absolute, (*Chip).BIT, 4},
	0x2D: {"AND", Absolute, (*Chip).AND, 4},
	0x2E: {"ROL", Absolute, (*Chip).ROL, 6},
	0x2F: {"RLA", Absolute, (*Chip).RLA, 6},

	0x30: {"BMI", Relative, (*Chip).BMI, 2},
	0x31: {"AND", IndirectY, (*Chip).AND, 5},
	0x32: {"KIL", Implied, (*Chip).KIL, 2},
	0x33: {"RLA", IndirectY, (*Chip).RLA, 8},
	0x34: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0x35: {"AND", ZeroPageX, (*Chip).AND, 4},
	0x36: {"ROL", ZeroPageX, (*Chip).ROL, 6},
	0x37: {"RLA", ZeroPageX, (*Chip).RLA, 6},
	0x38: {"SEC", Implied, (*Chip).SEC, 2},
	0x39: {"AND", AbsoluteY, (*Chip).AND, 4},
	0x3A: {"NOP", Implied, (*Chip).NOP, 2},
	0x3B: {"RLA", AbsoluteY, (*Chip).RLA, 7},
	0x3C: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0x3D: {"AND", AbsoluteX, (*Chip).AND, 4},
	0x3E: {"ROL", AbsoluteX, (*Chip).ROL, 7},
	0x3F: {"RLA", AbsoluteX, (*Chip).RLA, 7},

	0x40: {"RTI", Implied, (*Chip).RTI, 6},
	0x41: {"EOR", IndirectX, (*Chip).EOR, 6},
	0x42: {"KIL", Implied, (*Chip).KIL, 2},
	0x43: {"SRE", IndirectX, (*Chip).SRE, 8},
	0x44: {"NOP", ZeroPage, (*Chip).NOP, 3},
	0x45: {"EOR", ZeroPage, (*Chip).EOR, 3},
	0x46: {"LSR", ZeroPage, (*Chip).LSR, 5},
	0x47: {"SRE", ZeroPage, (*Chip).SRE, 5},
	0x48: {"PHA", Implied, (*Chip).PHA, 3},
	0x49: {"EOR", Immediate, (*Chip).EOR, 2},
	0x4A: {"LSR", Accumulator, (*Chip).LSR, 2},
	0x4B: {"ASR", Immediate, (*Chip).ASR, 2},
	0x4C: {"JMP", Absolute, (*Chip).JMP, 3},
	0x4D: {"EOR", Absolute, (*Chip).EOR, 4},
	0x4E: {"LSR", Absolute, (*Chip).LSR, 6},
	0x4F: {"SRE", Absolute, (*Chip).SRE, 6},

	0x50: {"BVC", Relative, (*Chip).BVC, 2},
	0x51: {"EOR", IndirectY, (*Chip).EOR, 5},
	0x52: {"KIL", Implied, (*Chip).KIL, 2},
	0x53: {"SRE", IndirectY, (*Chip).SRE, 8},
	0x54: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0x55: {"EOR", ZeroPageX, (*Chip).EOR, 4},
	0x56: {"LSR", ZeroPageX, (*Chip).LSR, 6},
	0x57: {"SRE", ZeroPageX, (*Chip).SRE, 6},
	0x58: {"CLI", Implied, (*Chip).CLI, 2},
	0x59: {"EOR", AbsoluteY, (*Chip).EOR, 4},
	0x5A: {"NOP", Accumulator, (*Chip).NOP, 2},
	0x5B: {"SRE", AbsoluteY, (*Chip).SRE, 7},
	0x5C: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0x5D: {"EOR", AbsoluteX, (*Chip).EOR, 4},
	0x5E: {"LSR", AbsoluteX, (*Chip).LSR, 7},
	0x5F: {"SRE", AbsoluteX, (*Chip).SRE, 7},

	0x60: {"RTS", Implied, (*Chip).RTS, 6},
	0x61: {"ADC", IndirectX, (*Chip).ADC, 6},
	0x62: {"KIL", Implied, (*Chip).KIL, 2},
	0x63: {"RRA", IndirectX, (*Chip).RRA, 8},
	0x64: {"NOP", ZeroPage, (*Chip).NOP, 3},
	0x65: {"ADC", ZeroPage, (*Chip).ADC, 3},
	0x66: {"ROR", ZeroPage, (*Chip).ROR, 5},
	0x67: {"RRA", ZeroPage, (*Chip).RRA, 5},
	0x68: {"PLA", Implied, (*Chip).PLA, 4},
	0x69: {"ADC", Immediate, (*Chip).ADC, 2},
	0x6A: {"ROR", Accumulator, (*Chip).ROR, 2},
	0x6B: {"ARR", Immediate, (*Chip).ARR, 2},
	0x6C: {"JMP", Indirect, (*Chip).JMP, 5},
	0x6D: {"ADC", Absolute, (*Chip).ADC, 4},
	0x6E: {"ROR", Absolute, (*Chip).ROR, 6},
	0x6F: {"RRA", Absolute, (*Chip).RRA, 6},

	0x70: {"BVS", Relative, (*Chip).BVS, 2},
	0x71: {"ADC", IndirectY, (*Chip).ADC, 5},
	0x72: {"KIL", Implied, (*Chip).KIL, 2},
	0x73: {"RRA", IndirectY, (*Chip).RRA, 8},
	0x74: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0x75: {"ADC", ZeroPageX, (*Chip).ADC, 4},
	0x76: {"ROR", ZeroPageX, (*Chip).ROR, 6},
	0x77: {"RRA", ZeroPageX, (*Chip).RRA, 6},
	0x78: {"SEI", Implied, (*Chip).SEI, 2},
	0x79: {"ADC", AbsoluteY, (*Chip).ADC, 4},
	0x7A: {"NOP", Accumulator, (*Chip).NOP, 2},
	0x7B: {"RRA", AbsoluteY, (*Chip).RRA, 7},
	0x7C: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0x7D: {"ADC", AbsoluteX, (*Chip).ADC, 4},
	0x7E: {"ROR", AbsoluteX, (*Chip).ROR, 7},
	0x7F: {"RRA", AbsoluteX, (*Chip).RRA, 7},

	0x80: {"NOP", Implied, (*Chip).NOP, 2},
	0x81: {"STA", IndirectX, (*Chip).STA, 6},
	0x82: {"KIL", Implied, (*Chip).KIL, 2},
	0x83: {"AAX", IndirectX, (*Chip).AAX, 6},
	0x84: {"STY", ZeroPage, (*Chip).STY, 3},
	0x85: {"STA", ZeroPage, (*Chip).STA, 3},
	0x86: {"STX", ZeroPage, (*Chip).STX, 3},
	0x87: {"AAX", ZeroPage, (*Chip).AAX, 3},
	0x88: {"DEY", Implied, (*Chip).DEY, 2},
	0x89: {"NOP", Immediate, (*Chip).NOP, 2},
	0x8A: {"TXA", Implied, (*Chip).TXA, 2},
	0x8B: {"XAA", Immediate, (*Chip).XAA, 2},
	0x8C: {"STY", Absolute, (*Chip).STY, 4},
	0x8D: {"STA", Absolute, (*Chip).STA, 4},
	0x8E: {"STX", Absolute, (*Chip).STX, 4},
	0x8F: {"AAX", Absolute, (*Chip).AAX, 4},

	0x90: {"BCC", Relative, (*Chip).BCC, 2},
	0x91: {"STA", IndirectY, (*Chip).STA, 6},
	0x92: {"KIL", Implied, (*Chip).KIL, 2},
	0x93: {"AXA", IndirectY, (*Chip).AXA, 6},
	0x94: {"STY", ZeroPageX, (*Chip).STY, 4},
	0x95: {"STA", ZeroPageX, (*Chip).STA, 4},
	0x96: {"STX", ZeroPageY, (*Chip).STX, 4},
	0x97: {"AAX", ZeroPageY, (*Chip).AAX, 4},
	0x98: {"TYA", Implied, (*Chip).TYA, 2},
	0x99: {"STA", AbsoluteY, (*Chip).STA, 5},
	0x9A: {"TXS", Implied, (*Chip).TXS, 2},
	0x9B: {"TAS", AbsoluteY, (*Chip).TAS, 5},
	0x9C: {"NOP", Implied, (*Chip).NOP, 4},
	0x9D: {"STA", AbsoluteX, (*Chip).STA, 5},
	0x9E: {"SXA", AbsoluteY, (*Chip).SXA, 5},
	0x9F: {"AXA", AbsoluteY, (*Chip).AXA, 5},

	0xA0: {"LDY", Immediate, (*Chip).LDY, 2},
	0xA1: {"LDA", IndirectX, (*Chip).LDA, 6},
	0xA2: {"LDX", Immediate, (*Chip).LDX, 2},
	0xA3: {"LAX", IndirectX, (*Chip).LAX, 6},
	0xA4: {"LDY", ZeroPage, (*Chip).LDY, 3},
	0xA5: {"LDA", ZeroPage, (*Chip).LDA, 3},
	0xA6: {"LDX", ZeroPage, (*Chip).LDX, 3},
	0xA7: {"LAX", ZeroPage, (*Chip).LAX, 3},
	0xA8: {"TAY", Implied, (*Chip).TAY, 2},
	0xA9: {"LDA", Immediate, (*Chip).LDA, 2},
	0xAA: {"TAX", Implied, (*Chip).TAX, 2},
	0xAB: {"ATX", Immediate, (*Chip).ATX, 2},
	0xAC: {"LDY", Absolute, (*Chip).LDY, 4},
	0xAD: {"LDA", Absolute, (*Chip).LDA, 4},
	0xAE: {"LDX", Absolute, (*Chip).LDX, 4},
	0xAF: {"LAX", Absolute, (*Chip).LAX, 4},

	0xB0: {"BCS", Relative, (*Chip).BCS, 2},
	0xB1: {"LDA", IndirectY, (*Chip).LDA, 5},
	0xB2: {"KIL", Immediate, (*Chip).KIL, 2},
	0xB3: {"LAX", IndirectY, (*Chip).LAX, 5},
	0xB4: {"LDY", ZeroPageX, (*Chip).LDY, 4},
	0xB5: {"LDA", ZeroPageX, (*Chip).LDA, 4},
	0xB6: {"LDX", ZeroPageY, (*Chip).LDX, 4},
	0xB7: {"LAX", ZeroPageY, (*Chip).LAX, 4},
	0xB8: {"CLV", Implied, (*Chip).CLV, 2},
	0xB9: {"LDA", AbsoluteY, (*Chip).LDA, 4},
	0xBA: {"TSX", Implied, (*Chip).TSX, 2},
	0xBB: {"LAS", AbsoluteY, (*Chip).LAS, 7},
	0xBC: {"LDY", AbsoluteX, (*Chip).LDY, 4},
	0xBD: {"LDA", AbsoluteX, (*Chip).LDA, 4},
	0xBE: {"LDX", AbsoluteY, (*Chip).LDX, 4},
	0xBF: {"LAX", AbsoluteY, (*Chip).LAX, 4},

	0xC0: {"CPY", Immediate, (*Chip).CPY, 2},
	0xC1: {"CMP", IndirectX, (*Chip).CMP, 6},
	0xC2: {"NOP", Implied, (*Chip).NOP, 2},
	0xC3: {"DCP", IndirectX, (*Chip).DCP, 8},
	0xC4: {"CPY", ZeroPage, (*Chip).CPY, 3},
	0xC5: {"CMP", ZeroPage, (*Chip).CMP, 3},
	0xC6: {"DEC", ZeroPage, (*Chip).DEC, 5},
	0xC7: {"DCP", ZeroPage, (*Chip).DCP, 5},
	0xC8: {"INY", Implied, (*Chip).INY, 2},
	0xC9: {"CMP", Immediate, (*Chip).CMP, 2},
	0xCA: {"DEX", Implied, (*Chip).DEX, 2},
	0xCB: {"SAX", Immediate, (*Chip).SAX, 2},
	0xCC: {"CPY", Absolute, (*Chip).CPY, 4},
	0xCD: {"CMP", Absolute, (*Chip).CMP, 4},
	0xCE: {"DEC", Absolute, (*Chip).DEC, 6},
	0xCF: {"DCP", Absolute, (*Chip).DCP, 6},

	0xD0: {"BNE", Relative, (*Chip).BNE, 2},
	0xD1: {"CMP", IndirectY, (*Chip).CMP, 5},
	0xD2: {"KIL", Implied, (*Chip).KIL, 2},
	0xD3: {"DCP", IndirectY, (*Chip).DCP, 8},
	0xD4: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0xD5: {"CMP", ZeroPageX, (*Chip).CMP, 4},
	0xD6: {"DEC", ZeroPageX, (*Chip).DEC, 6},
	0xD7: {"DCP", ZeroPageX, (*Chip).DCP, 6},
	0xD8: {"CLD", Implied, (*Chip).CLD, 2},
	0xD9: {"CMP", AbsoluteY, (*Chip).CMP, 4},
	0xDA: {"NOP", Implied, (*Chip).NOP, 2},
	0xDB: {"DCP", AbsoluteY, (*Chip).DCP, 7},
	0xDC: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0xDD: {"CMP", AbsoluteX, (*Chip).CMP, 4},
	0xDE: {"DEC", AbsoluteX, (*Chip).DEC, 7},
	0xDF: {"DCP", AbsoluteX, (*Chip).DCP, 7},

	0xE0: {"CPX", Immediate, (*Chip).CPX, 2},
	0xE1: {"SBC", IndirectX, (*Chip).SBC, 6},
	0xE2: {"NOP", Immediate, (*Chip).NOP, 2},
	0xE3: {"ISC", IndirectX, (*Chip).ISC, 8},
	0xE4: {"CPX", ZeroPage, (*Chip).CPX, 3},
	0xE5: {"SBC", ZeroPage, (*Chip).SBC, 3},
	0xE6: {"INC", ZeroPage, (*Chip).INC, 5},
	0xE7: {"ISC", ZeroPage, (*Chip).ISC, 5},
	0xE8: {"INX", Implied, (*Chip).INX, 2},
	0xE9: {"SBC", Immediate, (*Chip).SBC, 2},
	0xEA: {"NOP", Implied, (*Chip).NOP, 2},
	0xEB: {"SBC", Immediate, (*Chip).SBC, 2},
	0xEC: {"CPX", Absolute, (*Chip).CPX, 4},
	0xED: {"SBC", Absolute, (*Chip).SBC, 4},
	0xEE: {"INC", Absolute, (*Chip).INC, 6},
	0xEF: {"ISC", Absolute, (*Chip).ISC, 6},

	0xF0: {"BEQ", Relative, (*Chip).BEQ, 2},
	0xF1: {"SBC", IndirectY, (*Chip).SBC, 5},
	0xF2: {"KIL", Implied, (*Chip).KIL, 2},
	0xF3: {"ISC", IndirectY, (*Chip).ISC, 8},
	0xF4: {"NOP", ZeroPageX, (*Chip).NOP, 4},
	0xF5: {"SBC", ZeroPageX, (*Chip).SBC, 4},
	0xF6: {"INC", ZeroPageX, (*Chip).INC, 6},
	0xF7: {"ISC", ZeroPageX, (*Chip).ISC, 6},
	0xF8: {"SED", Implied, (*Chip).SED, 2},
	0xF9: {"SBC", AbsoluteY, (*Chip).SBC, 4},
	0xFA: {"NOP", Implied, (*Chip).NOP, 2},
	0xFB: {"ISC", AbsoluteY, (*Chip).ISC, 7},
	0xFC: {"NOP", AbsoluteX, (*Chip).NOP, 4},
	0xFD: {"SBC", AbsoluteX, (*Chip).SBC, 4},
	0xFE: {"INC", AbsoluteX, (*Chip).INC, 7},
	0xFF: {"ISC", AbsoluteX, (*Chip).ISC, 7},
}
