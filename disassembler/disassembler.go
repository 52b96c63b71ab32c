// Package disassembler renders the bytes of a Bus, in the range
// [start, end), into a mnemonic-per-instruction listing.
package disassembler

import (
	"fmt"

	"m6502/cpu"
	"m6502/mem"
)

// Disassemble walks addresses [start, end) one instruction at a time and
// returns a line of text for each, keyed by the address the instruction
// starts at. It never mutates bus or advances any CPU state -- it is a pure
// read over memory using the same opcode table Clock dispatches through.
func Disassemble(start uint16, end uint16, bus *mem.Bus) map[uint16]string {
	result := make(map[uint16]string)

	for addr := start; addr < end; {
		instAddr := addr

		opcode := bus.Read(addr, true)
		addr++
		op := cpu.Opcodes[opcode]

		line := op.Name

		switch op.Mode {
		case cpu.Implied:
			// no operand

		case cpu.Accumulator:
			line += " A"

		case cpu.Immediate:
			data := bus.Read(addr, true)
			addr++
			line += " #" + hex8(data)

		case cpu.ZeroPage:
			data := bus.Read(addr, true)
			addr++
			line += " " + hex8(data)

		case cpu.ZeroPageX:
			data := bus.Read(addr, true)
			addr++
			line += " " + hex8(data) + ",X"

		case cpu.ZeroPageY:
			data := bus.Read(addr, true)
			addr++
			line += " " + hex8(data) + ",Y"

		case cpu.Absolute:
			lo := bus.Read(addr, true)
			addr++
			hi := bus.Read(addr, true)
			addr++
			line += " " + hex16(word(hi, lo))

		case cpu.AbsoluteX:
			lo := bus.Read(addr, true)
			addr++
			hi := bus.Read(addr, true)
			addr++
			line += " " + hex16(word(hi, lo)) + ",X"

		case cpu.AbsoluteY:
			lo := bus.Read(addr, true)
			addr++
			hi := bus.Read(addr, true)
			addr++
			line += " " + hex16(word(hi, lo)) + ",Y"

		case cpu.Indirect:
			lo := bus.Read(addr, true)
			addr++
			hi := bus.Read(addr, true)
			addr++
			line += " (" + hex16(word(hi, lo)) + ")"

		case cpu.IndirectX:
			data := bus.Read(addr, true)
			addr++
			line += " (" + hex8(data) + ",X)"

		case cpu.IndirectY:
			data := bus.Read(addr, true)
			addr++
			line += " (" + hex8(data) + "),Y"

		case cpu.Relative:
			data := uint16(bus.Read(addr, true))
			addr++
			if data&0x80 != 0 {
				data |= 0xFF00
			}
			line += " " + hex16(addr+data)
		}

		if len(line) < 8 {
			line += "\t"
		}
		result[instAddr] = line
	}

	return result
}

func hex8(b byte) string       { return fmt.Sprintf("$%02X", b) }
func hex16(w uint16) string    { return fmt.Sprintf("$%04X", w) }
func word(hi, lo byte) uint16  { return uint16(hi)<<8 | uint16(lo) }
