package disassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m6502/mem"
)

func TestDisassembleImmediateAndZeroPage(t *testing.T) {
	bus := mem.NewBus()
	bus.Write(0x8000, 0xA9) // LDA #$42
	bus.Write(0x8001, 0x42)
	bus.Write(0x8002, 0x65) // ADC $10
	bus.Write(0x8003, 0x10)

	lines := Disassemble(0x8000, 0x8004, bus)

	assert.Equal(t, "LDA #$42", lines[0x8000])
	assert.Equal(t, "ADC $10\t", lines[0x8002])
}

func TestDisassembleAbsoluteAndIndexed(t *testing.T) {
	bus := mem.NewBus()
	bus.Write(0x8000, 0x4C) // JMP $1234
	bus.Write(0x8001, 0x34)
	bus.Write(0x8002, 0x12)
	bus.Write(0x8003, 0xBD) // LDA $1000,X
	bus.Write(0x8004, 0x00)
	bus.Write(0x8005, 0x10)

	lines := Disassemble(0x8000, 0x8006, bus)

	assert.Equal(t, "JMP $1234", lines[0x8000])
	assert.Equal(t, "LDA $1000,X", lines[0x8003])
}

func TestDisassembleRelativeRendersAbsoluteTarget(t *testing.T) {
	bus := mem.NewBus()
	bus.Write(0x8000, 0xF0) // BEQ -2 (branch back to itself)
	bus.Write(0x8001, 0xFE)

	lines := Disassemble(0x8000, 0x8002, bus)

	assert.Equal(t, "BEQ $8000", lines[0x8000])
}

func TestDisassembleImpliedAndAccumulator(t *testing.T) {
	bus := mem.NewBus()
	bus.Write(0x8000, 0xEA) // NOP
	bus.Write(0x8001, 0x0A) // ASL A

	lines := Disassemble(0x8000, 0x8002, bus)

	assert.Equal(t, "NOP\t", lines[0x8000])
	assert.Equal(t, "ASL A\t", lines[0x8001])
}
