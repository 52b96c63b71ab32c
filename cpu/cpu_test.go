package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m6502/mem"
)

func TestLoadProgram(t *testing.T) {
	// unhelpfully, this test program is nowhere to be found on OLC's repo
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA" // 28 bytes

	C := Chip{Bus: mem.NewBus()}
	C.LoadProgram([]byte(program), 0x8000)
	assert.Equal(t, uint8(0xa2), C.Bus.FakeRam[0x8000])
	assert.Equal(t, uint8(0x0a), C.Bus.FakeRam[0x8001])
	assert.Equal(t, uint8(0x8e), C.Bus.FakeRam[0x8002])
	assert.Equal(t, uint8(0xea), C.Bus.FakeRam[0x801b])
	assert.Equal(t, uint8(0), C.Bus.FakeRam[0x801c])

	assert.Equal(t, "LDX", Opcodes[C.Bus.FakeRam[0x8000]].Name)
	assert.Equal(t, "ASL", Opcodes[C.Bus.FakeRam[0x8001]].Name)
	assert.Equal(t, "STX", Opcodes[C.Bus.FakeRam[0x8002]].Name)
	assert.Equal(t, "NOP", Opcodes[C.Bus.FakeRam[0x801b]].Name)
	assert.Equal(t, "BRK", Opcodes[C.Bus.FakeRam[0x801c]].Name)
}

// step runs Clock until the instruction in flight completes.
func step(c *Chip) {
	for {
		done, err := c.Clock()
		if err != nil {
			panic(err)
		}
		if done {
			return
		}
	}
}

func TestMultiplyTenByThree(t *testing.T) {
	// multiplies 10 (0xA) by 3 via repeated addition:
	// LDX #$0A; STX $0000      ; mem[0] = 10
	// LDX #$03; STX $0001      ; mem[1] = 3
	// LDY $0000                ; Y = 10 (loop counter)
	// LDA #$00; CLC
	// loop: ADC $0001; DEY; BNE loop
	// STA $0002                ; mem[2] = 30
	// NOP NOP NOP
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"

	bus := mem.NewBus()
	bus.FakeRam[0xFFFC] = 0x00
	bus.FakeRam[0xFFFD] = 0x80

	c, err := NewChip(&ChipDef{Ram: bus})
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8000), c.ProgramCounter)

	c.LoadProgram([]byte(program), 0x8000)
	c.Cycles = 0 // skip the reset's own 7-cycle wait; start fetching immediately

	const (
		prelude  = 7  // LDX STX LDX STX LDY LDA CLC
		loopIter = 10 // ADC/DEY/BNE per iteration
		store    = 1  // STA
	)
	for i := 0; i < prelude+loopIter*3+store; i++ {
		step(c)
	}

	assert.Equal(t, byte(30), c.Accumulator)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), bus.FakeRam[0x0000])
	assert.Equal(t, byte(3), bus.FakeRam[0x0001])
	assert.Equal(t, byte(30), bus.FakeRam[0x0002])
}

func TestNewChipRequiresRam(t *testing.T) {
	c, err := NewChip(&ChipDef{})
	assert.Nil(t, c)
	assert.Error(t, err)
	var invalid *InvalidCPUState
	assert.ErrorAs(t, err, &invalid)
}

func TestResetVector(t *testing.T) {
	bus := mem.NewBus()
	bus.FakeRam[0xFFFC] = 0x34
	bus.FakeRam[0xFFFD] = 0x12

	c, err := NewChip(&ChipDef{Ram: bus})
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x1234), c.ProgramCounter)
	assert.Equal(t, byte(0xFD), c.Stack)
	assert.True(t, c.Flags.Unused)
	assert.True(t, c.Flags.DisableInterrupt)
	assert.False(t, c.Flags.Carry)
	assert.Equal(t, byte(7), c.Cycles)
}

func TestIrqIgnoredWhenDisabled(t *testing.T) {
	bus := mem.NewBus()
	c, _ := NewChip(&ChipDef{Ram: bus})
	c.Flags.DisableInterrupt = true
	startPC := c.ProgramCounter
	startStack := c.Stack

	c.Irq()

	assert.Equal(t, startPC, c.ProgramCounter)
	assert.Equal(t, startStack, c.Stack)
}

func TestNmiPushesStateAndVectors(t *testing.T) {
	bus := mem.NewBus()
	bus.FakeRam[0xFFFA] = 0x00
	bus.FakeRam[0xFFFB] = 0x90

	c, _ := NewChip(&ChipDef{Ram: bus})
	c.ProgramCounter = 0x8042
	startStack := c.Stack

	c.Nmi()

	assert.Equal(t, uint16(0x9000), c.ProgramCounter)
	assert.Equal(t, startStack-3, c.Stack)
	assert.True(t, c.Flags.DisableInterrupt)
	assert.Equal(t, byte(7), c.Cycles)
}

func TestStatusByteRoundTrip(t *testing.T) {
	c := Chip{}
	c.Flags.Negative = true
	c.Flags.Carry = true
	c.Flags.Zero = true

	packed := c.statusByte()
	assert.True(t, packed&0x80 != 0) // N
	assert.True(t, packed&0x01 != 0) // C
	assert.True(t, packed&0x02 != 0) // Z
	assert.True(t, packed&0x20 != 0) // U always set

	var other Chip
	other.setStatusByte(packed)
	assert.Equal(t, c.Flags.Negative, other.Flags.Negative)
	assert.Equal(t, c.Flags.Carry, other.Flags.Carry)
	assert.Equal(t, c.Flags.Zero, other.Flags.Zero)
	assert.True(t, other.Flags.Unused)
}
