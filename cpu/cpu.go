// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.

package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"m6502/mask"
	"m6502/mem"
)

// InvalidCPUState reports a host-misuse precondition: the Chip was asked to
// do something that requires state it doesn't have (e.g. no Ram attached).
// There is no runtime error taxonomy beyond this -- every opcode, address,
// and arithmetic input the Chip encounters once running is defined.
type InvalidCPUState struct {
	Reason string
}

func (e *InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// A ChipDef configures a Chip at construction time, mirroring the
// declarative construction style used elsewhere in the 6502 emulator
// ecosystem rather than a long positional constructor.
type ChipDef struct {
	Ram *mem.Bus
}

// NewChip builds a Chip wired to def.Ram and resets it to power-on state.
func NewChip(def *ChipDef) (*Chip, error) {
	if def == nil || def.Ram == nil {
		return nil, &InvalidCPUState{Reason: "ChipDef.Ram must not be nil"}
	}
	c := &Chip{Bus: def.Ram}
	c.Reset()
	return c, nil
}

// The Chip has no memory of its own (aside from a number of small registers
// which amount to about 7 bytes). Instead, the Chip interfaces with a Bus
// that provides memory.
type Chip struct {
	Bus *mem.Bus

	// https://problemkaputt.de/everynes.htm#cpuregistersandflags
	// https://www.nesdev.org/wiki/CPU_ALL#CPU_2
	// https://www.nesdev.org/wiki/Status_flags#Flags

	// Flags are 8 bits that make up the status register (aka P register).
	//
	// 7654 3210
	// NV1B DIZC
	Flags struct {
		Negative         bool // bit 7
		Overflow         bool // bit 6
		Unused           bool // bit 5; always reads 1
		B                bool // bit 4; set only in the pushed copy of P
		Decimal          bool // bit 3
		DisableInterrupt bool // bit 2
		Zero             bool // bit 1
		Carry            bool // bit 0
	}

	Accumulator byte // a byte value for immediate use, similar to a local variable
	X           byte
	Y           byte

	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) always
	// access the 01 page (0x0100-0x01ff). The Chip stores a low byte in
	// this register.
	Stack byte

	// The ProgramCounter is a 2-byte (word) memory address that increments
	// (almost) continuously. The byte located at this address should
	// provide the Chip with an Opcode that specifies the next instruction
	// to execute.
	ProgramCounter uint16

	Fetched    byte   // operand byte, set by the current addressing mode
	AbsAddress uint16 // operand address, set by the current addressing mode
	RelAddress uint16 // sign-extended branch offset, set by Relative mode

	Opcode byte           // raw byte of the instruction currently executing
	Mode   AddressingMode // addressing mode of the instruction currently executing

	Cycles     byte   // decrements to 0, at which point a new instruction is fetched
	ClockCount uint64 // total ticks since power-on, never reset
}

// Read reads one byte from the given addr. The addr is typically supplied by
// the program.
func (c *Chip) Read(addr uint16) byte {
	return c.Bus.Read(addr, false)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Chip) Write(
	addr uint16, // addresses are 2 bytes (16 bits) wide
	data byte,
) {
	c.Bus.Write(addr, data)
}

// push writes a byte to the stack page (0x0100-0x01FF) and decrements Stack.
func (c *Chip) push(data byte) {
	c.Write(0x0100+uint16(c.Stack), data)
	c.Stack--
}

// pull increments Stack and reads the byte it now points at.
func (c *Chip) pull() byte {
	c.Stack++
	return c.Read(0x0100 + uint16(c.Stack))
}

// statusByte packs Flags into the single-byte P register layout (NV1B DIZC).
func (c *Chip) statusByte() byte {
	var b byte
	if c.Flags.Negative {
		b = mask.Set(b, mask.I1, 1)
	}
	if c.Flags.Overflow {
		b = mask.Set(b, mask.I2, 1)
	}
	b = mask.Set(b, mask.I3, 1) // Unused always reads 1
	if c.Flags.B {
		b = mask.Set(b, mask.I4, 1)
	}
	if c.Flags.Decimal {
		b = mask.Set(b, mask.I5, 1)
	}
	if c.Flags.DisableInterrupt {
		b = mask.Set(b, mask.I6, 1)
	}
	if c.Flags.Zero {
		b = mask.Set(b, mask.I7, 1)
	}
	if c.Flags.Carry {
		b = mask.Set(b, mask.I8, 1)
	}
	return b
}

// setStatusByte unpacks a P-register byte (as pulled from the stack by
// PLP/RTI) back into Flags.
func (c *Chip) setStatusByte(b byte) {
	c.Flags.Negative = mask.IsSet(b, mask.I1)
	c.Flags.Overflow = mask.IsSet(b, mask.I2)
	c.Flags.Unused = mask.IsSet(b, mask.I3)
	c.Flags.B = mask.IsSet(b, mask.I4)
	c.Flags.Decimal = mask.IsSet(b, mask.I5)
	c.Flags.DisableInterrupt = mask.IsSet(b, mask.I6)
	c.Flags.Zero = mask.IsSet(b, mask.I7)
	c.Flags.Carry = mask.IsSet(b, mask.I8)
}

// setZN sets the Zero and Negative flags from the given result byte, the
// pattern shared by almost every operation that loads or computes a value.
func (c *Chip) setZN(b byte) {
	c.Flags.Zero = b == 0
	c.Flags.Negative = b&0x80 != 0
}

// LoadProgram reads a slice of bytes and places it at the given addr.
func (c *Chip) LoadProgram(program []byte, addr uint16) {
	for i, s := range strings.Fields(string(program)) {
		b, err := strconv.ParseInt(s, 16, 16)
		if err != nil {
			panic(err)
		}
		c.Bus.FakeRam[addr+uint16(i)] = byte(b)
	}
}

// Clock runs one cycle. When Cycles is already 0, it fetches, decodes and
// executes the next instruction, setting Cycles to that instruction's base
// count (plus one if both the addressing mode's and the operation's
// page-cross hints are true); otherwise it just counts the current
// instruction down. It reports whether the instruction completes on this
// call (Cycles reaches 0).
//
// This mirrors the "cycles-countdown" model: all the work of an instruction
// happens on the tick that starts it, and subsequent ticks simply wait.
func (c *Chip) Clock() (bool, error) {
	if c.Cycles == 0 {
		opcode := c.Read(c.ProgramCounter)
		c.ProgramCounter++

		op := Opcodes[opcode]
		c.Opcode = opcode
		c.Cycles = op.Cycles
		c.Mode = op.Mode

		addrHint := op.addr()(c)
		opHint := op.Op(c)
		if addrHint && opHint {
			c.Cycles++
		}
	}
	c.Cycles--
	c.ClockCount++
	return c.Cycles == 0, nil
}

// Reset puts the Chip into its power-on state and loads ProgramCounter from
// the reset vector at 0xFFFC/0xFFFD. Unlike Irq/Nmi, nothing is pushed to
// the stack.
func (c *Chip) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Stack = 0xFD

	c.Flags.Negative = false
	c.Flags.Overflow = false
	c.Flags.Unused = true
	c.Flags.B = false
	c.Flags.Decimal = false
	c.Flags.DisableInterrupt = true
	c.Flags.Zero = false
	c.Flags.Carry = false

	lo := c.Read(0xFFFC)
	hi := c.Read(0xFFFD)
	c.ProgramCounter = mask.Word(hi, lo)

	c.Fetched = 0
	c.AbsAddress = 0
	c.RelAddress = 0
	c.Cycles = 7
}

// Irq requests a maskable interrupt. It is ignored if DisableInterrupt is
// set. Otherwise, PC and P (with B cleared) are pushed to the stack,
// DisableInterrupt is set, and PC is reloaded from 0xFFFE/0xFFFF.
func (c *Chip) Irq() {
	if c.Flags.DisableInterrupt {
		return
	}

	c.push(byte(c.ProgramCounter >> 8))
	c.push(byte(c.ProgramCounter))

	c.Flags.B = false
	c.Flags.Unused = true
	c.push(c.statusByte())
	c.Flags.DisableInterrupt = true

	lo := c.Read(0xFFFE)
	hi := c.Read(0xFFFF)
	c.ProgramCounter = mask.Word(hi, lo)

	c.Cycles = 7
}

// Nmi requests a non-maskable interrupt: identical to Irq but never ignored,
// and vectored through 0xFFFA/0xFFFB.
func (c *Chip) Nmi() {
	c.push(byte(c.ProgramCounter >> 8))
	c.push(byte(c.ProgramCounter))

	c.Flags.B = false
	c.Flags.Unused = true
	c.push(c.statusByte())
	c.Flags.DisableInterrupt = true

	lo := c.Read(0xFFFA)
	hi := c.Read(0xFFFB)
	c.ProgramCounter = mask.Word(hi, lo)

	c.Cycles = 7
}
