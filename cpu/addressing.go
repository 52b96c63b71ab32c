package cpu

import "m6502/mask"

// An AddressingMode tells the Chip where to access (look for) a given byte of
// memory. There are 13 possible modes.
//
// Most instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is ZeroPage, which is confined to the
// first page of 256 bytes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX

	IndirectY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect // JMP only
)

// addressingFuncs maps each AddressingMode to the method that evaluates it.
// Each method advances ProgramCounter past its operand bytes, sets AbsAddress
// (and/or Fetched directly, for the two modes that have no memory operand),
// and returns the page-cross hint combined with the operation's own hint in
// Clock to decide whether an extra cycle is owed (see §4.6 of the core
// design: "if both hints are true, cycles += 1").
//
// Fetching the operand is folded into each method rather than done as a
// separate step keyed on addressing-mode identity, since Go function values
// (unlike the source's member-function pointers) cannot be compared for
// equality.
var addressingFuncs = [...]func(c *Chip) bool{
	Implied:     (*Chip).addrImplied,
	Accumulator: (*Chip).addrAccumulator,
	Immediate:   (*Chip).addrImmediate,
	ZeroPage:    (*Chip).addrZeroPage,
	ZeroPageX:   (*Chip).addrZeroPageX,
	ZeroPageY:   (*Chip).addrZeroPageY,
	IndirectX:   (*Chip).addrIndirectX,
	IndirectY:   (*Chip).addrIndirectY,
	Relative:    (*Chip).addrRelative,
	Absolute:    (*Chip).addrAbsolute,
	AbsoluteX:   (*Chip).addrAbsoluteX,
	AbsoluteY:   (*Chip).addrAbsoluteY,
	Indirect:    (*Chip).addrIndirect,
}

// IMPlicit: the instruction itself carries the operand (e.g. CLC). Fetched is
// zeroed, matching the universal fetch step's default for modes with no
// operand byte.
func (c *Chip) addrImplied() bool {
	c.Fetched = 0
	return false
}

// ACCumulator: the operand is the accumulator itself (e.g. ASL A).
func (c *Chip) addrAccumulator() bool {
	c.Fetched = c.Accumulator
	return false
}

// IMMediate: the operand is the byte following the opcode.
func (c *Chip) addrImmediate() bool {
	c.AbsAddress = c.ProgramCounter
	c.ProgramCounter++
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// Zero Page: the next byte is an address within page zero.
func (c *Chip) addrZeroPage() bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// Zero Page, X: the next byte plus X, wrapped within page zero.
func (c *Chip) addrZeroPageX() bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.X)
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// Zero Page, Y: the next byte plus Y, wrapped within page zero. Used only by
// LDX/STX-family opcodes.
func (c *Chip) addrZeroPageY() bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.Y)
	c.ProgramCounter++
	c.AbsAddress &= 0x00FF
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// ABSolute: the next two bytes are a little-endian address.
func (c *Chip) addrAbsolute() bool {
	lo := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	hi := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	c.AbsAddress = mask.Word(hi, lo)
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// ABsolute, X: absolute address plus X. Hints a page-cross penalty if adding
// X carried into a new page.
func (c *Chip) addrAbsoluteX() bool {
	lo := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	hi := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	c.AbsAddress = mask.Word(hi, lo) + uint16(c.X)
	c.Fetched = c.Read(c.AbsAddress)
	return c.AbsAddress&0xFF00 != uint16(hi)<<8
}

// ABsolute, Y: absolute address plus Y. Same page-cross rule as AbsoluteX.
func (c *Chip) addrAbsoluteY() bool {
	lo := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	hi := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	c.AbsAddress = mask.Word(hi, lo) + uint16(c.Y)
	c.Fetched = c.Read(c.AbsAddress)
	return c.AbsAddress&0xFF00 != uint16(hi)<<8
}

// INDirect: the next two bytes point to the low byte of the target address.
// Used only by JMP.
//
// Reproduces the hardware bug: if the pointer's low byte is 0xFF, the high
// byte of the target is read from the start of the same page instead of
// crossing into the next one.
func (c *Chip) addrIndirect() bool {
	lo := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	hi := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	ptr := mask.Word(hi, lo)

	if lo == 0xFF {
		c.AbsAddress = mask.Word(c.Read(ptr&0xFF00), c.Read(ptr))
	} else {
		c.AbsAddress = mask.Word(c.Read(ptr+1), c.Read(ptr))
	}
	return false
}

// IndeXed inDirect: the next byte plus X (wrapped in page zero) points to the
// low byte of the target address.
func (c *Chip) addrIndirectX() bool {
	zp := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	lo := c.Read((zp + uint16(c.X)) & 0x00FF)
	hi := c.Read((zp + uint16(c.X) + 1) & 0x00FF)
	c.AbsAddress = mask.Word(hi, lo)
	c.Fetched = c.Read(c.AbsAddress)
	return false
}

// Indirect inDexed (Y): the next byte (in page zero) points to the low byte
// of a base address, to which Y is then added.
func (c *Chip) addrIndirectY() bool {
	zp := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++

	lo := c.Read(zp & 0x00FF)
	hi := c.Read((zp + 1) & 0x00FF)
	c.AbsAddress = mask.Word(hi, lo) + uint16(c.Y)
	c.Fetched = c.Read(c.AbsAddress)
	return c.AbsAddress&0xFF00 != uint16(hi)<<8
}

// RELative: an 8-bit signed offset from the instruction following the branch,
// used only by the conditional branches. Sign-extended into RelAddress; the
// branch instruction itself computes AbsAddress and any cycle penalty.
func (c *Chip) addrRelative() bool {
	rel := uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	if rel&0x80 != 0 {
		rel |= 0xFF00
	}
	c.RelAddress = rel
	return false
}
