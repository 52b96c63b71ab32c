// Command stepper is an interactive single-step debugger for the Chip. It
// loads a program into a fresh Bus and lets the user clock the CPU one
// instruction at a time, watching registers, flags and a disassembly window
// update live.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"m6502/cpu"
	"m6502/disassembler"
	"m6502/mem"
)

type model struct {
	chip    *cpu.Chip
	bus     *mem.Bus
	program []byte

	offset uint16 // load address, also the left edge of the page/disasm view
	prevPC uint16
	err    error
}

// Init loads the program at offset and points the CPU at it directly,
// bypassing the usual reset-vector indirection so the debugger always
// starts exactly where the loaded program begins.
func (m model) Init() tea.Cmd {
	m.chip.LoadProgram(m.program, m.offset)
	m.chip.ProgramCounter = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.chip.ProgramCounter
			for {
				done, err := m.chip.Clock()
				if err != nil {
					m.err = err
					return m, tea.Quit
				}
				if done {
					break
				}
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.bus.FakeRam[start : start+16] {
		if start+uint16(i) == m.chip.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.chip.Flags.Negative,
		m.chip.Flags.Overflow,
		m.chip.Flags.Unused,
		m.chip.Flags.B,
		m.chip.Flags.Decimal,
		m.chip.Flags.DisableInterrupt,
		m.chip.Flags.Zero,
		m.chip.Flags.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 F: %02x
 A: %02x
 X: %02x
 Y: %02x
cycles: %d  clock: %d
N V _ B D I Z C
`,
		m.chip.ProgramCounter,
		m.prevPC,
		m.chip.Fetched,
		m.chip.Accumulator,
		m.chip.X,
		m.chip.Y,
		m.chip.Cycles,
		m.chip.ClockCount,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	offsets := []uint16{
		0, 16, 32, 48, 64,
		m.offset,
		m.offset + 16,
		m.offset + 32,
		m.offset + 48,
	}
	for _, addr := range offsets {
		pages = append(pages, m.renderPage(addr))
	}
	return strings.Join(pages, "\n")
}

// disassembly renders the instructions starting at the load offset, in
// address order, with the current instruction marked.
func (m model) disassembly() string {
	lines := disassembler.Disassemble(m.offset, m.offset+uint16(len(m.program))+8, m.bus)

	addrs := make([]uint16, 0, len(lines))
	for addr := range lines {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	var b strings.Builder
	for _, addr := range addrs {
		marker := "  "
		if addr == m.chip.ProgramCounter {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s %04x  %s\n", marker, addr, lines[addr])
	}
	return b.String()
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.disassembly(),
		"",
		spew.Sdump(cpu.Opcodes[m.bus.FakeRam[m.chip.ProgramCounter]]),
	)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: stepper <space-separated hex bytes>")
		os.Exit(1)
	}

	bus := mem.NewBus()
	chip, err := cpu.NewChip(&cpu.ChipDef{Ram: bus})
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model{
		chip:    chip,
		bus:     bus,
		program: []byte(strings.Join(os.Args[1:], " ")),
		offset:  0x8000,
	})

	finalModel, err := p.Run()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		fmt.Println("Error:", m.err)
	}
}
