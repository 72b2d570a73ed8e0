// Package lcd is a library for displaying on certain LCDs via GPIO pins (using
// periph.io).
package lcd // import "github.com/AhmedShaalan/lcd"

import (
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Instruction bytes understood by the HD44780-class controller. Entry-mode
// and display-control values are the full combined bytes, not single flag
// bits, so they can be passed straight to Command.
const (
	ClearDisplay byte = 0x01 // erase DDRAM, reset the address counter
	ReturnHome   byte = 0x02 // cursor to first cell, undo display shift

	NoShift    byte = 0x04
	LeftShift  byte = 0x05
	RightShift byte = 0x07

	DisplayOff byte = 0x08
	DisplayOn  byte = 0x0C // display on, cursor and blink off
	CursorOn   byte = 0x0E // display and cursor on
	BlinkOn    byte = 0x0F // display, cursor and blink on

	CGRAM byte = 0x40 // CGRAM base address (OR with a glyph offset)
	DDRAM byte = 0x80 // DDRAM base address
	Line1 byte = 0x80 // DDRAM address of line 1, column 0
	Line2 byte = 0xC0 // DDRAM address of line 2, column 0

	FourBitMode byte = 0x02 // switch an 8-bit-reset controller to 4-bit
	FunctionSet byte = 0x28 // 4-bit bus, 2 lines, 5x8 font
)

// All delays are longer than the datasheet minimums in order to accommodate
// slower than normal modules. The controller has no feedback channel here
// (R/W is pinned to write, the busy flag is unreachable), so waiting out the
// worst case is the only defence against issuing instructions too fast.
// Lengthen these if a module misbehaves; never shorten them.
const (
	powerOnDelay   = 17 * time.Millisecond  // power-on reset, some modules want ~50ms
	setupDelay     = 5 * time.Millisecond   // second settle window after pin setup
	dataSetupDelay = time.Microsecond       // tDSW > 80ns, PWEH > 450ns
	settleDelay    = 200 * time.Microsecond // ordinary instruction execution
	clearDelay     = 5 * time.Millisecond   // clear/home execution, the two slowest
)

// LMB162 implements a driver for an LMB162ABC module (or any other
// HD44780-compatible character LCD) wired for 4-bit operation: only data
// lines DB4-DB7 are connected and every instruction crosses the bus as two
// nibbles. RW is optional; leave it nil when the module's R/W pin is
// strapped to ground.
//
// The driver is stateless and write-only. Whatever it last told the
// controller is the only record of display state, so a single LMB162 value
// must have the bus to itself; wrap it in a mutex if several goroutines
// share one display.
type LMB162 struct {
	RS, RW, E gpio.PinIO    // register select, read/write, enable signal
	DB        [4]gpio.PinIO // data bits 4 - 7

	// Delay, if non-nil, replaces time.Sleep as the timing source.
	// Tests substitute a recorder here.
	Delay func(time.Duration)
}

// Init puts the controller into 4-bit, 2-line, 5x8-font mode with the
// display on and the cursor hidden, then clears it. It must run once,
// before any other method, after the module has power.
func (m *LMB162) Init() {
	// Wait out the controller's power-on reset before touching the bus.
	m.sleep(powerOnDelay)

	// Drive every line low once so the host configures all seven as
	// outputs before the first real pulse, then give slow modules a
	// second settle window.
	m.E.Out(gpio.Low)
	m.RS.Out(gpio.Low)
	if m.RW != nil {
		m.RW.Out(gpio.Low)
	}
	for i := range m.DB {
		m.DB[i].Out(gpio.Low)
	}
	m.sleep(setupDelay)

	m.Command(FourBitMode)
	m.Command(FunctionSet)
	m.SetDisplayMode(true, false, false)
	m.Clear()
}

// Command sends a raw instruction byte to the controller.
func (m *LMB162) Command(b byte) {
	m.transmit(gpio.Low, b)
}

// WriteChar writes one character to display memory at the current cursor
// address. The controller advances its address counter by itself.
func (m *LMB162) WriteChar(b byte) {
	m.transmit(gpio.High, b)
}

// WriteString writes s one character at a time, left to right. A NUL byte
// ends the string early; nothing after it is written.
func (m *LMB162) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return
		}
		m.WriteChar(s[i])
	}
}

// WriteInt writes n in decimal.
func (m *LMB162) WriteInt(n uint16) {
	m.WriteString(strconv.FormatUint(uint64(n), 10))
}

// Clear erases the display and resets the cursor address.
func (m *LMB162) Clear() {
	m.Command(ClearDisplay)
	m.sleep(clearDelay)
}

// Home returns the cursor to the first cell of line 1 and undoes any
// display shift, without erasing anything.
func (m *LMB162) Home() {
	m.Command(ReturnHome)
	m.sleep(clearDelay)
}

// MoveTo puts the cursor at the col'th cell of a line. Lines are numbered
// 1 and 2; any other line is ignored. There is no feedback channel to
// report a bad coordinate through, so the silent no-op is the contract.
func (m *LMB162) MoveTo(col, row int) {
	switch row {
	case 1:
		m.Command(Line1 + byte(col))
	case 2:
		m.Command(Line2 + byte(col))
	}
}

// SetDisplayMode turns on/off the whole display, cursor, or cursor-blinking.
func (m *LMB162) SetDisplayMode(display, cursor, blink bool) {
	a := DisplayOff
	if display {
		a += 0b00000100
	}
	if cursor {
		a += 0b00000010
	}
	if blink {
		a += 0b00000001
	}
	m.Command(a)
}

// transmit serialises one instruction byte as two enable pulses, high
// nibble first, then waits out the controller's execution time. rs selects
// the register the byte lands in: low for the instruction register, high
// for display memory. Callers may issue the next instruction as soon as
// transmit returns.
func (m *LMB162) transmit(rs gpio.Level, b byte) {
	m.writeNibble(rs, b>>4)
	m.writeNibble(rs, b&0x0f)
	m.sleep(settleDelay)
}

// writeNibble drives the low 4 bits of nib onto DB4-DB7 and pulses the
// enable line. The controller latches the nibble on the falling edge of E,
// so E must drop only after the data lines are stable. (Pulsing E
// high-then-low after the lines settle is an equally valid sequence; this
// one holds E high while they are driven.)
func (m *LMB162) writeNibble(rs gpio.Level, nib byte) {
	m.E.Out(gpio.High)
	m.RS.Out(rs)
	if m.RW != nil {
		m.RW.Out(gpio.Low) // write mode, always
	}
	for i := range m.DB {
		m.DB[i].Out(nib&(1<<i) != 0)
	}
	m.sleep(dataSetupDelay)
	m.E.Out(gpio.Low)
}

func (m *LMB162) sleep(d time.Duration) {
	if m.Delay != nil {
		m.Delay(d)
		return
	}
	time.Sleep(d)
}
