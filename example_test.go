package lcd

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func ExampleLMB162() {
	host.Init()
	m := &LMB162{
		RS: gpioreg.ByName("27"),
		E:  gpioreg.ByName("26"),
		// RW is nil: the module's R/W pin is strapped to ground.
		DB: [4]gpio.PinIO{
			0: gpioreg.ByName("19"),
			1: gpioreg.ByName("25"),
			2: gpioreg.ByName("18"),
			3: gpioreg.ByName("24"),
		},
	}
	m.Init()
	m.MoveTo(4, 1)
	m.WriteString("Hello")
	m.MoveTo(6, 2)
	m.WriteString("World!")
	m.MoveTo(0, 2)
	m.WriteInt(42)
}
