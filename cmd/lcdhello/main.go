// lcdhello initializes a 16x2 LCD wired to the Pi's GPIO header, greets the
// world, and idles.
package main

import (
	"flag"
	"time"

	"github.com/AhmedShaalan/lcd"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	rsPin = flag.String("rs", "27", "register select pin name")
	ePin  = flag.String("e", "26", "enable pin name")
	dbPin = [4]*string{
		flag.String("db4", "19", "data bit 4 pin name"),
		flag.String("db5", "25", "data bit 5 pin name"),
		flag.String("db6", "18", "data bit 6 pin name"),
		flag.String("db7", "24", "data bit 7 pin name"),
	}
)

func pin(name string) gpio.PinIO {
	p := gpioreg.ByName(name)
	if p == nil {
		logrus.Fatalln("No such pin:", name)
	}
	return p
}

func main() {
	flag.Parse()
	if _, err := host.Init(); err != nil {
		logrus.Fatalln("Unable to initialize periph:", err)
	}

	m := &lcd.LMB162{
		RS: pin(*rsPin),
		E:  pin(*ePin),
		// R/W is strapped to ground; the driver never reads back.
		DB: [4]gpio.PinIO{pin(*dbPin[0]), pin(*dbPin[1]), pin(*dbPin[2]), pin(*dbPin[3])},
	}
	m.Init()
	m.MoveTo(4, 1)
	m.WriteString("Hello")
	m.MoveTo(6, 2)
	m.WriteString("World!")
	logrus.Infoln("LCD initialized")

	for {
		time.Sleep(time.Hour)
	}
}
