package hw

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/lorenzowood/portal-gun/hardware"
)

const (
	tm1637DataCmd    = 0x40
	tm1637AddrCmd    = 0xC0
	tm1637DisplayCmd = 0x80
	tm1637DisplayOn  = 0x08

	tm1637BitDelay = 2 * time.Microsecond
)

// segments maps the characters the prop uses onto 7-segment patterns.
// Unknown characters render blank.
var segments = map[byte]byte{
	'0': 0x3F, '1': 0x06, '2': 0x5B, '3': 0x4F, '4': 0x66,
	'5': 0x6D, '6': 0x7D, '7': 0x07, '8': 0x7F, '9': 0x6F,
	'A': 0x77, 'B': 0x7C, 'C': 0x39, 'D': 0x5E, 'E': 0x79, 'F': 0x71,
	'S': 0x6D, 'T': 0x78, 'Y': 0x6E,
	' ': 0x00,
}

// TM1637Display bit-bangs the two-wire TM1637 protocol over GPIO.
type TM1637Display struct {
	clk        gpio.PinIO
	dio        gpio.PinIO
	brightness byte // 0-7
}

// NewTM1637Display resolves the clock and data pins and clears the
// display.
func NewTM1637Display(clkName, dioName string) (*TM1637Display, error) {
	clk := gpioreg.ByName(clkName)
	if clk == nil {
		return nil, fmt.Errorf("hw: no GPIO pin named %q", clkName)
	}
	dio := gpioreg.ByName(dioName)
	if dio == nil {
		return nil, fmt.Errorf("hw: no GPIO pin named %q", dioName)
	}
	d := &TM1637Display{clk: clk, dio: dio, brightness: 7}
	if err := d.clk.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hw: display clock pin: %w", err)
	}
	if err := d.dio.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hw: display data pin: %w", err)
	}
	d.Clear()
	return d, nil
}

var _ hardware.Display = (*TM1637Display)(nil)

// ShowText renders up to four characters, left-padded with blanks.
func (d *TM1637Display) ShowText(text string) {
	if len(text) > 4 {
		text = text[:4]
	}
	var data [4]byte
	pad := 4 - len(text)
	for i := 0; i < len(text); i++ {
		data[pad+i] = segments[upper(text[i])]
	}
	d.show(data)
}

// ShowNumber renders n mod 10000 as four zero-padded digits.
func (d *TM1637Display) ShowNumber(n int) {
	if n < 0 {
		n = 0
	}
	var data [4]byte
	for i := 3; i >= 0; i-- {
		data[i] = segments[byte('0'+n%10)]
		n /= 10
	}
	d.show(data)
}

func (d *TM1637Display) Clear() {
	d.show([4]byte{})
}

// SetBrightness sets the panel brightness, 0 (dim) to 7 (full).
func (d *TM1637Display) SetBrightness(level int) {
	if level < 0 {
		level = 0
	} else if level > 7 {
		level = 7
	}
	d.brightness = byte(level)
	d.start()
	d.writeByte(tm1637DisplayCmd | tm1637DisplayOn | d.brightness)
	d.stop()
}

func (d *TM1637Display) show(data [4]byte) {
	d.start()
	d.writeByte(tm1637DataCmd)
	d.stop()

	d.start()
	d.writeByte(tm1637AddrCmd)
	for _, b := range data {
		d.writeByte(b)
	}
	d.stop()

	d.start()
	d.writeByte(tm1637DisplayCmd | tm1637DisplayOn | d.brightness)
	d.stop()
}

func (d *TM1637Display) start() {
	d.setDIO(gpio.High)
	d.setCLK(gpio.High)
	time.Sleep(tm1637BitDelay)
	d.setDIO(gpio.Low)
}

func (d *TM1637Display) stop() {
	d.setCLK(gpio.Low)
	time.Sleep(tm1637BitDelay)
	d.setDIO(gpio.Low)
	time.Sleep(tm1637BitDelay)
	d.setCLK(gpio.High)
	time.Sleep(tm1637BitDelay)
	d.setDIO(gpio.High)
}

func (d *TM1637Display) writeByte(b byte) {
	for i := 0; i < 8; i++ {
		d.setCLK(gpio.Low)
		time.Sleep(tm1637BitDelay)
		if b>>i&1 == 1 {
			d.setDIO(gpio.High)
		} else {
			d.setDIO(gpio.Low)
		}
		time.Sleep(tm1637BitDelay)
		d.setCLK(gpio.High)
		time.Sleep(tm1637BitDelay)
	}

	// Ack slot: release DIO for one clock.
	d.setCLK(gpio.Low)
	if err := d.dio.In(gpio.PullUp, gpio.NoEdge); err != nil {
		logger.With(zap.Error(err)).Debug("Display ack read failed")
	}
	time.Sleep(tm1637BitDelay)
	d.setCLK(gpio.High)
	time.Sleep(tm1637BitDelay)
	d.dio.Read()
	d.setDIO(gpio.Low)
}

func (d *TM1637Display) setCLK(l gpio.Level) {
	if err := d.clk.Out(l); err != nil {
		logger.With(zap.Error(err)).Debug("Display clock write failed")
	}
}

func (d *TM1637Display) setDIO(l gpio.Level) {
	if err := d.dio.Out(l); err != nil {
		logger.With(zap.Error(err)).Debug("Display data write failed")
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
