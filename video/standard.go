package video

import "fmt"

// Standard selects the broadcast timing the signal is generated to. The -32
// variants carry the same broadcast timing as their namesakes but are clocked
// from the 32 MHz reference oscillator instead of the 48 MHz one, for boards
// populated with the cheaper TCXO.
type Standard int

const (
	PAL Standard = iota
	PAL32
	NTSC
	NTSC32
)

func (s Standard) String() string {
	switch s {
	case PAL:
		return "PAL"
	case PAL32:
		return "PAL-32"
	case NTSC:
		return "NTSC"
	case NTSC32:
		return "NTSC-32"
	}
	return fmt.Sprintf("Standard(%d)", int(s))
}

// ClockRate is one of the six discrete sample clocks the DAC clock tree can
// produce. Each standard offers a low-resolution and a high-resolution clock;
// the calculator picks the lowest one the requested width fits in.
type ClockRate int

const (
	Clock8MHz  ClockRate = 8_000_000
	Clock10MHz ClockRate = 10_000_000
	Clock12MHz ClockRate = 12_000_000
	Clock16MHz ClockRate = 16_000_000
	Clock20MHz ClockRate = 20_000_000
	Clock24MHz ClockRate = 24_000_000
)

// standardTiming holds the broadcast constants for one standard. Durations
// are in seconds; line counts are per non-interlaced frame.
type standardTiming struct {
	lineDuration float64
	hSync        float64
	vSyncLong    float64
	vSyncShort   float64
	frontPorch   float64
	backPorch    float64

	totalLines      int
	maxActiveLines  int
	firstActiveLine int

	clockLow  ClockRate
	clockHigh ClockRate

	// DAC codes approximating -40..100 IRE across the 8-bit range.
	blankLevel uint8
	blackLevel uint8
	whiteLevel uint8
}

func (s Standard) timing() standardTiming {
	switch s {
	case PAL, PAL32:
		t := standardTiming{
			lineDuration:    64.0e-6,
			hSync:           4.7e-6,
			vSyncLong:       27.3e-6,
			vSyncShort:      2.35e-6,
			frontPorch:      1.65e-6,
			backPorch:       5.7e-6,
			totalLines:      312,
			maxActiveLines:  288,
			firstActiveLine: 22,
			clockLow:        Clock12MHz,
			clockHigh:       Clock24MHz,
			blankLevel:      73,
			blackLevel:      73, // PAL carries no setup pedestal
			whiteLevel:      255,
		}
		if s == PAL32 {
			t.clockLow, t.clockHigh = Clock8MHz, Clock16MHz
		}
		return t
	case NTSC, NTSC32:
		t := standardTiming{
			lineDuration:    63.556e-6,
			hSync:           4.7e-6,
			vSyncLong:       27.1e-6,
			vSyncShort:      2.3e-6,
			frontPorch:      1.5e-6,
			backPorch:       4.5e-6,
			totalLines:      262,
			maxActiveLines:  240,
			firstActiveLine: 19,
			clockLow:        Clock10MHz,
			clockHigh:       Clock20MHz,
			blankLevel:      73,
			blackLevel:      87, // 7.5 IRE setup
			whiteLevel:      255,
		}
		if s == NTSC32 {
			t.clockLow, t.clockHigh = Clock8MHz, Clock16MHz
		}
		return t
	}
	panic(fmt.Sprintf("video: unknown standard %d", int(s)))
}
