package config

import (
	"flag"
	"fmt"
	"strings"

	"thermaltv/video"
)

// Config holds all application configuration values.
type Config struct {
	Standard  string
	Width     int
	Height    int
	Frequency float64
	Gain      int
	Device    string
	Test      bool
}

// New creates and returns a new Config struct populated from command-line flags.
func New() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.Standard, "standard", "ntsc", "Video standard: ntsc, pal, ntsc32, pal32")
	flag.IntVar(&cfg.Width, "width", 256, "Active picture width in pixels")
	flag.IntVar(&cfg.Height, "height", 192, "Active picture height in lines")
	flag.Float64Var(&cfg.Frequency, "freq", 1280, "Transmit frequency in MHz")
	flag.IntVar(&cfg.Gain, "gain", 30, "TX VGA gain (0-47)")
	flag.StringVar(&cfg.Device, "device", "", "Thermal camera device name or index (OS-dependent)")
	flag.BoolVar(&cfg.Test, "test", false, "Transmit the built-in test pattern instead of the camera")
	flag.Parse()
	return cfg
}

// VideoStandard resolves the -standard flag to a video.Standard.
func (c *Config) VideoStandard() (video.Standard, error) {
	switch strings.ToLower(c.Standard) {
	case "pal":
		return video.PAL, nil
	case "pal32":
		return video.PAL32, nil
	case "ntsc":
		return video.NTSC, nil
	case "ntsc32":
		return video.NTSC32, nil
	}
	return 0, fmt.Errorf("unknown video standard %q", c.Standard)
}
