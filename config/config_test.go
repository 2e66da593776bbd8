package config

import (
	"testing"

	"thermaltv/video"
)

func TestVideoStandard(t *testing.T) {
	tests := []struct {
		flag string
		std  video.Standard
	}{
		{"ntsc", video.NTSC},
		{"NTSC", video.NTSC},
		{"pal", video.PAL},
		{"pal32", video.PAL32},
		{"ntsc32", video.NTSC32},
	}
	for _, tc := range tests {
		cfg := &Config{Standard: tc.flag}
		std, err := cfg.VideoStandard()
		if err != nil {
			t.Fatalf("%q: %v", tc.flag, err)
		}
		if std != tc.std {
			t.Errorf("%q: standard=%v, want %v", tc.flag, std, tc.std)
		}
	}

	cfg := &Config{Standard: "secam"}
	if _, err := cfg.VideoStandard(); err == nil {
		t.Error("secam: want an error, standard is unsupported")
	}
}
