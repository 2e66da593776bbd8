package main

import (
	"log"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samuel/go-hackrf/hackrf"

	"thermaltv/config"
	"thermaltv/sdr"
	"thermaltv/source"
	"thermaltv/ui"
	"thermaltv/video"
)

func main() {
	cfg := config.New()

	std, err := cfg.VideoStandard()
	if err != nil {
		log.Fatalf("Bad -standard flag: %v", err)
	}

	// HackRF lifecycle is managed by main.
	if err := hackrf.Init(); err != nil {
		log.Fatalf("hackrf.Init() failed: %v", err)
	}
	defer hackrf.Exit()

	dev, err := hackrf.Open()
	if err != nil {
		log.Fatalf("hackrf.Open() failed: %v", err)
	}
	defer dev.Close()

	// The initial frame shows the calibration pattern until the camera
	// delivers its first frame (or forever, in -test mode).
	initial := video.NewFrameBuffer(cfg.Width, cfg.Height)
	video.FillTestPattern(initial)

	tx := sdr.New(dev, cfg.Frequency, cfg.Gain)
	handle, err := video.Init(std, cfg.Width, cfg.Height, initial, tx)
	if err != nil {
		log.Fatalf("video.Init failed: %v", err)
	}
	defer handle.Stop()

	var frames atomic.Uint64
	if !cfg.Test {
		ffmpegCmd, err := source.StartFFmpegCapture(cfg, std, func(f *video.FrameBuffer) {
			handle.SubmitFrame(f)
			frames.Add(1)
		})
		if err != nil {
			log.Fatalf("Failed to start video source: %v", err)
		}
		defer func() {
			if ffmpegCmd.Process != nil {
				_ = ffmpegCmd.Process.Kill()
			}
		}()
	} else {
		log.Println("Test mode: calibration pattern will be transmitted.")
	}

	log.Printf("Transmitting %s on %.3f MHz", handle.ModeDescription(), cfg.Frequency)

	p := tea.NewProgram(ui.New(handle.ModeDescription(), cfg.Frequency, &frames))
	if _, err := p.Run(); err != nil {
		log.Fatalf("Status UI failed: %v", err)
	}

	log.Println("Shutting down...")
}
