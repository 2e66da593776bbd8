package source

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"

	"thermaltv/config"
	"thermaltv/video"
)

// StartFFmpegCapture starts an FFmpeg process that captures the thermal
// camera device, scales it to the active picture size and emits raw gray8
// frames. Each completed frame is passed to submit; the goroutine rotates
// over three caller-owned buffers so a frame is never rewritten while it may
// still be on display.
func StartFFmpegCapture(cfg *config.Config, std video.Standard, submit func(*video.FrameBuffer)) (*exec.Cmd, error) {
	var ffmpegArgs []string

	switch runtime.GOOS {
	case "linux":
		dev := cfg.Device
		if dev == "" {
			dev = "/dev/video0"
		}
		ffmpegArgs = []string{"-f", "v4l2", "-i", dev}
	case "darwin":
		dev := cfg.Device
		if dev == "" {
			dev = "0"
		}
		ffmpegArgs = []string{"-f", "avfoundation", "-i", dev}
	case "windows":
		dev := cfg.Device
		if dev == "" {
			dev = "Integrated Webcam"
		}
		ffmpegArgs = []string{"-f", "dshow", "-i", "video=" + dev}
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	// Non-interlaced frames: PAL-rate standards scan at 50 Hz, NTSC-rate
	// at 60/1.001 Hz.
	fpsVal := "60000/1001"
	if std == video.PAL || std == video.PAL32 {
		fpsVal = "50"
	}

	vfArg := fmt.Sprintf("scale=%d:%d,fps=%s", cfg.Width, cfg.Height, fpsVal)

	commonArgs := []string{
		"-hide_banner", "-loglevel", "error",
		"-fflags", "nobuffer", "-flags", "low_delay",
		"-probesize", "32", "-analyzeduration", "0",
		"-threads", "1", "-f", "rawvideo",
		"-pix_fmt", "gray", "-vf", vfArg, "-",
	}

	ffmpegArgs = append(ffmpegArgs, commonArgs...)
	ffmpegCmd := exec.Command("ffmpeg", ffmpegArgs...)

	ffmpegStdout, err := ffmpegCmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get FFmpeg stdout pipe: %w", err)
	}
	if err := ffmpegCmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start FFmpeg: %w", err)
	}
	log.Println("FFmpeg process started to capture the camera...")

	go func() {
		frames := [3]*video.FrameBuffer{
			video.NewFrameBuffer(cfg.Width, cfg.Height),
			video.NewFrameBuffer(cfg.Width, cfg.Height),
			video.NewFrameBuffer(cfg.Width, cfg.Height),
		}
		next := 0
		for {
			f := frames[next]
			if _, err := io.ReadFull(ffmpegStdout, f.Pix); err != nil {
				if err != io.EOF {
					log.Printf("Error reading from FFmpeg: %v", err)
				}
				return
			}
			submit(f)
			next = (next + 1) % len(frames)
		}
	}()

	return ffmpegCmd, nil
}
