package sdr

import (
	"github.com/samuel/go-hackrf/hackrf"

	"thermaltv/video"
)

// Transmitter drives a HackRF as the composite DAC. The TX stream consumes
// the generator's ring buffers in order at the configured sample clock and
// reports each emptied buffer, standing in for the DMA engine's
// buffer-consumed interrupt.
type Transmitter struct {
	dev  *hackrf.Device
	freq uint64
	gain int

	ring     [][]video.Sample
	consumed func(int)
	buf      int
	pos      int
}

// New wraps an open HackRF device. freqMHz is the carrier frequency; gain is
// the TX VGA gain (0-47).
func New(dev *hackrf.Device, freqMHz float64, gain int) *Transmitter {
	return &Transmitter{
		dev:  dev,
		freq: uint64(freqMHz * 1_000_000),
		gain: gain,
	}
}

// Configure claims the carrier and sample clock.
func (t *Transmitter) Configure(rate video.ClockRate) error {
	if err := t.dev.SetFreq(t.freq); err != nil {
		return err
	}
	if err := t.dev.SetSampleRate(float64(rate)); err != nil {
		return err
	}
	if err := t.dev.SetTXVGAGain(t.gain); err != nil {
		return err
	}
	return t.dev.SetAmpEnable(false)
}

// Start begins continuous transmission of the ring. StartTX is non-blocking;
// the callback runs on the USB stream thread, which is this driver's
// interrupt context.
func (t *Transmitter) Start(ring [][]video.Sample, consumed func(int)) error {
	t.ring = ring
	t.consumed = consumed
	t.buf = 0
	t.pos = 0
	return t.dev.StartTX(t.fillIQ)
}

// Stop halts the TX stream.
func (t *Transmitter) Stop() error {
	return t.dev.StopTX()
}

// fillIQ converts pending composite samples to baseband I/Q pairs. Ring
// samples sit in peripheral half-word order, so scan order is recovered with
// the same pair swap the DAC hardware applies.
func (t *Transmitter) fillIQ(buf []byte) error {
	cur := t.ring[t.buf]
	for i := 0; i+1 < len(buf); i += 2 {
		level := uint8(cur[t.pos^1] >> 8)
		buf[i] = byte(int8(amplitude(level) * 127.0))
		buf[i+1] = 0

		t.pos++
		if t.pos == len(cur) {
			done := t.buf
			t.buf = (t.buf + 1) % len(t.ring)
			t.pos = 0
			t.consumed(done)
			cur = t.ring[t.buf]
		}
	}
	return nil
}

// amplitude maps an 8-bit composite level to carrier amplitude: sync tip at
// 12.5% modulation, peak white at 100%.
func amplitude(level uint8) float64 {
	return 0.125 + float64(level)/255.0*(1.0-0.125)
}
