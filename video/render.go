package video

// syncLevel is the sync tip, the lowest DAC code.
const syncLevel Sample = 0

// peripheralIndex maps a scan-order sample position to the buffer slot the
// DAC reads at that instant. Samples leave memory two per 32-bit bus word and
// the peripheral interprets the word as little-endian half-words, so adjacent
// samples land swapped relative to scan order. Every buffer write goes
// through this mapping; the transmit side applies it again to read back in
// scan order.
func peripheralIndex(i int) int {
	return i ^ 1
}

// align4 rounds a pulse width down to a 4-sample boundary so that no level
// transition straddles a 32-bit word. An unaligned transition would be
// reordered by the half-word swap and come out one sample early.
func align4(n int) int {
	return n &^ 3
}

func fillLevel(out []Sample, start, n int, level Sample) {
	for i := start; i < start+n; i++ {
		out[peripheralIndex(i)] = level
	}
}

func pulseWidth(t *TimingParameters, p Pulse) int {
	if p == PulseLong {
		return align4(t.VSyncLongSamples)
	}
	return align4(t.VSyncShortSamples)
}

// RenderLine fills out, which must hold exactly SamplesPerLine samples, with
// one complete scan line. row supplies the pixel bytes for an active line and
// is ignored otherwise. The function never allocates; it runs inside the
// refill deadline of one DMA buffer.
func RenderLine(t *TimingParameters, lut *[256]Sample, cls LineClass, row []byte, out []Sample) {
	switch cls.Kind {
	case LinePulsePair:
		// The half-line point is floored to the same alignment as the
		// pulses: SamplesPerLine is only guaranteed even, and an odd
		// half would put the second pulse's edges inside a sample pair.
		half := align4(t.SamplesPerLine / 2)
		first := pulseWidth(t, cls.First)
		second := pulseWidth(t, cls.Second)
		fillLevel(out, 0, first, syncLevel)
		fillLevel(out, first, half-first, t.BlankLevel)
		fillLevel(out, half, second, syncLevel)
		fillLevel(out, half+second, t.SamplesPerLine-half-second, t.BlankLevel)

	case LineBlank:
		hs := align4(t.HSyncSamples)
		fillLevel(out, 0, hs, syncLevel)
		fillLevel(out, hs, t.SamplesPerLine-hs, t.BlankLevel)

	case LineActive:
		hs := align4(t.HSyncSamples)
		fillLevel(out, 0, hs, syncLevel)
		fillLevel(out, hs, t.OffsetXSamples-hs, t.BlankLevel)
		for x := 0; x < t.ActiveWidth; x++ {
			out[peripheralIndex(t.OffsetXSamples+x)] = lut[row[x]]
		}
		end := t.OffsetXSamples + t.ActiveWidth
		fillLevel(out, end, t.SamplesPerLine-end, t.BlankLevel)
	}
}
