package video

import (
	"fmt"
	"math"
)

// dmaBufferBytes is the hardware ceiling for a single DMA descriptor. A ring
// buffer holds as many whole scan lines as fit underneath it.
const dmaBufferBytes = 4092

// bytesPerSample: samples travel to the DAC as 16-bit half-words.
const bytesPerSample = 2

// Sample is one 16-bit DAC half-word. The converter reads the intensity from
// the high byte, so every level is stored pre-shifted.
type Sample uint16

// TimingParameters is the complete sample-domain description of one video
// mode. It is computed once by ComputeParameters and never mutated afterwards.
type TimingParameters struct {
	Standard Standard
	Clock    ClockRate

	SamplesPerLine    int // always even
	HSyncSamples      int
	VSyncLongSamples  int
	VSyncShortSamples int
	FrontPorchSamples int
	BackPorchSamples  int

	OffsetXSamples int // first active sample of an active line
	OffsetYLines   int // scan line carrying frame row 0
	NumberOfLines  int

	LinesPerDMABuffer int

	ActiveWidth  int
	ActiveHeight int

	BlankLevel Sample
	BlackLevel Sample
	WhiteLevel Sample
}

// ComputeParameters derives the timing for a standard and active picture
// size. It is a pure function: it claims no hardware and reports any misfit
// instead of clamping.
//
// The width decides the sample clock: the standard's low clock is preferred
// when the width fits its active-interval budget, the high clock otherwise.
func ComputeParameters(std Standard, width, height int) (TimingParameters, error) {
	st := std.timing()

	if height < 1 || height > st.maxActiveLines {
		return TimingParameters{}, fmt.Errorf("%w: %d lines, %s displays at most %d",
			ErrHeightExceedsStandard, height, std, st.maxActiveLines)
	}

	clock := st.clockLow
	if width < 1 || width > widthBudget(st, clock) {
		clock = st.clockHigh
		if width < 1 || width > widthBudget(st, clock) {
			return TimingParameters{}, fmt.Errorf("%w: %d pixels, %s fits at most %d",
				ErrWidthExceedsStandard, width, std, widthBudget(st, st.clockHigh))
		}
	}

	t := TimingParameters{
		Standard: std,
		Clock:    clock,

		SamplesPerLine:    samplesAt(st.lineDuration, clock) &^ 1,
		HSyncSamples:      samplesAt(st.hSync, clock),
		VSyncLongSamples:  samplesAt(st.vSyncLong, clock),
		VSyncShortSamples: samplesAt(st.vSyncShort, clock),
		FrontPorchSamples: samplesAt(st.frontPorch, clock),
		BackPorchSamples:  samplesAt(st.backPorch, clock),

		OffsetYLines:  st.firstActiveLine + (st.maxActiveLines-height)/2,
		NumberOfLines: st.totalLines,

		ActiveWidth:  width,
		ActiveHeight: height,

		BlankLevel: Sample(st.blankLevel) << 8,
		BlackLevel: Sample(st.blackLevel) << 8,
		WhiteLevel: Sample(st.whiteLevel) << 8,
	}

	// Center the picture in the active interval. Rounding slack lands in
	// the blanking either side, never in the sync pulse.
	t.OffsetXSamples = t.HSyncSamples + t.BackPorchSamples +
		(widthBudget(st, clock)-width)/2

	t.LinesPerDMABuffer = dmaBufferBytes / (t.SamplesPerLine * bytesPerSample)

	return t, nil
}

// widthBudget is the number of active samples a line has room for at the
// given clock: the even-rounded line minus the sync pulse and both porches.
// Measuring against the rounded line keeps sync+porches+active inside
// SamplesPerLine even when the even-forcing shaves a sample off.
func widthBudget(st standardTiming, clock ClockRate) int {
	spl := samplesAt(st.lineDuration, clock) &^ 1
	return spl - samplesAt(st.hSync, clock) -
		samplesAt(st.frontPorch, clock) - samplesAt(st.backPorch, clock)
}

// samplesAt converts a duration to a sample count at the given clock,
// rounded to nearest.
func samplesAt(d float64, clock ClockRate) int {
	return int(math.Round(d * float64(clock)))
}
