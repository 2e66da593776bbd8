package video

import (
	"fmt"
	"sync/atomic"
)

// ringBuffers is the length of the circular buffer chain. Two is enough: the
// hardware transmits one while the refill callback rewrites the other.
const ringBuffers = 2

// Output is the DMA-driven sample sink behind the generator. Configure claims
// the sample clock; Start begins continuous consumption of the ring buffers
// in order, calling consumed(i) from the stream context each time ring[i] has
// been fully transmitted; Stop halts the stream.
//
// consumed is the hard-real-time edge of the system: it must return before
// the hardware wraps back around to the buffer it reported.
type Output interface {
	Configure(rate ClockRate) error
	Start(ring [][]Sample, consumed func(int)) error
	Stop() error
}

// Handle is one running signal generator. It is created by Init and owns the
// timing parameters, the pixel table and the DMA ring for its lifetime.
type Handle struct {
	timing TimingParameters
	lut    *[256]Sample
	out    Output
	ring   [][]Sample

	// Scan cursor and displayed frame. Written during Init and then only
	// from the consumed callback.
	line  int
	front *FrameBuffer

	// Single-slot frame handoff: stored by SubmitFrame, swapped out by the
	// consumed callback when the cursor wraps.
	pending atomic.Pointer[FrameBuffer]

	stopped bool
}

// Init computes the timing for the requested mode, allocates and pre-fills
// the DMA ring, then configures and starts the output peripheral. The
// initial frame is displayed until SubmitFrame replaces it.
func Init(std Standard, width, height int, initial *FrameBuffer, out Output) (*Handle, error) {
	t, err := ComputeParameters(std, width, height)
	if err != nil {
		return nil, err
	}
	if t.LinesPerDMABuffer < 1 {
		return nil, fmt.Errorf("%w: %d-sample line exceeds the %d-byte DMA ceiling",
			ErrBufferAllocationFailed, t.SamplesPerLine, dmaBufferBytes)
	}
	if initial == nil || len(initial.Pix) < width*height {
		return nil, fmt.Errorf("%w: initial frame smaller than %dx%d",
			ErrBufferAllocationFailed, width, height)
	}

	h := &Handle{
		timing: t,
		lut:    NewPixelTable(&t),
		out:    out,
		ring:   make([][]Sample, ringBuffers),
		line:   1,
		front:  initial,
	}
	for i := range h.ring {
		h.ring[i] = make([]Sample, t.LinesPerDMABuffer*t.SamplesPerLine)
	}

	// The peripheral starts consuming immediately, so the whole ring must
	// hold valid signal before Start.
	for i := range h.ring {
		h.refill(i)
	}

	if err := out.Configure(t.Clock); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeripheralUnavailable, err)
	}
	if err := out.Start(h.ring, h.refill); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeripheralUnavailable, err)
	}
	return h, nil
}

// refill regenerates every line of one just-consumed ring buffer. This is
// the interrupt body: no allocation, no locks, and it must finish before the
// buffer comes round again.
func (h *Handle) refill(i int) {
	buf := h.ring[i]
	spl := h.timing.SamplesPerLine

	for l := 0; l < h.timing.LinesPerDMABuffer; l++ {
		cls := Classify(h.timing.Standard, h.line, &h.timing)
		var row []byte
		if cls.Kind == LineActive {
			row = h.front.Row(cls.Row)
		}
		RenderLine(&h.timing, h.lut, cls, row, buf[l*spl:(l+1)*spl])

		h.line++
		if h.line > h.timing.NumberOfLines {
			h.line = 1
			// Frame boundary: the only point a pending frame takes over.
			if fb := h.pending.Swap(nil); fb != nil {
				h.front = fb
			}
		}
	}
}

// SubmitFrame hands a new frame to the generator and returns immediately.
// The frame takes effect at the next frame boundary; submitting again before
// then replaces the earlier frame whole, so output never mixes two frames.
// The buffer must match the geometry given to Init.
func (h *Handle) SubmitFrame(f *FrameBuffer) {
	if f == nil || len(f.Pix) < h.timing.ActiveWidth*h.timing.ActiveHeight {
		return
	}
	h.pending.Store(f)
}

// Timing returns a copy of the mode's timing parameters.
func (h *Handle) Timing() TimingParameters {
	return h.timing
}

// ModeDescription returns a human-readable "<STANDARD> <width>x<height>".
func (h *Handle) ModeDescription() string {
	return fmt.Sprintf("%s %dx%d", h.timing.Standard, h.timing.ActiveWidth, h.timing.ActiveHeight)
}

// Stop halts transmission and releases the ring. Calling it again is a no-op.
func (h *Handle) Stop() {
	if h.stopped {
		return
	}
	h.stopped = true
	_ = h.out.Stop()
	h.ring = nil
}
