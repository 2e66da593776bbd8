package video

// FrameBuffer is a caller-owned grayscale image, one byte per pixel,
// row-major. The generator only ever reads it; ownership stays with the
// producer, which must not touch a buffer while it is on display.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a zeroed (all-black) frame buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Row returns the pixels of row y.
func (f *FrameBuffer) Row(y int) []byte {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}
