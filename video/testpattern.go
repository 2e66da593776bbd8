package video

// FillTestPattern paints a grayscale calibration pattern: eight intensity
// steps over the top three quarters of the frame and a continuous
// black-to-white ramp along the bottom quarter.
func FillTestPattern(f *FrameBuffer) {
	stepHeight := f.Height * 3 / 4
	stepWidth := f.Width / 8
	if stepWidth < 1 {
		stepWidth = 1
	}
	ramp := f.Width - 1
	if ramp < 1 {
		ramp = 1
	}

	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		if y < stepHeight {
			for x := range row {
				step := x / stepWidth
				if step > 7 {
					step = 7
				}
				row[x] = byte(step * 255 / 7)
			}
		} else {
			for x := range row {
				row[x] = byte(x * 255 / ramp)
			}
		}
	}
}
