package video

// NewPixelTable builds the 256-entry table mapping an 8-bit pixel intensity
// to its output sample, spread linearly between the standard's black and
// white levels.
func NewPixelTable(t *TimingParameters) *[256]Sample {
	black := int(t.BlackLevel >> 8)
	span := int(t.WhiteLevel>>8) - black

	var lut [256]Sample
	for i := range lut {
		lut[i] = Sample(black+(i*span+127)/255) << 8
	}
	return &lut
}
