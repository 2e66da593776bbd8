package video

// Pulse is one half-line vertical-sync pulse width class. A long (broad)
// pulse spans most of the half line; a short (equalizing) pulse is roughly
// half an hsync.
type Pulse int

const (
	PulseShort Pulse = iota
	PulseLong
)

// LineKind says what a scan line carries.
type LineKind int

const (
	LinePulsePair LineKind = iota // vertical sync, one pulse per half line
	LineBlank                     // hsync + blanking only
	LineActive                    // hsync + picture samples
)

// LineClass is the classification of one absolute scan line. First and
// Second are meaningful for LinePulsePair, Row for LineActive.
type LineClass struct {
	Kind          LineKind
	First, Second Pulse
	Row           int
}

// Vertical sync sequences, one pulse pair per line. PAL opens the frame with
// two broad lines, a broad+equalizing line and two equalizing lines, and
// closes it with three equalizing lines. NTSC carries its whole sequence at
// the top of the frame: three equalizing, three broad, three equalizing.
// These tables are normative; receivers lock to them line-for-line.
var (
	palHead = [][2]Pulse{
		{PulseLong, PulseLong},
		{PulseLong, PulseLong},
		{PulseLong, PulseShort},
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
	}
	palTail = [][2]Pulse{
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
	}

	ntscHead = [][2]Pulse{
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
		{PulseLong, PulseLong},
		{PulseLong, PulseLong},
		{PulseLong, PulseLong},
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
		{PulseShort, PulseShort},
	}
	ntscTail [][2]Pulse
)

func syncPattern(std Standard) (head, tail [][2]Pulse) {
	switch std {
	case PAL, PAL32:
		return palHead, palTail
	case NTSC, NTSC32:
		return ntscHead, ntscTail
	}
	return nil, nil
}

// Classify maps an absolute scan line (1..NumberOfLines) to its content for
// the mode described by t.
func Classify(std Standard, line int, t *TimingParameters) LineClass {
	head, tail := syncPattern(std)

	if line >= 1 && line <= len(head) {
		p := head[line-1]
		return LineClass{Kind: LinePulsePair, First: p[0], Second: p[1]}
	}
	if first := t.NumberOfLines - len(tail) + 1; line >= first && line <= t.NumberOfLines {
		p := tail[line-first]
		return LineClass{Kind: LinePulsePair, First: p[0], Second: p[1]}
	}

	if row := line - t.OffsetYLines; row >= 0 && row < t.ActiveHeight {
		return LineClass{Kind: LineActive, Row: row}
	}
	return LineClass{Kind: LineBlank}
}
