package video_test

import (
	"testing"

	"thermaltv/video"
)

func mustParams(t *testing.T, std video.Standard, w, h int) video.TimingParameters {
	t.Helper()
	p, err := video.ComputeParameters(std, w, h)
	if err != nil {
		t.Fatalf("ComputeParameters(%s, %d, %d): %v", std, w, h, err)
	}
	return p
}

func TestPALSyncSequence(t *testing.T) {
	p := mustParams(t, video.PAL, 320, 288)

	want := map[int][2]video.Pulse{
		1: {video.PulseLong, video.PulseLong},
		2: {video.PulseLong, video.PulseLong},
		3: {video.PulseLong, video.PulseShort},
		4: {video.PulseShort, video.PulseShort},
		5: {video.PulseShort, video.PulseShort},
		// post-active equalizing tail
		310: {video.PulseShort, video.PulseShort},
		311: {video.PulseShort, video.PulseShort},
		312: {video.PulseShort, video.PulseShort},
	}
	for line, pulses := range want {
		cls := video.Classify(video.PAL, line, &p)
		if cls.Kind != video.LinePulsePair {
			t.Errorf("PAL line %d: kind=%v, want pulse pair", line, cls.Kind)
			continue
		}
		if cls.First != pulses[0] || cls.Second != pulses[1] {
			t.Errorf("PAL line %d: pulses=(%v,%v), want (%v,%v)",
				line, cls.First, cls.Second, pulses[0], pulses[1])
		}
	}

	for _, line := range []int{6, 12, 21} {
		if cls := video.Classify(video.PAL, line, &p); cls.Kind != video.LineBlank {
			t.Errorf("PAL line %d: kind=%v, want blank", line, cls.Kind)
		}
	}
}

func TestNTSCSyncSequence(t *testing.T) {
	p := mustParams(t, video.NTSC, 256, 192)

	wantPulse := func(line int, pulse video.Pulse) {
		cls := video.Classify(video.NTSC, line, &p)
		if cls.Kind != video.LinePulsePair {
			t.Errorf("NTSC line %d: kind=%v, want pulse pair", line, cls.Kind)
			return
		}
		if cls.First != pulse || cls.Second != pulse {
			t.Errorf("NTSC line %d: pulses=(%v,%v), want (%v,%v)",
				line, cls.First, cls.Second, pulse, pulse)
		}
	}
	for line := 1; line <= 3; line++ {
		wantPulse(line, video.PulseShort)
	}
	for line := 4; line <= 6; line++ {
		wantPulse(line, video.PulseLong)
	}
	for line := 7; line <= 9; line++ {
		wantPulse(line, video.PulseShort)
	}
	for _, line := range []int{10, 42, 235, 262} {
		if cls := video.Classify(video.NTSC, line, &p); cls.Kind != video.LineBlank {
			t.Errorf("NTSC line %d: kind=%v, want blank", line, cls.Kind)
		}
	}
}

func TestActiveWindow(t *testing.T) {
	p := mustParams(t, video.NTSC, 256, 192)

	first := p.OffsetYLines
	last := p.OffsetYLines + 192 - 1
	for _, tc := range []struct {
		line int
		row  int
	}{
		{first, 0},
		{first + 100, 100},
		{last, 191},
	} {
		cls := video.Classify(video.NTSC, tc.line, &p)
		if cls.Kind != video.LineActive {
			t.Fatalf("line %d: kind=%v, want active", tc.line, cls.Kind)
		}
		if cls.Row != tc.row {
			t.Errorf("line %d: row=%d, want %d", tc.line, cls.Row, tc.row)
		}
	}
	if cls := video.Classify(video.NTSC, first-1, &p); cls.Kind != video.LineBlank {
		t.Errorf("line %d: kind=%v, want blank above picture", first-1, cls.Kind)
	}
	if cls := video.Classify(video.NTSC, last+1, &p); cls.Kind != video.LineBlank {
		t.Errorf("line %d: kind=%v, want blank below picture", last+1, cls.Kind)
	}
}

func TestFullHeightPicture(t *testing.T) {
	// A maximum-height picture must never collide with a sync line.
	p := mustParams(t, video.PAL, 320, 288)
	for line := 1; line <= p.NumberOfLines; line++ {
		cls := video.Classify(video.PAL, line, &p)
		if cls.Kind != video.LineActive {
			continue
		}
		if line <= 5 || line >= 310 {
			t.Fatalf("PAL line %d classified active inside the sync region", line)
		}
	}
}
