package frame

import "testing"

func TestNewSilent(t *testing.T) {
	s := New(8)
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}
	for i, f := range s.Frames() {
		if f != Silence {
			t.Fatalf("Frames()[%d] = %v, want silence", i, f)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	if got := New(-3).Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", got)
	}
}

func TestNilSequenceIsEmpty(t *testing.T) {
	var s *Sequence
	if !s.Empty() || s.Len() != 0 || s.Frames() != nil {
		t.Fatal("nil sequence should behave as empty")
	}
}

func TestDeinterleavePairsByIndex(t *testing.T) {
	s := Deinterleave([]float32{0.1, 0.2, 0.3, 0.4, 0.5})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (odd trailing sample dropped)", s.Len())
	}
	want := []Stereo{{0.1, 0.2}, {0.3, 0.4}}
	for i, w := range want {
		if s.At(i) != w {
			t.Fatalf("At(%d) = %v, want %v", i, s.At(i), w)
		}
	}
}

func TestFromChannelsUsesShorter(t *testing.T) {
	s := FromChannels([]float32{1, 2, 3}, []float32{4, 5})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.At(1) != (Stereo{L: 2, R: 5}) {
		t.Fatalf("At(1) = %v", s.At(1))
	}
}

func TestSliceSharesMemoryAndClamps(t *testing.T) {
	frames := []Stereo{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	s := FromFrames(frames)

	sub := s.Slice(1, 2)
	if sub.Len() != 2 || sub.At(0) != (Stereo{2, 2}) {
		t.Fatalf("Slice(1, 2) = %v", sub.Frames())
	}
	frames[1] = Stereo{9, 9}
	if sub.At(0) != (Stereo{9, 9}) {
		t.Fatal("Slice should share underlying memory")
	}

	if got := s.Slice(3, 10).Len(); got != 1 {
		t.Fatalf("Slice(3, 10).Len() = %d, want 1", got)
	}
	if got := s.Slice(-2, 1).Len(); got != 1 {
		t.Fatalf("Slice(-2, 1).Len() = %d, want 1", got)
	}
	if got := s.Slice(7, 1).Len(); got != 0 {
		t.Fatalf("Slice(7, 1).Len() = %d, want 0", got)
	}
}

func TestCopyIsDeep(t *testing.T) {
	s := FromFrames([]Stereo{{1, 2}})
	c := s.Copy()
	c.Frames()[0] = Stereo{5, 5}
	if s.At(0) != (Stereo{1, 2}) {
		t.Fatal("Copy should not share memory")
	}
}

func TestChannelExtraction(t *testing.T) {
	s := FromFrames([]Stereo{{0.5, -0.5}, {1, 0}})
	left, right, mono := s.Left(), s.Right(), s.Mono()
	if left[0] != 0.5 || right[0] != -0.5 || mono[0] != 0 || mono[1] != 0.5 {
		t.Fatalf("left=%v right=%v mono=%v", left, right, mono)
	}
}

func TestStereoLerp(t *testing.T) {
	got := Stereo{L: 0, R: 1}.Lerp(Stereo{L: 1, R: 3}, 0.25)
	if got != (Stereo{L: 0.25, R: 1.5}) {
		t.Fatalf("Lerp = %v", got)
	}
}
