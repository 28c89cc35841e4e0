package scenes

import "testing"

func TestParseMergeRanges(t *testing.T) {
	t.Parallel()

	got, err := ParseMergeRanges("3-5,6-7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(got))
	}
	if got[0].Start != 3 || got[0].End != 5 || got[1].Start != 6 || got[1].End != 7 {
		t.Fatalf("unexpected ranges: %+v", got)
	}
}

func TestParseMergeRanges_Empty(t *testing.T) {
	t.Parallel()

	got, err := ParseMergeRanges("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestParseMergeRanges_Malformed(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"3", "3-", "-5", "a-b", "3-5,x", "-1-2"} {
		if _, err := ParseMergeRanges(spec); err == nil {
			t.Fatalf("expected error for %q", spec)
		}
	}
}

func TestMergeRanges_Suppressed(t *testing.T) {
	t.Parallel()

	m, err := ParseMergeRanges("3-5,8-9")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[int]bool{
		2: false,
		3: true,
		4: true,
		5: false, // end is exclusive
		8: true,
		9: false,
	}
	for idx, suppressed := range want {
		if got := m.Suppressed(idx); got != suppressed {
			t.Fatalf("Suppressed(%d) = %v, want %v", idx, got, suppressed)
		}
	}
}

func TestMergeRanges_IntroIndex(t *testing.T) {
	t.Parallel()

	m, err := ParseMergeRanges("0-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !m.Suppressed(0) {
		t.Fatalf("expected intro (index 0) to be suppressed")
	}
	if m.Suppressed(1) {
		t.Fatalf("scene 1 should not be suppressed")
	}
}
