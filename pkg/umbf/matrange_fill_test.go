package umbf

import "testing"

func TestFillDefaultMaterialRangeNoAssignments(t *testing.T) {
	t.Parallel()

	got := FillDefaultMaterialRange(nil, 3, 99)
	if len(got) != 1 {
		t.Fatalf("got %d ranges, want 1", len(got))
	}
	if got[0].MatID != 99 || len(got[0].Faces) != 3 {
		t.Fatalf("default range = %+v", got[0])
	}
}

func TestFillDefaultMaterialRangePartialCoverage(t *testing.T) {
	t.Parallel()

	existing := []*MatRangeAssign{{MatID: 1, Faces: []uint32{0, 2}}}
	got := FillDefaultMaterialRange(existing, 4, 99)

	if len(got) != 2 {
		t.Fatalf("got %d ranges, want 2", len(got))
	}
	if got[0].MatID != 99 || len(got[0].Faces) != 2 || got[0].Faces[0] != 1 || got[0].Faces[1] != 3 {
		t.Fatalf("default range = %+v", got[0])
	}
	if got[1] != existing[0] {
		t.Fatalf("existing assignment should be preserved in place")
	}
}

func TestFillDefaultMaterialRangeFullCoverageReturnsUnchanged(t *testing.T) {
	t.Parallel()

	existing := []*MatRangeAssign{{MatID: 1, Faces: []uint32{0, 1, 2}}}
	got := FillDefaultMaterialRange(existing, 3, 99)

	if len(got) != 1 || got[0] != existing[0] {
		t.Fatalf("expected assigns returned unchanged when coverage is complete, got %+v", got)
	}
}
