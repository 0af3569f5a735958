package umbf

import "testing"

func TestBuildVertexGroups(t *testing.T) {
	t.Parallel()

	model := &MeshModel{
		GroupCount: 2,
		Faces: []Face{
			{Vertices: []VertexRef{{Group: 0, Vertex: 5}, {Group: 1, Vertex: 6}}},
			{Vertices: []VertexRef{{Group: 0, Vertex: 7}}},
		},
	}

	groups := BuildVertexGroups(model)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups[0].Faces) != 2 || groups[0].Faces[0] != 0 || groups[0].Faces[1] != 1 {
		t.Fatalf("group 0 faces = %v", groups[0].Faces)
	}
	if len(groups[0].Vertices) != 2 || groups[0].Vertices[0] != 5 || groups[0].Vertices[1] != 7 {
		t.Fatalf("group 0 vertices = %v", groups[0].Vertices)
	}
	if len(groups[1].Faces) != 1 || groups[1].Faces[0] != 0 {
		t.Fatalf("group 1 faces = %v", groups[1].Faces)
	}
}

func TestBuildVertexGroupsIgnoresOutOfRangeGroup(t *testing.T) {
	t.Parallel()

	model := &MeshModel{
		GroupCount: 1,
		Faces: []Face{
			{Vertices: []VertexRef{{Group: 5, Vertex: 0}}},
		},
	}
	groups := BuildVertexGroups(model)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Faces) != 0 {
		t.Fatalf("expected out-of-range group reference to be ignored, got %v", groups[0].Faces)
	}
}
