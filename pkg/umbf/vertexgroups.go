package umbf

// VertexGroup collects the face and vertex indices that reference a
// single named vertex group within a Model.
type VertexGroup struct {
	Vertices []uint32
	Faces    []uint32
}

// BuildVertexGroups derives the per-group face/vertex index lists from a
// decoded Model. Ported from original_source's utils::mesh::fill_vertex_groups
// (src/utils.cpp), which a consumer would otherwise have to reimplement
// against every decoded Mesh.
func BuildVertexGroups(model *MeshModel) []VertexGroup {
	groups := make([]VertexGroup, model.GroupCount)
	for faceIdx, face := range model.Faces {
		for _, ref := range face.Vertices {
			if ref.Group >= uint32(len(groups)) {
				continue
			}
			group := &groups[ref.Group]
			group.Faces = append(group.Faces, uint32(faceIdx))
			group.Vertices = append(group.Vertices, ref.Vertex)
		}
	}
	return groups
}
