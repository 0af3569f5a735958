package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// MeshVertex is one entry in a Model's shared vertex buffer.
type MeshVertex struct {
	Pos    Vec3
	UV     Vec2
	Normal Vec3
}

// VertexRef points at a vertex within a named vertex group.
type VertexRef struct {
	Group  uint32
	Vertex uint32
}

// Face is a polygon referencing a run of the model's global index array.
// FirstIndex is never stored on the wire — it is reconstructed on decode
// as the running sum of every prior face's Count (see decodeMesh).
type Face struct {
	Vertices   []VertexRef
	Normal     Vec3
	FirstIndex uint32
	Count      uint16
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// Transform is a mesh's placement in its parent space.
type Transform struct {
	Position, Rotation, Scale Vec3
}

// MeshModel is the shared-vertex topology: a vertex buffer, a face list
// referencing vertex groups, a flat index buffer, and a bounding box.
type MeshModel struct {
	Vertices   []MeshVertex
	GroupCount uint32
	Faces      []Face
	Indices    []uint32
	AABB       AABB
}

// BaryVertex is a position paired with a barycentric coordinate whose
// components are each exactly 0.0 or 1.0.
type BaryVertex struct {
	Pos         Vec3
	Barycentric Vec3
}

// Mesh is a Model plus optional barycentric vertices, a placement
// transform, and a normals-smoothing angle.
type Mesh struct {
	Model        MeshModel
	BaryVertices []BaryVertex
	Transform    Transform
	NormalsAngle float32
}

func (m *Mesh) Signature() uint32 { return SignatureMesh }

func encodeMesh(w *Writer, block Block, reg *Registry) error {
	mesh, ok := block.(*Mesh)
	if !ok {
		return fmt.Errorf("umbf: encodeMesh: wrong block type %T", block)
	}
	model := mesh.Model

	w.WriteU32(uint32(len(model.Vertices)))
	w.WriteU32(model.GroupCount)
	w.WriteU32(uint32(len(model.Faces)))
	w.WriteU32(uint32(len(model.Indices)))

	for _, v := range model.Vertices {
		w.WriteVec3(v.Pos)
		w.WriteVec2(v.UV)
		w.WriteVec3(v.Normal)
	}

	var firstIndex uint32
	for _, face := range model.Faces {
		w.WriteU32(uint32(len(face.Vertices)))
		for _, ref := range face.Vertices {
			w.WriteU32(ref.Group)
			w.WriteU32(ref.Vertex)
		}
		w.WriteVec3(face.Normal)
		w.WriteU16(face.Count)
		end := int(firstIndex) + int(face.Count)
		if end > len(model.Indices) {
			return fmt.Errorf("umbf: mesh: face index run [%d:%d) exceeds %d-length index buffer",
				firstIndex, end, len(model.Indices))
		}
		for _, idx := range model.Indices[firstIndex:end] {
			w.WriteU32(idx)
		}
		firstIndex += uint32(face.Count)
	}

	w.WriteVec3(model.AABB.Min)
	w.WriteVec3(model.AABB.Max)
	w.WriteVec3(mesh.Transform.Position)
	w.WriteVec3(mesh.Transform.Rotation)
	w.WriteVec3(mesh.Transform.Scale)
	w.WriteF32(mesh.NormalsAngle)

	return encodeBaryVertices(w, mesh.BaryVertices)
}

func decodeMesh(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	mesh := &Mesh{}
	model := &mesh.Model

	vertexCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if model.GroupCount, err = r.ReadU32(); err != nil {
		return nil, err
	}
	faceCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	indexCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	model.Vertices = make([]MeshVertex, vertexCount)
	for i := range model.Vertices {
		v := &model.Vertices[i]
		if v.Pos, err = r.ReadVec3(); err != nil {
			return nil, err
		}
		if v.UV, err = r.ReadVec2(); err != nil {
			return nil, err
		}
		if v.Normal, err = r.ReadVec3(); err != nil {
			return nil, err
		}
	}

	model.Faces = make([]Face, faceCount)
	model.Indices = make([]uint32, indexCount)
	var firstIndex uint32
	for i := range model.Faces {
		face := &model.Faces[i]
		vrefCount, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		face.Vertices = make([]VertexRef, vrefCount)
		for j := range face.Vertices {
			if face.Vertices[j].Group, err = r.ReadU32(); err != nil {
				return nil, err
			}
			if face.Vertices[j].Vertex, err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
		if face.Normal, err = r.ReadVec3(); err != nil {
			return nil, err
		}
		if face.Count, err = r.ReadU16(); err != nil {
			return nil, err
		}
		face.FirstIndex = firstIndex
		end := int(firstIndex) + int(face.Count)
		if end > len(model.Indices) {
			return nil, fmt.Errorf("%w: mesh face index run [%d:%d) exceeds %d-length index buffer",
				ErrTruncatedStream, firstIndex, end, len(model.Indices))
		}
		for k := int(firstIndex); k < end; k++ {
			if model.Indices[k], err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
		firstIndex += uint32(face.Count)
	}

	if model.AABB.Min, err = r.ReadVec3(); err != nil {
		return nil, err
	}
	if model.AABB.Max, err = r.ReadVec3(); err != nil {
		return nil, err
	}
	if mesh.Transform.Position, err = r.ReadVec3(); err != nil {
		return nil, err
	}
	if mesh.Transform.Rotation, err = r.ReadVec3(); err != nil {
		return nil, err
	}
	if mesh.Transform.Scale, err = r.ReadVec3(); err != nil {
		return nil, err
	}
	if mesh.NormalsAngle, err = r.ReadF32(); err != nil {
		return nil, err
	}

	mesh.BaryVertices, err = decodeBaryVertices(r)
	if err != nil {
		return nil, err
	}
	return mesh, nil
}

// encodeBaryVertices writes the optional barycentric-vertex section: a
// presence flag, then (if present) the bit-packed pattern words
// (§ Barycentric coordinates) followed by each vertex's plain position.
// Positions are not packed — only the three nonzero/zero flags per
// vertex are, since that is the only field the packing scheme describes.
func encodeBaryVertices(w *Writer, verts []BaryVertex) error {
	if len(verts) == 0 {
		w.WriteU8(0)
		return nil
	}
	w.WriteU8(1)
	w.WriteU32(uint32(len(verts)))

	patterns := make([]uint8, len(verts))
	for i, v := range verts {
		patterns[i] = barycentricToPattern(v.Barycentric)
	}
	words := PackBarycentric(patterns)
	w.WriteU32(uint32(len(words)))
	for _, word := range words {
		w.WriteU64(word)
	}
	for _, v := range verts {
		w.WriteVec3(v.Pos)
	}
	return nil
}

func decodeBaryVertices(r *Reader) ([]BaryVertex, error) {
	present, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if present == 0 {
		return nil, nil
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	wordCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	words := make([]uint64, wordCount)
	for i := range words {
		if words[i], err = r.ReadU64(); err != nil {
			return nil, err
		}
	}
	patterns := UnpackBarycentric(words, int(count))

	verts := make([]BaryVertex, count)
	for i := range verts {
		if verts[i].Pos, err = r.ReadVec3(); err != nil {
			return nil, err
		}
		verts[i].Barycentric = patternToBarycentric(patterns[i])
	}
	return verts, nil
}

func barycentricToPattern(v Vec3) uint8 {
	var p uint8
	if v.X != 0 {
		p |= 1 << 2
	}
	if v.Y != 0 {
		p |= 1 << 1
	}
	if v.Z != 0 {
		p |= 1 << 0
	}
	return p
}

func patternToBarycentric(p uint8) Vec3 {
	bit := func(k uint) float32 {
		if (p>>k)&1 != 0 {
			return 1.0
		}
		return 0.0
	}
	return Vec3{X: bit(2), Y: bit(1), Z: bit(0)}
}

// PackBarycentric packs a sequence of 3-bit patterns (each in 0..7)
// MSB-first into ceil(3n/64) u64 words, with no padding between
// patterns — a pattern straddling a word boundary has its high bits in
// the earlier word and its low bits in the next.
func PackBarycentric(patterns []uint8) []uint64 {
	n := len(patterns)
	wordCount := (n*3 + 63) / 64
	words := make([]uint64, wordCount)
	bitPos := 0
	for _, p := range patterns {
		pattern := uint64(p & 0x7)
		for b := 2; b >= 0; b-- {
			bit := (pattern >> uint(b)) & 1
			shift := 63 - (bitPos % 64)
			words[bitPos/64] |= bit << uint(shift)
			bitPos++
		}
	}
	return words
}

// UnpackBarycentric reverses PackBarycentric, reading count 3-bit
// patterns back out of words.
func UnpackBarycentric(words []uint64, count int) []uint8 {
	patterns := make([]uint8, count)
	bitPos := 0
	for i := 0; i < count; i++ {
		var pattern uint8
		for b := 2; b >= 0; b-- {
			shift := 63 - (bitPos % 64)
			bit := (words[bitPos/64] >> uint(shift)) & 1
			pattern |= uint8(bit) << uint(b)
			bitPos++
		}
		patterns[i] = pattern
	}
	return patterns
}
