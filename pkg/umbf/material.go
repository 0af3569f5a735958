package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// MaterialNode packs an albedo color with an optional texture reference.
// Grounded on original_source's bin_stream specialization for
// umbf::MaterialNode: a u16 with bit 15 as the textured flag and bits
// 0-14 as the texture ID.
type MaterialNode struct {
	RGB       Vec3
	Textured  bool
	TextureID int16 // valid range [0, 32767] when Textured; 0 otherwise
}

// Material carries nested texture Files plus one albedo node.
type Material struct {
	Textures []*File
	Albedo   MaterialNode
}

func (m *Material) Signature() uint32 { return SignatureMaterial }

func writeMaterialNode(w *Writer, n MaterialNode) {
	w.WriteVec3(n.RGB)
	var data uint16
	if n.Textured {
		data = (1 << 15) | (uint16(n.TextureID) & 0x7FFF)
	}
	w.WriteU16(data)
}

func readMaterialNode(r *Reader) (MaterialNode, error) {
	var n MaterialNode
	var err error
	if n.RGB, err = r.ReadVec3(); err != nil {
		return n, err
	}
	data, err := r.ReadU16()
	if err != nil {
		return n, err
	}
	n.Textured = (data >> 15) != 0
	if n.Textured {
		n.TextureID = int16(data & 0x7FFF)
	}
	return n, nil
}

func encodeMaterial(w *Writer, block Block, reg *Registry) error {
	material, ok := block.(*Material)
	if !ok {
		return fmt.Errorf("umbf: encodeMaterial: wrong block type %T", block)
	}
	if err := writeFileSequence(w, material.Textures, reg); err != nil {
		return err
	}
	writeMaterialNode(w, material.Albedo)
	return nil
}

func decodeMaterial(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	material := &Material{}
	textures, err := readFileSequence(r, reg, log)
	if err != nil {
		return nil, err
	}
	material.Textures = textures
	albedo, err := readMaterialNode(r)
	if err != nil {
		return nil, err
	}
	material.Albedo = albedo
	return material, nil
}
