package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// MatRangeAssign assigns a material ID to an explicit set of face
// indices within a Mesh.
type MatRangeAssign struct {
	MatID uint64
	Faces []uint32
}

func (m *MatRangeAssign) Signature() uint32 { return SignatureMatRangeAssign }

func encodeMatRangeAssign(w *Writer, block Block, reg *Registry) error {
	assign, ok := block.(*MatRangeAssign)
	if !ok {
		return fmt.Errorf("umbf: encodeMatRangeAssign: wrong block type %T", block)
	}
	w.WriteU64(assign.MatID)
	w.WriteU32(uint32(len(assign.Faces)))
	for _, face := range assign.Faces {
		w.WriteU32(face)
	}
	return nil
}

func decodeMatRangeAssign(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	assign := &MatRangeAssign{}
	var err error
	if assign.MatID, err = r.ReadU64(); err != nil {
		return nil, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	assign.Faces = make([]uint32, count)
	for i := range assign.Faces {
		if assign.Faces[i], err = r.ReadU32(); err != nil {
			return nil, err
		}
	}
	return assign, nil
}
