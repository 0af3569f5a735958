package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// MaterialInfo names a material and the object IDs it is assigned to.
type MaterialInfo struct {
	ID          uint64
	Name        string
	Assignments []uint64
}

func (m *MaterialInfo) Signature() uint32 { return SignatureMaterialInfo }

func encodeMaterialInfo(w *Writer, block Block, reg *Registry) error {
	info, ok := block.(*MaterialInfo)
	if !ok {
		return fmt.Errorf("umbf: encodeMaterialInfo: wrong block type %T", block)
	}
	w.WriteU64(info.ID)
	w.WriteString(info.Name)
	w.WriteU32(uint32(len(info.Assignments)))
	for _, id := range info.Assignments {
		w.WriteU64(id)
	}
	return nil
}

func decodeMaterialInfo(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	info := &MaterialInfo{}
	var err error
	if info.ID, err = r.ReadU64(); err != nil {
		return nil, err
	}
	if info.Name, err = r.ReadString(); err != nil {
		return nil, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	info.Assignments = make([]uint64, count)
	for i := range info.Assignments {
		if info.Assignments[i], err = r.ReadU64(); err != nil {
			return nil, err
		}
	}
	return info, nil
}
