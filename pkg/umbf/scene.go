package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// Object is one entry in a Scene's object list. Meta is itself a
// terminator-delimited block stream, recursively decoded through the
// same registry as the Scene's container.
type Object struct {
	ID   uint64
	Name string
	Meta []Block
}

// Scene holds an object graph plus nested texture and material Files.
type Scene struct {
	Objects   []Object
	Textures  []*File
	Materials []*File
}

func (s *Scene) Signature() uint32 { return SignatureScene }

func encodeScene(w *Writer, block Block, reg *Registry) error {
	scene, ok := block.(*Scene)
	if !ok {
		return fmt.Errorf("umbf: encodeScene: wrong block type %T", block)
	}
	if len(scene.Objects) > 0xFFFF {
		return fmt.Errorf("umbf: scene: %d objects exceeds u16 count", len(scene.Objects))
	}
	w.WriteU16(uint16(len(scene.Objects)))
	for _, obj := range scene.Objects {
		w.WriteU64(obj.ID)
		w.WriteString(obj.Name)
		if err := EncodeBlocks(w, obj.Meta, reg); err != nil {
			return fmt.Errorf("umbf: scene: object %d meta: %w", obj.ID, err)
		}
	}
	if err := writeFileSequence(w, scene.Textures, reg); err != nil {
		return err
	}
	return writeFileSequence(w, scene.Materials, reg)
}

func decodeScene(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	scene := &Scene{}
	objectCount, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	scene.Objects = make([]Object, objectCount)
	for i := range scene.Objects {
		obj := &scene.Objects[i]
		if obj.ID, err = r.ReadU64(); err != nil {
			return nil, err
		}
		if obj.Name, err = r.ReadString(); err != nil {
			return nil, err
		}
		meta, err := DecodeBlocks(r, reg, log)
		if err != nil {
			return nil, fmt.Errorf("umbf: scene: object %d meta: %w", obj.ID, err)
		}
		obj.Meta = meta
	}
	if scene.Textures, err = readFileSequence(r, reg, log); err != nil {
		return nil, err
	}
	if scene.Materials, err = readFileSequence(r, reg, log); err != nil {
		return nil, err
	}
	return scene, nil
}
