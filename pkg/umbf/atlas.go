package umbf

import (
	"fmt"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

// Rect is a packed sub-rectangle within an Atlas's companion Image2D.
type Rect struct {
	W, H, X, Y int32
}

// Atlas carries only the packed-rectangle list; the pixel data it
// describes lives in the sibling Image2D block in the same File (current
// wire revision — see original_source's legacy family for the variant
// that embedded pixels directly).
type Atlas struct {
	DiscardStep uint16
	Padding     int16
	PackData    []Rect
}

func (a *Atlas) Signature() uint32 { return SignatureImageAtlas }

func encodeAtlas(w *Writer, block Block, reg *Registry) error {
	atlas, ok := block.(*Atlas)
	if !ok {
		return fmt.Errorf("umbf: encodeAtlas: wrong block type %T", block)
	}
	w.WriteU16(atlas.DiscardStep)
	w.WriteI16(atlas.Padding)
	if len(atlas.PackData) > 0xFFFF {
		return fmt.Errorf("umbf: atlas: %d rects exceeds u16 count", len(atlas.PackData))
	}
	w.WriteU16(uint16(len(atlas.PackData)))
	for _, rect := range atlas.PackData {
		w.WriteI32(rect.W)
		w.WriteI32(rect.H)
		w.WriteI32(rect.X)
		w.WriteI32(rect.Y)
	}
	return nil
}

func decodeAtlas(r *Reader, reg *Registry, log umbflog.Logger) (Block, error) {
	atlas := &Atlas{}
	var err error
	if atlas.DiscardStep, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if atlas.Padding, err = r.ReadI16(); err != nil {
		return nil, err
	}
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	atlas.PackData = make([]Rect, count)
	for i := range atlas.PackData {
		if atlas.PackData[i].W, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if atlas.PackData[i].H, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if atlas.PackData[i].X, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if atlas.PackData[i].Y, err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	return atlas, nil
}
