package umbf

import "sort"

// shelfPacker is the default RectPacker: a deterministic shelf (guillotine
// strip) packer. Sorts the input tallest-first, then greedily lays rects
// onto horizontal shelves left-to-right, opening a new shelf whenever the
// current one runs out of width. No third-party rect-packing library
// appears anywhere in the example pack, so this is a justified stdlib-only
// component (sort is its only dependency).
type shelfPacker struct{}

// NewShelfPacker returns the default RectPacker implementation.
func NewShelfPacker() RectPacker { return shelfPacker{} }

func (shelfPacker) PackRects(rects []Rect, maxSize int, discardStep int) ([]Rect, bool) {
	snapped := make([]Rect, len(rects))
	copy(snapped, rects)
	if discardStep > 1 {
		for i := range snapped {
			snapped[i].W = snapUp(snapped[i].W, discardStep)
			snapped[i].H = snapUp(snapped[i].H, discardStep)
		}
	}

	order := make([]int, len(snapped))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ha, hb := snapped[order[a]].H, snapped[order[b]].H
		if ha != hb {
			return ha > hb
		}
		return snapped[order[a]].W > snapped[order[b]].W
	})

	size := int32(maxSize)
	out := make([]Rect, len(snapped))
	var shelfY, shelfHeight, cursorX int32

	for _, i := range order {
		r := snapped[i]
		if r.W > size || r.H > size {
			return nil, false
		}
		if cursorX+r.W > size {
			shelfY += shelfHeight
			cursorX = 0
			shelfHeight = 0
		}
		if shelfY+r.H > size {
			return nil, false
		}
		out[i] = Rect{W: r.W, H: r.H, X: cursorX, Y: shelfY}
		cursorX += r.W
		if r.H > shelfHeight {
			shelfHeight = r.H
		}
	}
	return out, true
}

func snapUp(v int32, step int) int32 {
	s := int32(step)
	if v%s == 0 {
		return v
	}
	return (v/s + 1) * s
}
