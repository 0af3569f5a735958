package umbf

// FillDefaultMaterialRange returns assigns plus, prepended, a synthetic
// MatRangeAssign under defaultMatID covering every face index in
// [0, faceCount) that no entry of assigns already covers. If assigns is
// non-empty and already covers every face, it is returned unchanged; an
// empty assigns always yields exactly one default range (with no faces
// when faceCount is 0). Ported from
// original_source's utils::filter_mat_assignments (src/utils.cpp).
func FillDefaultMaterialRange(assigns []*MatRangeAssign, faceCount int, defaultMatID uint64) []*MatRangeAssign {
	covered := make([]bool, faceCount)
	for _, assign := range assigns {
		for _, face := range assign.Faces {
			if int(face) < faceCount {
				covered[face] = true
			}
		}
	}

	var uncovered []uint32
	for face, ok := range covered {
		if !ok {
			uncovered = append(uncovered, uint32(face))
		}
	}

	if len(assigns) == 0 {
		if len(uncovered) == 0 {
			uncovered = make([]uint32, faceCount)
			for i := range uncovered {
				uncovered[i] = uint32(i)
			}
		}
		return []*MatRangeAssign{{MatID: defaultMatID, Faces: uncovered}}
	}

	if len(uncovered) == 0 {
		return assigns
	}

	result := make([]*MatRangeAssign, 0, len(assigns)+1)
	result = append(result, &MatRangeAssign{MatID: defaultMatID, Faces: uncovered})
	result = append(result, assigns...)
	return result
}
