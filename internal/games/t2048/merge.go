package t2048

// MergeLine slides and merges one line toward index 0.
//
// Tiles are first compacted (empties removed, order kept), then a single
// left-to-right pass doubles each tile equal to its successor and drops the
// successor. A tile produced by a merge is not compared again in the same
// pass, so [2,2,2,_] becomes [4,2,_,_] and [2,2,4,4] becomes [4,8,_,_].
// The second result reports whether the line differs from the input.
func MergeLine(line Line) (Line, bool) {
	dense := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	for i := 0; i < len(dense)-1; i++ {
		if dense[i] == dense[i+1] {
			dense[i] *= 2
			dense = append(dense[:i+1], dense[i+2:]...)
		}
	}

	var out Line
	copy(out[:], dense)
	return out, out != line
}

func reverse(line Line) Line {
	var out Line
	for i := range Size {
		out[i] = line[Size-1-i]
	}
	return out
}
