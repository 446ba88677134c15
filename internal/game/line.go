package game

// slideLine compacts and merges a single line of four tiles toward index
// 0, the direction of motion. Returns the resulting line and the score
// gained, which is the sum of every merged tile's new value.
//
// A cell produced by a merge is closed for the rest of the call: [2,2,4]
// becomes [4,4], never [8]. The merged flag tracks whether the tile at
// writePos-1 came from a merge this call.
func slideLine(line [Size]int) (result [Size]int, score int) {
	writePos := 0
	merged := false

	for i := range Size {
		if line[i] == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == line[i] {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
		} else {
			result[writePos] = line[i]
			writePos++
			merged = false
		}
	}

	return result, score
}

// reverseLine reverses a line so that rightward and downward moves can
// reuse slideLine's toward-index-0 convention.
func reverseLine(line [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}
