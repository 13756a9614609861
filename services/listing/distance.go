package listing

// Distance returns the Levenshtein distance between a and b counted in runes.
// It keeps a single row of len(a) cells instead of the full matrix.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	runesA := []rune(a)
	runesB := []rune(b)

	if len(runesA) == 0 {
		return len(runesB)
	}
	if len(runesB) == 0 {
		return len(runesA)
	}

	row := make([]int, len(runesA))
	for i := range row {
		row[i] = i + 1
	}

	for j, runeB := range runesB {
		diagonal := j
		left := j + 1
		for i, runeA := range runesA {
			cost := 1
			if runeA == runeB {
				cost = 0
			}
			up := row[i]
			current := min(diagonal+cost, up+1, left+1)
			diagonal = up
			row[i] = current
			left = current
		}
	}

	return row[len(row)-1]
}
