package frame

// recycle reconciles column lengths after validation. Columns that already
// share one length pass through untouched (this covers the zero-column and
// all-zero cases). Otherwise the target row count is the longest length
// among non-unit columns, every length-1 column is stretched to it by
// repetition, and any remaining length is an error. A target of 0
// stretches unit columns to empty, keeping the row-count invariant.
func recycle(cols []namedColumn) ([]namedColumn, int, error) {
	if len(cols) == 0 {
		return cols, 0, nil
	}

	first := cols[0].col.Len()
	equal := true
	for _, c := range cols[1:] {
		if c.col.Len() != first {
			equal = false
			break
		}
	}
	if equal {
		return cols, first, nil
	}

	target := 0
	for _, c := range cols {
		if n := c.col.Len(); n != 1 && n > target {
			target = n
		}
	}

	out := make([]namedColumn, len(cols))
	var badNames []string
	var badLengths []int
	for i, c := range cols {
		switch n := c.col.Len(); {
		case n == target:
			out[i] = c
		case n == 1:
			out[i] = namedColumn{name: c.name, col: c.col.repeat(target)}
		default:
			badNames = append(badNames, c.name)
			badLengths = append(badLengths, n)
		}
	}
	if len(badNames) > 0 {
		return nil, 0, &LengthMismatchError{Names: badNames, Lengths: badLengths, Target: target}
	}
	return out, target, nil
}
