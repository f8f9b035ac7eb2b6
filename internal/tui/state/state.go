package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// PageStep is how far pgup/pgdown scroll for a viewport of height rows.
func PageStep(height int, headerLines int) int {
	if height <= 0 {
		return 10
	}
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

// ClampScroll keeps a scroll offset within the rows that can be shown.
func ClampScroll(offset, totalRows, height int) int {
	maxOffset := totalRows - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// Reveal returns the first n runes of s, or all of s when n covers it.
func Reveal(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}
