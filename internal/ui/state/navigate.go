package state

import "github.com/atomicstack/chat-popup-control/internal/menu"

// Move shifts the cursor by delta rows. With wrap set, stepping past either
// end continues from the other one; otherwise the cursor stops at the edge.
func (l *Level) Move(delta int, wrap bool) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	target := l.Cursor + delta
	switch {
	case wrap && target < 0:
		target = n - 1
	case wrap && target >= n:
		target = 0
	}
	return l.Jump(clamp(target, 0, n-1))
}

// Jump puts the cursor on row idx, clamped to the list. A negative idx
// selects the last row.
func (l *Level) Jump(idx int) bool {
	n := len(l.Items)
	if idx < 0 {
		idx = n - 1
	}
	before := l.Cursor
	l.Cursor = clamp(idx, 0, n-1)
	return n > 0 && l.Cursor != before
}

// Scroll moves the viewport so the cursor is inside a window of rows rows.
// A non-positive rows means everything fits.
func (l *Level) Scroll(rows int) {
	n := len(l.Items)
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if n == 0 || rows <= 0 || rows >= n {
		l.ViewportOffset = 0
		return
	}
	top := clamp(l.ViewportOffset, 0, n-rows)
	if l.Cursor < top {
		top = l.Cursor
	}
	if l.Cursor >= top+rows {
		top = l.Cursor - rows + 1
	}
	l.ViewportOffset = top
}

// Window returns the rows that fit in rows lines after scrolling, along with
// the index of the first one.
func (l *Level) Window(rows int) (int, []menu.Item) {
	l.Scroll(rows)
	if rows <= 0 || rows >= len(l.Items) {
		return 0, l.Items
	}
	return l.ViewportOffset, l.Items[l.ViewportOffset : l.ViewportOffset+rows]
}
