package state

import (
	"github.com/atomicstack/chat-popup-control/internal/menu"
)

// Level holds list state: rows, filter, cursor, and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	Cursor         int
	ViewportOffset int

	// unfiltered is the cursor to go back to once the filter is cleared.
	unfiltered int
}

// NewLevel constructs a Level with the cursor on the first row.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{ID: id, Title: title, unfiltered: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible index for an item id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SelectedID returns the id under the cursor, or "" for an empty list.
func (l *Level) SelectedID() string {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return ""
	}
	return l.Items[l.Cursor].ID
}

// UpdateItems replaces the rows. The cursor follows the previously selected
// id when it is still present, since polls may reorder the list.
func (l *Level) UpdateItems(items []menu.Item) {
	selected := l.SelectedID()
	l.Full = append([]menu.Item(nil), items...)
	l.Items, _ = Match(l.Full, l.Filter)
	if idx := l.IndexOf(selected); idx >= 0 {
		l.Cursor = idx
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, len(l.Items)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
