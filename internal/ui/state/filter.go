package state

import (
	"strings"

	"github.com/atomicstack/chat-popup-control/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter narrows the rows to those matching query and puts the cursor on
// the closest match. Clearing the filter returns the cursor to where it was
// before filtering started.
func (l *Level) SetFilter(query string) {
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	filtering := strings.TrimSpace(query) != ""
	if filtering && !wasFiltering {
		l.unfiltered = l.Cursor
	}
	l.Filter = query
	items, best := Match(l.Full, query)
	l.Items = items
	l.ViewportOffset = 0
	switch {
	case filtering:
		l.Cursor = max(best, 0)
	case wasFiltering:
		l.Cursor = clamp(l.unfiltered, 0, len(l.Items)-1)
		l.unfiltered = -1
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
}

// Match returns the items whose search text fuzzily contains query, in their
// original order, together with the index (within the result) of the closest
// match. A conversation id typed in full also matches. An empty query returns
// every item and -1.
func Match(items []menu.Item, query string) ([]menu.Item, int) {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]menu.Item(nil), items...), -1
	}
	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = item.Search
		if targets[i] == "" {
			targets[i] = item.Label
		}
	}
	distance := make(map[int]int, len(items))
	for _, rank := range fuzzy.RankFindNormalizedFold(query, targets) {
		distance[rank.OriginalIndex] = rank.Distance
	}
	for i, item := range items {
		if strings.EqualFold(item.ID, query) {
			distance[i] = -1
		}
	}

	matched := make([]menu.Item, 0, len(distance))
	best, bestDistance := -1, 0
	for i, item := range items {
		d, ok := distance[i]
		if !ok {
			continue
		}
		if best < 0 || d < bestDistance {
			best, bestDistance = len(matched), d
		}
		matched = append(matched, item)
	}
	return matched, best
}
