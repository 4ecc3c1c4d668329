// Package combine groups articles by their detected material combination and
// orders the groups for presentation.
package combine

import (
	"sort"
	"strings"
)

// Group is one material combination with the articles exhibiting it.
type Group struct {
	// Materials holds the canonical names in alphabetical order; {A,B} and
	// {B,A} are the same group.
	Materials []string `json:"materials"`
	// Count is the number of articles in the group.
	Count int `json:"count"`
	// Keys lists the articles' citation keys in first-seen order.
	Keys []string `json:"keys"`
}

// Size returns the number of materials in the combination.
func (g Group) Size() int {
	return len(g.Materials)
}

// Item is one article's contribution to aggregation: its citation key and
// detected material set.
type Item struct {
	Key       string
	Materials []string
}

// Aggregate builds groups from items in a single left-to-right pass. Items
// with an empty material set are skipped entirely. Within each group, keys
// keep their input order.
func Aggregate(items []Item) []Group {
	byCombo := make(map[string]*Group)
	var order []string // combo identities in first-seen order

	for _, it := range items {
		if len(it.Materials) == 0 {
			continue
		}

		combo := append([]string(nil), it.Materials...)
		sort.Strings(combo)
		id := strings.Join(combo, "\x00")

		g, ok := byCombo[id]
		if !ok {
			g = &Group{Materials: combo}
			byCombo[id] = g
			order = append(order, id)
		}
		g.Keys = append(g.Keys, it.Key)
		g.Count++
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		groups = append(groups, *byCombo[id])
	}
	return groups
}

// Sort orders groups for output: combination size descending, then frequency
// descending. The sort is stable, so equal-ranked groups keep their
// first-encountered relative order.
func Sort(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Size() != groups[j].Size() {
			return groups[i].Size() > groups[j].Size()
		}
		return groups[i].Count > groups[j].Count
	})
}
