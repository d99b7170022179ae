package palette

import (
	"strings"

	"opsdeck/internal/domain"
)

// Filter returns the entries matching query, partitioned into actions
// followed by navigation targets. Within each section the original
// registry order is preserved; there is no relevance scoring. An empty
// query is the identity filter.
func Filter(entries []domain.CommandEntry, query string) []domain.CommandEntry {
	q := strings.ToLower(query)

	var actions, navigation []domain.CommandEntry
	for _, e := range entries {
		if q != "" && !matches(e, q) {
			continue
		}
		if e.Section == domain.SectionActions {
			actions = append(actions, e)
		} else {
			navigation = append(navigation, e)
		}
	}
	return append(actions, navigation...)
}

// matches reports whether the lowercased query is a substring of the
// entry's label, description, or any declared keyword.
func matches(e domain.CommandEntry, q string) bool {
	if strings.Contains(strings.ToLower(e.Label), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
