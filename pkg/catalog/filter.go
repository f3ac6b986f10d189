package catalog

import "strings"

// Visible applies the category, search, and difficulty passes; an entry must survive all three.
func Visible(e Entry, st FilterState) bool {
	return matchesCategory(e, st.Category) && matchesQuery(e, st.Query) && matchesDifficulty(e, st.Difficulty)
}

// Visibility reports the decision for every entry, index for index.
func Visibility(entries []Entry, st FilterState) []bool {
	out := make([]bool, len(entries))
	for i, e := range entries {
		out[i] = Visible(e, st)
	}
	return out
}

// Filter keeps only the visible entries, preserving their order.
func Filter(entries []Entry, st FilterState) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Visible(e, st) {
			out = append(out, e)
		}
	}
	return out
}

func matchesCategory(e Entry, category string) bool {
	return category == "" || category == All || category == e.Category
}

func matchesQuery(e Entry, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := []string{e.Name, e.Description}
	if e.Kind == Product {
		fields = append(fields, e.Seller)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchesDifficulty only constrains recipes; products carry no difficulty.
func matchesDifficulty(e Entry, difficulty string) bool {
	if e.Kind != Recipe {
		return true
	}
	return difficulty == "" || difficulty == All || Difficulty(difficulty) == e.Difficulty
}
