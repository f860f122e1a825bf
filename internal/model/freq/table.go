package freq

import "sort"

// Table counts how often each normalized token appeared in one class.
// Counts only grow.
type Table struct {
	counts map[string]int
}

// WordCount is a token with its count.
type WordCount struct {
	Word  string
	Count int
}

func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Get returns the count for token, or def when the token was never seen.
func (t *Table) Get(token string, def int) int {
	if c, ok := t.counts[token]; ok {
		return c
	}
	return def
}

func (t *Table) Increment(token string) {
	t.counts[token] = t.Get(token, 0) + 1
}

// Len is the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.counts)
}

// Snapshot returns a copy of the counts.
func (t *Table) Snapshot() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Top returns up to n tokens ordered by count, ties broken alphabetically.
// n <= 0 returns every token.
func (t *Table) Top(n int) []WordCount {
	stats := make([]WordCount, 0, len(t.counts))
	for k, v := range t.counts {
		stats = append(stats, WordCount{Word: k, Count: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Word < stats[j].Word
	})

	if n > 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}
