package doctors

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistanceRatio bounds how far a typed query may drift from a name.
const maxDistanceRatio = 0.6

type scored struct {
	idx   int
	score int
}

// Rank orders doctor indexes by how well they match query: name prefix
// matches first, then substring matches on name or specialty, then names
// within edit distance. Indexes that match nothing are omitted.
func Rank(docs []Doctor, query string) []int {
	q := normalize(query)
	if q == "" {
		out := make([]int, len(docs))
		for i := range docs {
			out[i] = i
		}
		return out
	}

	var hits []scored
	for i, d := range docs {
		if s, ok := score(d, q); ok {
			hits = append(hits, scored{idx: i, score: s})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score < hits[b].score
	})
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.idx
	}
	return out
}

// Best returns the index of the top-ranked doctor for query, or -1.
func Best(docs []Doctor, query string) int {
	r := Rank(docs, query)
	if len(r) == 0 || normalize(query) == "" {
		return -1
	}
	return r[0]
}

func score(d Doctor, q string) (int, bool) {
	name := normalize(d.Name)
	bare := strings.TrimPrefix(name, "dr. ")
	switch {
	case strings.HasPrefix(name, q), strings.HasPrefix(bare, q):
		return 0, true
	case strings.Contains(name, q):
		return 1, true
	case strings.Contains(normalize(d.Specialty), q):
		return 2, true
	}
	dist := levenshtein.ComputeDistance(q, bare)
	if alt := levenshtein.ComputeDistance(q, name); alt < dist {
		dist = alt
	}
	maxlen := len(bare)
	if len(q) > maxlen {
		maxlen = len(q)
	}
	if maxlen == 0 || float64(dist)/float64(maxlen) > maxDistanceRatio {
		return 0, false
	}
	return 3 + dist, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
