package runtime

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hu-zza/Clim/pkg/domain"
)

// suggest returns up to domain.MaxSuggestions option names close to token.
func suggest(token string, options []domain.Position) []string {
	type scored struct {
		name string
		dist int
	}

	needle := strings.ToLower(token)
	var results []scored
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt.Name] {
			continue
		}
		seen[opt.Name] = true

		cand := strings.ToLower(opt.Name)
		switch {
		case cand == needle:
			results = append(results, scored{opt.Name, 0})
		case strings.HasPrefix(cand, needle) && len(needle) >= 2:
			results = append(results, scored{opt.Name, 1})
		default:
			dist := levenshtein.ComputeDistance(needle, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			results = append(results, scored{opt.Name, dist})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > domain.MaxSuggestions {
		results = results[:domain.MaxSuggestions]
	}
	if len(results) == 0 {
		return nil
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}

func levenshteinLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
