package codeowners

import (
	"sort"

	f "github.com/reviewkit/codeowners-resolve/pkg/functional"
)

// rankSection aggregates per-file contributions across the changed-file set
// into one ranked, deduplicated owner list for a section. Owners whose rules
// cover more of the changed files rank first; ties keep first-encounter
// order. The global rule's owners, if any file triggered the fallback, come
// last.
func rankSection(changedFiles []string, section *Section) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	fallbackTriggered := false

	for _, file := range changedFiles {
		contribution := resolveFile(file, section)
		if contribution.TriggersFallback {
			fallbackTriggered = true
		}
		seen := f.NewSet[string]()
		for _, owner := range contribution.Owners {
			// Repeats within one rule's owner list count once per file.
			if seen.Contains(owner) {
				continue
			}
			seen.Add(owner)
			if _, known := counts[owner]; !known {
				order = append(order, owner)
			}
			counts[owner]++
		}
	}

	// Stable sort on first-encounter order gives the tie-break for free.
	ranked := order
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if !fallbackTriggered {
		return ranked
	}
	global, ok := section.GlobalRule()
	if !ok {
		return ranked
	}
	return f.RemoveDuplicates(append(ranked, global.Owners...))
}
