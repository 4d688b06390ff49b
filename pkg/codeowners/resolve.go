package codeowners

// Contribution is one file's contribution to a section's ranking:
// the specific owners responsible for that file, and whether the file
// triggers the section's global fallback.
type Contribution struct {
	Owners           []string
	TriggersFallback bool
}

// resolveFile finds the winning rule for a file within a section and
// computes the file's contribution. The winning rule is the last rule in
// declaration order whose pattern matches; later declarations override
// earlier ones.
func resolveFile(filePath string, section *Section) Contribution {
	for i := len(section.Rules) - 1; i >= 0; i-- {
		rule := section.Rules[i]
		if !Matches(rule.Pattern, filePath) {
			continue
		}
		if rule.Pattern == GlobalPattern {
			// The global rule's owners are supplied uniformly as the
			// fallback, not per file.
			return Contribution{TriggersFallback: true}
		}
		if len(rule.Owners) == 0 {
			// An orphan rule disclaims ownership and suppresses the
			// fallback for this file.
			return Contribution{}
		}
		return Contribution{Owners: rule.Owners, TriggersFallback: true}
	}
	return Contribution{}
}
