package codeowners

import (
	"fmt"
	"io"
	"strings"
)

// GlobalPattern is the pattern of a section's global rule. A rule with this
// pattern contributes its owners as the section fallback rather than as a
// normal winning match.
const GlobalPattern = "*"

// Rule is one parsed ownership-file line: a path pattern and the owners
// accountable for paths it matches. An empty Owners slice is an orphan rule,
// which explicitly disclaims ownership for matching paths.
type Rule struct {
	Pattern string
	Owners  []string
}

// Section is a named, independently-ranked group of rules. The implicit
// default section has an empty Name. A rule declared without owner tokens
// inherits DefaultOwners at parse time.
type Section struct {
	Name          string
	DefaultOwners []string
	Optional      bool
	Rules         []Rule
}

// GlobalRule returns the section's global rule, honoring the last
// declaration when the pattern appears more than once.
func (s *Section) GlobalRule() (Rule, bool) {
	for i := len(s.Rules) - 1; i >= 0; i-- {
		if s.Rules[i].Pattern == GlobalPattern {
			return s.Rules[i], true
		}
	}
	return Rule{}, false
}

// Document is an ownership file parsed into sections in declaration order.
// When any top-level rules exist, the implicit default section is first.
type Document []Section

// Parser converts raw ownership-file text into a Document. Implementations
// never fail: lines that cannot be understood are discarded, optionally
// reported to the warning writer.
type Parser interface {
	Parse(content string, warningWriter io.Writer) Document
}

// DefaultParser parses the plain dialect: every line is a rule, and all
// rules belong to one implicit section.
type DefaultParser struct{}

func (DefaultParser) Parse(content string, warningWriter io.Writer) Document {
	section := Section{}
	for _, line := range cleanLines(content) {
		parts := strings.Fields(line.text)
		if len(parts) == 0 {
			continue
		}
		section.Rules = append(section.Rules, Rule{Pattern: parts[0], Owners: parts[1:]})
	}
	return Document{section}
}

// SectionedParser parses the sectioned dialect: bracketed headers open named
// sections with optional markers and default owners, and rules inherit the
// active section's defaults unless they carry their own owner tokens.
type SectionedParser struct{}

func (SectionedParser) Parse(content string, warningWriter io.Writer) Document {
	doc := Document{{}}
	current := &doc[0]
	for _, line := range cleanLines(content) {
		if header, ok := parseSectionHeader(line.text); ok {
			doc = append(doc, header)
			current = &doc[len(doc)-1]
			continue
		}
		if strings.HasPrefix(line.text, "[") || strings.HasPrefix(line.text, "^[") {
			// Bracket at the start of a line that did not form a valid
			// header; the active section is unchanged.
			fmt.Fprintf(warningWriter, "WARNING: discarding malformed section header on line %d: %s\n", line.number, line.text)
			continue
		}
		parts := strings.Fields(line.text)
		if len(parts) == 0 {
			continue
		}
		rule := Rule{Pattern: parts[0], Owners: parts[1:]}
		if len(rule.Owners) == 0 {
			rule.Owners = current.DefaultOwners
		}
		current.Rules = append(current.Rules, rule)
	}
	// Drop the implicit section when no top-level rules preceded the first
	// header, keeping it first in declaration order otherwise.
	if len(doc[0].Rules) == 0 {
		doc = doc[1:]
	}
	return doc
}

// parseSectionHeader recognizes lines of the form `[Name] @default @owners`
// with an optional leading `^` marking the section optional. The bracket
// must open the trimmed line; anywhere else it is an ordinary rule line.
func parseSectionHeader(line string) (Section, bool) {
	optional := false
	if strings.HasPrefix(line, "^") {
		optional = true
		line = line[1:]
	}
	if !strings.HasPrefix(line, "[") {
		return Section{}, false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return Section{}, false
	}
	name := strings.TrimSpace(line[1:end])
	if name == "" {
		return Section{}, false
	}
	return Section{
		Name:          name,
		DefaultOwners: strings.Fields(line[end+1:]),
		Optional:      optional,
	}, true
}

type sourceLine struct {
	number int
	text   string
}

// cleanLines strips blank lines and comments and trims whitespace, keeping
// original line numbers for diagnostics.
func cleanLines(content string) []sourceLine {
	lines := make([]sourceLine, 0)
	for i, raw := range strings.Split(content, "\n") {
		line := raw
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, sourceLine{number: i + 1, text: line})
	}
	return lines
}
