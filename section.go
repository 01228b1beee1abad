package kidzpolicy

import (
	"regexp"
	"strings"
)

// Section represents a markdown heading within a policy document.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// SectionRef points at a named section of a specific policy. References
// are surfaced alongside answers for navigation.
type SectionRef struct {
	PolicyID string `json:"policyId"`
	Heading  string `json:"sectionHeading"`
}

var headingRe = regexp.MustCompile(`(?m)^\s*(#{1,6})\s+(.+)$`)

// ExtractSections parses markdown and returns all headings (H1-H6) in
// document order.
func ExtractSections(markdown string) []Section {
	matches := headingRe.FindAllStringSubmatch(markdown, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, match := range matches {
		sections = append(sections, Section{
			Level: len(match[1]),
			Title: strings.TrimSpace(match[2]),
		})
	}
	return sections
}

// FindSection locates the first policy section whose heading matches text.
// An exact heading match (case-insensitive, trimmed) is preferred over
// substring containment; within each pass the first match in collection
// order wins.
func FindSection(policies []*Policy, text string) (SectionRef, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return SectionRef{}, false
	}

	for _, p := range policies {
		for _, s := range ExtractSections(p.Content) {
			if strings.ToLower(s.Title) == needle {
				return SectionRef{PolicyID: p.ID, Heading: s.Title}, true
			}
		}
	}

	for _, p := range policies {
		for _, s := range ExtractSections(p.Content) {
			if strings.Contains(strings.ToLower(s.Title), needle) {
				return SectionRef{PolicyID: p.ID, Heading: s.Title}, true
			}
		}
	}

	return SectionRef{}, false
}

// keywordSections routes common query vocabulary to the policy section
// that answers it. Used when remote metadata is absent or unmatched.
var keywordSections = []struct {
	keywords []string
	ref      SectionRef
}{
	{
		keywords: []string{"dress", "wear", "clothing", "t-shirt", "attire"},
		ref:      SectionRef{PolicyID: "behavior-guidelines-and-discipline", Heading: "4.1.2 Dress Code"},
	},
	{
		keywords: []string{"call time", "arrive", "arrival", "huddle", "schedule", "what time"},
		ref:      SectionRef{PolicyID: "team-guidelines", Heading: "2.2 Weekly Schedule"},
	},
	{
		keywords: []string{"check-in", "checkin", "check in", "kiosk", "check-out", "pick up"},
		ref:      SectionRef{PolicyID: "safety-policies", Heading: "3.1 Check-In/Check-Out Procedures"},
	},
	{
		keywords: []string{"emergency", "evacuation", "lockdown", "fire", "severe weather"},
		ref:      SectionRef{PolicyID: "safety-policies", Heading: "3.3 Emergency Procedures"},
	},
	{
		keywords: []string{"discipline", "time-out", "misbehav", "redirection"},
		ref:      SectionRef{PolicyID: "behavior-guidelines-and-discipline", Heading: "4.3 Discipline Policy"},
	},
	{
		keywords: []string{"training", "orientation", "background check", "ministry safe"},
		ref:      SectionRef{PolicyID: "training-development", Heading: "Required Training"},
	},
	{
		keywords: []string{"incident", "report", "injury"},
		ref:      SectionRef{PolicyID: "communication-policies", Heading: "5.3 Incident Reporting"},
	},
	{
		keywords: []string{"ratio", "two-adult", "supervision"},
		ref:      SectionRef{PolicyID: "safety-policies", Heading: "Two-Adult Rule"},
	},
}

// SectionsForQuery returns up to limit section references whose keyword
// sets match the query, in table order.
func SectionsForQuery(query string, limit int) []SectionRef {
	q := strings.ToLower(query)

	var refs []SectionRef
	for _, entry := range keywordSections {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				refs = append(refs, entry.ref)
				break
			}
		}
		if len(refs) == limit {
			break
		}
	}
	return refs
}
