package kidzpolicy

import (
	"context"
	"fmt"
	"strings"
)

// TemplateLoader provides the prompt template used for remote generation.
// Implementations fetch the resource once and cache it in memory.
type TemplateLoader interface {
	Load(ctx context.Context) (string, error)
}

// DefaultTemplate is the built-in prompt template, used when no external
// template resource is configured or reachable. External templates use
// the same placeholder tokens and role delimiters.
const DefaultTemplate = `<|system|>
You are R.ai, an assistant for Redefine Church's Kidz Ministry volunteers.
Answer the question using only the policy documentation below. Keep your
answer brief, specific, and in a friendly, conversational tone. Do not
start with "Based on the policy" or similar phrases.

{{POLICY_TITLE}}

{{POLICY_CONTENT}}

After your answer, add a fenced json block naming the single policy or
section heading that best answers the question and up to three related
policy titles, like:

` + "```" + `json
{"primaryPolicy": "...", "relatedPolicies": ["...", "..."]}
` + "```" + `
</|system|>`

// roleTokens maps template role delimiters to the plain prefixed labels
// the remote service expects. Closing delimiters are dropped.
var roleTokens = [][2]string{
	{"<|system|>", "SYSTEM:"},
	{"</|system|>", ""},
	{"<|user|>", "USER:"},
	{"</|user|>", ""},
	{"<|assistant|>", "ASSISTANT:"},
	{"</|assistant|>", ""},
}

// NormalizeRoleTokens rewrites template role delimiters into plain labels
// so a generic text-generation endpoint does not interpret them literally.
func NormalizeRoleTokens(template string) string {
	for _, pair := range roleTokens {
		template = strings.ReplaceAll(template, pair[0], pair[1])
	}
	return template
}

// InferCategory derives a grouping category from a policy title: the text
// before the first colon or dash, or "General Policies" when the title has
// no separator.
func InferCategory(title string) string {
	for i, r := range title {
		if r == ':' || r == '-' {
			if c := strings.TrimSpace(title[:i]); c != "" {
				return c
			}
			break
		}
	}
	return "General Policies"
}

// BuildPrompt assembles the full prompt for the remote service: the
// normalized template with its placeholders replaced by a policy catalog
// grouped by inferred category, followed by the verbatim user query.
func BuildPrompt(template, query string, policies []*Policy) string {
	cleaned := NormalizeRoleTokens(template)

	// Group policies by category preserving first-seen category order.
	var order []string
	grouped := make(map[string][]*Policy)
	for _, p := range policies {
		category := InferCategory(p.Title)
		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], p)
	}

	var catalog strings.Builder
	for _, category := range order {
		fmt.Fprintf(&catalog, "\n\n## %s\n", category)
		for _, p := range grouped[category] {
			fmt.Fprintf(&catalog, "\n### %s\n%s\n", p.Title, strings.TrimSpace(p.Content))
		}
	}

	index := fmt.Sprintf("Policy Index (%d total)", len(policies))

	system := cleaned
	system = strings.Replace(system, "{{POLICY_TITLE}}", index, 1)
	system = strings.Replace(system, "{{POLICY_CONTENT}}", strings.TrimSpace(catalog.String()), 1)

	return system + "\n" + fmt.Sprintf("USER: %s\nASSISTANT:", strings.TrimSpace(query))
}
