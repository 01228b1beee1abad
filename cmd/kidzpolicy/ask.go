package main

import (
	"fmt"

	"github.com/redefinechurch/kidzpolicy"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	envelope, err := deps.Asker.Ask(deps.Ctx, c.User, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kidzpolicy.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, envelope.AnswerText)

	if envelope.PrimaryPolicyID != "" {
		if p, err := deps.Policies.FindPolicyByID(deps.Ctx, envelope.PrimaryPolicyID); err == nil {
			fmt.Fprintf(deps.Stdout, "\nPolicy: %s (%s)\n", p.Title, envelope.Path)
		}
	}

	for _, id := range envelope.RelatedPolicyIDs {
		if p, err := deps.Policies.FindPolicyByID(deps.Ctx, id); err == nil {
			fmt.Fprintf(deps.Stdout, "Related: %s\n", p.Title)
		}
	}

	for _, ref := range envelope.RelatedSections {
		fmt.Fprintf(deps.Stdout, "See also: %s > %s\n", ref.PolicyID, ref.Heading)
	}

	return nil
}
