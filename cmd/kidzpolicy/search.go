package main

import (
	"fmt"

	"github.com/redefinechurch/kidzpolicy"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	policies, err := deps.Policies.Policies(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kidzpolicy.ErrorMessage(err))
		return err
	}

	var ranked []kidzpolicy.ScoredCandidate
	if c.Similar {
		ranked = kidzpolicy.RankBySimilarity(c.Query, policies)
	} else {
		ranked = kidzpolicy.Rank(c.Query, policies)
	}

	if len(ranked) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching policies found.")
		return nil
	}

	for i, candidate := range ranked {
		if i == c.Limit {
			break
		}
		fmt.Fprintf(deps.Stdout, "%7.3f  %s  %s\n", candidate.Score, candidate.Policy.ID, candidate.Policy.Title)
	}

	return nil
}
