package main

import (
	"fmt"

	"github.com/redefinechurch/kidzpolicy"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	policies, err := deps.Policies.Policies(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kidzpolicy.ErrorMessage(err))
		return err
	}

	matched := kidzpolicy.Filter(c.Query, policies)
	if len(matched) == 0 {
		fmt.Fprintf(deps.Stdout, "No policies match %q.\n", c.Query)
		return nil
	}

	for _, p := range matched {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", p.ID, p.Title, p.Category)
	}

	return nil
}
