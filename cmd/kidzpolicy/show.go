package main

import (
	"fmt"

	"github.com/redefinechurch/kidzpolicy"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	p, err := deps.Policies.FindPolicyByID(deps.Ctx, c.ID)
	if err != nil {
		if kidzpolicy.ErrorCode(err) == kidzpolicy.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: policy %q not found. Use 'kidzpolicy list' to see available policies.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kidzpolicy.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n%s\n", p.Title, p.Content)
	return nil
}
