package main

import (
	"fmt"

	"github.com/redefinechurch/kidzpolicy"
)

// Run executes the quota command.
func (c *QuotaCmd) Run(deps *Dependencies) error {
	status, err := deps.Limiter.Status(deps.Ctx, c.User)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kidzpolicy.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d/%d queries used today\n", status.DailyUsage, status.DailyLimit)
	if status.Limited {
		fmt.Fprintf(deps.Stdout, "next query available in %s\n", status.UntilNext.Round(1e9))
	}

	return nil
}
