package main

import (
	"context"
	"io"

	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Policies kidzpolicy.PolicyService
	Limiter  kidzpolicy.Limiter
	Asker    kidzpolicy.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Ask    AskCmd    `cmd:"" help:"Ask a question about ministry policies"`
	Search SearchCmd `cmd:"" help:"Search policies by keyword"`
	List   ListCmd   `cmd:"" help:"List all policies"`
	Show   ShowCmd   `cmd:"" help:"Show a policy's full content"`
	Quota  QuotaCmd  `cmd:"" help:"Show rate limit status for a user"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query    string `arg:"" help:"Question to ask"`
	User     string `short:"u" default:"local" help:"User identity for rate limiting"`
	Local    bool   `short:"l" help:"Answer locally without calling the remote service"`
	Dev      bool   `help:"Bypass rate limiting (development only)"`
	Template string `short:"t" help:"Prompt template URL or file path"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search terms"`
	Similar bool   `short:"s" help:"Rank by embedding similarity instead of keywords"`
	Limit   int    `short:"n" default:"5" help:"Maximum results"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Query string `arg:"" optional:"" help:"Keyword filter; omit to list everything"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Policy ID"`
}

// QuotaCmd is the "quota" subcommand.
type QuotaCmd struct {
	User string `short:"u" default:"local" help:"User identity to inspect"`
}
