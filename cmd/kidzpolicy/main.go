package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/answer"
	"github.com/redefinechurch/kidzpolicy/fs"
	"github.com/redefinechurch/kidzpolicy/gemini"
	kidzhttp "github.com/redefinechurch/kidzpolicy/http"
	"github.com/redefinechurch/kidzpolicy/mem"
	"github.com/redefinechurch/kidzpolicy/ratelimit"
	kidzslog "github.com/redefinechurch/kidzpolicy/slog"
	"github.com/redefinechurch/kidzpolicy/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing rate limit state.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PolicyService kidzpolicy.PolicyService
	Limiter       kidzpolicy.Limiter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kidzpolicy"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kidzpolicy --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	policies, err := mem.NewDefaultPolicyService()
	if err != nil {
		return fmt.Errorf("failed to load policy corpus: %w", err)
	}
	m.PolicyService = policies
	deps.Policies = policies

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set KIDZPOLICY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	deps.DB = m.DB

	limiterOpts := []ratelimit.Option{}
	if cmd == "ask" && cli.Ask.Dev {
		limiterOpts = append(limiterOpts, ratelimit.WithBypass(true))
	}
	limiter := ratelimit.New(sqlite.NewKVService(m.DB), limiterOpts...)
	limiter.StartSweep(ctx, time.Hour)
	m.Limiter = kidzslog.NewLoggingLimiter(limiter, logger)
	deps.Limiter = m.Limiter

	if cmd == "ask" {
		engineOpts := []answer.Option{}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if !cli.Ask.Local && apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			engineOpts = append(engineOpts,
				answer.WithRemote(gemini.NewGenerator(client), templateLoader(cli.Ask.Template)))
		} else if !cli.Ask.Local {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; answering from local policies only")
		}

		engine := answer.NewEngine(deps.Policies, deps.Limiter, engineOpts...)
		if err := engine.Warmup(ctx); err != nil {
			return err
		}
		deps.Asker = kidzslog.NewLoggingAsker(engine, logger)
	}

	return kongCtx.Run(deps)
}

// templateLoader picks a loader for the --template flag value: a URL gets
// the HTTP loader, a path gets the file loader, empty means built-in.
func templateLoader(source string) kidzpolicy.TemplateLoader {
	switch {
	case source == "":
		return nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return kidzhttp.NewTemplateLoader(source)
	default:
		return fs.NewTemplateLoader(source)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("KIDZPOLICY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kidzpolicy.db"
	}
	dir := filepath.Join(home, ".kidzpolicy")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "kidzpolicy.db")
}
