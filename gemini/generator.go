// Package gemini implements the remote answer adapter using Google
// Gemini. It owns prompt dispatch, response cleanup, and the soft parse
// of embedded metadata; mapping metadata onto canonical policy IDs is the
// calling layer's job.
package gemini

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/redefinechurch/kidzpolicy"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-1.5-flash-latest"

// DefaultTimeout bounds a single generation attempt.
const DefaultTimeout = 10 * time.Second

// retryDelay is the pause before the single retry after a failed attempt.
const retryDelay = 1 * time.Second

// Ensure Generator implements kidzpolicy.RemoteAsker at compile time.
var _ kidzpolicy.RemoteAsker = (*Generator)(nil)

// Generator implements kidzpolicy.RemoteAsker using Google Gemini.
type Generator struct {
	client  *genai.Client
	pacer   *rate.Limiter
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithPacing caps outbound request rate. Defaults to one request per
// second with no bursting.
func WithPacing(rps float64) Option {
	return func(g *Generator) { g.pacer = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		pacer:   rate.NewLimiter(rate.Limit(1), 1),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends the prompt to Gemini and returns the cleaned answer with
// any embedded metadata. A failed attempt is retried once; after that the
// error is EUNAVAILABLE and the caller degrades to the local pipeline.
func (g *Generator) Generate(ctx context.Context, prompt string) (*kidzpolicy.RemoteAnswer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, kidzpolicy.Errorf(kidzpolicy.EINVALID, "prompt cannot be empty")
	}

	if err := g.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	system, user := ParsePrompt(prompt)

	text, err := g.generateOnce(ctx, system, user)
	if err != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
		text, err = g.generateOnce(ctx, system, user)
	}
	if err != nil {
		return nil, kidzpolicy.Errorf(kidzpolicy.EUNAVAILABLE, "remote generation failed: %s", err)
	}

	cleaned, metadata := ExtractMetadata(CleanResponse(text))

	return &kidzpolicy.RemoteAnswer{Text: cleaned, Metadata: metadata}, nil
}

func (g *Generator) generateOnce(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: "Question: " + user}},
		}},
		buildConfig(system),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", kidzpolicy.Errorf(kidzpolicy.EUNAVAILABLE, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.7)
	topP := float32(0.95)
	topK := float32(40)

	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: 1024,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	return config
}

var (
	systemRe = regexp.MustCompile(`(?is)SYSTEM:(.*?)(?:USER:|$)`)
	userRe   = regexp.MustCompile(`(?is)USER:(.*?)(?:ASSISTANT:|$)`)
)

// ParsePrompt splits a labeled prompt into its system message and user
// query. A prompt without role labels is treated entirely as the query.
func ParsePrompt(prompt string) (system, user string) {
	if m := systemRe.FindStringSubmatch(prompt); m != nil {
		system = strings.TrimSpace(m[1])
	}
	if m := userRe.FindStringSubmatch(prompt); m != nil {
		user = strings.TrimSpace(m[1])
	} else {
		user = strings.TrimSpace(prompt)
	}
	return system, user
}
