// Package answer orchestrates the query pipeline: the rate limit gate,
// the remote generation attempt, the local degrade path, and the
// resolution of answers into response envelopes.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/bloom"
	"golang.org/x/sync/errgroup"
)

// Ensure Engine implements kidzpolicy.Asker at compile time.
var _ kidzpolicy.Asker = (*Engine)(nil)

// Engine implements kidzpolicy.Asker. With a remote asker configured it
// gates queries through the limiter and degrades to local synthesis when
// the remote service is unavailable; without one it is fully local and
// unmetered (local answers cost nothing).
type Engine struct {
	policies  kidzpolicy.PolicyService
	limiter   kidzpolicy.Limiter
	remote    kidzpolicy.RemoteAsker
	templates kidzpolicy.TemplateLoader
	synth     *kidzpolicy.Synthesizer
	vocab     *bloom.Vocabulary
}

// Option configures an Engine.
type Option func(*Engine)

// WithRemote enables the remote generation path. The template loader may
// be nil; the built-in template is used then, and whenever loading fails.
func WithRemote(remote kidzpolicy.RemoteAsker, templates kidzpolicy.TemplateLoader) Option {
	return func(e *Engine) {
		e.remote = remote
		e.templates = templates
	}
}

// WithSynthesizer overrides the local synthesizer, letting tests pin its
// random framing.
func WithSynthesizer(s *kidzpolicy.Synthesizer) Option {
	return func(e *Engine) { e.synth = s }
}

// NewEngine creates an Engine over the given policy store and limiter.
func NewEngine(policies kidzpolicy.PolicyService, limiter kidzpolicy.Limiter, opts ...Option) *Engine {
	e := &Engine{
		policies: policies,
		limiter:  limiter,
		synth:    kidzpolicy.NewSynthesizer(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Warmup builds the vocabulary prefilter and prefetches the prompt
// template concurrently. Optional: an engine works without it, paying
// the costs lazily instead.
func (e *Engine) Warmup(ctx context.Context) error {
	policies, err := e.policies.Policies(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e.vocab = bloom.NewVocabulary(policies, bloom.DefaultFPRate)
		return nil
	})

	if e.templates != nil {
		g.Go(func() error {
			// Best-effort: a failed prefetch falls back to the built-in
			// template at ask time.
			_, _ = e.templates.Load(ctx)
			return nil
		})
	}

	return g.Wait()
}

// Ask produces a response envelope for the query. It fails only on a
// blank query (EINVALID) or a denied rate limit (ERATELIMIT); every other
// failure degrades to a locally synthesized envelope.
func (e *Engine) Ask(ctx context.Context, userID, query string) (*kidzpolicy.ResponseEnvelope, error) {
	if strings.TrimSpace(query) == "" {
		return nil, kidzpolicy.Errorf(kidzpolicy.EINVALID, "query required")
	}

	policies, err := e.policies.Policies(ctx)
	if err != nil {
		return nil, err
	}

	envelope := &kidzpolicy.ResponseEnvelope{
		QueryID: uuid.New().String(),
		Source:  kidzpolicy.SourceLocal,
		Path:    "/policies",
	}

	// Queries sharing no vocabulary with the corpus skip the remote call.
	// The local pipeline still runs: lexical scoring matches mid-word
	// substrings the token-based vocabulary cannot see.
	inVocabulary := e.vocab == nil || e.vocab.AnyKnown(query)

	if e.remote != nil && inVocabulary {
		decision, err := e.limiter.CanProceed(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !decision.Allowed {
			switch decision.Reason {
			case kidzpolicy.ReasonDailyExhausted:
				return nil, kidzpolicy.Errorf(kidzpolicy.ERATELIMIT,
					"daily query limit reached, resets in %s", decision.Wait.Round(1e9))
			default:
				return nil, kidzpolicy.Errorf(kidzpolicy.ERATELIMIT,
					"please wait %s between questions", decision.Wait.Round(1e9))
			}
		}

		if remote, err := e.askRemote(ctx, query, policies); err == nil {
			if err := e.limiter.RecordSuccess(ctx, userID); err != nil {
				return nil, err
			}
			e.resolveRemote(envelope, query, policies, remote)
			return envelope, nil
		}
		// Remote unavailable: fall through to the local pipeline. The
		// degraded path must never fail the query.
	}

	e.resolveLocal(envelope, query, policies)
	return envelope, nil
}

// askRemote builds the prompt and calls the remote service.
func (e *Engine) askRemote(ctx context.Context, query string, policies []*kidzpolicy.Policy) (*kidzpolicy.RemoteAnswer, error) {
	template := kidzpolicy.DefaultTemplate
	if e.templates != nil {
		if loaded, err := e.templates.Load(ctx); err == nil {
			template = loaded
		}
	}

	return e.remote.Generate(ctx, kidzpolicy.BuildPrompt(template, query, policies))
}

// resolveRemote fills the envelope from a remote answer, mapping its
// free-text metadata onto canonical policy IDs. Topic overrides win over
// anything the metadata claims.
func (e *Engine) resolveRemote(envelope *kidzpolicy.ResponseEnvelope, query string, policies []*kidzpolicy.Policy, remote *kidzpolicy.RemoteAnswer) {
	envelope.Source = kidzpolicy.SourceRemote
	envelope.AnswerText = remote.Text

	if id, ok := kidzpolicy.TopicOverride(query, remote.Text); ok {
		envelope.PrimaryPolicyID = id
	} else if remote.Metadata != nil {
		if id, section, ok := kidzpolicy.ResolveReference(policies, remote.Metadata.PrimaryPolicy); ok {
			envelope.PrimaryPolicyID = id
			if section != nil {
				envelope.RelatedSections = append(envelope.RelatedSections, *section)
			}
		}
	}
	if envelope.PrimaryPolicyID == "" {
		if ranked := kidzpolicy.Rank(query, policies); len(ranked) > 0 {
			envelope.PrimaryPolicyID = ranked[0].Policy.ID
		}
	}

	if remote.Metadata != nil {
		for _, title := range remote.Metadata.RelatedPolicies {
			if len(envelope.RelatedPolicyIDs) == kidzpolicy.MaxRelatedPolicies {
				break
			}
			id, section, ok := kidzpolicy.ResolveReference(policies, title)
			if !ok || id == envelope.PrimaryPolicyID || contains(envelope.RelatedPolicyIDs, id) {
				continue
			}
			envelope.RelatedPolicyIDs = append(envelope.RelatedPolicyIDs, id)
			if section != nil && len(envelope.RelatedSections) < kidzpolicy.MaxRelatedPolicies {
				envelope.RelatedSections = append(envelope.RelatedSections, *section)
			}
		}
	}

	if len(envelope.RelatedSections) == 0 {
		envelope.RelatedSections = kidzpolicy.SectionsForQuery(query, kidzpolicy.MaxRelatedPolicies)
	}

	e.finishEnvelope(envelope, policies)
}

// resolveLocal fills the envelope from the local pipeline: lexical rank
// then synthesis over the top policy.
func (e *Engine) resolveLocal(envelope *kidzpolicy.ResponseEnvelope, query string, policies []*kidzpolicy.Policy) {
	ranked := kidzpolicy.Rank(query, policies)
	if len(ranked) == 0 {
		envelope.AnswerText = noMatchAnswer(query)
		return
	}

	primary := ranked[0].Policy
	envelope.AnswerText = e.synth.Synthesize(query, primary)
	envelope.PrimaryPolicyID = primary.ID

	if id, ok := kidzpolicy.TopicOverride(query, envelope.AnswerText); ok {
		envelope.PrimaryPolicyID = id
	}

	for _, candidate := range ranked[1:] {
		if len(envelope.RelatedPolicyIDs) == kidzpolicy.MaxRelatedPolicies {
			break
		}
		if candidate.Policy.ID != envelope.PrimaryPolicyID {
			envelope.RelatedPolicyIDs = append(envelope.RelatedPolicyIDs, candidate.Policy.ID)
		}
	}

	envelope.RelatedSections = kidzpolicy.SectionsForQuery(query, kidzpolicy.MaxRelatedPolicies)

	e.finishEnvelope(envelope, policies)
}

// finishEnvelope derives the navigation path from the primary policy.
func (e *Engine) finishEnvelope(envelope *kidzpolicy.ResponseEnvelope, policies []*kidzpolicy.Policy) {
	for _, p := range policies {
		if p.ID == envelope.PrimaryPolicyID {
			envelope.Path = kidzpolicy.NavigationPath(p)
			return
		}
	}
}

func noMatchAnswer(query string) string {
	return fmt.Sprintf("I couldn't find specific information about %q in our policies. "+
		"Please try a different question or browse our policies directly.", query)
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
