// Package engine orchestrates the adaptive-learning components behind
// one public API. The hosting application constructs an Engine with its
// storage and generative-text collaborators and routes every learner
// action and query through it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/asante/codeweave/internal/actions"
	"github.com/asante/codeweave/internal/assess"
	"github.com/asante/codeweave/internal/learnstyle"
	"github.com/asante/codeweave/internal/llm"
	"github.com/asante/codeweave/internal/milestones"
	"github.com/asante/codeweave/internal/paths"
	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/session"
	"github.com/asante/codeweave/internal/storage"
)

// ErrNoActiveSession is returned by session-scoped operations when the
// host never called StartSession (or already ended it). It signals a
// programming error in the host, not a data condition.
var ErrNoActiveSession = errors.New("no active session for user")

// Engine is the adaptive-learning orchestrator. One Engine serves many
// users; all durable state is partitioned by user ID through the store.
//
// Concurrency follows the aggregate model: at most one in-flight
// mutation per user. The Engine itself holds no locks.
type Engine struct {
	progress *progress.Service
	store    storage.Store

	// provider is the generative-text collaborator; nil disables the
	// LLM paths entirely and every query answers deterministically.
	provider llm.Provider
	assessor *assess.Assessor
	enricher paths.Enricher

	// sessions holds the active session per user, if any.
	sessions map[string]*session.Session

	// pathCache holds generated paths per user until invalidated by a
	// regeneration. Pure optimization, never the source of truth.
	pathCache map[string]*paths.Path

	llmTimeout time.Duration
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLLMTimeout bounds each generative-text call. Past the deadline
// the deterministic fallback answers instead.
func WithLLMTimeout(d time.Duration) Option {
	return func(e *Engine) { e.llmTimeout = d }
}

// WithClock overrides the engine clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over a store and an optional LLM provider.
func New(store storage.Store, provider llm.Provider, opts ...Option) *Engine {
	e := &Engine{
		progress:   progress.NewService(store),
		store:      store,
		provider:   provider,
		sessions:   make(map[string]*session.Session),
		pathCache:  make(map[string]*paths.Path),
		llmTimeout: 10 * time.Second,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.assessor = assess.New(provider, assess.DefaultConfig())
	if provider != nil {
		e.enricher = assess.NewLLMEnricher(provider)
	} else {
		e.enricher = assess.NoopEnricher{}
	}
	return e
}

// Progress returns the user's durable aggregate.
func (e *Engine) Progress(ctx context.Context, userID string) (*progress.UserProgress, error) {
	return e.progress.Load(ctx, userID)
}

// RecordAction routes one learner action: style points, activity
// counters and the active session's counters all update, then
// milestones are evaluated and the aggregate persists. Unknown action
// types are dropped with a warning — bad event data, not an error.
func (e *Engine) RecordAction(ctx context.Context, userID string, t actions.Type, successful bool, contextID string, md actions.Metadata) error {
	if !actions.Known(t) {
		fmt.Fprintf(os.Stderr, "warning: dropping unknown action type %q for %q\n", t, userID)
		return nil
	}

	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return err
	}

	cls := learnstyle.FromPoints(up.StylePoints)
	cls.Update(t, md)
	up.StylePoints = cls.Points()

	switch t {
	case actions.PatternCreation:
		if successful {
			up.PatternsCreated++
		}
	case actions.CulturalExploration:
		up.CulturalExplorations++
	case actions.StoryProgress:
		if successful && contextID != "" {
			up.CompletedStories = appendUnique(up.CompletedStories, contextID)
		}
	case actions.ChallengeCompletion:
		if successful && contextID != "" {
			up.CompletedChallenges = append(up.CompletedChallenges, contextID)
		}
	}

	if s, ok := e.sessions[userID]; ok && s.Active {
		switch t {
		case actions.ChallengeCompletion:
			s.RecordChallengeAttempt(successful)
		case actions.DebugFailure:
			s.RecordError()
		}
		if md.ViewedHint {
			s.RecordHintRequest()
		}
	}

	up.TouchActivity(e.now())
	milestones.Evaluate(up)
	e.progress.Save(ctx, up)
	return nil
}

// UpdateSkillProficiency applies one challenge outcome to a concept and
// returns the updated aggregate. Milestones are evaluated on the way
// out.
func (e *Engine) UpdateSkillProficiency(ctx context.Context, userID, conceptID string, success bool, difficulty float64) (*progress.UserProgress, error) {
	up, err := e.progress.UpdateProficiency(ctx, userID, conceptID, success, difficulty)
	if err != nil {
		return nil, err
	}
	if done := milestones.Evaluate(up); len(done) > 0 {
		e.progress.Save(ctx, up)
	}
	return up, nil
}

// AssessConceptMastery runs the full mastery assessment: base delta,
// quality and perfect-solve adjustments, demonstration recording.
func (e *Engine) AssessConceptMastery(ctx context.Context, userID string, a progress.Assessment) (*progress.ConceptMastery, error) {
	cm, err := e.progress.AssessConceptMastery(ctx, userID, a)
	if err != nil {
		return nil, err
	}
	up, err := e.progress.Load(ctx, userID)
	if err == nil {
		if done := milestones.Evaluate(up); len(done) > 0 {
			e.progress.Save(ctx, up)
		}
	}
	return cm, nil
}

// llmContext bounds a generative-text call with the engine's timeout.
func (e *Engine) llmContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.llmTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.llmTimeout)
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
