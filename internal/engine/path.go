package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/asante/codeweave/internal/assess"
	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/paths"
	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/recommend"
	"github.com/asante/codeweave/internal/storage"
)

// RecommendNextConcepts returns up to count concept IDs to study next.
// With a provider configured the LLM assessment is consulted first; any
// failure falls back to the unlocked frontier. The answer is never an
// outage.
func (e *Engine) RecommendNextConcepts(ctx context.Context, userID string, count int) ([]string, error) {
	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 3
	}
	if e.provider == nil {
		return assess.Heuristic(up, count).NextConcepts, nil
	}

	llmCtx, cancel := e.llmContext(ctx)
	defer cancel()

	res := e.assessor.Assess(llmCtx, up)
	next := res.NextConcepts
	if len(next) > count {
		next = next[:count]
	}
	if len(next) == 0 {
		next = assess.Heuristic(up, count).NextConcepts
	}
	return next, nil
}

// RecommendChallenges ranks challenge types for the user's current
// skill gaps, preferred path and recent activity.
func (e *Engine) RecommendChallenges(ctx context.Context, userID string, count int) ([]concepts.ChallengeType, error) {
	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return recommend.Rank(recommend.RankInput{
		Proficiency:      up.Proficiency,
		PreferredPath:    preferredPath(up),
		Progress:         up,
		RecentChallenges: recentTypes(up, 5),
		Count:            count,
	}), nil
}

// GenerateChallengeSequence builds a short practice sequence toward a
// target concept, weakest prerequisites first.
func (e *Engine) GenerateChallengeSequence(ctx context.Context, userID, targetConcept string, count int, adaptToDifficulty bool) ([]recommend.SequenceEntry, error) {
	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.GenerateSequence(up, targetConcept, count, preferredPath(up), adaptToDifficulty), nil
}

// RecommendLearningPathType picks a path type for the user. The stored
// preference wins unless the active session shows the user struggling.
func (e *Engine) RecommendLearningPathType(ctx context.Context, userID string, preference concepts.PathType) (concepts.PathType, error) {
	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	s, _ := e.ActiveSession(userID)

	if preference == "" && up.Preferences["path_type"] != "" {
		preference = preferredPath(up)
	}
	return paths.RecommendPathType(up, preference, s), nil
}

// GenerateLearningPath builds (or returns the stored) personalized path
// for the user. forceRegenerate bypasses both the cache and the stored
// path. Enrichment is best effort: a collaborator failure leaves items
// unenriched, never fails the call.
func (e *Engine) GenerateLearningPath(ctx context.Context, userID string, pathType concepts.PathType, forceRegenerate bool) (*paths.Path, error) {
	if !forceRegenerate {
		if p, ok := e.pathCache[userID]; ok && p.Type == pathType {
			return p, nil
		}
		if p := e.loadStoredPath(ctx, userID, pathType); p != nil {
			e.pathCache[userID] = p
			return p, nil
		}
	}

	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := paths.Personalize(paths.Template(pathType), up)
	e.enrichItems(ctx, items)

	p := &paths.Path{
		UserID:      userID,
		Type:        pathType,
		Items:       items,
		GeneratedAt: e.now(),
	}

	e.pathCache[userID] = p
	e.storePath(ctx, p)
	return p, nil
}

// enrichItems asks the enrichment collaborator for a framing per item.
// One shared deadline covers the whole pass so a slow collaborator
// degrades to an unenriched path instead of blocking.
func (e *Engine) enrichItems(ctx context.Context, items []paths.Item) {
	llmCtx, cancel := e.llmContext(ctx)
	defer cancel()

	for i := range items {
		c, err := concepts.Get(items[i].ConceptID)
		if err != nil {
			continue
		}
		text, err := e.enricher.Enrich(llmCtx, c)
		if err != nil {
			// Collaborator outage or timeout: stop asking, keep what we have.
			return
		}
		items[i].Enrichment = text
	}
}

func (e *Engine) loadStoredPath(ctx context.Context, userID string, pathType concepts.PathType) *paths.Path {
	data, err := e.store.Get(ctx, storage.LearningPathKey(userID))
	if err != nil || data == nil {
		return nil
	}
	var p paths.Path
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding corrupt stored path for %q: %v\n", userID, err)
		return nil
	}
	if p.Type != pathType {
		return nil
	}
	return &p
}

func (e *Engine) storePath(ctx context.Context, p *paths.Path) {
	data, err := json.Marshal(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode path for %q: %v\n", p.UserID, err)
		return
	}
	if err := e.store.Put(ctx, storage.LearningPathKey(p.UserID), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist path for %q: %v\n", p.UserID, err)
	}
}

// preferredPath reads the user's stored path preference, defaulting to
// logic for unset or legacy labels.
func preferredPath(up *progress.UserProgress) concepts.PathType {
	return concepts.ParsePathType(up.Preferences["path_type"])
}

// recentTypes maps the user's most recent attempts to challenge types
// via the concept catalog, newest first.
func recentTypes(up *progress.UserProgress, n int) []concepts.ChallengeType {
	var out []concepts.ChallengeType
	hist := up.AttemptHistory
	for i := len(hist) - 1; i >= 0 && len(out) < n; i-- {
		if len(hist[i].Concepts) == 0 {
			continue
		}
		if types := concepts.RelatedChallengeTypes(hist[i].Concepts[0]); len(types) > 0 {
			out = append(out, types[0])
		}
	}
	return out
}
