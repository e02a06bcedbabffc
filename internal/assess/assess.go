// Package assess produces skill assessments: an LLM-derived view of a
// learner's levels when the generative collaborator is available, and a
// deterministic read of the proficiency map when it is not. Callers
// always get a usable answer.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"text/template"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/learnstyle"
	"github.com/asante/codeweave/internal/llm"
	"github.com/asante/codeweave/internal/progress"
)

// Skill level labels, weakest to strongest.
const (
	LevelBeginner   = "beginner"
	LevelDeveloping = "developing"
	LevelProficient = "proficient"
	LevelAdvanced   = "advanced"
)

// Result is one assessment of a learner: a level label per attempted
// concept, a learning-style label, and a short list of concepts to try
// next. Source records which path produced it.
type Result struct {
	SkillLevels  map[string]string `json:"skillLevels"`
	StyleLabel   string            `json:"styleLabel"`
	NextConcepts []string          `json:"nextConcepts"`
	Source       string            `json:"source"` // "llm" or "heuristic"
}

// Config holds generation parameters for the LLM path.
type Config struct {
	MaxTokens   int
	Temperature float64
	NextCount   int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
		NextCount:   3,
	}
}

// Assessor runs skill assessments against an optional LLM provider.
type Assessor struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Assessor. A nil provider skips the LLM path entirely.
func New(provider llm.Provider, cfg Config) *Assessor {
	if cfg.NextCount <= 0 {
		cfg.NextCount = DefaultConfig().NextCount
	}
	return &Assessor{provider: provider, cfg: cfg}
}

// Assess produces an assessment for the user. The LLM path is tried
// first when a provider is configured; any failure, timeout or
// malformed response falls back to the deterministic heuristic, never
// an error.
func (a *Assessor) Assess(ctx context.Context, up *progress.UserProgress) Result {
	if a.provider != nil {
		if res, ok := a.assessWithLLM(ctx, up); ok {
			return res
		}
	}
	return Heuristic(up, a.cfg.NextCount)
}

// llmOutput is the raw shape the model must return.
type llmOutput struct {
	Skills []struct {
		ConceptID string `json:"conceptId"`
		Level     string `json:"level"`
	} `json:"skills"`
	StyleLabel   string   `json:"styleLabel"`
	NextConcepts []string `json:"nextConcepts"`
}

func (a *Assessor) assessWithLLM(ctx context.Context, up *progress.UserProgress) (Result, bool) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAssessment)

	userMsg, err := buildAssessmentMessage(up)
	if err != nil {
		return Result{}, false
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return Result{}, false
	}

	var raw llmOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Result{}, false
	}

	res := Result{
		SkillLevels: make(map[string]string),
		StyleLabel:  string(learnstyle.ParseStyle(raw.StyleLabel)),
		Source:      "llm",
	}
	for _, s := range raw.Skills {
		if concepts.Known(s.ConceptID) && knownLevel(s.Level) {
			res.SkillLevels[s.ConceptID] = s.Level
		}
	}
	for _, id := range raw.NextConcepts {
		if concepts.Known(id) {
			res.NextConcepts = append(res.NextConcepts, id)
		}
	}
	if len(res.SkillLevels) == 0 && len(res.NextConcepts) == 0 {
		// The model returned nothing usable; treat like an outage.
		return Result{}, false
	}
	return res, true
}

// Heuristic derives an assessment from the proficiency map alone.
// Levels come from fixed bands, the style label from accumulated style
// points, and next concepts from the unlocked frontier in topological
// order.
func Heuristic(up *progress.UserProgress, nextCount int) Result {
	res := Result{
		SkillLevels: make(map[string]string),
		Source:      "heuristic",
	}
	if up == nil {
		return res
	}

	for id, p := range up.Proficiency {
		res.SkillLevels[id] = levelFor(p)
	}

	cls := learnstyle.FromPoints(up.StylePoints)
	res.StyleLabel = string(cls.PrimaryStyle())

	for _, c := range concepts.Available(up.Mastered) {
		if len(res.NextConcepts) >= nextCount {
			break
		}
		res.NextConcepts = append(res.NextConcepts, c.ID)
	}
	return res
}

func levelFor(p float64) string {
	switch {
	case p < 0.3:
		return LevelBeginner
	case p < 0.6:
		return LevelDeveloping
	case p < progress.MasteryThreshold:
		return LevelProficient
	default:
		return LevelAdvanced
	}
}

func knownLevel(l string) bool {
	switch l {
	case LevelBeginner, LevelDeveloping, LevelProficient, LevelAdvanced:
		return true
	}
	return false
}

const assessmentSystemPrompt = `You are a coding-education assessor for a platform that teaches programming through cultural textile patterns. You receive a learner's per-concept proficiency scores and activity counters.

Instructions:
- Assign each listed concept one level: beginner, developing, proficient or advanced.
- Pick the learning style label that best fits the activity counters.
- Suggest the next concepts to study, respecting the listed prerequisites.
- Only use concept IDs from the list provided. Do NOT invent new ones.`

var assessmentUserTemplate = template.Must(template.New("assessment").Parse(`Proficiency scores:
{{range .Scores}}- {{.ID}}: {{printf "%.2f" .Score}}
{{end}}
Mastered: {{.MasteredCount}} concepts. Challenges completed: {{.ChallengeCount}}.
Style points: {{range .StylePoints}}{{.Style}}={{.Points}} {{end}}

Concept catalog (id: prerequisites):
{{range .Catalog}}- {{.ID}}: {{if .Prereqs}}{{.Prereqs}}{{else}}none{{end}}
{{end}}`))

type assessmentPromptData struct {
	Scores []struct {
		ID    string
		Score float64
	}
	MasteredCount  int
	ChallengeCount int
	StylePoints    []struct {
		Style  string
		Points int
	}
	Catalog []struct {
		ID      string
		Prereqs []string
	}
}

func buildAssessmentMessage(up *progress.UserProgress) (string, error) {
	var data assessmentPromptData

	ids := make([]string, 0, len(up.Proficiency))
	for id := range up.Proficiency {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		data.Scores = append(data.Scores, struct {
			ID    string
			Score float64
		}{id, up.Proficiency[id]})
	}

	data.MasteredCount = len(up.Mastered)
	data.ChallengeCount = len(up.CompletedChallenges)

	styles := make([]string, 0, len(up.StylePoints))
	for s := range up.StylePoints {
		styles = append(styles, s)
	}
	sort.Strings(styles)
	for _, s := range styles {
		data.StylePoints = append(data.StylePoints, struct {
			Style  string
			Points int
		}{s, up.StylePoints[s]})
	}

	for _, c := range concepts.TopologicalOrder() {
		data.Catalog = append(data.Catalog, struct {
			ID      string
			Prereqs []string
		}{c.ID, c.Prerequisites})
	}

	var buf bytes.Buffer
	if err := assessmentUserTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("build assessment prompt: %w", err)
	}
	return buf.String(), nil
}
