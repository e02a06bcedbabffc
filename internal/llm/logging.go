package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asante/codeweave/internal/storage"
)

// LogRecord is the durable trace of one LLM request, persisted through
// the storage collaborator under an llm_log_ key.
type LogRecord struct {
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	Purpose      string  `json:"purpose"`
	LatencyMs    int64   `json:"latencyMs"`
	Success      bool    `json:"success"`
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	CostUSD      float64 `json:"costUsd,omitempty"`
	RequestBody  string  `json:"requestBody"`
	ResponseBody string  `json:"responseBody,omitempty"`
	ErrorMessage string  `json:"errorMessage,omitempty"`
	At           string  `json:"at"`
}

// LoggingProvider is a decorator that records every LLM request.
// Persistence is best effort: a failed write warns on stderr and the
// request result is returned untouched.
type LoggingProvider struct {
	inner Provider
	store storage.Store
	now   func() time.Time
}

// WithLogging wraps a Provider with request logging through a store.
func WithLogging(p Provider, store storage.Store) Provider {
	return &LoggingProvider{inner: p, store: store, now: time.Now}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.now()

	resp, err := l.inner.Generate(ctx, req)

	rec := LogRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   l.now().Sub(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
		At:          start.UTC().Format(time.RFC3339),
	}

	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.ResponseBody = string(resp.Content)
		if cost := LookupCost(resp.Model); cost != nil {
			rec.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	l.persist(ctx, rec)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) persist(ctx context.Context, rec LogRecord) {
	if l.store == nil {
		return
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode LLM log record: %v\n", err)
		return
	}
	key := storage.LLMLogKey(uuid.NewString())
	if err := l.store.Put(ctx, key, raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist LLM log record: %v\n", err)
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
