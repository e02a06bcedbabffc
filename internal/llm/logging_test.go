package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/asante/codeweave/internal/storage"
)

func TestLoggingProvider_PersistsRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"enrichment":"Adinkra symbols carry one meaning each."}`),
		Usage:   Usage{InputTokens: 40, OutputTokens: 20, TotalTokens: 60},
	})

	p := WithLogging(mock, store)
	ctx := WithPurpose(context.Background(), PurposeEnrichment)

	if _, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "enrich conditionals"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys, err := store.ListKeys(context.Background(), storage.LLMLogPrefix)
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(keys))
	}

	raw, err := store.Get(context.Background(), keys[0])
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	var rec LogRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if !rec.Success {
		t.Error("record should mark success")
	}
	if rec.Purpose != PurposeEnrichment {
		t.Errorf("purpose = %q, want %q", rec.Purpose, PurposeEnrichment)
	}
	if rec.InputTokens != 40 || rec.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 40/20", rec.InputTokens, rec.OutputTokens)
	}
}

func TestLoggingProvider_RecordsFailures(t *testing.T) {
	store := storage.NewMemoryStore()
	mock := NewMockProvider() // empty queue → provider unavailable

	p := WithLogging(mock, store)
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock queue")
	}

	keys, _ := store.ListKeys(context.Background(), storage.LLMLogPrefix)
	if len(keys) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(keys))
	}
	raw, _ := store.Get(context.Background(), keys[0])
	var rec LogRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Success {
		t.Error("record should mark failure")
	}
	if rec.ErrorMessage == "" {
		t.Error("record should carry the error message")
	}
}

func TestLoggingProvider_NilStoreIsNoop(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
