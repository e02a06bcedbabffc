package storage

import (
	"context"
	"testing"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	v, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("missing key: got %v, want nil", v)
	}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != `{"a":1}` {
		t.Errorf("got %q, want %q", v, `{"a":1}`)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	v, _ = s.Get(ctx, "k")
	if v != nil {
		t.Errorf("deleted key still present: %v", v)
	}
}

func TestMemoryStore_ListKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Put(ctx, UserProgressKey("alice"), []byte("{}"))
	s.Put(ctx, UserProgressKey("bob"), []byte("{}"))
	s.Put(ctx, LearningPathKey("alice"), []byte("{}"))

	keys, err := s.ListKeys(ctx, UserProgressPrefix)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(keys))
	}
	if keys[0] != "user_progress_alice" || keys[1] != "user_progress_bob" {
		t.Errorf("keys not sorted: %v", keys)
	}

	all, _ := s.ListKeys(ctx, "")
	if len(all) != 3 {
		t.Errorf("got %d total keys, want 3", len(all))
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Put(ctx, "k", []byte("abc"))

	v, _ := s.Get(ctx, "k")
	v[0] = 'z'

	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}
