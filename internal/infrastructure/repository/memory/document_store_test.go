package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cup-results/internal/domain/document"
)

func TestDocumentStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := NewDocumentStore(nil)
	if _, err := store.Load(context.Background(), "matches.csv"); !errors.Is(err, document.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentStore_SaveLoadCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := map[string][]byte{"roster.json": []byte("{}")}
	store := NewDocumentStore(seed)
	seed["roster.json"][0] = 'x'

	got, err := store.Load(ctx, "roster.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("seed mutation leaked into store: %q", got)
	}

	payload := []byte("a,b")
	if err := store.Save(ctx, "matches.csv", payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	payload[0] = 'z'

	got, err = store.Load(ctx, "matches.csv")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got[1] = '!'

	again, _ := store.Load(ctx, "matches.csv")
	if string(again) != "a,b" {
		t.Fatalf("expected stored bytes to be isolated, got %q", again)
	}
}
