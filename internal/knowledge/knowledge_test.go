package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/campus-bot/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestCreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Entry{
		Question: "what are bca fees",
		Answer:   "BCA fees are 50000 per year.",
		Category: "fees",
		Keywords: []string{"bca fees", "bca fee structure"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("ID should be auto-generated")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Question != "what are bca fees" {
		t.Errorf("Question = %q", got.Question)
	}
	if len(got.Keywords) != 2 || got.Keywords[0] != "bca fees" {
		t.Errorf("Keywords = %v", got.Keywords)
	}
}

func TestCreateRequiresQuestionAndAnswer(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, Entry{Answer: "a"}); err == nil {
		t.Error("expected error for missing question")
	}
	if _, err := store.Create(ctx, Entry{Question: "q"}); err == nil {
		t.Error("expected error for missing answer")
	}
}

func TestGetNotFound(t *testing.T) {
	store := setupTestStore(t)
	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Entry{Question: "q", Answer: "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Answer = "updated answer"
	if _, err := store.Update(ctx, *created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Answer != "updated answer" {
		t.Errorf("Answer = %q", got.Answer)
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.Update(context.Background(), Entry{ID: "ghost", Question: "q", Answer: "a"}); err == nil {
		t.Error("expected error updating a missing entry")
	}
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, Entry{Question: "q", Answer: "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("entry should be gone")
	}
}

func TestSnapshotOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	questions := []string{"first question", "second question", "third question"}
	for _, q := range questions {
		if _, err := store.Create(ctx, Entry{Question: q, Answer: "a"}); err != nil {
			t.Fatalf("Create %q: %v", q, err)
		}
	}

	entries, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, q := range questions {
		if entries[i].Question != q {
			t.Errorf("entries[%d].Question = %q, want %q", i, entries[i].Question, q)
		}
	}
}

func TestImportDir(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "fees.yml")
	yamlData := `- question: what are bca fees
  answer: BCA fees are 50000.
  category: fees
  keywords:
    - bca fees
- question: what are mca fees
  answer: MCA fees are 60000.
`
	if err := os.WriteFile(yamlFile, []byte(yamlData), 0o644); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	jsonFile := filepath.Join(dir, "hostel.json")
	jsonData := `[{"question":"hostel fees","answer":"Hostel is 30000."}]`
	if err := os.WriteFile(jsonFile, []byte(jsonData), 0o644); err != nil {
		t.Fatalf("writing json: %v", err)
	}

	// A broken file is skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("{{notyaml"), 0o644); err != nil {
		t.Fatalf("writing broken file: %v", err)
	}

	var seen []string
	stats, err := ImportDir(ctx, store, dir, nil, func(path string) { seen = append(seen, path) })
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if stats.Files != 3 {
		t.Errorf("Files = %d, want 3", stats.Files)
	}
	if stats.Imported != 3 {
		t.Errorf("Imported = %d, want 3", stats.Imported)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
	if len(seen) != 3 {
		t.Errorf("progress called %d times, want 3", len(seen))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}
}
