package db

import "testing"

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	// Schema should be in place.
	var count int
	err = d.QueryRow(`SELECT COUNT(*) FROM knowledge_entries`).Scan(&count)
	if err != nil {
		t.Fatalf("querying knowledge_entries: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh database has %d entries, want 0", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
