package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dloman/sbhx-store/internal/domain"
)

// WriteStoreFile marshals records and writes them as a store backing file
// under dir, returning the file path.
func WriteStoreFile(t *testing.T, dir, name string, records any) string {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal store fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write store fixture: %v", err)
	}
	return path
}

// InventoryFixture writes an inventory backing file with the given items
// keyed by formname.
func InventoryFixture(t *testing.T, dir string, items ...domain.Item) string {
	t.Helper()

	records := make(map[string]domain.Item, len(items))
	for _, item := range items {
		records[item.Formname] = item
	}
	return WriteStoreFile(t, dir, "inventory.json", records)
}

// FundraisersFixture writes a fundraisers backing file keyed by formname.
func FundraisersFixture(t *testing.T, dir string, fundraisers ...domain.Fundraiser) string {
	t.Helper()

	records := make(map[string]domain.Fundraiser, len(fundraisers))
	for _, f := range fundraisers {
		records[f.Formname] = f
	}
	return WriteStoreFile(t, dir, "fundraising_goals.json", records)
}

// IntPtr returns a pointer to n, for limited-stock item fixtures.
func IntPtr(n int) *int {
	return &n
}
