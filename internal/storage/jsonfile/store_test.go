package jsonfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/storage/jsonfile"
	"github.com/dloman/sbhx-store/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads records keyed by formname", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.InventoryFixture(t, dir,
			domain.Item{Formname: "welding-101", Name: "Welding 101", Price: 150, NumberOfItems: testutil.IntPtr(4)},
			domain.Item{Formname: "open-house", Name: "Open House", Price: 10},
		)

		store, err := jsonfile.Load[domain.Item](path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		records := store.Snapshot()
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records["welding-101"].Name != "Welding 101" {
			t.Fatalf("unexpected record: %+v", records["welding-101"])
		}
		if records["open-house"].NumberOfItems != nil {
			t.Fatalf("expected unlimited stock, got %v", *records["open-house"].NumberOfItems)
		}
	})

	t.Run("missing file is a read error", func(t *testing.T) {
		_, err := jsonfile.Load[domain.Item](filepath.Join(t.TempDir(), "missing.json"))
		if !errors.Is(err, jsonfile.ErrRead) {
			t.Fatalf("expected ErrRead, got %v", err)
		}
	})

	t.Run("malformed content is a format error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte(`{"key": [1,2,3]}`), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		_, err := jsonfile.Load[domain.Item](path)
		if !errors.Is(err, jsonfile.ErrFormat) {
			t.Fatalf("expected ErrFormat, got %v", err)
		}
	})

	t.Run("null content is a format error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "null.json")
		if err := os.WriteFile(path, []byte(`null`), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		_, err := jsonfile.Load[domain.Item](path)
		if !errors.Is(err, jsonfile.ErrFormat) {
			t.Fatalf("expected ErrFormat, got %v", err)
		}
	})
}

func TestFlushRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.FundraisersFixture(t, dir,
		domain.Fundraiser{Formname: "new-laser", Name: "New Laser", Goal: 5000, AmountRaised: 1200},
		domain.Fundraiser{Formname: "roof-fund", Name: "Roof Fund", Goal: 20000},
	)

	store, err := jsonfile.Load[domain.Fundraiser](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	err = store.WithLock(func(v *jsonfile.View[domain.Fundraiser]) error {
		f, ok := v.Get("new-laser")
		if !ok {
			t.Fatalf("expected new-laser record")
		}
		f.AmountRaised += 300
		v.Put("new-laser", f)
		return v.Flush()
	})
	if err != nil {
		t.Fatalf("flush: %v", err)
	}

	reloaded, err := jsonfile.Load[domain.Fundraiser](path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(store.Snapshot(), reloaded.Snapshot()) {
		t.Fatalf("reloaded records differ:\n%+v\n%+v", store.Snapshot(), reloaded.Snapshot())
	}
	if got := reloaded.Snapshot()["new-laser"].AmountRaised; got != 1500 {
		t.Fatalf("expected amount_raised 1500, got %v", got)
	}
}

func TestFlushFailureSurfacesError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "data")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := testutil.InventoryFixture(t, sub,
		domain.Item{Formname: "cnc-class", Name: "CNC Class", Price: 200, NumberOfItems: testutil.IntPtr(2)},
	)

	store, err := jsonfile.Load[domain.Item](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Removing the directory makes the temp-file creation fail.
	if err := os.RemoveAll(sub); err != nil {
		t.Fatalf("remove dir: %v", err)
	}

	err = store.WithLock(func(v *jsonfile.View[domain.Item]) error {
		item, _ := v.Get("cnc-class")
		item.NumberOfItems = testutil.IntPtr(1)
		v.Put("cnc-class", item)
		return v.Flush()
	})
	if err == nil {
		t.Fatalf("expected flush error")
	}
}

func TestWithLockSerializesMutations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.InventoryFixture(t, dir,
		domain.Item{Formname: "counter", Name: "Counter", NumberOfItems: testutil.IntPtr(0)},
	)

	store, err := jsonfile.Load[domain.Item](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.WithLock(func(v *jsonfile.View[domain.Item]) error {
				item, _ := v.Get("counter")
				n := *item.NumberOfItems + 1
				item.NumberOfItems = &n
				v.Put("counter", item)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := *store.Snapshot()["counter"].NumberOfItems; got != workers {
		t.Fatalf("expected %d increments, got %d", workers, got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.InventoryFixture(t, dir,
		domain.Item{Formname: "laser-class", Name: "Laser Class", Price: 95},
	)

	store, err := jsonfile.Load[domain.Item](path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := store.Snapshot()
	item := snap["laser-class"]
	item.Price = 1
	snap["laser-class"] = item
	delete(snap, "laser-class")

	if got := store.Snapshot()["laser-class"].Price; got != 95 {
		t.Fatalf("snapshot mutation leaked into store: price %v", got)
	}
}
