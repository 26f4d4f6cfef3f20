package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"price-validity-service/internal/domain/entities"
)

func TestStatusCatalog_Defaults(t *testing.T) {
	c := NewDefault(nil)

	t.Run("list preserves definition order", func(t *testing.T) {
		defs := c.List()
		if len(defs) != 6 {
			t.Fatalf("expected 6 definitions, got %d", len(defs))
		}
		want := []entities.PriceStatus{
			entities.PriceStatusActive,
			entities.PriceStatusExpiring,
			entities.PriceStatusExpired,
			entities.PriceStatusGracePeriod,
			entities.PriceStatusSuspended,
			entities.PriceStatusPendingRenewal,
		}
		for i, id := range want {
			if defs[i].ID != id {
				t.Fatalf("unexpected order at %d: got %s want %s", i, defs[i].ID, id)
			}
		}
	})

	t.Run("get resolves known status", func(t *testing.T) {
		def, ok := c.Get(entities.PriceStatusExpiring)
		if !ok {
			t.Fatalf("expected expiring to resolve")
		}
		if !def.RequiresAction || def.UrgencyLevel != entities.UrgencyMedium {
			t.Fatalf("unexpected definition: %+v", def)
		}
	})

	t.Run("get on unknown status", func(t *testing.T) {
		if _, ok := c.Get("archived"); ok {
			t.Fatalf("expected unknown status to miss")
		}
	})

	t.Run("allowed transitions resolve to full definitions", func(t *testing.T) {
		targets := c.AllowedTransitions(entities.PriceStatusActive)
		if len(targets) != 2 {
			t.Fatalf("expected 2 transitions from active, got %d", len(targets))
		}
		if targets[0].ID != entities.PriceStatusExpiring || targets[1].ID != entities.PriceStatusSuspended {
			t.Fatalf("unexpected transitions: %+v", targets)
		}
	})

	t.Run("allowed transitions of unknown status is empty", func(t *testing.T) {
		if got := c.AllowedTransitions("archived"); len(got) != 0 {
			t.Fatalf("expected empty, got %+v", got)
		}
	})

	t.Run("no default status is terminal", func(t *testing.T) {
		for _, def := range c.List() {
			if def.IsTerminal() {
				t.Fatalf("%s should not be terminal", def.ID)
			}
		}
	})
}

func TestStatusCatalog_DriftedTransitionIsDropped(t *testing.T) {
	c := newCatalog([]entities.StatusDefinition{
		{ID: "active", AllowedTransitions: []entities.PriceStatus{"expiring", "retired"}},
		{ID: "expiring"},
	}, nil)

	targets := c.AllowedTransitions("active")
	if len(targets) != 1 || targets[0].ID != "expiring" {
		t.Fatalf("expected only expiring to survive, got %+v", targets)
	}
}

func TestStatusCatalog_NewFromFile(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statuses.json")
		doc := `{"statusIndicators":[{"id":"active","name":"Active","allowedTransitions":["frozen"]},{"id":"frozen","name":"Frozen"}]}`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		c, err := NewFromFile(path, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.List()) != 2 {
			t.Fatalf("expected 2 definitions, got %d", len(c.List()))
		}
		targets := c.AllowedTransitions("active")
		if len(targets) != 1 || targets[0].ID != "frozen" {
			t.Fatalf("unexpected transitions: %+v", targets)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFromFile(filepath.Join(t.TempDir(), "absent.json"), nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := NewFromFile(path, nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty status list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		if err := os.WriteFile(path, []byte(`{"statusIndicators":[]}`), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := NewFromFile(path, nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestStatusCatalog_Load(t *testing.T) {
	t.Run("defaults without override", func(t *testing.T) {
		t.Setenv("STATUS_CATALOG_PATH", "")
		c, err := Load(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.List()) != 6 {
			t.Fatalf("expected built-in catalog, got %d definitions", len(c.List()))
		}
	})

	t.Run("override path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statuses.json")
		doc := `{"statusIndicators":[{"id":"active","name":"Active"}]}`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		t.Setenv("STATUS_CATALOG_PATH", path)

		c, err := Load(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.List()) != 1 {
			t.Fatalf("expected override catalog, got %d definitions", len(c.List()))
		}
	})

	t.Run("override path points nowhere", func(t *testing.T) {
		t.Setenv("STATUS_CATALOG_PATH", filepath.Join(t.TempDir(), "absent.json"))
		if _, err := Load(nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
