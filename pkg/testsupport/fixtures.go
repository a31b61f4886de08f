package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-urlgen/pkg/params"
	"github.com/goliatone/go-urlgen/pkg/schemafile"
)

// MustLoadCatalog loads a schema file fixture, failing the test on error.
func MustLoadCatalog(t *testing.T, path string) *schemafile.Catalog {
	t.Helper()

	catalog, err := schemafile.LoadFile(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return catalog
}

// MustSchema looks up a schema in catalog.
func MustSchema(t *testing.T, catalog *schemafile.Catalog, name string) *params.Schema {
	t.Helper()

	schema, ok := catalog.Schema(name)
	if !ok {
		t.Fatalf("schema %q not found", name)
	}
	return schema
}

// MustBag builds a bag from named values.
func MustBag(t *testing.T, schema *params.Schema, named params.Values) *params.Bag {
	t.Helper()

	bag, err := params.New(schema, params.Source{}, named)
	if err != nil {
		t.Fatalf("new bag for %s: %v", schema.Name(), err)
	}
	return bag
}

// MustLoadGoldenMap reads a JSON golden file holding a rendered mapping.
func MustLoadGoldenMap(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes value to a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
