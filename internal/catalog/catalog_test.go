package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefault(t *testing.T) {
	ms := Default()
	if len(ms) != 3 {
		t.Fatalf("expected 3 models, got %d", len(ms))
	}
	if ms[0].ID != "unsloth/llama-3-8b-bnb-4bit" || ms[0].Size != "4.5 GB" {
		t.Fatalf("unexpected first model: %+v", ms[0])
	}
}

func TestLoadYAML_KeepsOrderAndDefaultsName(t *testing.T) {
	p := writeTempFile(t, "catalog.yaml", `models:
  - id: org/zeta
    name: Zeta
    size: 1 GB
  - id: org/alpha
    description: no name given
`)
	ms, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ms) != 2 || ms[0].ID != "org/zeta" || ms[1].ID != "org/alpha" {
		t.Fatalf("unexpected models: %+v", ms)
	}
	if ms[1].Name != "org/alpha" {
		t.Fatalf("name not defaulted: %+v", ms[1])
	}
}

func TestLoadJSONAndTOML(t *testing.T) {
	j := writeTempFile(t, "catalog.json", `{"models":[{"id":"a","name":"A"}]}`)
	if ms, err := Load(j); err != nil || len(ms) != 1 || ms[0].Name != "A" {
		t.Fatalf("json: %+v err=%v", ms, err)
	}
	tm := writeTempFile(t, "catalog.toml", "[[models]]\nid=\"b\"\nname=\"B\"\nsize=\"2 GB\"\n")
	if ms, err := Load(tm); err != nil || len(ms) != 1 || ms[0].Size != "2 GB" {
		t.Fatalf("toml: %+v err=%v", ms, err)
	}
}

func TestLoadRejectsBadEntries(t *testing.T) {
	if _, err := Load(writeTempFile(t, "c.json", `{"models":[{"name":"no id"}]}`)); err == nil {
		t.Fatal("expected error for missing id")
	}
	if _, err := Load(writeTempFile(t, "c.json", `{"models":[{"id":"a"},{"id":"a"}]}`)); err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if _, err := Load(writeTempFile(t, "c.txt", "x")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadOrDefault(t *testing.T) {
	ms, err := LoadOrDefault("")
	if err != nil || len(ms) != len(Default()) {
		t.Fatalf("got %d models err=%v", len(ms), err)
	}
}
