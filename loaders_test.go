package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderFormats(t *testing.T) {
	dir := t.TempDir()

	jsonPath := writeFile(t, dir, "en.json", `{
		"en": {
			"home": {"title": "Welcome"},
			"apple": "one apple|{n} apples"
		}
	}`)
	yamlPath := writeFile(t, dir, "es.yaml", `
es:
  home:
    title: Bienvenido
  apple:
    - una manzana
    - "{n} manzanas"
`)
	tomlPath := writeFile(t, dir, "fr.toml", `
[fr.home]
title = "Bienvenue"
`)

	loader := NewFileLoader(jsonPath, yamlPath, tomlPath)

	messages, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(messages) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(messages))
	}

	store := NewStaticStore(messages)

	if got, _ := store.Get("en", "home.title"); got != "Welcome" {
		t.Fatalf("en home.title = %q", got)
	}
	if got, _ := store.Get("es", "home.title"); got != "Bienvenido" {
		t.Fatalf("es home.title = %q", got)
	}
	if got, _ := store.Get("fr", "home.title"); got != "Bienvenue" {
		t.Fatalf("fr home.title = %q", got)
	}

	if variants, ok := store.Variants("en", "apple"); !ok || len(variants) != 2 {
		t.Fatalf("en apple variants = %v,%v", variants, ok)
	}
	if variants, ok := store.Variants("es", "apple"); !ok || variants[1] != "{n} manzanas" {
		t.Fatalf("es apple variants = %v,%v", variants, ok)
	}
}

func TestFileLoaderMergesSameLocale(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "base.json", `{"en": {"a": "first", "b": "keep"}}`)
	second := writeFile(t, dir, "extra.json", `{"en": {"a": "second"}}`)

	loader := NewFileLoader(first, second)

	messages, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	store := NewStaticStore(messages)
	// later files win on conflicting paths
	if got, _ := store.Get("en", "a"); got != "second" {
		t.Fatalf("en a = %q", got)
	}
	if got, _ := store.Get("en", "b"); got != "keep" {
		t.Fatalf("en b = %q", got)
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "messages.txt", "nope")

	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderNoPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error when no paths configured")
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "en.yaml", `
home:
  title: Welcome
`)
	writeFile(t, dir, "fr.json", `{"home": {"title": "Bienvenue"}}`)
	writeFile(t, dir, "notes.txt", "ignored")

	messages, err := NewDirLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("expected 2 locales, got %d: %v", len(messages), messages)
	}

	store := NewStaticStore(messages)
	if got, _ := store.Get("en", "home.title"); got != "Welcome" {
		t.Fatalf("en home.title = %q", got)
	}
	if got, _ := store.Get("fr", "home.title"); got != "Bienvenue" {
		t.Fatalf("fr home.title = %q", got)
	}
}

func TestDirLoaderMissingDir(t *testing.T) {
	if _, err := NewDirLoader(filepath.Join(t.TempDir(), "absent")).Load(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDirLoaderIntegration(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "en.json", `{"apple": "one apple|{n} apples"}`)

	translator, err := New(
		WithLocale("en"),
		WithLoader(NewDirLoader(dir)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := translator.Tc("apple", 3, Params{"n": 3}); got != "3 apples" {
		t.Fatalf("Tc = %q", got)
	}
}

func TestMergeTree(t *testing.T) {
	dst := MessageTree{
		"a": "old",
		"nested": MessageTree{
			"keep": "kept",
			"both": "old",
		},
	}
	src := MessageTree{
		"a": "new",
		"nested": map[string]any{
			"both":  "new",
			"fresh": "added",
		},
	}

	mergeTree(dst, src)

	if dst["a"] != "new" {
		t.Fatalf("a = %v", dst["a"])
	}

	nested, _ := asTree(dst["nested"])
	if nested["keep"] != "kept" || nested["both"] != "new" || nested["fresh"] != "added" {
		t.Fatalf("nested = %v", nested)
	}
}
