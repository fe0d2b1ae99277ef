// Command i18n-lint audits translation catalogs for coverage gaps:
// keys missing from non base locales and orphan keys that exist only
// outside the base catalog. Exits non zero when gaps are found.
package main

import (
	"flag"
	"fmt"
	"os"

	i18n "github.com/goliatone/go-localize"
)

func main() {
	var (
		base = flag.String("base", "en", "locale used as the reference catalog")
		dir  = flag.String("dir", "", "directory holding <locale>.<ext> message files")
	)
	flag.Parse()

	loader, err := buildLoader(*dir, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	messages, err := loader.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	issues := lint(i18n.NewStaticStore(messages), *base)
	for _, issue := range issues {
		fmt.Println(issue)
	}
	if len(issues) > 0 {
		os.Exit(1)
	}
}

func buildLoader(dir string, files []string) (i18n.Loader, error) {
	if dir != "" {
		return i18n.NewDirLoader(dir), nil
	}
	if len(files) > 0 {
		return i18n.NewFileLoader(files...), nil
	}
	return nil, fmt.Errorf("i18n-lint: pass -dir or at least one message file")
}

func lint(store *i18n.StaticStore, base string) []string {
	baseKeys := store.Keys(base)
	if len(baseKeys) == 0 {
		return []string{fmt.Sprintf("base locale %q has no messages", base)}
	}

	var issues []string
	for _, locale := range store.Locales() {
		if locale == base {
			continue
		}

		for _, key := range baseKeys {
			if _, ok := store.Get(locale, key); !ok {
				issues = append(issues, fmt.Sprintf("%s: missing key %s", locale, key))
			}
		}

		for _, key := range store.Keys(locale) {
			if _, ok := store.Get(base, key); !ok {
				issues = append(issues, fmt.Sprintf("%s: orphan key %s (not in %s)", locale, key, base))
			}
		}
	}

	return issues
}
