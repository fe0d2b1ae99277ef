package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileLoader reads translation files whose top level keys are locale
// codes. JSON, YAML and TOML are supported; several files may
// contribute to the same locale and are merged, later files winning on
// conflicting paths.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Messages, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	merged := make(Messages)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		src, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		for locale, tree := range src {
			if locale == "" {
				return nil, fmt.Errorf("i18n: empty locale in %s", path)
			}
			if existing, ok := merged[locale]; ok {
				mergeTree(existing, tree)
				continue
			}
			merged[locale] = cloneTree(tree)
		}
	}

	return merged, nil
}

// DirLoader reads every <locale>.<ext> file in a directory, using the
// file base name as the locale code.
type DirLoader struct {
	dir string
}

func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir}
}

func (l *DirLoader) Load() (Messages, error) {
	if l == nil || l.dir == "" {
		return nil, errors.New("i18n: no loader directory configured")
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read dir %s: %w", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportedExtension(filepath.Ext(entry.Name())) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	messages := make(Messages, len(names))
	for _, name := range names {
		path := filepath.Join(l.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		tree, err := decodeTreeFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		locale := strings.TrimSuffix(name, filepath.Ext(name))
		if existing, ok := messages[locale]; ok {
			mergeTree(existing, tree)
			continue
		}
		messages[locale] = tree
	}

	return messages, nil
}

func supportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

func decodeLocaleFile(path string, data []byte) (map[string]MessageTree, error) {
	var raw map[string]MessageTree
	if err := unmarshalByExtension(path, data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeTreeFile(path string, data []byte) (MessageTree, error) {
	var raw MessageTree
	if err := unmarshalByExtension(path, data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func unmarshalByExtension(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	case ".toml":
		return toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported extension %s", filepath.Ext(path))
	}
}

// mergeTree merges src into dst recursively. Nested maps merge key by
// key; on leaf conflicts src wins.
func mergeTree(dst, src MessageTree) {
	for key, value := range src {
		srcChild, srcIsMap := asTree(value)
		if !srcIsMap {
			dst[key] = value
			continue
		}

		dstChild, dstIsMap := asTree(dst[key])
		if !dstIsMap {
			dst[key] = cloneTree(srcChild)
			continue
		}
		mergeTree(dstChild, srcChild)
		dst[key] = dstChild
	}
}

func cloneTree(tree MessageTree) MessageTree {
	out := make(MessageTree, len(tree))
	for key, value := range tree {
		if child, ok := asTree(value); ok {
			out[key] = cloneTree(child)
			continue
		}
		out[key] = value
	}
	return out
}

func asTree(value any) (MessageTree, bool) {
	switch v := value.(type) {
	case MessageTree:
		return v, true
	case map[string]any:
		return MessageTree(v), true
	default:
		return nil, false
	}
}
