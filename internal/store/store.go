package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry — пара ключ/значение в том порядке, в котором она идёт в файле.
type Entry struct {
	Key string
	Raw json.RawMessage
}

// LoadOrdered читает JSON-объект верхнего уровня с сохранением порядка
// ключей (map в encoding/json порядок теряет, а порядок баз — это
// порядок кнопок в меню).
func LoadOrdered(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%s: ожидался объект, получено %v", path, tok)
	}

	var out []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%s: плохой ключ %v", path, keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %q: %w", path, key, err)
		}
		out = append(out, Entry{Key: key, Raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Load читает весь файл в out.
func Load(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Save пишет v с отступами, создавая каталог при необходимости.
func Save(path string, v any) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
