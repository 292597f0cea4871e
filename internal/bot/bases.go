package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/EgorLis/Minecraftbot/internal/store"
)

// Base — пресет телепортации; coords уходят в консоль как есть.
type Base struct {
	Name   string `json:"name"`
	Coords string `json:"coords"`
}

type baseEntry struct {
	Token string
	Base  Base
}

// baseRegistry — реестр баз из bases.json. Перезагрузка заменяет
// содержимое целиком: читатель видит либо старый снимок, либо новый,
// частично обновлённого не бывает.
type baseRegistry struct {
	path string

	mu      sync.RWMutex
	entries []baseEntry
	byToken map[string]Base
}

func newBaseRegistry(path string) *baseRegistry {
	return &baseRegistry{path: path, byToken: map[string]Base{}}
}

// Load — стартовая загрузка. Отсутствующий файл — не ошибка: создаём
// пустой скелет, чтобы его можно было заполнить руками и сделать /reload.
func (br *baseRegistry) Load() (int, error) {
	if _, err := os.Stat(br.path); os.IsNotExist(err) {
		if err := store.Save(br.path, map[string]Base{}); err != nil {
			return 0, fmt.Errorf("create bases: %w", err)
		}
	}
	return br.Reload()
}

// Reload перечитывает файл. При любой ошибке чтения прежний снимок
// остаётся на месте, бот продолжает работать со старыми базами.
func (br *baseRegistry) Reload() (int, error) {
	raw, err := store.LoadOrdered(br.path)
	if err != nil {
		return 0, fmt.Errorf("load bases: %w", err)
	}

	entries := make([]baseEntry, 0, len(raw))
	byToken := make(map[string]Base, len(raw))
	for _, e := range raw {
		var b Base
		if err := json.Unmarshal(e.Raw, &b); err != nil {
			return 0, fmt.Errorf("load bases: %q: %w", e.Key, err)
		}
		entries = append(entries, baseEntry{Token: e.Key, Base: b})
		byToken[e.Key] = b
	}

	br.mu.Lock()
	br.entries, br.byToken = entries, byToken
	br.mu.Unlock()
	return len(entries), nil
}

// List возвращает снимок в порядке следования в файле.
func (br *baseRegistry) List() []baseEntry {
	br.mu.RLock()
	defer br.mu.RUnlock()
	out := make([]baseEntry, len(br.entries))
	copy(out, br.entries)
	return out
}

func (br *baseRegistry) Get(token string) (Base, bool) {
	br.mu.RLock()
	defer br.mu.RUnlock()
	b, ok := br.byToken[token]
	return b, ok
}
