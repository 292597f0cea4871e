package bot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/EgorLis/Minecraftbot/internal/store"
)

const defaultNickname = "Player"

type userRecord struct {
	Nickname string `json:"minecraft_nickname"`
}

// authStore — неизменяемый allow-list и карта "id → ник" из users.json.
// Роли позиционные: allow-list[0] — папа, allow-list[1] (если есть) — сын.
type authStore struct {
	allowed []int64
	nicks   map[int64]string
}

func newAuthStore(allowed []int64, usersPath string) (*authStore, error) {
	if len(allowed) == 0 {
		return nil, errors.New("allow-list пуст")
	}

	var users map[string]userRecord
	if err := store.Load(usersPath, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	nicks := make(map[int64]string, len(users))
	for idStr, u := range users {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("users: плохой id %q", idStr)
		}
		if u.Nickname != "" {
			nicks[id] = u.Nickname
		}
	}
	return &authStore{allowed: allowed, nicks: nicks}, nil
}

func (a *authStore) IsAllowed(id int64) bool {
	for _, u := range a.allowed {
		if u == id {
			return true
		}
	}
	return false
}

// Nickname никогда не ошибается: незнакомый id получает ник по умолчанию.
func (a *authStore) Nickname(id int64) string {
	if n, ok := a.nicks[id]; ok {
		return n
	}
	return defaultNickname
}

func (a *authStore) PrimaryID() int64 { return a.allowed[0] }

// DependentID — второй в allow-list; его отсутствие не ошибка, просто
// команда «к папе» недоступна никому.
func (a *authStore) DependentID() (int64, bool) {
	if len(a.allowed) > 1 {
		return a.allowed[1], true
	}
	return 0, false
}
