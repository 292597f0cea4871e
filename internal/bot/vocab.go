package bot

import (
	"errors"
	"fmt"
)

// kind — вид настраиваемого параметра сервера.
type kind string

const (
	kindTime       kind = "time"
	kindWeather    kind = "weather"
	kindDifficulty kind = "difficulty"
	kindMode       kind = "mode"
)

type vocabEntry struct {
	token string // каноничный токен, его видит консоль
	label string // подпись кнопки
}

// порядок объявления = порядок кнопок в меню
var vocabs = map[kind][]vocabEntry{
	kindTime: {
		{"day", "День"},
		{"noon", "Полдень"},
		{"night", "Ночь"},
		{"midnight", "Полночь"},
	},
	kindWeather: {
		{"clear", "Ясно"},
		{"rain", "Дождь"},
		{"thunder", "Гроза"},
	},
	kindDifficulty: {
		{"peaceful", "Мирная"},
		{"easy", "Лёгкая"},
		{"normal", "Нормальная"},
	},
	kindMode: {
		{"survival", "Выживание"},
		{"creative", "Креатив"},
	},
}

var errUnknownToken = errors.New("unknown token")

func vocabTokens(k kind) []string {
	entries := vocabs[k]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.token
	}
	return out
}

func vocabLabel(k kind, token string) (string, error) {
	for _, e := range vocabs[k] {
		if e.token == token {
			return e.label, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q", errUnknownToken, k, token)
}

func vocabHas(k kind, token string) bool {
	_, err := vocabLabel(k, token)
	return err == nil
}
