package bot

import (
	"fmt"
	"strings"
)

// screen — экран меню. На сервере состояние экрана не хранится:
// каждый callback-токен сам описывает, к какому экрану он относится.
type screen int

const (
	screenRoot screen = iota
	screenMain
	screenBases
	screenDifficulty
	screenWeather
	screenTime
	screenMode
)

// renderOption — кнопка: подпись + callback-токен.
type renderOption struct {
	Label string
	Token string
}

// renderModel — что показать пользователю в ответ на событие.
type renderModel struct {
	Text    string
	Options []renderOption
}

type transitionResult struct {
	next   screen
	render renderModel
	act    *action
}

// грамматика токенов: навигация — голые имена, действия — prefix:параметр
const (
	tokStart    = "start"
	tokMainMenu = "main_menu"
	tokBases    = "bases"
	tokTopapa   = "topapa"
	tokReload   = "reload"

	prefixTp  = "tp:"
	prefixSet = "set:"
)

// screenForToken восстанавливает экран, на котором живёт токен.
func screenForToken(token string) screen {
	switch {
	case token == tokStart:
		return screenRoot
	case token == tokBases, token == tokTopapa, strings.HasPrefix(token, prefixTp):
		return screenBases
	case strings.HasPrefix(token, prefixSet):
		k, _, _ := strings.Cut(strings.TrimPrefix(token, prefixSet), ":")
		return screenForKind(kind(k))
	case token == string(kindDifficulty), token == string(kindWeather),
		token == string(kindTime), token == string(kindMode):
		return screenForKind(kind(token))
	default:
		return screenMain
	}
}

func screenForKind(k kind) screen {
	switch k {
	case kindDifficulty:
		return screenDifficulty
	case kindWeather:
		return screenWeather
	case kindTime:
		return screenTime
	case kindMode:
		return screenMode
	}
	return screenMain
}

// transition — чистая функция переходов: текущий экран + токен + кто
// нажал → следующий экран, модель ответа и действие (если есть).
// Неизвестный токен никогда не роняет обработку: остаёмся на месте.
func (r *router) transition(s screen, token string, caller int64) transitionResult {
	switch {
	case token == tokStart, token == tokMainMenu:
		return transitionResult{next: screenMain, render: r.mainMenu(r.auth.Nickname(caller))}

	case token == tokBases:
		return transitionResult{next: screenBases, render: r.basesMenu(caller)}

	case token == tokTopapa:
		// доступ проверяется ещё раз при исполнении, здесь — для отрисовки
		if dep, ok := r.auth.DependentID(); !ok || caller != dep {
			m := r.basesMenu(caller)
			m.Text = "❌ Эта команда только для сына!"
			return transitionResult{next: screenBases, render: m}
		}
		return transitionResult{
			next:   screenBases,
			render: r.basesMenu(caller),
			act:    &action{kind: actTeleportToPrimary},
		}

	case strings.HasPrefix(token, prefixTp):
		base := strings.TrimPrefix(token, prefixTp)
		if _, ok := r.bases.Get(base); !ok {
			m := r.basesMenu(caller)
			m.Text = "❌ База не найдена!"
			return transitionResult{next: screenBases, render: m}
		}
		return transitionResult{
			next:   screenBases,
			render: r.basesMenu(caller),
			act:    &action{kind: actTeleport, token: base},
		}

	case strings.HasPrefix(token, prefixSet):
		k, val, ok := splitSet(token)
		if !ok {
			break
		}
		if !vocabHas(k, val) {
			m := r.vocabMenu(k)
			m.Text = fmt.Sprintf("❌ Неизвестное значение %q", val)
			return transitionResult{next: screenForKind(k), render: m}
		}
		return transitionResult{
			next:   screenForKind(k),
			render: r.vocabMenu(k),
			act:    &action{kind: actForKind(k), token: val},
		}

	case token == string(kindDifficulty), token == string(kindWeather),
		token == string(kindTime), token == string(kindMode):
		k := kind(token)
		return transitionResult{next: screenForKind(k), render: r.vocabMenu(k)}
	}

	// опечатка или устаревшая кнопка: экран не меняем, действия нет
	return transitionResult{
		next:   s,
		render: renderModel{Text: "❌ Неизвестная команда", Options: backRow()},
	}
}

// splitSet разбирает set:<kind>:<value>.
func splitSet(token string) (kind, string, bool) {
	k, v, ok := strings.Cut(strings.TrimPrefix(token, prefixSet), ":")
	if !ok || v == "" {
		return "", "", false
	}
	if _, known := vocabs[kind(k)]; !known {
		return "", "", false
	}
	return kind(k), v, true
}

func (r *router) mainMenu(nick string) renderModel {
	return renderModel{
		Text: fmt.Sprintf("👋 Привет, %s!\nВыбери действие:", nick),
		Options: []renderOption{
			{"🏠 Базы", tokBases},
			{"⏰ Время", string(kindTime)},
			{"🌤 Погода", string(kindWeather)},
			{"⚔️ Сложность", string(kindDifficulty)},
			{"🎮 Режим игры", string(kindMode)},
		},
	}
}

func (r *router) basesMenu(caller int64) renderModel {
	bases := r.bases.List()
	opts := make([]renderOption, 0, len(bases)+2)
	for _, e := range bases {
		opts = append(opts, renderOption{Label: "🏠 " + e.Base.Name, Token: prefixTp + e.Token})
	}
	if dep, ok := r.auth.DependentID(); ok && caller == dep {
		opts = append(opts, renderOption{"👨‍👦 К папе", tokTopapa})
	}
	opts = append(opts, backOption())
	return renderModel{Text: "🏠 Доступные базы для телепортации:", Options: opts}
}

var vocabTitles = map[kind]string{
	kindTime:       "⏰ Выбери время суток:",
	kindWeather:    "🌤 Выбери погоду:",
	kindDifficulty: "⚔️ Выбери сложность:",
	kindMode:       "🎮 Выбери режим игры:",
}

func (r *router) vocabMenu(k kind) renderModel {
	entries := vocabs[k]
	opts := make([]renderOption, 0, len(entries)+1)
	for _, e := range entries {
		opts = append(opts, renderOption{Label: e.label, Token: prefixSet + string(k) + ":" + e.token})
	}
	opts = append(opts, backOption())
	return renderModel{Text: vocabTitles[k], Options: opts}
}

func backOption() renderOption {
	return renderOption{"⬅️ Главное меню", tokMainMenu}
}

func backRow() []renderOption {
	return []renderOption{backOption()}
}
