package bot

import (
	"fmt"
	"log"
)

// inboundEvent — нормализованное событие транспорта: кто и какой токен.
type inboundEvent struct {
	callerID int64
	token    string
}

// router связывает авторизацию, реестр баз, меню и исполнитель.
// Между запросами собственного состояния не держит, поэтому его можно
// дёргать из любого числа горутин.
type router struct {
	auth  *authStore
	bases *baseRegistry
	exec  *executor
}

var accessDenied = renderModel{Text: "❌ Доступ запрещен!"}

// handle обрабатывает одно событие от начала до конца и возвращает
// модель ответа. Ничто из обработки не должно уронить процесс.
func (r *router) handle(ev inboundEvent) renderModel {
	// авторизация — ровно один раз, до любых вычислений экрана
	if !r.auth.IsAllowed(ev.callerID) {
		log.Printf("доступ запрещён: %d token=%q", ev.callerID, ev.token)
		return accessDenied
	}

	// /reload живёт вне меню, но за тем же шлагбаумом
	if ev.token == tokReload {
		return r.reload()
	}

	nick := r.auth.Nickname(ev.callerID)
	tr := r.transition(screenForToken(ev.token), ev.token, ev.callerID)
	if tr.act == nil {
		return tr.render
	}

	outcome := r.dispatch(tr.act, ev.callerID, nick)
	m := tr.render
	m.Text = outcome + "\n\n" + m.Text
	return m
}

// dispatch переводит действие в команду консоли и сворачивает результат
// в строку для пользователя. Сюда попадают только валидные токены.
func (r *router) dispatch(act *action, callerID int64, nick string) string {
	switch act.kind {
	case actTeleport:
		base, ok := r.bases.Get(act.token)
		if !ok {
			return "❌ База не найдена!"
		}
		if res := r.exec.teleport(nick, base.Coords); !res.ok {
			return "❌ " + res.text
		}
		return fmt.Sprintf("➡️ Телепортация %s на %s...", nick, base.Name)

	case actTeleportToPrimary:
		// проверяем в момент вызова, а не на этапе отрисовки меню:
		// кнопку мог нажать кто-то другой из того же чата
		dep, ok := r.auth.DependentID()
		if !ok || callerID != dep {
			return "❌ Эта команда только для сына!"
		}
		papa := r.auth.Nickname(r.auth.PrimaryID())
		if res := r.exec.teleport(nick, papa); !res.ok {
			return "❌ " + res.text
		}
		text := fmt.Sprintf("👨‍👦 Телепортация %s к %s...", nick, papa)
		if pos := r.exec.playerPosition(papa); pos.ok {
			text += "\n📍 " + pos.text
		}
		return text

	case actSetTime:
		if res := r.exec.setTime(act.token); !res.ok {
			return "❌ " + res.text
		}
		label, _ := vocabLabel(kindTime, act.token)
		return "⏰ Время установлено: " + label

	case actSetWeather:
		if res := r.exec.setWeather(act.token); !res.ok {
			return "❌ " + res.text
		}
		label, _ := vocabLabel(kindWeather, act.token)
		return "🌤 Погода: " + label

	case actSetDifficulty:
		if res := r.exec.setDifficulty(act.token); !res.ok {
			return "❌ " + res.text
		}
		label, _ := vocabLabel(kindDifficulty, act.token)
		return "⚔️ Сложность: " + label

	case actSetMode:
		if res := r.exec.setGameMode(nick, act.token); !res.ok {
			return "❌ " + res.text
		}
		label, _ := vocabLabel(kindMode, act.token)
		return fmt.Sprintf("🎮 Режим %s для игрока %s", label, nick)
	}
	return "❌ Неизвестная команда"
}

func (r *router) reload() renderModel {
	n, err := r.bases.Reload()
	if err != nil {
		log.Println("reload:", err)
		return renderModel{
			Text:    fmt.Sprintf("❌ Ошибка перезагрузки: %v", err),
			Options: backRow(),
		}
	}
	return renderModel{
		Text:    fmt.Sprintf("✅ Базы перезагружены! Доступно %d баз", n),
		Options: backRow(),
	}
}
