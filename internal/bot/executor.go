package bot

import (
	"fmt"
	"strings"
)

// Console — удалённая консоль сервера: одна команда, один текстовый ответ.
// Реализации: internal/rcon (TCP) и internal/webrcon (WebSocket).
type Console interface {
	Execute(command string) (string, error)
}

// result — исход удалённой команды. Ошибки транспорта через эту границу
// не проходят: вызывающий всегда получает значение, никогда панику.
type result struct {
	ok   bool
	text string
}

type executor struct {
	console Console
}

func (e *executor) run(command string) result {
	out, err := e.console.Execute(command)
	if err != nil {
		return result{text: fmt.Sprintf("Ошибка RCON: %v", err)}
	}
	out = strings.TrimSpace(out)
	if out == "" {
		out = "(no output)"
	}
	return result{ok: true, text: out}
}

// шаблоны команд — ровно те строки, которых ждёт сервер;
// опечатка в токене вернётся его же текстом ошибки

func (e *executor) teleport(actor, dest string) result {
	return e.run(fmt.Sprintf("tp %s %s", actor, dest))
}

func (e *executor) setTime(t string) result {
	return e.run("time set " + t)
}

func (e *executor) setWeather(w string) result {
	return e.run("weather " + w)
}

func (e *executor) setDifficulty(d string) result {
	return e.run("difficulty " + d)
}

func (e *executor) setGameMode(actor, mode string) result {
	return e.run(fmt.Sprintf("gamemode %s %s", mode, actor))
}

func (e *executor) playerPosition(nick string) result {
	return e.run(fmt.Sprintf("data get entity %s Pos", nick))
}

func (e *executor) listPlayers() result {
	return e.run("list")
}
