// Package rcon реализует минимальный клиент Source RCON — протокола
// удалённой консоли Minecraft-сервера (length-prefixed пакеты поверх TCP,
// аутентификация паролем, одна команда — один текстовый ответ).
//
// Клиент сознательно одноразовый: Execute открывает соединение,
// аутентифицируется, отправляет команду, читает ответ и закрывается.
// Никакого пула соединений и ретраев — политика ошибок решается уровнем
// выше, здесь ошибка транспорта просто возвращается.
//
// Пример:
//
//	c := rcon.New("localhost", 25575, "secret")
//	out, err := c.Execute("time set day")
package rcon
