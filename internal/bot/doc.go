// Package bot — “склейка” вокруг Telegram-транспорта и консоли
// Minecraft-сервера, реализующая семейного бота. Бот:
//   - пускает только пользователей из allow-list (первый — папа,
//     второй — сын с личной командой «к папе»);
//   - показывает inline-меню: базы для телепортации, время, погода,
//     сложность, режим игры;
//   - переводит нажатия кнопок в команды удалённой консоли
//     (tp / time set / weather / difficulty / gamemode);
//   - держит реестр баз из bases.json и перезагружает его по /reload,
//     не теряя старый снимок при ошибке чтения;
//   - опционально следит за онлайном игроков через команду list и
//     шлёт уведомления о входе/выходе.
//
// Состояние меню между запросами на сервере не хранится: каждый
// callback-токен сам описывает экран и действие, поэтому параллельные
// нажатия ничего не ломают. Единственное разделяемое изменяемое
// состояние — реестр баз, он заменяется целиком под RWMutex.
//
// Жизненный цикл:
//   - cfg, _ := bot.LoadConfig()       // .env + окружение
//   - b, _ := bot.New(cfg)             // фатально при пустом allow-list
//   - b.Start() / b.Stop()
package bot
