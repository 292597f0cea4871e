package bot

import (
	"errors"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EgorLis/Minecraftbot/internal/rcon"
	"github.com/EgorLis/Minecraftbot/internal/webrcon"
)

// MinecraftBot — Telegram-обвязка вокруг router'а: long polling,
// callback-кнопки, рассылка уведомлений.
type MinecraftBot struct {
	cfg    Config
	api    *tgbotapi.BotAPI
	auth   *authStore
	bases  *baseRegistry
	router *router
	watch  *onlineWatch

	mu     sync.Mutex
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func New(cfg Config) (*MinecraftBot, error) {
	auth, err := newAuthStore(cfg.AllowedUsers, cfg.UsersFile)
	if err != nil {
		return nil, err
	}

	bases := newBaseRegistry(cfg.BasesFile)
	n, err := bases.Load()
	if err != nil {
		// без баз бот работоспособен: /reload подхватит файл позже
		log.Println("bases:", err)
	}

	var console Console
	switch cfg.Console {
	case "webrcon":
		console = webrcon.New(cfg.RconHost, cfg.RconPort, cfg.RconPassword)
	default:
		console = rcon.New(cfg.RconHost, cfg.RconPort, cfg.RconPassword)
	}
	exec := &executor{console: console}

	b := &MinecraftBot{
		cfg:    cfg,
		auth:   auth,
		bases:  bases,
		router: &router{auth: auth, bases: bases, exec: exec},
	}

	// следим только за теми, у кого есть настоящий ник
	var nicks []string
	for _, id := range cfg.AllowedUsers {
		if nick := auth.Nickname(id); nick != defaultNickname {
			nicks = append(nicks, nick)
		}
	}
	b.watch = newOnlineWatch(exec, nicks, b.broadcast)

	log.Printf("бот инициализирован: %d пользователей, %d баз", len(cfg.AllowedUsers), n)
	return b, nil
}

func (b *MinecraftBot) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopCh != nil {
		return errors.New("уже запущен")
	}

	api, err := tgbotapi.NewBotAPI(b.cfg.BotToken)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	b.api = api
	log.Printf("telegram: авторизован как @%s", api.Self.UserName)

	b.stopCh = make(chan struct{})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-b.stopCh:
				return
			case upd, ok := <-updates:
				if !ok {
					return
				}
				// роутер безопасен для параллельных вызовов
				go b.handleUpdate(upd)
			}
		}
	}()

	if b.cfg.WatchInterval > 0 {
		_ = b.watch.Start(b.cfg.WatchInterval)
	}
	return nil
}

func (b *MinecraftBot) Stop() {
	b.mu.Lock()
	ch := b.stopCh
	b.stopCh = nil
	b.mu.Unlock()
	if ch == nil {
		return
	}
	b.watch.Stop()
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	close(ch) // повторный Stop() ничего не делает
	b.wg.Wait()
}

func (b *MinecraftBot) handleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		cb := upd.CallbackQuery
		m := b.router.handle(inboundEvent{callerID: cb.From.ID, token: cb.Data})
		// убрать «часики» на кнопке
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Println("callback ack:", err)
		}
		if cb.Message != nil {
			b.send(cb.Message.Chat.ID, m)
		}

	case upd.Message != nil && upd.Message.IsCommand():
		msg := upd.Message
		m := b.router.handle(inboundEvent{callerID: msg.From.ID, token: msg.Command()})
		b.send(msg.Chat.ID, m)
	}
}

// send отправляет render model как сообщение с inline-клавиатурой.
func (b *MinecraftBot) send(chatID int64, m renderModel) {
	msg := tgbotapi.NewMessage(chatID, m.Text)
	if len(m.Options) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(m.Options))
		for _, o := range m.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(o.Label, o.Token)))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Println("send:", err)
	}
}

// broadcast шлёт текст всем из allow-list (личный чат = id пользователя).
func (b *MinecraftBot) broadcast(text string) {
	for _, id := range b.cfg.AllowedUsers {
		if _, err := b.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
			log.Println("broadcast:", err)
		}
	}
}
