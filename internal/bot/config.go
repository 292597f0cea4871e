package bot

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config — настройки процесса из .env / переменных окружения.
type Config struct {
	BotToken     string  `env:"BOT_TOKEN"`
	AllowedUsers []int64 `env:"ALLOWED_USERS_IDS" envSeparator:","`

	RconHost     string `env:"RCON_HOST" envDefault:"localhost"`
	RconPort     int    `env:"RCON_PORT" envDefault:"25575"`
	RconPassword string `env:"RCON_PASSWORD"`
	// rcon — классический Source RCON по TCP, webrcon — консоль поверх WebSocket
	Console string `env:"CONSOLE" envDefault:"rcon"`

	BasesFile string `env:"BASES_FILE" envDefault:"conf/bases.json"`
	UsersFile string `env:"USERS_FILE" envDefault:"conf/users.json"`

	// 0 — отключить уведомления о входе/выходе игроков
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"0"`
}

// LoadConfig читает .env (если он есть) и окружение. Невалидная
// конфигурация — ошибка старта, а не пер-запросная.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // отсутствие .env — не ошибка

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN не установлен")
	}
	if len(c.AllowedUsers) == 0 {
		return errors.New("ALLOWED_USERS_IDS не установлены")
	}
	if c.RconPassword == "" {
		return errors.New("RCON_PASSWORD не установлен")
	}
	switch c.Console {
	case "rcon", "webrcon":
	default:
		return fmt.Errorf("CONSOLE: неизвестный транспорт %q", c.Console)
	}
	return nil
}
