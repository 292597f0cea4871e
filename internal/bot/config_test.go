package bot

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USERS_IDS", "111,222")
	t.Setenv("RCON_PASSWORD", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.AllowedUsers) != 2 || cfg.AllowedUsers[0] != 111 || cfg.AllowedUsers[1] != 222 {
		t.Fatalf("allow-list = %v", cfg.AllowedUsers)
	}
	if cfg.RconHost != "localhost" || cfg.RconPort != 25575 {
		t.Fatalf("rcon defaults broken: %s:%d", cfg.RconHost, cfg.RconPort)
	}
	if cfg.Console != "rcon" {
		t.Fatalf("console default = %q", cfg.Console)
	}
}

func TestLoadConfigRejectsEmptyAllowList(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USERS_IDS", "")
	t.Setenv("RCON_PASSWORD", "secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for empty allow-list")
	}
}

func TestLoadConfigRejectsUnknownConsole(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWED_USERS_IDS", "111")
	t.Setenv("RCON_PASSWORD", "secret")
	t.Setenv("CONSOLE", "telnet")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown console transport")
	}
}
