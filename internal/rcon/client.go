package rcon

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

var ErrAuthFailed = errors.New("rcon: auth failed (bad password)")

// Client — клиент Source RCON (им говорит ванильный Minecraft-сервер).
// Каждый вызов Execute — отдельное логическое соединение:
// connect → auth → send → receive → close. Сервер не гарантирует
// долгоживущий сокет, поэтому переиспользовать его мы и не пытаемся.
type Client struct {
	addr     string
	password string
	timeout  time.Duration
}

func New(host string, port int, password string) *Client {
	return &Client{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		password: password,
		timeout:  10 * time.Second,
	}
}

// Execute выполняет одну команду и возвращает её текстовый ответ.
// Без ретраев: любая ошибка транспорта отдаётся вызывающему как есть.
func (c *Client) Execute(command string) (string, error) {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return "", fmt.Errorf("rcon: dial %s: %w", c.addr, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	if err := writePacket(conn, 1, packetAuth, c.password); err != nil {
		return "", fmt.Errorf("rcon: auth write: %w", err)
	}
	// некоторые сервера шлют пустой RESPONSE_VALUE перед AUTH_RESPONSE
	for {
		id, ptype, _, err := readPacket(conn)
		if err != nil {
			return "", fmt.Errorf("rcon: auth read: %w", err)
		}
		if ptype != packetAuthResponse {
			continue
		}
		if id == -1 {
			return "", ErrAuthFailed
		}
		break
	}

	if err := writePacket(conn, 2, packetExecCommand, command); err != nil {
		return "", fmt.Errorf("rcon: write: %w", err)
	}
	id, _, body, err := readPacket(conn)
	if err != nil {
		return "", fmt.Errorf("rcon: read: %w", err)
	}
	if id != 2 {
		return "", fmt.Errorf("rcon: unexpected response id %d", id)
	}
	return body, nil
}
