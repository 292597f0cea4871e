// Package webrcon реализует консоль поверх WebSocket (формат webrcon:
// JSON-кадры с Identifier/Message). Такой консолью говорят Rust-сервера
// и часть хостинг-панелей; для бота это взаимозаменяемая альтернатива
// классическому rcon.Client.
package webrcon

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Client — одноразовое соединение на каждый вызов Execute, как и у
// TCP-варианта: dial → send → receive → close.
type Client struct {
	url     string
	timeout time.Duration
	seq     atomic.Int64
}

type frame struct {
	Identifier int64  `json:"Identifier"`
	Message    string `json:"Message"`
	Name       string `json:"Name,omitempty"`
}

func New(host string, port int, password string) *Client {
	return &Client{
		url:     fmt.Sprintf("ws://%s/%s", net.JoinHostPort(host, strconv.Itoa(port)), password),
		timeout: 10 * time.Second,
	}
}

func (c *Client) Execute(command string) (string, error) {
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return "", fmt.Errorf("webrcon: dial: %w", err)
	}
	defer func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
			time.Now().Add(500*time.Millisecond))
		_ = conn.Close()
	}()

	id := c.seq.Add(1)
	data, err := json.Marshal(frame{Identifier: id, Message: command, Name: "WebRcon"})
	if err != nil {
		return "", err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return "", fmt.Errorf("webrcon: write: %w", err)
	}

	deadline := time.Now().Add(c.timeout)
	for {
		_ = conn.SetReadDeadline(deadline)
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return "", fmt.Errorf("webrcon: read: %w", err)
		}
		var resp frame
		if err := json.Unmarshal(raw, &resp); err != nil {
			// консольный лог сервера — не JSON-ответ, пропускаем
			continue
		}
		if resp.Identifier != id {
			// броадкасты консоли идут с Identifier 0
			continue
		}
		return resp.Message, nil
	}
}
