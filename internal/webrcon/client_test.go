package webrcon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

func serverHostPort(t *testing.T, srv *httptest.Server) (string, int) {
	t.Helper()
	host, portStr, ok := strings.Cut(strings.TrimPrefix(srv.URL, "http://"), ":")
	if !ok {
		t.Fatalf("bad server url %q", srv.URL)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	return host, port
}

func TestExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/secret" {
			http.Error(w, "bad password", http.StatusForbidden)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req frame
		if err := json.Unmarshal(raw, &req); err != nil {
			return
		}
		if req.Message != "time set day" {
			t.Errorf("unexpected command %q", req.Message)
		}

		// сначала консольный броадкаст, его клиент должен пропустить
		b, _ := json.Marshal(frame{Identifier: 0, Message: "[chat] hi"})
		_ = conn.WriteMessage(websocket.TextMessage, b)
		b, _ = json.Marshal(frame{Identifier: req.Identifier, Message: "Set the time to 1000"})
		_ = conn.WriteMessage(websocket.TextMessage, b)
	}))
	defer srv.Close()

	host, port := serverHostPort(t, srv)
	c := New(host, port, "secret")
	out, err := c.Execute("time set day")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Set the time to 1000" {
		t.Fatalf("unexpected reply %q", out)
	}
}

func TestExecuteBadPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad password", http.StatusForbidden)
	}))
	defer srv.Close()

	host, port := serverHostPort(t, srv)
	c := New(host, port, "wrong")
	if _, err := c.Execute("list"); err == nil {
		t.Fatalf("expected handshake error")
	}
}
