package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// onlineWatch — фоновый опрос онлайна через команду list: снимаем
// снимок, сравниваем с прошлым и шлём уведомления о входе/выходе
// ников из users.json.
type onlineWatch struct {
	exec   *executor
	watch  map[string]bool
	notify func(string)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	last    map[string]bool
}

func newOnlineWatch(exec *executor, nicks []string, notify func(string)) *onlineWatch {
	w := &onlineWatch{
		exec:   exec,
		watch:  make(map[string]bool, len(nicks)),
		notify: notify,
		last:   map[string]bool{},
	}
	for _, n := range nicks {
		w.watch[n] = true
	}
	return w
}

func (w *onlineWatch) Start(interval time.Duration) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stop := w.stopCh
	w.mu.Unlock()

	// стартовый снимок — без уведомлений
	if cur, ok := w.scan(); ok {
		w.mu.Lock()
		w.last = cur
		w.mu.Unlock()
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				w.tick()
			case <-stop:
				return
			}
		}
	}()
	return nil
}

func (w *onlineWatch) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()
}

// tick — один цикл: снять снимок, сравнить, уведомить. Ошибка опроса
// просто пропускает цикл.
func (w *onlineWatch) tick() {
	cur, ok := w.scan()
	if !ok {
		return
	}

	w.mu.Lock()
	prev := w.last
	w.last = cur
	w.mu.Unlock()

	for nick := range cur {
		if !prev[nick] && w.watch[nick] {
			w.notify(fmt.Sprintf("➡ %s вошёл на сервер", nick))
		}
	}
	for nick := range prev {
		if !cur[nick] && w.watch[nick] {
			w.notify(fmt.Sprintf("⬅ %s покинул сервер", nick))
		}
	}
}

// scan блокируется на консольный round trip, поэтому мьютекс тут не держим.
func (w *onlineWatch) scan() (map[string]bool, bool) {
	res := w.exec.listPlayers()
	if !res.ok {
		log.Println("watch:", res.text)
		return nil, false
	}
	return parseList(res.text), true
}

// parseList разбирает ответ команды list:
// "There are 2 of a max of 20 players online: Dad, Son"
func parseList(reply string) map[string]bool {
	out := map[string]bool{}
	_, names, ok := strings.Cut(reply, ":")
	if !ok {
		return out
	}
	for _, n := range strings.Split(names, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out[n] = true
		}
	}
	return out
}
