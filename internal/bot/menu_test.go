package bot

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func hasOption(m renderModel, token string) bool {
	for _, o := range m.Options {
		if o.Token == token {
			return true
		}
	}
	return false
}

func TestMainMenuIdempotent(t *testing.T) {
	r := newTestRouter(t, &fakeConsole{}, []int64{111}, nil, testBases)

	screens := []screen{screenRoot, screenMain, screenBases, screenDifficulty, screenWeather, screenTime, screenMode}
	want := r.transition(screenRoot, tokMainMenu, 111)
	for _, s := range screens {
		got := r.transition(s, tokMainMenu, 111)
		if got.next != screenMain {
			t.Fatalf("screen %d: next = %d, want main", s, got.next)
		}
		if got.act != nil {
			t.Fatalf("main_menu must not produce an action")
		}
		if !reflect.DeepEqual(got.render, want.render) {
			t.Fatalf("render differs for screen %d", s)
		}
	}
}

func TestUnknownTokenKeepsScreen(t *testing.T) {
	r := newTestRouter(t, &fakeConsole{}, []int64{111}, nil, testBases)

	tr := r.transition(screenBases, "stale_button", 111)
	if tr.next != screenBases {
		t.Fatalf("unknown token changed screen: %d", tr.next)
	}
	if tr.act != nil {
		t.Fatalf("unknown token produced an action")
	}
	if !strings.Contains(tr.render.Text, "Неизвестная") {
		t.Fatalf("expected error note, got %q", tr.render.Text)
	}
}

func TestDependentButtonVisibility(t *testing.T) {
	r := newTestRouter(t, &fakeConsole{}, []int64{111, 222}, nil, testBases)
	if !hasOption(r.basesMenu(222), tokTopapa) {
		t.Fatalf("dependent must see the topapa button")
	}
	if hasOption(r.basesMenu(111), tokTopapa) {
		t.Fatalf("primary must not see the topapa button")
	}

	single := newTestRouter(t, &fakeConsole{}, []int64{111}, nil, testBases)
	if hasOption(single.basesMenu(111), tokTopapa) {
		t.Fatalf("no dependent configured, button must be absent")
	}
}

func TestBasesMenuListsPresets(t *testing.T) {
	r := newTestRouter(t, &fakeConsole{}, []int64{111}, nil, testBases)
	m := r.basesMenu(111)
	if !hasOption(m, "tp:spawn") {
		t.Fatalf("expected tp:spawn option, got %v", m.Options)
	}
	if !hasOption(m, tokMainMenu) {
		t.Fatalf("expected back button")
	}
}

func TestVocabMenuOrder(t *testing.T) {
	r := newTestRouter(t, &fakeConsole{}, []int64{111}, nil, "")
	m := r.vocabMenu(kindTime)

	want := []string{"set:time:day", "set:time:noon", "set:time:night", "set:time:midnight"}
	if len(m.Options) != len(want)+1 { // + кнопка назад
		t.Fatalf("unexpected option count: %v", m.Options)
	}
	for i, w := range want {
		if m.Options[i].Token != w {
			t.Fatalf("option %d = %q, want %q", i, m.Options[i].Token, w)
		}
	}
}

func TestScreenForToken(t *testing.T) {
	cases := map[string]screen{
		"start":          screenRoot,
		"main_menu":      screenMain,
		"bases":          screenBases,
		"tp:spawn":       screenBases,
		"topapa":         screenBases,
		"set:time:day":   screenTime,
		"set:mode:x":     screenMode,
		"weather":        screenWeather,
		"difficulty":     screenDifficulty,
		"stale_or_typo":  screenMain,
	}
	for tok, want := range cases {
		if got := screenForToken(tok); got != want {
			t.Fatalf("screenForToken(%q) = %d, want %d", tok, got, want)
		}
	}
}

func TestVocabTokensOrder(t *testing.T) {
	got := vocabTokens(kindDifficulty)
	want := []string{"peaceful", "easy", "normal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("difficulty tokens = %v, want %v", got, want)
	}
}

func TestVocabLabelUnknown(t *testing.T) {
	if _, err := vocabLabel(kindTime, "sunrise"); !errors.Is(err, errUnknownToken) {
		t.Fatalf("expected errUnknownToken, got %v", err)
	}
}
