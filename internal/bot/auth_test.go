package bot

import (
	"path/filepath"
	"testing"
)

func TestAuthStoreFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `{"111": {"minecraft_nickname": "Dad"}, "222": {"minecraft_nickname": ""}}`)

	a, err := newAuthStore([]int64{111, 222}, path)
	if err != nil {
		t.Fatal(err)
	}

	if !a.IsAllowed(111) || !a.IsAllowed(222) || a.IsAllowed(333) {
		t.Fatalf("allow-list membership broken")
	}
	if got := a.Nickname(111); got != "Dad" {
		t.Fatalf("Nickname(111) = %q", got)
	}
	// пустой ник в файле и незнакомый id дают дефолт
	if got := a.Nickname(222); got != defaultNickname {
		t.Fatalf("Nickname(222) = %q", got)
	}
	if got := a.Nickname(333); got != defaultNickname {
		t.Fatalf("Nickname(333) = %q", got)
	}

	if a.PrimaryID() != 111 {
		t.Fatalf("PrimaryID = %d", a.PrimaryID())
	}
	dep, ok := a.DependentID()
	if !ok || dep != 222 {
		t.Fatalf("DependentID = %d %v", dep, ok)
	}
}

func TestAuthStoreSingleUserHasNoDependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `{}`)

	a, err := newAuthStore([]int64{111}, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.DependentID(); ok {
		t.Fatalf("single-entry allow-list must have no dependent")
	}
}

func TestAuthStoreFailsOnMissingUsersFile(t *testing.T) {
	if _, err := newAuthStore([]int64{111}, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error on missing users file")
	}
}

func TestAuthStoreFailsOnEmptyAllowList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, `{}`)
	if _, err := newAuthStore(nil, path); err == nil {
		t.Fatalf("expected error on empty allow-list")
	}
}
