package session

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"coursehub/pkg/domain"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	redis := miniredis.RunT(t)
	store, err := NewRedisStore(redis.Addr(), "", "test", 0)
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("fresh store should be empty, ok=%v err=%v", ok, err)
	}

	sess := domain.Session{UserID: "u1", Email: "a@b.com", Role: domain.RoleStudent, Token: "tok"}
	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if loaded != sess {
		t.Fatalf("expected %+v, got %+v", sess, loaded)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatalf("store should be empty after clear")
	}
}

func TestRedisStoreRequiresAddr(t *testing.T) {
	if _, err := NewRedisStore("", "", "test", 0); err == nil {
		t.Fatalf("expected constructor error for empty addr")
	}
}
