package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedis_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(client, "emb:", time.Hour)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		if _, err := c.Get(ctx, "yok"); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss, got %v", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := c.Set(ctx, "k1", []float64{0.6, 0.8}); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, "k1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 2 || got[0] != 0.6 || got[1] != 0.8 {
			t.Errorf("got %v", got)
		}
		if !mr.Exists("emb:k1") {
			t.Error("key should carry the prefix")
		}
	})

	t.Run("ttl expiry", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)
		if _, err := c.Get(ctx, "k1"); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected expired entry, got %v", err)
		}
	})

	t.Run("corrupt entry", func(t *testing.T) {
		if err := mr.Set("emb:bad", "not json"); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Get(ctx, "bad"); err == nil || errors.Is(err, ErrMiss) {
			t.Fatalf("expected decode error, got %v", err)
		}
	})
}

func TestDial(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	client, err := Dial(context.Background(), addr, "", 0)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	mr.Close()
	if _, err := Dial(context.Background(), addr, "", 0); err == nil {
		t.Error("expected error for closed server")
	}
}
