package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"koreatrip/internal/config"
)

func TestInitRedis(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := InitRedis(context.Background(), config.Config{RedisAddr: s.Addr()}, zap.NewNop())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	CloseRedis(client, zap.NewNop())
}

func TestInitRedisUnreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	if _, err := InitRedis(context.Background(), config.Config{RedisAddr: addr}, zap.NewNop()); err == nil {
		t.Fatalf("expected ping failure")
	}
}

func TestInitTracingWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracing("koreatrip", "test", "")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
