package http

import (
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomrelay/roomrelay/internal/auth"
	"github.com/roomrelay/roomrelay/internal/config"
	"github.com/roomrelay/roomrelay/internal/core"
)

// testServer bundles the pieces handler tests poke at directly.
type testServer struct {
	server     *stdhttp.Server
	directory  *core.Directory
	membership *core.Membership
	hub        *core.Hub
	auth       *auth.Service
}

func newTestServer(t *testing.T, adminPassword string) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	directory := core.NewDirectory()
	membership := core.NewMembership()
	hub := core.NewHub(directory, membership, &logger)

	var hash string
	if adminPassword != "" {
		var err error
		hash, err = auth.HashPassword(adminPassword)
		if err != nil {
			t.Fatalf("hash admin password: %v", err)
		}
	}

	authService := auth.NewService("admin", hash, &auth.JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "test",
		TTL:    time.Hour,
	})

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.JWTSecret = "test-secret"

	return &testServer{
		server:     NewServer(hub, directory, membership, authService, &cfg, &logger),
		directory:  directory,
		membership: membership,
		hub:        hub,
		auth:       authService,
	}
}
