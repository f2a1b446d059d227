package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func setServeFlags(t *testing.T, addr, hostKey string, idle int) {
	t.Helper()
	oldAddr, oldKey, oldIdle := flagSSHAddr, flagHostKey, flagIdleTimeout
	t.Cleanup(func() {
		flagSSHAddr, flagHostKey, flagIdleTimeout = oldAddr, oldKey, oldIdle
	})
	flagSSHAddr, flagHostKey, flagIdleTimeout = addr, hostKey, idle
}

func TestServerConfigDefaults(t *testing.T) {
	setServeFlags(t, "", "", 0)

	game := config.Default()
	game.Display.Theme = "ascii"
	cfg := serverConfig(game)

	def := tui.DefaultSSHServerConfig()
	if cfg.Address != def.Address {
		t.Errorf("Address = %q, expected %q", cfg.Address, def.Address)
	}
	if cfg.IdleTimeout != def.IdleTimeout {
		t.Errorf("IdleTimeout = %v, expected %v", cfg.IdleTimeout, def.IdleTimeout)
	}
	if cfg.Game.Display.Theme != "ascii" {
		t.Errorf("Game theme = %q, expected ascii", cfg.Game.Display.Theme)
	}
	if cfg.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestServerConfigFlags(t *testing.T) {
	setServeFlags(t, ":2222", "/tmp/key", 5)

	cfg := serverConfig(config.Default())
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, expected :2222", cfg.Address)
	}
	if cfg.HostKeyPath != "/tmp/key" {
		t.Errorf("HostKeyPath = %q, expected /tmp/key", cfg.HostKeyPath)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.IdleTimeout)
	}
}
