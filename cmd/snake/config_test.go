package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestWriteConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Theme = "block"
	cfg.Timing.TickMS = 80

	var buf bytes.Buffer
	if err := writeConfig(&buf, cfg); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "tick_ms: 80") {
		t.Errorf("output should use yaml field names, got:\n%s", buf.String())
	}

	var back config.Config
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if back != cfg {
		t.Errorf("decoded %+v, expected %+v", back, cfg)
	}
}
