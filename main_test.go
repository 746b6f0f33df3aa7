package main

import (
	"testing"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/app"
	"github.com/atomicstack/chat-popup-control/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DBPath:       "chat.db",
			RenameID:     "c1",
			PollInterval: 5 * time.Second,
			Timeout:      10 * time.Second,
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			Verbose:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"db":      "chat.db",
			"rename":  "c1",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--db", "chat.db", "--rename", "c1"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["db"] != "chat.db" {
		t.Fatalf("expected db flag %q, got %v", "chat.db", flagsValue["db"])
	}
	if flagsValue["rename"] != "c1" {
		t.Fatalf("expected rename flag c1, got %v", flagsValue["rename"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadRedactsToken(t *testing.T) {
	cfg := config.Config{App: app.Config{APIURL: "https://chat.example.com", Token: "s3cret"}}
	payload := startupTracePayload(cfg)
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.Token != "<redacted>" {
		t.Fatalf("expected token redacted, got %q", cfgValue.App.Token)
	}
	if cfg.App.Token != "s3cret" {
		t.Fatalf("expected caller config untouched")
	}
}
