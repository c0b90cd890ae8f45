package main

import (
	"os"
	"testing"

	"lector/internal/config"
	"lector/internal/symbols"
)

func TestResolveShellPrefersFlagThenConfigThenEnv(t *testing.T) {
	cfg := &config.Config{Shell: "/bin/zsh"}

	if got := resolveShell("/bin/fish", cfg); got != "/bin/fish" {
		t.Errorf("flag = %q, want /bin/fish", got)
	}
	if got := resolveShell("", cfg); got != "/bin/zsh" {
		t.Errorf("config = %q, want /bin/zsh", got)
	}

	old, hadEnv := os.LookupEnv("SHELL")
	os.Setenv("SHELL", "/bin/bash")
	defer func() {
		if hadEnv {
			os.Setenv("SHELL", old)
		} else {
			os.Unsetenv("SHELL")
		}
	}()
	if got := resolveShell("", &config.Config{}); got != "/bin/bash" {
		t.Errorf("env = %q, want /bin/bash", got)
	}
}

func TestResolveSymbolLevelFallsBackToConfigDefault(t *testing.T) {
	cfg := &config.Config{SymbolLevel: "most"}

	if got := resolveSymbolLevel("none", cfg); got != symbols.LevelNone {
		t.Errorf("flag override = %v, want LevelNone", got)
	}
	if got := resolveSymbolLevel("", cfg); got != symbols.LevelMost {
		t.Errorf("config = %v, want LevelMost", got)
	}
	if got := resolveSymbolLevel("", &config.Config{}); got != symbols.LevelAll {
		t.Errorf("default = %v, want LevelAll", got)
	}
}

func TestResolveDriverNoneIsDefault(t *testing.T) {
	driver, closeFn, err := resolveDriver("", &config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if _, ok := driver.(interface{ Stops() int }); !ok {
		t.Fatalf("expected a LogDriver for the default selector, got %T", driver)
	}
}

func TestResolveDriverRejectsUnknownSelector(t *testing.T) {
	_, _, err := resolveDriver("bogus:thing", &config.Config{})
	if err == nil {
		t.Fatal("expected error for unknown speech driver selector")
	}
}

func TestBuildSchedulerEmptyConfigReturnsNil(t *testing.T) {
	s, err := buildScheduler(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatal("expected nil scheduler for empty config")
	}
}

func TestBuildSchedulerRejectsBadRRule(t *testing.T) {
	cfg := &config.Config{Schedule: []config.ReminderConfig{
		{Message: "stand up", RRule: "not a valid rule"},
	}}
	if _, err := buildScheduler(cfg); err == nil {
		t.Fatal("expected error for invalid rrule string")
	}
}
