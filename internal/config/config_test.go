package config

import (
	"os"
	"path/filepath"
	"testing"

	"lector/internal/commands"
	"lector/internal/keymap"
	"lector/internal/symbols"
)

func TestLoadFrom_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `shell: /bin/zsh
symbol_level: most
speech_driver: "exec:/usr/local/bin/say-bridge"
keybindings:
  "\x1Bz": stop_speaking
schedule:
  - message: stand up and stretch
    rrule: "FREQ=DAILY;BYHOUR=9;BYMINUTE=0"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Shell != "/bin/zsh" {
		t.Errorf("Shell = %q, want /bin/zsh", cfg.Shell)
	}
	if cfg.SymbolLevelOrDefault() != symbols.LevelMost {
		t.Errorf("SymbolLevelOrDefault = %v, want LevelMost", cfg.SymbolLevelOrDefault())
	}
	if cfg.SpeechDriver != "exec:/usr/local/bin/say-bridge" {
		t.Errorf("SpeechDriver = %q", cfg.SpeechDriver)
	}
	if len(cfg.Schedule) != 1 || cfg.Schedule[0].Message != "stand up and stretch" {
		t.Errorf("Schedule = %+v", cfg.Schedule)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Shell != "" {
		t.Errorf("expected empty Shell, got %q", cfg.Shell)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("{{invalid yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadFrom_InvalidSymbolLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("symbol_level: extreme\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid symbol_level")
	}
}

func TestLoadFrom_UnknownKeybindingAction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := "keybindings:\n  \"\\x1Bz\": not_a_real_action\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for unknown action name")
	}
}

func TestLoadFrom_MissingScheduleFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := "schedule:\n  - message: \"\"\n    rrule: \"FREQ=DAILY\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for missing schedule message")
	}
}

func TestApplyKeybindingsOverridesDefault(t *testing.T) {
	cfg := &Config{Keybindings: map[string]string{"\x1Bz": "stop_speaking"}}
	b := keymap.New()

	if err := cfg.ApplyKeybindings(b); err != nil {
		t.Fatal(err)
	}

	binding, ok := b.BindingFor("\x1Bz")
	if !ok {
		t.Fatal("expected override binding to be registered")
	}
	if binding.Action != commands.StopSpeaking {
		t.Errorf("Action = %v, want StopSpeaking", binding.Action)
	}
}
