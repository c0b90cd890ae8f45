package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"lector/internal/app"
	"lector/internal/clock"
	"lector/internal/config"
	"lector/internal/hostloop"
	"lector/internal/keymap"
	"lector/internal/pty"
	"lector/internal/schedule"
	"lector/internal/scripting"
	"lector/internal/screenreader"
	"lector/internal/speech"
	"lector/internal/symbols"
	"lector/internal/version"
	"lector/internal/viewstack"
)

func newRootCmd() *cobra.Command {
	var shellFlag string
	var driverFlag string
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "lector [-- <shell> [args...]]",
		Short: "A terminal screen reader",
		Long: `lector wraps a shell in a PTY, narrates what changes on screen through a
speech driver, and lets a review cursor move independently of the
application's own cursor.`,
		Version: version.DisplayVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(shellFlag, driverFlag, levelFlag, args)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "shell to run (defaults to config, then $SHELL, then /bin/sh)")
	cmd.Flags().StringVar(&driverFlag, "speech-driver", "", `speech driver: "none", or "exec:<command line>"`)
	cmd.Flags().StringVar(&levelFlag, "symbol-level", "", "initial symbol level: none|some|most|all|character (default all)")

	return cmd
}

func run(shellFlag, driverFlag, levelFlag string, extraArgs []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("lector must be run from an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lock, err := acquireInstanceLock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	shell := resolveShell(shellFlag, cfg)

	driver, closeDriver, err := resolveDriver(driverFlag, cfg)
	if err != nil {
		return fmt.Errorf("set up speech driver: %w", err)
	}
	defer closeDriver()

	level := resolveSymbolLevel(levelFlag, cfg)
	sp := speech.New(driver, level)
	state := screenreader.New(sp)

	bindings := keymap.New()
	if err := cfg.ApplyKeybindings(bindings); err != nil {
		return fmt.Errorf("apply keybinding overrides: %w", err)
	}

	rows, cols := 24, 80
	session, err := pty.Start(shell, extraArgs, rows, cols)
	if err != nil {
		return fmt.Errorf("start shell %q: %w", shell, err)
	}

	stack := viewstack.New(viewstack.NewPtyView(rows, cols))
	a := app.New(stack, bindings, scripting.NoopEngine{}, clock.NewRealClock())

	scheduler, err := buildScheduler(cfg)
	if err != nil {
		return fmt.Errorf("set up scheduled announcements: %w", err)
	}

	loop := &hostloop.Loop{App: a, State: state, PTY: session, Scheduler: scheduler}
	if err := loop.Run(); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}
	return nil
}

// buildScheduler builds a Scheduler from the config's recurring
// announcements, or returns nil if none are configured.
func buildScheduler(cfg *config.Config) (*schedule.Scheduler, error) {
	if len(cfg.Schedule) == 0 {
		return nil, nil
	}
	s := schedule.New()
	for _, r := range cfg.Schedule {
		reminder, err := schedule.NewReminderFromRFCString(r.Message, r.RRule)
		if err != nil {
			return nil, err
		}
		s.Add(reminder)
	}
	return s, nil
}

// acquireInstanceLock takes an exclusive lock on ~/.lector/lector.lock so
// two sessions sharing one config directory can't clobber each other's
// keybinding overrides or scheduled reminders mid-run.
func acquireInstanceLock() (*flock.Flock, error) {
	dir := config.ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	lock := flock.New(filepath.Join(dir, "lector.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another lector session is already running against %s", dir)
	}
	return lock, nil
}

func resolveShell(flagVal string, cfg *config.Config) string {
	if flagVal != "" {
		return flagVal
	}
	if cfg.Shell != "" {
		return cfg.Shell
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func resolveSymbolLevel(flagVal string, cfg *config.Config) symbols.Level {
	if flagVal != "" {
		if level, ok := config.ParseSymbolLevel(flagVal); ok {
			return level
		}
	}
	return cfg.SymbolLevelOrDefault()
}

// resolveDriver builds the Driver named by flagVal (falling back to the
// config file's speech_driver), returning a close func to release any
// spawned process.
func resolveDriver(flagVal string, cfg *config.Config) (speech.Driver, func(), error) {
	selector := flagVal
	if selector == "" {
		selector = cfg.SpeechDriver
	}
	noop := func() {}

	switch {
	case selector == "" || selector == "none":
		return speech.NewLogDriver(), noop, nil
	case strings.HasPrefix(selector, "exec:"):
		commandLine := strings.TrimPrefix(selector, "exec:")
		driver, err := speech.NewExecDriver(commandLine)
		if err != nil {
			return nil, noop, err
		}
		return driver, func() { driver.Close() }, nil
	default:
		return nil, noop, fmt.Errorf(`unknown speech driver %q (want "none" or "exec:<command line>")`, selector)
	}
}
