// Package hostloop drives the interactive session against the real
// controlling terminal: raw-mode lifecycle, SIGWINCH handling, a settle
// timer, and the two read goroutines (stdin, PTY output) that feed
// internal/app's event loop.
package hostloop

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"lector/internal/app"
	"lector/internal/attributes"
	"lector/internal/pty"
	"lector/internal/schedule"
	"lector/internal/screenreader"
)

// settleCheckInterval is how often MaybeFinalizeChanges is polled. It is
// far finer than app.MaxDiffDelayMillis, though coarser than
// app.DiffDelayMillis, so a settle is noticed within about one interval
// without busy-looping.
const settleCheckInterval = 10 * time.Millisecond

// scheduleCheckInterval is how often due reminders are polled. Recurring
// announcements fire on minute boundaries at the finest, so this doesn't
// need settleCheckInterval's resolution.
const scheduleCheckInterval = 20 * time.Second

// Loop owns the raw-terminal lifecycle and wires stdin/PTY/tick events
// into an *app.App.
type Loop struct {
	App       *app.App
	State     *screenreader.State
	PTY       *pty.Session
	Scheduler *schedule.Scheduler // nil if no reminders are configured

	stdinFd int
	restore *term.State
}

// Run puts the controlling terminal into raw mode, starts reading
// keyboard and child-process output, and blocks until the child exits.
func (l *Loop) Run() error {
	l.stdinFd = int(os.Stdin.Fd())

	if err := l.detectOSCColors(); err != nil {
		return err
	}

	restore, err := term.MakeRaw(l.stdinFd)
	if err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	l.restore = restore
	defer func() {
		term.Restore(l.stdinFd, l.restore)
		os.Stdout.Write([]byte("\x1B[?25h\x1B[0m\r\n"))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)
	go l.watchResize(sigCh)

	stopTick := make(chan struct{})
	defer close(stopTick)
	go l.runSettleTimer(stopTick)

	if l.Scheduler != nil {
		stopSchedule := make(chan struct{})
		defer close(stopSchedule)
		go l.runScheduler(stopSchedule)
	}

	go l.readPty()
	go l.readStdin()

	return l.PTY.Wait()
}

func (l *Loop) detectOSCColors() error {
	output := termenv.NewOutput(os.Stdout)
	if fg := output.ForegroundColor(); fg != nil {
		l.PTY.OscFg = attributes.ToX11(fg)
	}
	if bg := output.BackgroundColor(); bg != nil {
		l.PTY.OscBg = attributes.ToX11(bg)
	}
	if l.PTY.OscFg == "" || l.PTY.OscBg == "" {
		fg, bg := attributes.FallbackPalette(os.Getenv("COLORFGBG"))
		if l.PTY.OscFg == "" {
			l.PTY.OscFg = fg
		}
		if l.PTY.OscBg == "" {
			l.PTY.OscBg = bg
		}
	}
	return nil
}

func (l *Loop) readPty() {
	buf := make([]byte, 4096)
	for {
		n, err := l.PTY.Read(buf)
		if n > 0 {
			if respErr := l.PTY.RespondOSCColors(buf[:n]); respErr != nil {
				return
			}
			if handleErr := l.App.HandlePty(l.State, buf[:n], os.Stdout); handleErr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (l *Loop) readStdin() {
	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if handleErr := l.App.HandleStdin(l.State, append([]byte(nil), buf[:n]...), l.PTY, os.Stdout); handleErr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (l *Loop) runSettleTimer(stop <-chan struct{}) {
	ticker := time.NewTicker(settleCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.App.MaybeFinalizeChanges(l.State)
			if l.App.WantsTick() {
				l.App.HandleTick(l.State, l.PTY, os.Stdout)
			}
		case <-stop:
			return
		}
	}
}

func (l *Loop) runScheduler(stop <-chan struct{}) {
	ticker := time.NewTicker(scheduleCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for _, msg := range l.Scheduler.Due(time.Now()) {
				l.State.Speech.Speak(msg, false)
			}
		case <-stop:
			return
		}
	}
}

func (l *Loop) watchResize(sigCh <-chan os.Signal) {
	for range sigCh {
		cols, rows, err := term.GetSize(l.stdinFd)
		if err != nil {
			continue
		}
		if err := l.PTY.Resize(rows, cols); err != nil {
			continue
		}
		if err := l.App.OnResize(rows, cols, os.Stdout); err != nil {
			return
		}
	}
}
