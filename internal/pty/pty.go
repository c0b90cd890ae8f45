// Package pty starts and owns the child shell running inside the
// screen-reader session: the PTY master file descriptor, the OSC 10/11
// color-query responder, and resize plumbing to the kernel's PTY ioctl.
package pty

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Session owns the PTY master connected to a spawned child process.
type Session struct {
	Master *os.File
	Cmd    *exec.Cmd

	// OscFg/OscBg are the cached OSC 10/11 responses (X11 rgb: strings)
	// answered on the child's behalf when it queries the terminal's
	// foreground/background color, since a speech-driven session has no
	// real window to ask.
	OscFg string
	OscBg string
}

// Start spawns command under a new PTY sized rows x cols.
func Start(command string, args []string, rows, cols int) (*Session, error) {
	cmd := exec.Command(command, args...)
	master, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", command, err)
	}
	return &Session{Master: master, Cmd: cmd}, nil
}

// Resize updates the PTY's window size, which delivers SIGWINCH to the
// child.
func (s *Session) Resize(rows, cols int) error {
	return pty.Setsize(s.Master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// RespondOSCColors answers any OSC 10/11 color queries found in data by
// writing the cached response straight back to the child.
func (s *Session) RespondOSCColors(data []byte) error {
	if s.OscFg != "" && bytes.Contains(data, []byte("\x1B]10;?")) {
		if _, err := fmt.Fprintf(s.Master, "\x1B]10;%s\x1B\\", s.OscFg); err != nil {
			return err
		}
	}
	if s.OscBg != "" && bytes.Contains(data, []byte("\x1B]11;?")) {
		if _, err := fmt.Fprintf(s.Master, "\x1B]11;%s\x1B\\", s.OscBg); err != nil {
			return err
		}
	}
	return nil
}

// Write sends bytes to the child, e.g. forwarded keystrokes.
func (s *Session) Write(p []byte) (int, error) {
	return s.Master.Write(p)
}

// Read reads child output into p.
func (s *Session) Read(p []byte) (int, error) {
	return s.Master.Read(p)
}

// Close releases the PTY master; the child is reaped separately via
// Cmd.Wait.
func (s *Session) Close() error {
	return s.Master.Close()
}

// Wait blocks until the child process exits.
func (s *Session) Wait() error {
	return s.Cmd.Wait()
}
