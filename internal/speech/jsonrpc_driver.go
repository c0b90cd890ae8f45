package speech

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/google/shlex"
)

// jsonrpcRequest is a newline-delimited JSON-RPC 2.0 request.
type jsonrpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      *uint64        `json:"id"`
	Result  any            `json:"result"`
	Error   *jsonrpcError  `json:"error"`
}

// ProcDriver speaks to a child process over newline-delimited JSON-RPC 2.0
// on its stdin/stdout, per the speak/stop/set_rate protocol.
type ProcDriver struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	nextID uint64
	rate   float32
}

// NewExecDriver spawns the program named by commandLine (split into argv
// with shlex, matching how the host splits shell command strings elsewhere)
// as a ProcDriver.
func NewExecDriver(commandLine string) (*ProcDriver, error) {
	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("split speech driver command: %w", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty speech driver command")
	}
	return NewProcDriver(argv[0], argv[1:]...)
}

// NewProcDriver spawns path with args as a ProcDriver.
func NewProcDriver(path string, args ...string) (*ProcDriver, error) {
	cmd := exec.Command(path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("capture proc driver stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("capture proc driver stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn proc driver %s: %w", path, err)
	}
	return &ProcDriver{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		nextID: 1,
		rate:   1.0,
	}, nil
}

func (d *ProcDriver) call(method string, params any) error {
	id := atomic.AddUint64(&d.nextID, 1) - 1
	req := jsonrpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("serialize rpc request: %w", err)
	}
	if _, err := d.stdin.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write rpc request: %w", err)
	}

	for {
		line, err := d.stdout.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read rpc response: %w", err)
		}
		var resp jsonrpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			return fmt.Errorf("parse rpc response: %w", err)
		}
		if resp.ID == nil || *resp.ID != id {
			continue
		}
		if resp.Error != nil {
			return fmt.Errorf("proc driver rpc error %d: %s", resp.Error.Code, resp.Error.Message)
		}
		return nil
	}
}

func (d *ProcDriver) Speak(text string, interrupt bool) error {
	return d.call("speak", map[string]any{"text": text, "interrupt": interrupt})
}

func (d *ProcDriver) Stop() error {
	return d.call("stop", nil)
}

func (d *ProcDriver) GetRate() float32 {
	return d.rate
}

func (d *ProcDriver) SetRate(rate float32) error {
	if err := d.call("set_rate", map[string]any{"rate": rate}); err != nil {
		return err
	}
	d.rate = rate
	return nil
}

// Close terminates the child process.
func (d *ProcDriver) Close() error {
	_ = d.stdin.Close()
	if d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
	}
	return d.cmd.Wait()
}
