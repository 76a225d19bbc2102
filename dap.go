package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/go-dap"
)

// DAPClient is a debugger service client that uses Debug Adaptor Protocol.
// All client methods are synchronous.
type DAPClient struct {
	conn   net.Conn
	reader *bufio.Reader
	// seq is used to track the sequence number of each
	// requests that the client sends to the server
	seq int
}

// newDAPClient dials the DAP server at addr, retrying until timeout elapses.
// Call Close() to close the connection.
func newDAPClient(addr string, timeout time.Duration) (*DAPClient, error) {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			return newDAPClientFromConn(conn), nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("dialing %s: %w", addr, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// newDAPClientFromConn creates a new Client with the given connection.
// Call Close to close the connection.
func newDAPClientFromConn(conn net.Conn) *DAPClient {
	c := &DAPClient{conn: conn, reader: bufio.NewReader(conn)}
	c.seq = 1 // match VS Code numbering
	return c
}

// Close closes the client connection.
func (c *DAPClient) Close() {
	c.conn.Close()
}

// InitializeRequest sends an 'initialize' request.
func (c *DAPClient) InitializeRequest() error {
	request := &dap.InitializeRequest{Request: *c.newRequest("initialize")}
	request.Arguments = dap.InitializeRequestArguments{
		AdapterID:                    "go",
		PathFormat:                   "path",
		LinesStartAt1:                true,
		ColumnsStartAt1:              true,
		SupportsVariableType:         true,
		SupportsVariablePaging:       true,
		SupportsRunInTerminalRequest: true,
		Locale:                       "en-us",
	}
	return c.send(request)
}

func (c *DAPClient) ReadMessage() (dap.Message, error) {
	return dap.ReadProtocolMessage(c.reader)
}

// LaunchRequest sends a 'launch' request with the specified args.
// Program output is routed back to the client as 'output' events.
func (c *DAPClient) LaunchRequest(mode, program string, stopOnEntry bool) error {
	request := &dap.LaunchRequest{Request: *c.newRequest("launch")}
	request.Arguments = toRawMessage(map[string]any{
		"request":     "launch",
		"mode":        mode,
		"program":     program,
		"stopOnEntry": stopOnEntry,
		"outputMode":  "remote",
	})
	return c.send(request)
}

// ConfigurationDoneRequest sends a 'configurationDone' request, which lets
// the debuggee start running.
func (c *DAPClient) ConfigurationDoneRequest() error {
	request := &dap.ConfigurationDoneRequest{Request: *c.newRequest("configurationDone")}
	return c.send(request)
}

// DisconnectRequest sends a 'disconnect' request asking the adapter to
// terminate the debuggee.
func (c *DAPClient) DisconnectRequest() error {
	request := &dap.DisconnectRequest{Request: *c.newRequest("disconnect")}
	request.Arguments = &dap.DisconnectArguments{TerminateDebuggee: true}
	return c.send(request)
}

// RunProgram initializes the session, launches program and lets it run to
// completion. It returns everything the program wrote to stdout.
func (c *DAPClient) RunProgram(mode, program string) (string, error) {
	if err := c.InitializeRequest(); err != nil {
		return "", err
	}
	if err := c.awaitResponse("initialize"); err != nil {
		return "", err
	}
	if err := c.LaunchRequest(mode, program, false); err != nil {
		return "", err
	}
	if err := c.awaitResponse("launch"); err != nil {
		return "", err
	}
	if err := c.ConfigurationDoneRequest(); err != nil {
		return "", err
	}

	var out strings.Builder
	for {
		msg, err := c.ReadMessage()
		if err != nil {
			return out.String(), err
		}
		switch m := msg.(type) {
		case *dap.OutputEvent:
			if m.Body.Category == "stdout" {
				out.WriteString(m.Body.Output)
			}
		case *dap.ErrorResponse:
			return out.String(), fmt.Errorf("unable to run program via DAP server: %s", m.Message)
		case *dap.TerminatedEvent:
			return out.String(), nil
		}
	}
}

// awaitResponse reads messages until the response to command arrives.
// Events received in the meantime are discarded.
func (c *DAPClient) awaitResponse(command string) error {
	for {
		msg, err := c.ReadMessage()
		if err != nil {
			return err
		}
		switch m := msg.(type) {
		case *dap.ErrorResponse:
			return fmt.Errorf("%s request failed: %s", command, m.Message)
		case dap.ResponseMessage:
			resp := m.GetResponse()
			if resp.Command != command {
				continue
			}
			if !resp.Success {
				return fmt.Errorf("%s request failed: %s", command, resp.Message)
			}
			return nil
		}
	}
}

func (c *DAPClient) newRequest(command string) *dap.Request {
	request := &dap.Request{}
	request.Type = "request"
	request.Command = command
	request.Seq = c.seq
	c.seq++
	return request
}

func (c *DAPClient) send(request dap.Message) error {
	return dap.WriteProtocolMessage(c.conn, request)
}

func toRawMessage(in any) json.RawMessage {
	out, _ := json.Marshal(in)
	return out
}
