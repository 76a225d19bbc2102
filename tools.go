package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/go-delve/mcp-basics/tutorial"
)

// tutor serves the basics lesson to MCP clients.
type tutor struct {
	// dlvPath is the delve binary used by debug-tutorial.
	dlvPath string

	// mu serializes debugger sessions; only one dlv runs at a time.
	mu sync.Mutex
}

// registerTools registers the tutorial tools with the MCP server.
func registerTools(server *mcp.Server, t *tutor) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-steps",
		Description: "Lists the steps of the Go basics lesson in the order they run.",
	}, t.listSteps)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run-tutorial",
		Description: "Runs the whole Go basics lesson and returns its output. Optionally override the student's name or age.",
	}, t.runTutorial)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run-step",
		Description: "Runs a single step of the Go basics lesson and returns its output.",
	}, t.runStep)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "debug-tutorial",
		Description: "Runs the basics lesson program under a delve DAP server listening on the given port and returns the output captured by the debugger.",
	}, t.debugTutorial)
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// ListStepsParams defines the parameters for listing steps.
// No parameters are needed.
type ListStepsParams struct {
}

func (t *tutor) listSteps(ctx context.Context, _ *mcp.ServerSession, _ *mcp.CallToolParamsFor[ListStepsParams]) (*mcp.CallToolResultFor[any], error) {
	var sb strings.Builder
	for i, s := range tutorial.Steps() {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, s.Name, s.Title)
	}
	return textResult(sb.String()), nil
}

// RunTutorialParams defines the overrides accepted by run-tutorial.
type RunTutorialParams struct {
	Name string `json:"name,omitempty" mcp:"the student's name, defaults to Alice"`
	Age  int    `json:"age,omitempty" mcp:"the student's age when positive, defaults to 25"`
}

// lesson applies the overrides to the default lesson.
func (p RunTutorialParams) lesson() tutorial.Lesson {
	l := tutorial.Default()
	if p.Name != "" {
		l.Name = p.Name
	}
	if p.Age > 0 {
		l.Age = p.Age
	}
	return l
}

func (t *tutor) runTutorial(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[RunTutorialParams]) (*mcp.CallToolResultFor[any], error) {
	out, err := tutorial.Transcript(params.Arguments.lesson())
	if err != nil {
		return nil, err
	}
	return textResult(out), nil
}

// RunStepParams defines the parameters for running a single step.
type RunStepParams struct {
	Step string `json:"step" mcp:"the name of the step, as returned by list-steps"`
	Name string `json:"name,omitempty" mcp:"the student's name, defaults to Alice"`
	Age  int    `json:"age,omitempty" mcp:"the student's age when positive, defaults to 25"`
}

func (t *tutor) runStep(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[RunStepParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	l := RunTutorialParams{Name: args.Name, Age: args.Age}.lesson()
	var sb strings.Builder
	if err := tutorial.RunStep(&sb, l, args.Step); err != nil {
		return nil, err
	}
	if sb.Len() == 0 {
		return textResult("Step " + args.Step + " produces no output."), nil
	}
	return textResult(sb.String()), nil
}

// DebugTutorialParams defines the parameters for running the lesson under delve.
type DebugTutorialParams struct {
	Port string `json:"port" mcp:"the port for the DAP server to listen on"`
	Path string `json:"path" mcp:"path to the basics lesson program (package directory or binary)"`
}

// debugTutorial starts delve in DAP mode, runs the lesson program to
// completion and returns what the program printed. A directory is launched
// in "debug" mode (delve builds it), anything else in "exec" mode.
func (t *tutor) debugTutorial(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[DebugTutorialParams]) (*mcp.CallToolResultFor[any], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	port := params.Arguments.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	path := params.Arguments.Path
	mode := "exec"
	if fi, err := os.Stat(path); err != nil {
		return nil, err
	} else if fi.IsDir() {
		mode = "debug"
	}

	cmd := exec.CommandContext(ctx, t.dlvPath, "dap", "--listen", port, "--log", "--log-output", "dap")
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	defer func() {
		cmd.Process.Kill()
		cmd.Wait()
	}()

	r := bufio.NewReader(stdout)
	for {
		s, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		// Check if server has started
		if strings.HasPrefix(s, "DAP server listening at") {
			break
		}
	}

	client, err := newDAPClient("localhost"+port, 5*time.Second)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	out, err := client.RunProgram(mode, path)
	if err != nil {
		return nil, err
	}
	client.DisconnectRequest()
	return textResult(out), nil
}
