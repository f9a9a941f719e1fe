package orchestrator

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"time"

	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/adapter"
	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/models"
	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/Cyclone1070/sandboxagent/internal/ui"
	"github.com/sirupsen/logrus"
)

// WorkingDirectoryKey is the argument the dispatcher sets on every call. Any
// value supplied by the model is overwritten.
const WorkingDirectoryKey = "working_directory"

// ToolID names a tool the dispatcher knows about.
type ToolID string

const (
	ToolListDirectory ToolID = "list_directory"
	ToolReadFile      ToolID = "read_file"
	ToolWriteFile     ToolID = "write_file"
	ToolRunScript     ToolID = "run_script"
)

var knownTools = map[ToolID]struct{}{
	ToolListDirectory: {},
	ToolReadFile:      {},
	ToolWriteFile:     {},
	ToolRunScript:     {},
}

// ParseToolID maps a tool name from the model onto a ToolID.
func ParseToolID(name string) (ToolID, bool) {
	id := ToolID(name)
	_, ok := knownTools[id]
	return id, ok
}

// Dispatcher routes tool calls to their handlers and turns every outcome,
// including panics, into a ToolResult.
type Dispatcher struct {
	root  string
	tools map[ToolID]adapter.Tool
	out   ui.Output
	log   logrus.FieldLogger
}

// NewDispatcher registers tools by name. Every name must be a known ToolID.
func NewDispatcher(root string, tools []adapter.Tool, out ui.Output, log logrus.FieldLogger) (*Dispatcher, error) {
	if root == "" {
		return nil, fmt.Errorf("confinement root is required")
	}
	if out == nil {
		panic("out is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	registry := make(map[ToolID]adapter.Tool, len(tools))
	for _, t := range tools {
		id, ok := ParseToolID(t.Name())
		if !ok {
			return nil, fmt.Errorf("cannot register unknown tool %q", t.Name())
		}
		if _, dup := registry[id]; dup {
			return nil, fmt.Errorf("tool %q registered twice", t.Name())
		}
		registry[id] = t
	}

	return &Dispatcher{root: root, tools: registry, out: out, log: log}, nil
}

// Root returns the confinement root injected into every call.
func (d *Dispatcher) Root() string {
	return d.root
}

// Definitions returns the declarations of the registered tools, sorted by name.
func (d *Dispatcher) Definitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(d.tools))
	for _, t := range d.tools {
		defs = append(defs, t.Definition())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Dispatch runs one tool call. It never panics and never returns a Go error:
// unknown names, handler errors and handler panics all become Failure values.
func (d *Dispatcher) Dispatch(ctx context.Context, call models.ToolCall) models.ToolResult {
	d.out.WriteToolCall(call.Name, call.Args)

	start := time.Now()
	result := d.dispatch(ctx, call)

	d.log.WithFields(logrus.Fields{
		"tool":     call.Name,
		"id":       call.ID,
		"duration": time.Since(start),
		"ok":       result.OK(),
	}).Debug("Tool call finished")

	d.out.WriteToolResult(result.String())
	return result
}

func (d *Dispatcher) dispatch(ctx context.Context, call models.ToolCall) models.ToolResult {
	id, ok := ParseToolID(call.Name)
	if !ok {
		return models.Failure("unknown function: " + call.Name)
	}
	tool, ok := d.tools[id]
	if !ok {
		return models.Failure("unknown function: " + call.Name)
	}

	args := make(map[string]any, len(call.Args)+1)
	maps.Copy(args, call.Args)
	args[WorkingDirectoryKey] = d.root

	return d.execute(ctx, tool, args)
}

func (d *Dispatcher) execute(ctx context.Context, tool adapter.Tool, args map[string]any) (result models.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("tool", tool.Name()).Errorf("Tool handler panicked: %v", r)
			result = models.Failure(fmt.Sprintf("internal error in %s: %v", tool.Name(), r))
		}
	}()

	value, err := tool.Execute(ctx, args)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.Success(value)
}
