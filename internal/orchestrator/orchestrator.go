package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/models"
	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/Cyclone1070/sandboxagent/internal/ui"
	"github.com/sirupsen/logrus"
)

// MaxIterations bounds the number of model replies in one run.
const MaxIterations = 20

// ErrNoContent is reported when a reply carries neither tool calls nor text.
var ErrNoContent = errors.New("model reply has neither tool calls nor text")

// TerminationReason says why a run ended.
type TerminationReason int

const (
	FinalAnswer TerminationReason = iota
	IterationCapReached
	ServiceFault
	ProtocolFault
)

func (r TerminationReason) String() string {
	switch r {
	case FinalAnswer:
		return "final_answer"
	case IterationCapReached:
		return "iteration_cap_reached"
	case ServiceFault:
		return "service_fault"
	case ProtocolFault:
		return "protocol_fault"
	default:
		return fmt.Sprintf("termination_reason(%d)", int(r))
	}
}

// Outcome is the result of a run. Err is set for ServiceFault and ProtocolFault.
type Outcome struct {
	Reason     TerminationReason
	Answer     string
	Iterations int
	Err        error
}

// Orchestrator drives the bounded exchange between the model and the tools.
type Orchestrator struct {
	provider     provider.Provider
	dispatcher   *Dispatcher
	out          ui.Output
	log          logrus.FieldLogger
	systemPrompt string
	history      []models.Message
}

// New creates a new Orchestrator instance
func New(p provider.Provider, d *Dispatcher, out ui.Output, systemPrompt string, log logrus.FieldLogger) *Orchestrator {
	if p == nil {
		panic("provider is required")
	}
	if d == nil {
		panic("dispatcher is required")
	}
	if out == nil {
		panic("out is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{
		provider:     p,
		dispatcher:   d,
		out:          out,
		log:          log,
		systemPrompt: systemPrompt,
	}
}

// History returns a copy of the conversation so far.
func (o *Orchestrator) History() []models.Message {
	return append([]models.Message(nil), o.history...)
}

// Run executes the agent loop for one prompt. Every reply is appended to the
// history exactly once; tool calls in a reply take precedence over its text.
func (o *Orchestrator) Run(ctx context.Context, prompt string) Outcome {
	o.out.WriteUserPrompt(prompt)
	o.history = []models.Message{models.NewTextMessage(models.RoleUser, prompt)}
	tools := o.dispatcher.Definitions()

	for i := range MaxIterations {
		if err := ctx.Err(); err != nil {
			return o.terminate(ServiceFault, i, err)
		}

		log := o.log.WithField("iteration", i+1)
		log.Debug("Requesting model reply")

		resp, err := o.provider.Generate(ctx, &provider.GenerateRequest{
			SystemInstruction: o.systemPrompt,
			History:           o.history,
			Tools:             tools,
		})
		if err != nil {
			if errors.Is(err, provider.ErrEmptyResponse) {
				return o.terminate(ProtocolFault, i+1, err)
			}
			return o.terminate(ServiceFault, i+1, fmt.Errorf("provider error: %w", err))
		}

		o.out.WriteUsage(resp.Metadata.PromptTokens, resp.Metadata.CompletionTokens)

		reply := resp.Message
		reply.Role = models.RoleModel
		o.history = append(o.history, reply)

		calls := reply.ToolCalls()
		if len(calls) > 0 {
			log.WithField("calls", len(calls)).Debug("Dispatching tool calls")
			results := make([]NamedResult, 0, len(calls))
			for _, call := range calls {
				results = append(results, NamedResult{Call: call, Result: o.dispatcher.Dispatch(ctx, call)})
			}
			o.history = append(o.history, Translate(results))

			if i+1 == MaxIterations {
				log.Warn("Max iterations reached")
				o.out.WriteWarning("Max iterations reached")
				return o.terminate(IterationCapReached, i+1, nil)
			}
			continue
		}

		if text := reply.Text(); strings.TrimSpace(text) != "" {
			o.out.WriteFinalAnswer(text)
			out := o.terminate(FinalAnswer, i+1, nil)
			out.Answer = text
			return out
		}

		return o.terminate(ProtocolFault, i+1, ErrNoContent)
	}

	// Unreachable: the last iteration either returns or hits the cap above.
	return o.terminate(IterationCapReached, MaxIterations, nil)
}

func (o *Orchestrator) terminate(reason TerminationReason, iterations int, err error) Outcome {
	entry := o.log.WithFields(logrus.Fields{"reason": reason, "iterations": iterations})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Debug("Run terminated")
	return Outcome{Reason: reason, Iterations: iterations, Err: err}
}
