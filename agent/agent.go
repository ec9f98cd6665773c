package agent

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petasbytes/cozyreq/internal/claude"
	"github.com/petasbytes/cozyreq/messages"
	"github.com/petasbytes/cozyreq/tools"
)

// Agent runs prompts against the model backend, executing catalog tools on
// request. Safe for concurrent runs as long as the catalog capabilities
// are; each run owns its own conversation.
type Agent struct {
	system   string
	catalog  *tools.Catalog
	codec    *claude.Client
	log      zerolog.Logger
	maxTurns int
}

type config struct {
	apiKey   string
	model    anthropic.Model
	maxTurns int
	log      zerolog.Logger
	reqOpts  []option.RequestOption
}

// Option configures an Agent at construction.
type Option func(*config)

// WithAPIKey injects the backend credential. Required; the agent never
// reads the environment itself.
func WithAPIKey(key string) Option {
	return func(c *config) { c.apiKey = key }
}

// WithModel overrides the default model identifier.
func WithModel(model string) Option {
	return func(c *config) { c.model = anthropic.Model(model) }
}

// WithMaxTurns caps the number of exchanges per run. Zero means unlimited,
// which is the default: a model that keeps requesting tools keeps the run
// going.
func WithMaxTurns(n int) Option {
	return func(c *config) { c.maxTurns = n }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithRequestOptions appends SDK request options, e.g. a custom HTTP
// client in tests.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(c *config) { c.reqOpts = append(c.reqOpts, opts...) }
}

// New builds an Agent for the given system prompt and tool catalog.
func New(systemPrompt string, catalog *tools.Catalog, opts ...Option) (*Agent, error) {
	cfg := config{log: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.apiKey == "" {
		return nil, &ConfigError{Reason: "missing API key"}
	}
	if catalog == nil {
		return nil, &ConfigError{Reason: "tool catalog is required"}
	}

	log := cfg.log.With().Str("component", "agent").Logger()
	log.Debug().Int("tool_count", catalog.Len()).Msg("agent initialized")

	return &Agent{
		system:   systemPrompt,
		catalog:  catalog,
		codec:    claude.NewClient(cfg.apiKey, cfg.model, log, cfg.reqOpts...),
		log:      log,
		maxTurns: cfg.maxTurns,
	}, nil
}

// Run executes the turn loop for prompt until the model signals completion
// or ctx is cancelled. It returns the full ordered conversation; on error
// the history built so far accompanies the error.
//
// Cancellation is cooperative: ctx is checked before each exchange, not
// between the tool executions of a batch, so a cancellation takes effect
// once the in-flight exchange or batch finishes.
func (a *Agent) Run(ctx context.Context, prompt string) ([]messages.Message, error) {
	log := a.log.With().Str("run_id", uuid.NewString()).Logger()
	log.Info().Str("prompt", prompt).Msg("run started")

	history := []messages.Message{messages.UserMessage{Content: prompt}}

	for turn := 1; ; turn++ {
		if ctx.Err() != nil {
			log.Info().Msg("run cancelled")
			return history, ErrCancelled
		}
		if a.maxTurns > 0 && turn > a.maxTurns {
			log.Warn().Int("max_turns", a.maxTurns).Msg("turn limit reached")
			return history, ErrTurnLimit
		}
		log.Debug().Int("turn", turn).Msg("starting iteration")

		blocks, stop, err := a.codec.Exchange(ctx, a.system, a.catalog.Descriptors(), history)
		if err != nil {
			// A cancellation racing the exchange still reports as a
			// cancelled run, not a transport failure.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info().Msg("run cancelled during exchange")
				return history, ErrCancelled
			}
			return history, err
		}

		assistant := messages.AssistantMessage{Content: blocks}
		history = append(history, assistant)

		switch stop {
		case "end_turn":
			log.Info().
				Int("total_messages", len(history)).
				Int("turns", turn).
				Msg("run completed")
			return history, nil

		case "tool_use":
			uses := assistant.ToolUses()
			log.Debug().Int("tool_call_count", len(uses)).Msg("executing tool calls")
			for _, use := range uses {
				result, err := a.executeTool(log, use)
				if err != nil {
					return history, err
				}
				history = append(history, result)
			}

		default:
			log.Warn().Str("stop_reason", stop).Msg("unexpected stop_reason, treating as completion")
			return history, nil
		}
	}
}

// executeTool dispatches one invocation. Capability-level failures,
// including schema violations, fold into the result so the model can see
// them; only an unknown tool name aborts the run.
func (a *Agent) executeTool(log zerolog.Logger, use messages.ToolUseBlock) (messages.ToolResultMessage, error) {
	fn, ok := a.catalog.Lookup(use.Name)
	if !ok {
		return messages.ToolResultMessage{}, &ToolNotFoundError{Name: use.Name}
	}

	log.Info().
		Str("tool_name", use.Name).
		Int("input_size", len(use.Input)).
		Msg("executing tool")

	if err := a.catalog.Validate(use.Name, use.Input); err != nil {
		log.Warn().Str("tool_name", use.Name).Err(err).Msg("tool input rejected")
		return messages.ToolResultMessage{ToolUseID: use.ID, Content: "Error: " + err.Error(), IsError: true}, nil
	}

	out, err := fn(use.Input)
	if err != nil {
		log.Warn().Str("tool_name", use.Name).Err(err).Msg("tool execution failed")
		return messages.ToolResultMessage{ToolUseID: use.ID, Content: "Error: " + err.Error(), IsError: true}, nil
	}

	log.Debug().
		Str("tool_name", use.Name).
		Int("output_size", len(out)).
		Msg("tool execution succeeded")
	return messages.ToolResultMessage{ToolUseID: use.ID, Content: out}, nil
}
