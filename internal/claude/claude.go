package claude

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/petasbytes/cozyreq/messages"
	"github.com/petasbytes/cozyreq/tools"
)

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest
const APIVersion = "2023-06-01"

// maxTokens is the fixed per-call generation budget.
const maxTokens = 1024

// Client performs exchanges against the Messages API. The SDK owns the
// endpoint, headers, and serialization; retries are disabled because the
// core performs none.
type Client struct {
	api   anthropic.Client
	model anthropic.Model
	log   zerolog.Logger
}

// NewClient builds a codec client around the injected credential. Extra
// request options follow the credential so tests can swap the transport.
func NewClient(apiKey string, model anthropic.Model, log zerolog.Logger, opts ...option.RequestOption) *Client {
	merged := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   anthropic.NewClient(merged...),
		model: model,
		log:   log,
	}
}

// Exchange sends the full conversation and returns the new assistant
// content blocks with the backend's stop reason. Exactly one request per
// call; every failure is terminal for the exchange.
//
// Failure modes: *TransportError (network), *APIError (non-2xx),
// *ParseError (undecodable payload). Context cancellation surfaces through
// the TransportError chain and is unwrapped by the caller.
func (c *Client) Exchange(ctx context.Context, system string, defs []tools.Definition, conv []messages.Message) ([]messages.ContentBlock, string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  encodeMessages(conv),
		Tools:     encodeTools(defs),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	c.log.Debug().
		Int("message_count", len(conv)).
		Int("tool_count", len(defs)).
		Msg("calling messages api")

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return nil, "", &APIError{Status: apierr.StatusCode, Body: apierr.RawJSON()}
		}
		// A success status with an undecodable body is a parse failure,
		// not a transport one; the SDK wraps the json decode error.
		var synErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &synErr) || errors.As(err, &typeErr) {
			return nil, "", &ParseError{Reason: "undecodable response body: " + err.Error()}
		}
		return nil, "", &TransportError{Err: err}
	}

	blocks, err := decodeContent(msg)
	if err != nil {
		return nil, "", err
	}
	stop := string(msg.StopReason)
	if stop == "" {
		return nil, "", &ParseError{Reason: "response missing stop_reason"}
	}

	c.log.Debug().
		Str("stop_reason", stop).
		Int64("input_tokens", msg.Usage.InputTokens).
		Int64("output_tokens", msg.Usage.OutputTokens).
		Msg("received messages api response")

	return blocks, stop, nil
}
