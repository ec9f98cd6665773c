package claude_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/petasbytes/cozyreq/internal/claude"
	"github.com/petasbytes/cozyreq/messages"
	"github.com/petasbytes/cozyreq/tools"
)

type capture struct {
	method string
	url    string
	body   []byte
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
		f.captured.body = b
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
		Request:    req,
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

type errTransport struct {
	err error
}

func (e *errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, e.err
}

func newClient(rt http.RoundTripper) *claude.Client {
	return claude.NewClient("test-key", claude.DefaultModel, zerolog.Nop(),
		option.WithHTTPClient(&http.Client{Transport: rt}))
}

// baseResponse is the shared response fixture; tests derive variants with
// sjson.
const baseResponse = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"content": [{"type": "text", "text": "Hi!"}],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 10, "output_tokens": 4}
}`

func TestExchange_EncodesConversationAndRequest(t *testing.T) {
	capReq := &capture{}
	fake := &fakeTransport{respStatus: 200, respBody: []byte(baseResponse), captured: capReq}
	c := newClient(fake)

	conv := []messages.Message{
		messages.UserMessage{Content: "Hello"},
		messages.AssistantMessage{Content: []messages.ContentBlock{
			messages.TextBlock{Text: "Checking."},
			messages.ToolUseBlock{ID: "t1", Name: "get_weather", Input: json.RawMessage(`{"location":"Oslo"}`)},
		}},
		messages.ToolResultMessage{ToolUseID: "t1", Content: "sunny"},
	}

	_, _, err := c.Exchange(context.Background(), "You are helpful.", tools.Registry(), conv)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if capReq.body == nil {
		t.Fatal("no request captured")
	}

	body := string(capReq.body)
	if got := gjson.Get(body, "model").String(); got == "" {
		t.Error("model missing from request")
	}
	if got := gjson.Get(body, "max_tokens").Int(); got != 1024 {
		t.Errorf("max_tokens: want 1024, got %d", got)
	}
	if got := gjson.Get(body, "system.0.text").String(); got != "You are helpful." {
		t.Errorf("system prompt: got %q", got)
	}
	if got := gjson.Get(body, "tools.#").Int(); got != 3 {
		t.Errorf("want 3 tools advertised, got %d", got)
	}
	if got := gjson.Get(body, "tools.0.name").String(); got != "get_weather" {
		t.Errorf("tools.0.name: got %q", got)
	}

	// User turn: plain text.
	if gjson.Get(body, "messages.0.role").String() != "user" {
		t.Errorf("messages.0.role: got %q", gjson.Get(body, "messages.0.role").String())
	}
	if got := gjson.Get(body, "messages.0.content.0.text").String(); got != "Hello" {
		t.Errorf("messages.0 text: got %q", got)
	}

	// Assistant turn: one content item per block, order preserved.
	if gjson.Get(body, "messages.1.role").String() != "assistant" {
		t.Errorf("messages.1.role: got %q", gjson.Get(body, "messages.1.role").String())
	}
	if got := gjson.Get(body, "messages.1.content.0.type").String(); got != "text" {
		t.Errorf("messages.1.content.0.type: got %q", got)
	}
	tu := gjson.Get(body, "messages.1.content.1")
	if tu.Get("type").String() != "tool_use" || tu.Get("id").String() != "t1" ||
		tu.Get("name").String() != "get_weather" || tu.Get("input.location").String() != "Oslo" {
		t.Errorf("unexpected tool_use encoding: %s", tu.Raw)
	}

	// Tool result folds into a user-role turn.
	tr := gjson.Get(body, "messages.2")
	if tr.Get("role").String() != "user" || tr.Get("content.0.type").String() != "tool_result" ||
		tr.Get("content.0.tool_use_id").String() != "t1" {
		t.Errorf("unexpected tool_result encoding: %s", tr.Raw)
	}
}

func TestExchange_DecodesBlocksInOrder(t *testing.T) {
	resp, err := sjson.Set(baseResponse, "stop_reason", "tool_use")
	if err != nil {
		t.Fatal(err)
	}
	resp, err = sjson.SetRaw(resp, "content", `[
		{"type": "text", "text": "Let me check."},
		{"type": "tool_use", "id": "t1", "name": "get_weather", "input": {"location": "Oslo"}},
		{"type": "tool_use", "id": "t2", "name": "get_time", "input": {"timezone": "Europe/Oslo"}}
	]`)
	if err != nil {
		t.Fatal(err)
	}

	fake := &fakeTransport{respStatus: 200, respBody: []byte(resp), captured: &capture{}}
	c := newClient(fake)

	conv := []messages.Message{messages.UserMessage{Content: "Weather in Oslo?"}}
	blocks, stop, err := c.Exchange(context.Background(), "", tools.Registry(), conv)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stop != "tool_use" {
		t.Errorf("stop_reason: want tool_use, got %q", stop)
	}
	if len(blocks) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(blocks))
	}
	if tb, ok := blocks[0].(messages.TextBlock); !ok || tb.Text != "Let me check." {
		t.Errorf("blocks[0]: got %#v", blocks[0])
	}
	tu1, ok := blocks[1].(messages.ToolUseBlock)
	if !ok || tu1.ID != "t1" || tu1.Name != "get_weather" {
		t.Fatalf("blocks[1]: got %#v", blocks[1])
	}
	if got := gjson.GetBytes(tu1.Input, "location").String(); got != "Oslo" {
		t.Errorf("tu1 input location: got %q", got)
	}
	if tu2, ok := blocks[2].(messages.ToolUseBlock); !ok || tu2.ID != "t2" || tu2.Name != "get_time" {
		t.Errorf("blocks[2]: got %#v", blocks[2])
	}
}

func TestExchange_NonSuccessStatusIsAPIError(t *testing.T) {
	body := `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`
	fake := &fakeTransport{respStatus: 429, respBody: []byte(body), captured: &capture{}}
	c := newClient(fake)

	_, _, err := c.Exchange(context.Background(), "", nil, []messages.Message{messages.UserMessage{Content: "hi"}})
	var apiErr *claude.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *claude.APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 429 {
		t.Errorf("status: want 429, got %d", apiErr.Status)
	}
	if !strings.Contains(apiErr.Body, "rate_limit_error") {
		t.Errorf("body missing error payload: %q", apiErr.Body)
	}
}

func TestExchange_NetworkFailureIsTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	c := newClient(&errTransport{err: cause})

	_, _, err := c.Exchange(context.Background(), "", nil, []messages.Message{messages.UserMessage{Content: "hi"}})
	var trErr *claude.TransportError
	if !errors.As(err, &trErr) {
		t.Fatalf("want *claude.TransportError, got %T: %v", err, err)
	}
}

func TestExchange_MalformedBodyIsParseError(t *testing.T) {
	fake := &fakeTransport{respStatus: 200, respBody: []byte("definitely not json"), captured: &capture{}}
	c := newClient(fake)

	_, _, err := c.Exchange(context.Background(), "", nil, []messages.Message{messages.UserMessage{Content: "hi"}})
	var parseErr *claude.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *claude.ParseError, got %T: %v", err, err)
	}
}

func TestExchange_MissingStopReasonIsParseError(t *testing.T) {
	resp, err := sjson.Delete(baseResponse, "stop_reason")
	if err != nil {
		t.Fatal(err)
	}
	fake := &fakeTransport{respStatus: 200, respBody: []byte(resp), captured: &capture{}}
	c := newClient(fake)

	_, _, err = c.Exchange(context.Background(), "", nil, []messages.Message{messages.UserMessage{Content: "hi"}})
	var parseErr *claude.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *claude.ParseError, got %T: %v", err, err)
	}
}
