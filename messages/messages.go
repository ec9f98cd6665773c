package messages

import "encoding/json"

// Message is one turn in the conversation history.
type Message interface {
	message()
}

// UserMessage is plain text contributed by the human caller.
type UserMessage struct {
	Content string
}

func (UserMessage) message() {}

// AssistantMessage is an ordered sequence of content blocks produced by the
// model in a single turn.
type AssistantMessage struct {
	Content []ContentBlock
}

func (AssistantMessage) message() {}

// ToolResultMessage carries the textual output of executing one requested
// tool. ToolUseID correlates it with the ToolUseBlock that requested the
// execution. IsError marks capability-level failures; the run continues
// either way.
type ToolResultMessage struct {
	ToolUseID string
	Content   string
	IsError   bool
}

func (ToolResultMessage) message() {}

// ContentBlock is one item within an assistant turn.
type ContentBlock interface {
	contentBlock()
}

// TextBlock is free text.
type TextBlock struct {
	Text string
}

func (TextBlock) contentBlock() {}

// ToolUseBlock is a request to execute a named tool. ID is assigned by the
// backend and is unique within the turn. Input is the raw JSON argument
// value; it is passed through to the capability unmodified and never
// interpreted here.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input json.RawMessage
}

func (ToolUseBlock) contentBlock() {}

// ToolUses returns the tool-use blocks of m in block order.
func (m AssistantMessage) ToolUses() []ToolUseBlock {
	var uses []ToolUseBlock
	for _, b := range m.Content {
		if tu, ok := b.(ToolUseBlock); ok {
			uses = append(uses, tu)
		}
	}
	return uses
}

// Text joins the text blocks of m with newlines. Tool-use blocks are
// skipped.
func (m AssistantMessage) Text() string {
	var out string
	for _, b := range m.Content {
		tb, ok := b.(TextBlock)
		if !ok || tb.Text == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += tb.Text
	}
	return out
}
