package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/petasbytes/cozyreq/messages"
)

type blockRecord struct {
	Type  string          `json:"type"`
	Text  string          `json:"text,omitempty"`
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

type record struct {
	Role      string        `json:"role"`
	Text      string        `json:"text,omitempty"`
	Content   []blockRecord `json:"content,omitempty"`
	ToolUseID string        `json:"tool_use_id,omitempty"`
	IsError   bool          `json:"is_error,omitempty"`
}

// SaveTranscript writes msgs to path as tagged JSON.
func SaveTranscript(path string, msgs []messages.Message) error {
	recs := make([]record, 0, len(msgs))
	for _, m := range msgs {
		switch msg := m.(type) {
		case messages.UserMessage:
			recs = append(recs, record{Role: "user", Text: msg.Content})
		case messages.AssistantMessage:
			r := record{Role: "assistant"}
			for _, b := range msg.Content {
				switch blk := b.(type) {
				case messages.TextBlock:
					r.Content = append(r.Content, blockRecord{Type: "text", Text: blk.Text})
				case messages.ToolUseBlock:
					r.Content = append(r.Content, blockRecord{Type: "tool_use", ID: blk.ID, Name: blk.Name, Input: blk.Input})
				}
			}
			recs = append(recs, r)
		case messages.ToolResultMessage:
			recs = append(recs, record{Role: "tool_result", Text: msg.Content, ToolUseID: msg.ToolUseID, IsError: msg.IsError})
		}
	}
	b, err := json.MarshalIndent(recs, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadTranscript reads a transcript written by SaveTranscript. A missing
// file is not an error; it loads as an empty history.
func LoadTranscript(path string) ([]messages.Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("transcript %s: invalid JSON", path)
	}

	var msgs []messages.Message
	for _, rec := range gjson.ParseBytes(b).Array() {
		switch role := rec.Get("role").String(); role {
		case "user":
			msgs = append(msgs, messages.UserMessage{Content: rec.Get("text").String()})
		case "assistant":
			var blocks []messages.ContentBlock
			for _, item := range rec.Get("content").Array() {
				switch item.Get("type").String() {
				case "text":
					blocks = append(blocks, messages.TextBlock{Text: item.Get("text").String()})
				case "tool_use":
					var input json.RawMessage
					if raw := item.Get("input").Raw; raw != "" {
						input = json.RawMessage(raw)
					}
					blocks = append(blocks, messages.ToolUseBlock{
						ID:    item.Get("id").String(),
						Name:  item.Get("name").String(),
						Input: input,
					})
				}
			}
			msgs = append(msgs, messages.AssistantMessage{Content: blocks})
		case "tool_result":
			msgs = append(msgs, messages.ToolResultMessage{
				ToolUseID: rec.Get("tool_use_id").String(),
				Content:   rec.Get("text").String(),
				IsError:   rec.Get("is_error").Bool(),
			})
		default:
			return nil, fmt.Errorf("transcript %s: unknown role %q", path, role)
		}
	}
	return msgs, nil
}
