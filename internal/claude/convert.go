package claude

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tidwall/gjson"

	"github.com/petasbytes/cozyreq/messages"
	"github.com/petasbytes/cozyreq/tools"
)

// encodeMessages maps the internal conversation onto the wire roles. Tool
// results travel as user-role turns because the protocol knows only
// user/assistant and alternation must hold.
func encodeMessages(conv []messages.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(conv))
	for _, m := range conv {
		switch msg := m.(type) {
		case messages.UserMessage:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case messages.AssistantMessage:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Content))
			for _, b := range msg.Content {
				blocks = append(blocks, encodeBlock(b))
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		case messages.ToolResultMessage:
			out = append(out, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(msg.ToolUseID, msg.Content, msg.IsError),
			))
		}
	}
	return out
}

func encodeBlock(b messages.ContentBlock) anthropic.ContentBlockParamUnion {
	switch blk := b.(type) {
	case messages.TextBlock:
		return anthropic.NewTextBlock(blk.Text)
	case messages.ToolUseBlock:
		return anthropic.NewToolUseBlock(blk.ID, blk.Input, blk.Name)
	}
	return anthropic.ContentBlockParamUnion{}
}

func encodeTools(defs []tools.Definition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, d := range defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        d.Name,
			Description: anthropic.String(d.Description),
			InputSchema: d.InputSchema,
		}})
	}
	return out
}

// decodeContent converts response blocks back into the internal model,
// preserving order. Unknown block kinds are skipped; a tool_use block with
// an unusable input payload is a ParseError.
func decodeContent(msg *anthropic.Message) ([]messages.ContentBlock, error) {
	blocks := make([]messages.ContentBlock, 0, len(msg.Content))
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			blocks = append(blocks, messages.TextBlock{Text: v.Text})
		case anthropic.ToolUseBlock:
			input := json.RawMessage(v.JSON.Input.Raw())
			if len(input) > 0 && !gjson.ValidBytes(input) {
				return nil, &ParseError{Reason: fmt.Sprintf("tool_use %s carries malformed input", v.ID)}
			}
			blocks = append(blocks, messages.ToolUseBlock{ID: v.ID, Name: v.Name, Input: input})
		}
	}
	return blocks, nil
}
