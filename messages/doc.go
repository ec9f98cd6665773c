// Package messages defines the conversation data model exchanged with the
// model backend.
//
// A conversation is an ordered, append-only slice of Message values:
//   - UserMessage: plain text from the caller.
//   - AssistantMessage: ordered ContentBlocks produced by the model.
//   - ToolResultMessage: the output of one tool invocation, correlated by id.
//
// Invariants:
//   - The first message of a run is always a UserMessage.
//   - Every ToolUseBlock id is answered by exactly one ToolResultMessage
//     before the next exchange is issued.
package messages
