// Package agent drives the ask-model/execute-tools loop until the model
// stops requesting tools or the caller cancels.
//
// A run owns its conversation exclusively: history is seeded with the
// prompt, grows append-only, and is handed back whole at termination. One
// exchange and one tool batch per iteration; cancellation is cooperative
// and observed at the top of each iteration.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package agent
