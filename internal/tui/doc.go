// Package tui renders the execution flow of an agent run: the HTTP
// requests the tools performed, an execution log, and a prompt input.
//
// Presentation layer only. It is currently populated with static demo data
// and has no coupling to the agent core beyond rendering message values.
package tui
