// Package memory persists finished run transcripts.
//
// The agent core returns the conversation and forgets it; keeping a copy
// across invocations is the caller's concern and lives here. All three
// message kinds are stored, tool blocks included.
package memory
