// Package claude is the wire codec for the Anthropic Messages API: it
// translates the internal conversation model to the request shape, performs
// one blocking exchange per call, and parses the response into content
// blocks plus a stop reason.
//
// The package owns the endpoint contract (fixed version header, fixed token
// budget, no retries) and the wire-level error taxonomy; it holds no
// conversation state.
package claude
