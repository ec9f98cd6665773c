// Package tools defines tool contracts and the read-only catalog consulted
// during tool dispatch.
//
// Includes:
//   - Definition: name, description, JSON input schema, capability.
//   - Catalog: exact-name lookup plus schema validation of requested inputs.
//   - GenerateSchema[T](): derive a JSON input schema from Go struct tags.
//   - Demo tools: get_weather, get_time, calculate (canned outputs).
package tools
