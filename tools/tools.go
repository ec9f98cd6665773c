package tools

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// Capability executes one tool invocation. Input is the raw JSON argument
// value as requested by the model. The returned string becomes the tool
// result content verbatim; a non-nil error is a capability-level failure
// that is surfaced to the model, not to the caller.
//
// Capabilities must be safe for concurrent invocation if the catalog is
// shared between runs.
type Capability func(input json.RawMessage) (string, error)

// Definition pairs a tool descriptor (name, description, input schema,
// advertised to the backend) with the capability that executes it.
type Definition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    Capability
}

// GenerateSchema derives the JSON input schema for T from its struct tags.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}
