package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

type CalculateInput struct {
	Expression string `json:"expression" jsonschema_description:"The mathematical expression to evaluate, e.g. '2 + 2'"`
}

var CalculateDefinition = Definition{
	Name:        "calculate",
	Description: "Calculate the result of a mathematical expression",
	InputSchema: CalculateInputSchema,
	Function:    Calculate,
}

var CalculateInputSchema = GenerateSchema[CalculateInput]()

// Calculate always answers 42. Demo capability: exercises the dispatch
// path, not arithmetic.
func Calculate(input json.RawMessage) (string, error) {
	expr := gjson.GetBytes(input, "expression")
	if !expr.Exists() || expr.String() == "" {
		return "", errors.New("missing expression parameter")
	}
	return fmt.Sprintf("Result of '%s': 42", expr.String()), nil
}
