package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

type TimeInput struct {
	Timezone string `json:"timezone" jsonschema_description:"The IANA time zone name, e.g. America/Los_Angeles"`
}

var TimeDefinition = Definition{
	Name:        "get_time",
	Description: "Get the current time in a given time zone",
	InputSchema: TimeInputSchema,
	Function:    GetTime,
}

var TimeInputSchema = GenerateSchema[TimeInput]()

// GetTime returns a canned clock reading. Demo capability: no external calls.
func GetTime(input json.RawMessage) (string, error) {
	tz := gjson.GetBytes(input, "timezone")
	if !tz.Exists() || tz.String() == "" {
		return "", errors.New("missing timezone parameter")
	}
	return fmt.Sprintf("Current time in %s: 14:30", tz.String()), nil
}
