package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

type WeatherInput struct {
	Location string `json:"location" jsonschema_description:"The city and state, e.g. San Francisco, CA"`
	Unit     string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit" jsonschema_description:"The unit of temperature, either 'celsius' or 'fahrenheit'"`
}

var WeatherDefinition = Definition{
	Name:        "get_weather",
	Description: "Get the current weather in a given location",
	InputSchema: WeatherInputSchema,
	Function:    GetWeather,
}

var WeatherInputSchema = GenerateSchema[WeatherInput]()

// GetWeather returns a canned forecast. Demo capability: no external calls.
func GetWeather(input json.RawMessage) (string, error) {
	location := gjson.GetBytes(input, "location")
	if !location.Exists() || location.String() == "" {
		return "", errors.New("missing location parameter")
	}
	unit := gjson.GetBytes(input, "unit").String()
	if unit == "" {
		unit = "celsius"
	}
	return fmt.Sprintf("Weather in %s: 15 degrees %s, sunny", location.String(), unit), nil
}
