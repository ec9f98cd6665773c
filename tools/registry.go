package tools

// Registry returns the demo tool definitions wired for the agent.
func Registry() []Definition {
	return []Definition{WeatherDefinition, TimeDefinition, CalculateDefinition}
}
