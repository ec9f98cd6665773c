package tui

// NewDemo returns a model seeded with a canned execution flow so the UI can
// be reviewed without a live run.
func NewDemo() Model {
	m := New()

	m.Log = []LogEntry{
		{Kind: EntryUserPrompt, Content: "> get all users and update first email"},
		{Kind: EntryUserPrompt, Content: ""},
		{Kind: EntryPlanning, Content: "Planning..."},
		{Kind: EntryDiscovery, Content: "Found: GET /api/users"},
		{Kind: EntryDiscovery, Content: "Found: POST /api/users"},
		{Kind: EntryUserPrompt, Content: ""},
		{Kind: EntryExecutionStart, Content: "Executing:"},
		{Kind: EntryRequestExec, Content: "[1] GET /api/users"},
		{Kind: EntryRequestResult, Content: "    200 OK (145ms)"},
		{Kind: EntryRequestExec, Content: "[2] POST /api/users/1"},
		{Kind: EntryRequestResult, Content: "    200 OK (89ms)"},
	}

	m.Requests = []Request{
		{
			Number:       1,
			Method:       "GET",
			URL:          "/api/users",
			Headers:      [][2]string{{"Content-Type", "application/json"}},
			StatusCode:   200,
			ResponseBody: `[{"id": 1, "email": "old@example.com"}, ...]`,
			DurationMs:   145,
		},
		{
			Number:       2,
			Method:       "POST",
			URL:          "/api/users/1",
			Headers:      [][2]string{{"Content-Type", "application/json"}},
			Body:         "{\n  \"email\": \"new@example.com\"\n}",
			StatusCode:   200,
			ResponseBody: "{\n  \"id\": 1,\n  \"email\": \"new@example.com\"\n}",
			DurationMs:   89,
		},
	}
	m.selected = 1
	return m
}
