package dto

// ChatRequest is the body of POST /api/chat-with-data.
type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}

// ChatResponse echoes the query back with the canned aggregation the
// keyword matcher selected. Data is always non-nil, possibly empty.
type ChatResponse struct {
	Query   string        `json:"query"`
	Message string        `json:"message"`
	Data    []interface{} `json:"data"`
}
