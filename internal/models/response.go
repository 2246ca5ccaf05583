package models

// ErrorBody is the uniform error envelope: every failed request answers
// {"error": "..."} and nothing else.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

type MessageBody struct {
	Message string `json:"message"`
}

type PhotoBody struct {
	Message string `json:"message"`
	Photo   *Photo `json:"photo"`
}

type UpdatedBody struct {
	Message string                 `json:"message"`
	Updated map[string]interface{} `json:"updated"`
}
