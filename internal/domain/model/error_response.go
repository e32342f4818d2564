package model

import "encoding/json"

// ErrorResponse is the body of fallback error answers
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Error      string `json:"error"`
}

func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{StatusCode: statusCode, Error: message}
}

// Body renders the response as {"error": "<message>"}.
func (response ErrorResponse) Body() []byte {
	message, err := json.Marshal(response.Error)
	if err != nil {
		message = []byte(`""`)
	}

	body := make([]byte, 0, len(message)+12)
	body = append(body, `{"error": `...)
	body = append(body, message...)
	return append(body, '}')
}
