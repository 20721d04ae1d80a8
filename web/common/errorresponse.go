package common

type ErrorResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Status: false,
		Error:  message,
	}
}
