package common

// SuccessResponse is the envelope every fieldops endpoint returns on
// success. Mirrors StatusAPIResponse on the device side.
type SuccessResponse struct {
	Status bool        `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Status: true,
		Data:   data,
	}
}
