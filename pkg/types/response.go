package types

import "github.com/angelmondragon/bachelorhub-backend/pkg/pagination"

// Envelope is the body of every API response, success or failure.
type Envelope struct {
	Success    bool             `json:"success"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Data       any              `json:"data,omitempty"`
	Errors     []string         `json:"errors,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Failure(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}
