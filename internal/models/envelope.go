package models

import "encoding/json"

// Envelope is the uniform response wrapper used by every backend endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
