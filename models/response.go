package models

// ActionResponse is the envelope every write action returns. Field error
// keys match the form field identifiers; "_form" carries errors not
// attributable to a single field.
type ActionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    any                 `json:"data,omitempty"`
}
