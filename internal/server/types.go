package server

// APIResponse represents the structure of a standard API response.
// Data is omitted when empty.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
