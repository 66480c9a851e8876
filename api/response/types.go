// Package response writes the JSON envelope every endpoint answers with.
//
//	success: {success: true, data: {...}, message: "...", code: 200, request_id: "..."}
//	failure: {success: false, error: "ERROR_CODE", message: "...", details: [...], code: 4xx/5xx, request_id: "..."}
//
// Internal failures never leak their cause to the client; it only reaches the log.
package response

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type Response struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   any    `json:"details,omitempty"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ListResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Total     int    `json:"total"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}
