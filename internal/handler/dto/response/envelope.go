package response

// Envelope is the uniform success/failure wrapper returned by every
// endpoint, independent of the specific operation.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
