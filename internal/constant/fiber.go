package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Request-ID"
)
