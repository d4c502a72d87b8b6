package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"
