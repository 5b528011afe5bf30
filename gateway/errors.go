package gateway

import "errors"

// Error kinds surfaced by the gateway. Only the transport layer maps these to
// status codes; everything below the boundary returns wrapped errors.
var (
	ErrUnauthorized       = errors.New("invalid request signature")
	ErrMalformedRequest   = errors.New("malformed interaction payload")
	ErrUnknownInteraction = errors.New("unknown interaction type")
	ErrDispatchFailed     = errors.New("failed to dispatch command")
)
