package tmdb

import (
	"errors"
	"strconv"
)

// Sentinels matching each error class, for use with errors.Is.
var (
	ErrTransport  = errors.New("transport error")
	ErrHTTPStatus = errors.New("http status error")
	ErrParse      = errors.New("parse error")
	ErrProtocol   = errors.New("protocol error")
)

// TransportError wraps a failure to send a request or to read its response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// HTTPStatusError is returned when the server replies with a non-2xx status.
// Envelope holds TMDB's status_code / status_message, if the body contained one.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Envelope   *Status
}

func (e *HTTPStatusError) Error() string {
	msg := "http: " + e.Status
	if e.Status == "" {
		msg = "http: " + strconv.Itoa(e.StatusCode)
	}
	if e.Envelope != nil {
		msg += ": " + e.Envelope.String()
	}
	return msg
}

func (e *HTTPStatusError) Is(target error) bool { return target == ErrHTTPStatus }

type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ProtocolError means the response was valid JSON, but an expected field was missing, had the wrong type
// or held an unexpected value.
type ProtocolError struct {
	Field   string
	Message string
	Status  *Status
}

func (e *ProtocolError) Error() string {
	msg := "protocol: "
	if e.Field != "" {
		msg += "'" + e.Field + "' "
	}
	msg += e.Message
	if e.Status != nil {
		msg += ": " + e.Status.String()
	}
	return msg
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }
