package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrUserNotFound reports that the server knows no tasks for the requested
// user. It is a remote-reported condition, distinct from any transport fault.
var ErrUserNotFound = errors.New("user not found")

// TransportError wraps failures of the underlying connection: connection
// refused, deadline exceeded, stream resets. It is never returned for
// conditions the server reported about the request itself.
type TransportError struct {
	Op   string
	Code codes.Code
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s (%s): %v", e.Op, e.Code, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError wraps a failure the server reported that is neither not-found
// nor a transport fault, such as an internal server error.
type RemoteError struct {
	Op   string
	Code codes.Code
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error during %s (%s): %v", e.Op, e.Code, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// DecodeError reports a message that arrived intact but violates the task
// contract. It is fatal to the current request only.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// classifyRPCError sorts an error returned by a gRPC call into the client's
// error taxonomy. The three outcomes a caller must distinguish (decoded
// value, remote not-found, transport fault) are never conflated.
func classifyRPCError(op string, err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return &TransportError{Op: op, Code: codes.Unknown, Err: err}
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrUserNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.Aborted, codes.ResourceExhausted:
		return &TransportError{Op: op, Code: st.Code(), Err: err}
	default:
		return &RemoteError{Op: op, Code: st.Code(), Err: err}
	}
}
