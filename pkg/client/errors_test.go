package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyRPCError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classifyRPCError("GetUserStats", nil))
	})

	t.Run("NotFound maps to ErrUserNotFound", func(t *testing.T) {
		err := classifyRPCError("GetUserStats", status.Error(codes.NotFound, "user ghost not found"))
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("transport faults map to TransportError", func(t *testing.T) {
		for _, code := range []codes.Code{
			codes.Unavailable,
			codes.DeadlineExceeded,
			codes.Canceled,
			codes.Aborted,
			codes.ResourceExhausted,
		} {
			err := classifyRPCError("GetTasksForUser", status.Error(code, "boom"))
			var transport *TransportError
			require.ErrorAs(t, err, &transport, "code %s", code)
			assert.Equal(t, code, transport.Code)
			assert.NotErrorIs(t, err, ErrUserNotFound)
		}
	})

	t.Run("server-side failures map to RemoteError", func(t *testing.T) {
		for _, code := range []codes.Code{codes.Internal, codes.InvalidArgument, codes.Unimplemented} {
			err := classifyRPCError("GetUserStats", status.Error(code, "boom"))
			var remote *RemoteError
			require.ErrorAs(t, err, &remote, "code %s", code)
			assert.Equal(t, code, remote.Code)
			assert.NotErrorIs(t, err, ErrUserNotFound)
		}
	})

	t.Run("non-status errors are transport faults", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := classifyRPCError("GetTasksForUser", cause)
		var transport *TransportError
		require.ErrorAs(t, err, &transport)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("taxonomy branches never overlap", func(t *testing.T) {
		notFound := classifyRPCError("GetUserStats", status.Error(codes.NotFound, "x"))
		var transport *TransportError
		var remote *RemoteError
		assert.False(t, errors.As(notFound, &transport))
		assert.False(t, errors.As(notFound, &remote))
	})
}
