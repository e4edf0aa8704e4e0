package grpcx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"gomq.dev/merrors"
	"gomq.dev/merrors/kind"
	"gomq.dev/merrors/mapper"
	"gomq.dev/merrors/scope"
)

func TestConvert_AttachesErrorInfo(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	e := merrors.E(kind.HostUnreachable, "no route to peer",
		merrors.WithScopeOption(scope.MustParse("socket.connect")),
		merrors.WithCauseOption(errors.New("dial tcp: network is unreachable")),
	)

	gerr := Convert(m, e, Extras{CorrelationID: "req-42"})
	require.Error(t, gerr)

	st, ok := gstatus.FromError(gerr)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())

	info, ok := ExtractErrorInfo(gerr)
	require.True(t, ok)
	assert.Equal(t, "HOST_UNREACHABLE", info.GetReason())
	assert.Equal(t, Domain, info.GetDomain())
	assert.Equal(t, "socket.connect", info.GetMetadata()["scope"])
	assert.Equal(t, "dial tcp: network is unreachable", info.GetMetadata()["cause"])
	assert.Equal(t, "req-42", info.GetMetadata()["correlation_id"])
}

func TestConvert_RetryAfterAttachesRetryInfo(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	gerr := Convert(m, merrors.New(kind.TryAgain), Extras{RetryAfter: 250 * time.Millisecond})
	st, ok := gstatus.FromError(gerr)
	require.True(t, ok)

	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	require.NotNil(t, retry, "RetryInfo detail must be attached")
	assert.Equal(t, 250*time.Millisecond, retry.GetRetryDelay().AsDuration())
}

func TestConvert_Nil(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	assert.NoError(t, Convert(m, nil, Extras{}))
}

func TestKindFromError(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	gerr := Convert(m, merrors.New(kind.FSMViolation), Extras{})
	k, ok := KindFromError(gerr)
	require.True(t, ok)
	assert.Equal(t, "fsm_violation", k)

	_, ok = KindFromError(errors.New("plain"))
	assert.False(t, ok)
}

func TestUnaryServerInterceptor(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	intercept := UnaryServerInterceptor(m, nil)

	info := &grpc.UnaryServerInfo{FullMethod: "/gomq.v1.Sockets/Bind"}

	t.Run("success passes through", func(t *testing.T) {
		resp, err := intercept(context.Background(), "req", info,
			func(ctx context.Context, req any) (any, error) { return "ok", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("runtime error is converted", func(t *testing.T) {
		_, err := intercept(context.Background(), "req", info,
			func(ctx context.Context, req any) (any, error) {
				return nil, merrors.New(kind.EndpointNotFound).WithMessage("endpoint not bound")
			})
		require.Error(t, err)
		st, ok := gstatus.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		_, ok = ExtractErrorInfo(err)
		assert.True(t, ok)
	})

	t.Run("error with cause is converted", func(t *testing.T) {
		_, err := intercept(context.Background(), "req", info,
			func(ctx context.Context, req any) (any, error) {
				return nil, merrors.New(kind.TryAgain).WithCause(errors.New("hwm reached"))
			})
		st, ok := gstatus.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unavailable, st.Code())
	})

	t.Run("foreign error passes through", func(t *testing.T) {
		sentinel := errors.New("not ours")
		_, err := intercept(context.Background(), "req", info,
			func(ctx context.Context, req any) (any, error) { return nil, sentinel })
		assert.Same(t, sentinel, err)
	})
}
