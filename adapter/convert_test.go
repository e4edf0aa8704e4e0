package adapter

import (
	"errors"
	"reflect"
	"testing"

	"gomq.dev/merrors"
	"gomq.dev/merrors/apis"
	"gomq.dev/merrors/kind"
	"gomq.dev/merrors/scope"
	"google.golang.org/grpc/codes"
)

func TestToDescriptor(t *testing.T) {
	inner := errors.New("dial tcp 10.0.0.7:5555: connection refused")
	e := merrors.E(kind.ConnectionRefused, "cannot reach peer",
		merrors.WithScopeOption(scope.MustParse("socket.connect")),
		merrors.WithCauseOption(inner),
	)
	st := apis.Status{HTTP: 502, GRPC: codes.Unavailable}

	d := ToDescriptor(e, st)
	want := apis.ErrorDescriptor{
		Kind:       "connection_refused",
		Scope:      "socket.connect",
		HTTPStatus: 502,
		GRPCCode:   int(codes.Unavailable),
		Message:    "cannot reach peer",
		Cause:      []string{inner.Error()},
	}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("ToDescriptor mismatch:\n got %+v\nwant %+v", d, want)
	}
}

func TestToDescriptor_NilAndNoCause(t *testing.T) {
	if d := ToDescriptor(nil, apis.Status{}); !reflect.DeepEqual(d, apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must yield zero descriptor, got %+v", d)
	}
	d := ToDescriptor(merrors.New(kind.TryAgain), apis.Status{HTTP: 503, GRPC: codes.Unavailable})
	if d.Cause != nil {
		t.Fatalf("no cause expected, got %v", d.Cause)
	}
}

func TestToView_OmitsCause(t *testing.T) {
	e := merrors.Wrap(errors.New("boom"), "send failed").
		WithScope(scope.MustParse("socket.send"))
	v := ToView(e)
	if v.Kind == "" || v.Scope != "socket.send" || v.Message != "send failed" {
		t.Fatalf("unexpected view: %+v", v)
	}
	// the view type has no cause field at all; make sure nil input is safe too
	if v2 := ToView(nil); v2 != (apis.ErrorView{}) {
		t.Fatalf("nil error must yield zero view, got %+v", v2)
	}
}
