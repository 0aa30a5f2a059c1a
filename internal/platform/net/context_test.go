package net_test

import (
	"context"
	"testing"

	pnet "copsoq/internal/platform/net"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if pnet.RequestID(ctx) != "" {
		t.Fatalf("empty context has an id")
	}
	if got := pnet.WithRequest(ctx, ""); got != ctx {
		t.Fatalf("empty id should leave ctx untouched")
	}
	if id := pnet.RequestID(pnet.WithRequest(ctx, "abc-123")); id != "abc-123" {
		t.Fatalf("RequestID = %q", id)
	}
}
