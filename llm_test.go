package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyProviderError(t *testing.T) {
	cases := []struct {
		err  error
		want providerErrorKind
	}{
		{nil, provErrNone},
		{errEmptyReply, provErrEmpty},
		{fmt.Errorf("chat completion: %w", errEmptyReply), provErrEmpty},
		{errors.New("401 Unauthorized"), provErrAuth},
		{errors.New("invalid API key provided"), provErrAuth},
		{errors.New("authentication failed"), provErrAuth},
		{errors.New("dial tcp: connection refused"), provErrConnection},
		{errors.New("context deadline exceeded (timeout)"), provErrConnection},
		{errors.New("no such host"), provErrConnection},
		{errors.New("no response received"), provErrEmpty},
		{errors.New("status 500: internal server error"), provErrOther},
	}
	for _, c := range cases {
		if got := classifyProviderError(c.err); got != c.want {
			t.Errorf("classify(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestProviderErrorTitles(t *testing.T) {
	if provErrAuth.title() != "API Key Error" {
		t.Fatalf("auth title = %q", provErrAuth.title())
	}
	if provErrConnection.title() != "Connection Error" {
		t.Fatalf("connection title = %q", provErrConnection.title())
	}
	if provErrEmpty.title() != "Empty Response" {
		t.Fatalf("empty title = %q", provErrEmpty.title())
	}
	if provErrOther.title() != "Request Failed" {
		t.Fatalf("other title = %q", provErrOther.title())
	}
	for _, k := range []providerErrorKind{provErrAuth, provErrConnection, provErrEmpty, provErrOther} {
		if k.hint() == "" {
			t.Errorf("kind %v has empty hint", k)
		}
	}
}
