package storage

import (
	"context"
	"errors"
	"testing"
)

func TestPreference_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.SetPreference(ctx, "test-key", payload{Name: "hello", Count: 3}); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}

	var got payload
	if err := s.GetPreference(ctx, "test-key", &got); err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if got.Name != "hello" || got.Count != 3 {
		t.Errorf("GetPreference = %+v, want {hello 3}", got)
	}
}

func TestPreference_OverwriteExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetPreference(ctx, "k", "first"); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if err := s.SetPreference(ctx, "k", "second"); err != nil {
		t.Fatalf("SetPreference overwrite: %v", err)
	}

	var got string
	if err := s.GetPreference(ctx, "k", &got); err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if got != "second" {
		t.Errorf("GetPreference = %q, want %q", got, "second")
	}
}

func TestGetPreference_MissingKey(t *testing.T) {
	s := newTestStore(t)

	var got string
	err := s.GetPreference(context.Background(), "does-not-exist", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPreference = %v, want ErrNotFound", err)
	}
}
