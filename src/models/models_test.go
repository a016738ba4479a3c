package models

import (
	"context"
	"testing"
)

func TestDummyProviderDefaultPrefix(t *testing.T) {
	provider := NewDummyProvider("")
	resp, err := provider.Generate(context.Background(), "line1\nline2")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if resp != "Dummy report: line2" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestDummyProviderUsesLastNonEmptyLine(t *testing.T) {
	provider := NewDummyProvider("Prefix:")
	resp, err := provider.Generate(context.Background(), "first\n\nsecond\n  \nthird")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if resp != "Prefix: third" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestDummyProviderHandlesEmptyPrompt(t *testing.T) {
	provider := NewDummyProvider("Prefix")
	resp, err := provider.Generate(context.Background(), "\n\n\n")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if resp != "Prefix <empty prompt>" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestNewProviderErrorsOnUnknownProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), "unknown", "model"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewProviderBuildsDummy(t *testing.T) {
	provider, err := NewProvider(context.Background(), "dummy", "")
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if _, ok := provider.(*DummyProvider); !ok {
		t.Fatalf("expected a DummyProvider, got %T", provider)
	}
}
