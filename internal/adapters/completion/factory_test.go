package completion

import (
	"context"
	"testing"
	"time"
)

func TestFactory(t *testing.T) {
	factory := NewFactory()

	t.Run("CreateOpenAIClient", func(t *testing.T) {
		client, err := factory.Create(&ClientConfig{
			Provider: "openai",
			BaseURL:  "https://api.openai.com/v1",
			Timeout:  time.Minute,
		})
		if err != nil {
			t.Fatalf("Failed to create openai client: %v", err)
		}
		defer client.Close()

		if _, ok := client.(*OpenAIClient); !ok {
			t.Errorf("Expected *OpenAIClient, got %T", client)
		}
	})

	t.Run("CreateMockClient", func(t *testing.T) {
		client, err := factory.Create(&ClientConfig{Provider: "MOCK"})
		if err != nil {
			t.Fatalf("Failed to create mock client: %v", err)
		}
		defer client.Close()

		result, err := client.Complete(context.Background(), &Request{
			Messages: []Message{{Role: RoleUser, Content: "1+1"}},
		})
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if result.Text != MockResponseText {
			t.Errorf("Text mismatch: got %q, want %q", result.Text, MockResponseText)
		}
	})

	t.Run("MissingBaseURL", func(t *testing.T) {
		if _, err := factory.Create(&ClientConfig{Provider: "openai"}); err == nil {
			t.Error("Expected error for missing base URL")
		}
	})

	t.Run("UnsupportedProvider", func(t *testing.T) {
		if _, err := factory.Create(&ClientConfig{Provider: "bard"}); err == nil {
			t.Error("Expected error for unsupported provider")
		}
	})

	t.Run("NilConfig", func(t *testing.T) {
		if _, err := factory.Create(nil); err == nil {
			t.Error("Expected error for nil config")
		}
	})
}

func TestMockClient(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsRequests", func(t *testing.T) {
		mock := NewMockClient("42")
		req := &Request{
			Model:    "gpt-4o-mini",
			Messages: []Message{{Role: RoleUser, Content: "6*7"}},
		}

		result, err := mock.Complete(ctx, req)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if result.Text != "42" {
			t.Errorf("Expected 42, got %q", result.Text)
		}

		req.Messages[0].Content = "mutated"
		recorded := mock.Requests()
		if len(recorded) != 1 || mock.Calls() != 1 {
			t.Fatalf("Expected 1 recorded request, got %d", len(recorded))
		}
		if recorded[0].Messages[0].Content != "6*7" {
			t.Errorf("Recorded request was not copied: %q", recorded[0].Messages[0].Content)
		}
	})

	t.Run("FailsWithConfiguredError", func(t *testing.T) {
		want := NewError(KindNetwork, 0, "", context.DeadlineExceeded)
		mock := NewFailingMockClient(want)

		_, err := mock.Complete(ctx, &Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
		if err != want {
			t.Errorf("Expected configured error, got %v", err)
		}
	})

	t.Run("HonoursCancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		mock := NewMockClient("42")
		_, err := mock.Complete(cancelled, &Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
		if !IsNetwork(err) {
			t.Errorf("Expected network error, got %v", err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		mock := NewMockClient("42")
		if err := mock.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if !mock.Closed() {
			t.Error("Expected mock to be closed")
		}
	})
}
