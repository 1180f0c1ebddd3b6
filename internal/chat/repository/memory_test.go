package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tecnofit-assistant/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Unseen Thread Initializes Empty", func(t *testing.T) {
		repo := NewMemory(10, time.Minute)

		conv, err := repo.Get(ctx, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conv.ThreadID != "t1" || len(conv.Messages) != 0 || conv.Lead != nil {
			t.Errorf("expected empty conversation, got %+v", conv)
		}
	})

	t.Run("Append Preserves Order", func(t *testing.T) {
		repo := NewMemory(10, time.Minute)

		repo.AppendMessages(ctx, "t1", model.Message{Role: model.RoleUser, Content: "Oi"})
		repo.AppendMessages(ctx, "t1",
			model.Message{Role: model.RoleAssistant, Content: "Olá!"},
			model.Message{Role: model.RoleUser, Content: "Quero contratar"},
		)

		conv, _ := repo.Get(ctx, "t1")
		if len(conv.Messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(conv.Messages))
		}
		want := []string{"Oi", "Olá!", "Quero contratar"}
		for i, w := range want {
			if conv.Messages[i].Content != w {
				t.Errorf("message %d = %q, want %q", i, conv.Messages[i].Content, w)
			}
		}
	})

	t.Run("Snapshot Is Isolated From Store", func(t *testing.T) {
		repo := NewMemory(10, time.Minute)
		repo.AppendMessages(ctx, "t1", model.Message{Role: model.RoleUser, Content: "Oi"})

		conv, _ := repo.Get(ctx, "t1")
		conv.Messages[0].Content = "mutated"
		conv.Messages = append(conv.Messages, model.Message{Role: model.RoleUser, Content: "extra"})

		fresh, _ := repo.Get(ctx, "t1")
		if len(fresh.Messages) != 1 || fresh.Messages[0].Content != "Oi" {
			t.Errorf("store mutated through snapshot: %+v", fresh.Messages)
		}
	})

	t.Run("Lead Set And Overwrite", func(t *testing.T) {
		repo := NewMemory(10, time.Minute)

		repo.SetLead(ctx, "t1", model.Lead{Nome: strPtr("Carlos"), Telefone: strPtr("4199999999")})
		conv, _ := repo.Get(ctx, "t1")
		if conv.Lead == nil || *conv.Lead.Nome != "Carlos" {
			t.Fatalf("expected lead set, got %+v", conv.Lead)
		}

		repo.SetLead(ctx, "t1", model.Lead{Nome: strPtr("Renan"), Email: strPtr("renan@test.com")})
		conv, _ = repo.Get(ctx, "t1")
		if *conv.Lead.Nome != "Renan" {
			t.Errorf("expected lead overwritten, got %+v", conv.Lead)
		}
	})

	t.Run("Threads Are Independent", func(t *testing.T) {
		repo := NewMemory(10, time.Minute)

		repo.AppendMessages(ctx, "a", model.Message{Role: model.RoleUser, Content: "from a"})
		repo.AppendMessages(ctx, "b", model.Message{Role: model.RoleUser, Content: "from b"})

		convA, _ := repo.Get(ctx, "a")
		convB, _ := repo.Get(ctx, "b")
		if convA.Messages[0].Content != "from a" || convB.Messages[0].Content != "from b" {
			t.Errorf("cross-thread contamination: a=%+v b=%+v", convA.Messages, convB.Messages)
		}
	})

	t.Run("Capacity Bound Enforced", func(t *testing.T) {
		repo := NewMemory(5, time.Minute)

		for i := 0; i < 20; i++ {
			repo.AppendMessages(ctx, fmt.Sprintf("t%d", i), model.Message{Role: model.RoleUser, Content: "x"})
		}
		if repo.Len() > 5 {
			t.Errorf("expected at most 5 conversations held, got %d", repo.Len())
		}
	})
}
