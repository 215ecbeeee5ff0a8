package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

func TestChatService_ThreadIsSymmetric(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.register("alice")
	bob := f.register("bob")

	for _, m := range []struct {
		from, to int64
		text     string
	}{
		{alice.ID, bob.ID, "hi"},
		{bob.ID, alice.ID, "hello"},
		{alice.ID, bob.ID, "shall we?"},
	} {
		if _, err := f.chat.Send(ctx, m.from, m.to, m.text); err != nil {
			t.Fatalf("send %q: %v", m.text, err)
		}
	}

	fromAlice, err := f.chat.Thread(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	fromBob, err := f.chat.Thread(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if fromAlice.Recipient.ID != bob.ID || fromBob.Recipient.ID != alice.ID {
		t.Fatalf("wrong recipients")
	}
	if len(fromAlice.Messages) != 3 || len(fromBob.Messages) != 3 {
		t.Fatalf("expected 3 messages each, got %d and %d", len(fromAlice.Messages), len(fromBob.Messages))
	}
	for i := range fromAlice.Messages {
		if fromAlice.Messages[i].ID != fromBob.Messages[i].ID {
			t.Fatalf("threads differ at %d", i)
		}
	}
	if fromAlice.Messages[0].Message != "hi" || fromAlice.Messages[2].Message != "shall we?" {
		t.Fatalf("messages out of order: %+v", fromAlice.Messages)
	}
}

func TestChatService_ThreadExcludesOtherPairs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.register("alice")
	bob := f.register("bob")
	carol := f.register("carol")

	_, _ = f.chat.Send(ctx, alice.ID, bob.ID, "for bob")
	_, _ = f.chat.Send(ctx, alice.ID, carol.ID, "for carol")

	thread, err := f.chat.Thread(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread.Messages) != 1 || thread.Messages[0].Message != "for bob" {
		t.Fatalf("unexpected thread: %+v", thread.Messages)
	}
}

// leakyChatRepo returns every stored message regardless of the pair asked for.
type leakyChatRepo struct {
	*stubChatRepo
}

func (r leakyChatRepo) Conversation(context.Context, int64, int64) ([]*domain.ChatMessage, error) {
	return r.messages, nil
}

func TestChatService_ThreadDropsForeignMessages(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.register("alice")
	bob := f.register("bob")
	carol := f.register("carol")

	_, _ = f.chat.Send(ctx, alice.ID, bob.ID, "for bob")
	_, _ = f.chat.Send(ctx, carol.ID, bob.ID, "from carol")
	_, _ = f.chat.Send(ctx, bob.ID, alice.ID, "for alice")

	svc := NewChatService(leakyChatRepo{f.chats}, f.users, zerolog.Nop())
	thread, err := svc.Thread(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %+v", thread.Messages)
	}
	for _, m := range thread.Messages {
		if m.Message == "from carol" {
			t.Fatalf("foreign message leaked into thread")
		}
	}
}

func TestChatService_Partners(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.register("alice")
	bob := f.register("bob")
	carol := f.register("carol")
	f.register("dave")

	_, _ = f.chat.Send(ctx, alice.ID, carol.ID, "1")
	_, _ = f.chat.Send(ctx, bob.ID, alice.ID, "2")
	_, _ = f.chat.Send(ctx, alice.ID, bob.ID, "3")

	partners, err := f.chat.Partners(ctx, alice.ID)
	if err != nil {
		t.Fatalf("partners: %v", err)
	}
	if len(partners) != 2 || partners[0].Username != "bob" || partners[1].Username != "carol" {
		t.Fatalf("unexpected partners: %+v", partners)
	}

	none, _ := f.chat.Partners(ctx, 4)
	if len(none) != 0 {
		t.Fatalf("dave has no partners, got %+v", none)
	}
}

func TestChatService_UnknownRecipient(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.register("alice")

	if _, err := f.chat.Thread(ctx, alice.ID, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.chat.Send(ctx, alice.ID, 99, "hello"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(f.chats.messages) != 0 {
		t.Fatalf("no message must be stored")
	}
}

func TestChatService_BlankMessage(t *testing.T) {
	f := newFixture()
	alice := f.register("alice")
	bob := f.register("bob")

	if _, err := f.chat.Send(context.Background(), alice.ID, bob.ID, "   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNotificationService_ListInAppendOrder(t *testing.T) {
	f := newFixture()
	f.register("alice")
	alice, _ := f.users.FindByUsername(context.Background(), "alice")
	f.upload(alice.ID, "P", domain.CategoryRobotics)

	notes, err := NewNotificationService(f.notes).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notes))
	}
	if notes[0].Message != "User 'alice' registered successfully!" || notes[1].Message != "Paper 'P' uploaded successfully!" {
		t.Fatalf("unexpected order: %+v", notes)
	}
}
