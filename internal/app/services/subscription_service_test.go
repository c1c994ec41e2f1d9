package services

import (
	"context"
	"testing"

	"github.com/opennotes/backend/internal/app/models/dto"
)

func TestSubscribeAndList(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store)

	req := &dto.SubscribeRequest{UserID: "alice", SubjectID: "phys", Title: "Physics", Code: "PHY", Icon: "atom"}
	if err := svc.Subscribe(context.Background(), req); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	subs, err := svc.GetByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUser returned error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(subs))
	}
	if subs[0].SubjectID != "phys" || subs[0].Title != "Physics" {
		t.Fatalf("subscription = %+v, want subject snapshot", subs[0])
	}
	if subs[0].SubscribedAt.IsZero() {
		t.Error("SubscribedAt not set")
	}
}

func TestSubscribeIsUpsert(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store)

	for i := 0; i < 3; i++ {
		req := &dto.SubscribeRequest{UserID: "alice", SubjectID: "phys", Title: "Physics"}
		if err := svc.Subscribe(context.Background(), req); err != nil {
			t.Fatalf("Subscribe returned error: %v", err)
		}
	}

	subs, err := svc.GetByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUser returned error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d subscriptions after repeat subscribe, want 1", len(subs))
	}
}

func TestGetByUserEmpty(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubscriptionStore())

	subs, err := svc.GetByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetByUser returned error: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("got %d subscriptions, want 0", len(subs))
	}
}
