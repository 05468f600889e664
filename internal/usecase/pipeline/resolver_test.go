package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

type fakeUserRepo struct {
	users map[string]*entities.User
	err   error
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAgentRepo struct {
	agents map[string]*entities.Agent
	err    error
}

func (f *fakeAgentRepo) FindByIDs(ctx context.Context, ids []string) ([]*entities.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.Agent
	for _, id := range ids {
		if a, ok := f.agents[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestResolve_EnrichesFromBothPools(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{
		"u1": {ID: "u1", Name: "Alice"},
	}}
	agents := &fakeAgentRepo{agents: map[string]*entities.Agent{
		"a1": {ID: "a1", Name: "Notetaker"},
	}}

	events := []entities.TranscriptEvent{
		{SpeakerID: "u1", Text: "hello"},
		{SpeakerID: "a1", Text: "noted"},
		{SpeakerID: "u1", Text: "thanks"},
	}

	r := NewSpeakerResolver(users, agents, nil)
	enriched, err := r.Resolve(context.Background(), events)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(enriched) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(enriched))
	}
	if enriched[0].Speaker.Name != "Alice" {
		t.Fatalf("expected Alice, got %q", enriched[0].Speaker.Name)
	}
	if enriched[1].Speaker.Name != "Notetaker" {
		t.Fatalf("expected Notetaker, got %q", enriched[1].Speaker.Name)
	}
	if enriched[2].Text != "thanks" {
		t.Fatalf("order not preserved: %+v", enriched[2])
	}
}

func TestResolve_UnknownSpeakerFallback(t *testing.T) {
	r := NewSpeakerResolver(&fakeUserRepo{}, &fakeAgentRepo{}, nil)

	events := []entities.TranscriptEvent{{SpeakerID: "ghost", Text: "boo"}}
	enriched, err := r.Resolve(context.Background(), events)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if enriched[0].Speaker.Name != entities.UnknownSpeakerName {
		t.Fatalf("expected %q fallback, got %q", entities.UnknownSpeakerName, enriched[0].Speaker.Name)
	}
}

func TestResolve_UserOverridesAgentOnCollision(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{
		"x1": {ID: "x1", Name: "Human"},
	}}
	agents := &fakeAgentRepo{agents: map[string]*entities.Agent{
		"x1": {ID: "x1", Name: "Bot"},
	}}

	r := NewSpeakerResolver(users, agents, nil)
	enriched, err := r.Resolve(context.Background(), []entities.TranscriptEvent{{SpeakerID: "x1"}})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if enriched[0].Speaker.Name != "Human" {
		t.Fatalf("expected user pool to win, got %q", enriched[0].Speaker.Name)
	}
}

func TestResolve_PoolLookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewSpeakerResolver(&fakeUserRepo{err: boom}, &fakeAgentRepo{}, nil)

	_, err := r.Resolve(context.Background(), []entities.TranscriptEvent{{SpeakerID: "u1"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %T", err)
	}
	if resErr.Pool != "user" {
		t.Fatalf("expected user pool failure, got %q", resErr.Pool)
	}
	if !errors.Is(err, boom) {
		t.Fatal("expected wrapped cause to survive")
	}
}
