package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
)

// SpeakerResolver maps opaque speaker ids to display identities by querying
// the user and agent pools
type SpeakerResolver struct {
	users  repositories.UserRepository
	agents repositories.AgentRepository
	logger *zap.Logger
}

// NewSpeakerResolver constructs a resolver over both identity pools
func NewSpeakerResolver(users repositories.UserRepository, agents repositories.AgentRepository, logger *zap.Logger) *SpeakerResolver {
	return &SpeakerResolver{users: users, agents: agents, logger: logger}
}

// Resolve enriches every event with its speaker's display name. Output
// length equals input length, order is preserved, and events whose speaker
// id matches neither pool get the Unknown fallback rather than an error.
func (r *SpeakerResolver) Resolve(ctx context.Context, events []entities.TranscriptEvent) ([]entities.EnrichedTranscriptEvent, error) {
	speakerIDs := distinctSpeakerIDs(events)

	users, err := r.users.FindByIDs(ctx, speakerIDs)
	if err != nil {
		return nil, &ResolutionError{Pool: "user", Err: err}
	}

	agents, err := r.agents.FindByIDs(ctx, speakerIDs)
	if err != nil {
		return nil, &ResolutionError{Pool: "agent", Err: err}
	}

	identities := entities.MergeIdentities(users, agents)

	enriched := make([]entities.EnrichedTranscriptEvent, 0, len(events))
	unknown := 0
	for _, event := range events {
		name := entities.UnknownSpeakerName
		if identity, ok := identities[event.SpeakerID]; ok {
			name = identity.DisplayName()
		} else {
			unknown++
		}

		enriched = append(enriched, entities.EnrichedTranscriptEvent{
			TranscriptEvent: event,
			Speaker:         entities.TranscriptSpeaker{Name: name},
		})
	}

	if r.logger != nil {
		r.logger.Info("✅ Speakers resolved",
			zap.Int("event_count", len(enriched)),
			zap.Int("distinct_speakers", len(speakerIDs)),
			zap.Int("identities_found", len(identities)),
			zap.Int("unknown_events", unknown),
		)
	}

	return enriched, nil
}

// distinctSpeakerIDs returns the unique speaker ids in first-seen order
func distinctSpeakerIDs(events []entities.TranscriptEvent) []string {
	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, event := range events {
		if _, ok := seen[event.SpeakerID]; ok {
			continue
		}
		seen[event.SpeakerID] = struct{}{}
		ids = append(ids, event.SpeakerID)
	}
	return ids
}
