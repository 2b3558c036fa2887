package service

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/events"
)

var allCollections = []events.Collection{
	events.Categories,
	events.Flashcards,
	events.StudyProgress,
	events.Settings,
}

// Subscribe starts watching the user's collections. The returned snapshots
// hold the current state of every collection; later changes arrive on the
// channel until ctx is done.
func (s *Service) Subscribe(ctx context.Context, userID uint) ([]events.Snapshot, <-chan events.Snapshot, error) {
	ch, err := s.broker.Subscribe(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	initial := make([]events.Snapshot, 0, len(allCollections))
	for _, c := range allCollections {
		snap, err := s.snapshot(ctx, userID, c)
		if err != nil {
			return nil, nil, err
		}
		initial = append(initial, snap)
	}
	return initial, ch, nil
}

// publish pushes fresh snapshots of the given collections. The write that
// triggered it already succeeded, so failures are only logged.
func (s *Service) publish(ctx context.Context, userID uint, collections ...events.Collection) {
	for _, c := range collections {
		snap, err := s.snapshot(ctx, userID, c)
		if err != nil {
			s.log.Error("failed to build snapshot", "user_id", userID, "collection", c, "error", err)
			continue
		}
		if err := s.broker.Publish(ctx, snap); err != nil {
			s.log.Error("failed to publish snapshot", "user_id", userID, "collection", c, "error", err)
		}
	}
}

func (s *Service) snapshot(ctx context.Context, userID uint, c events.Collection) (events.Snapshot, error) {
	var (
		data interface{}
		err  error
	)
	switch c {
	case events.Categories:
		data, err = s.repo.ListCategories(ctx, userID)
	case events.Flashcards:
		data, err = s.repo.ListFlashcards(ctx, userID)
	case events.StudyProgress:
		data, err = s.ListProgress(ctx, userID)
	case events.Settings:
		data, err = s.GetAISettings(ctx, userID)
	default:
		return events.Snapshot{}, fmt.Errorf("unknown collection %q", c)
	}
	if err != nil {
		return events.Snapshot{}, err
	}
	return events.NewSnapshot(userID, c, data)
}
