package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// MediaService reads the gallery collection with the remote-then-fallback
// pipeline. Media has no pagination envelope on the wire.
type MediaService struct {
	api      MediaAPI
	fallback *FallbackService
	store    *Store
	log      *logrus.Entry
}

// NewMediaService creates a media service
func NewMediaService(api MediaAPI, fallback *FallbackService, store *Store) *MediaService {
	return &MediaService{
		api:      api,
		fallback: fallback,
		store:    store,
		log:      logger.Component("media"),
	}
}

// List fetches the media collection, substituting sample items on failure
// or empty results
func (s *MediaService) List(ctx context.Context) ([]models.MediaItem, error) {
	gen := s.store.Media.Begin()

	items, err := s.api.ListMedia(ctx)
	switch {
	case err != nil:
		s.log.WithError(err).Debug("media list fetch failed")
		items = s.fallback.Media(FallbackError)
	case len(items) == 0:
		items = s.fallback.Media(FallbackEmpty)
	}

	for i := range items {
		items[i].Origin = models.OriginRemote
	}

	s.store.Media.Complete(gen, items, nil)

	return items, nil
}
