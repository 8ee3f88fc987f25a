package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"katcheri/internal/logger"
	"katcheri/internal/models"
)

// NewsService reads the news collection with the same remote-then-fallback
// pipeline as events.
type NewsService struct {
	api      NewsAPI
	fallback *FallbackService
	store    *Store
	log      *logrus.Entry
}

// NewNewsService creates a news service
func NewNewsService(api NewsAPI, fallback *FallbackService, store *Store) *NewsService {
	return &NewsService{
		api:      api,
		fallback: fallback,
		store:    store,
		log:      logger.Component("news"),
	}
}

// List fetches the news collection, substituting sample posts on failure
// or empty results
func (s *NewsService) List(ctx context.Context, page int) ([]models.NewsPost, models.Pagination, error) {
	gen := s.store.News.Begin()

	payload, err := s.api.ListNews(ctx, page)
	switch {
	case err != nil:
		s.log.WithError(err).Debug("news list fetch failed")
		payload = s.fallback.News(FallbackError, page)
	case len(payload.Posts) == 0:
		payload = s.fallback.News(FallbackEmpty, page)
	}

	for i := range payload.Posts {
		payload.Posts[i].Origin = models.OriginRemote
	}

	pagination := payload.Pagination
	s.store.News.Complete(gen, payload.Posts, &pagination)

	return payload.Posts, pagination, nil
}

// GetBySlug fetches a single news post, falling back to the substitute
// dataset by slug; an unmatched slug surfaces the original failure.
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*models.NewsPost, error) {
	post, err := s.api.GetNewsPost(ctx, slug)
	if err != nil {
		substitute, ok := s.fallback.NewsBySlug(slug)
		if !ok {
			return nil, err
		}
		post = substitute
	}

	post.Origin = models.OriginRemote
	s.store.SetCurrentPost(post)
	return post, nil
}
