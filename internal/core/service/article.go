package service

import (
	"context"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/MikeRez0/checkout/internal/core/port"
	"github.com/MikeRez0/checkout/internal/core/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ArticleService struct {
	repo      port.ArticleRepository
	validator *validation.Validator
	logger    *zap.Logger
}

func NewArticleService(repo port.ArticleRepository, validator *validation.Validator,
	logger *zap.Logger) (*ArticleService, error) {
	return &ArticleService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}, nil
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	ctx, span := tracer.Start(ctx, "ArticleService.ListArticles")
	defer span.End()

	list, err := s.repo.ListArticles(ctx)
	if err != nil {
		s.logger.Error("List articles", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Found articles", zap.Int("count", len(list)))
	return list, nil
}

// ListArticlesByIDs returns the existing articles among req.IDs. Unknown ids
// are left out of the result.
func (s *ArticleService) ListArticlesByIDs(ctx context.Context, req domain.MultipleIDRequest) ([]*domain.Article, error) {
	ctx, span := tracer.Start(ctx, "ArticleService.ListArticlesByIDs")
	defer span.End()

	if err := checkRequest(s.validator, s.logger, req); err != nil {
		return nil, err
	}

	list, err := s.repo.ListArticlesByIDs(ctx, distinctIDs(req.IDs))
	if err != nil {
		s.logger.Error("List articles by ids", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Found articles by ids",
		zap.Int64s("ids", req.IDs), zap.Int("count", len(list)))
	return list, nil
}

// CreateArticles stores every request as a new article. An empty input
// creates nothing and returns a nil slice.
func (s *ArticleService) CreateArticles(ctx context.Context, reqs []domain.CreateArticleRequest) ([]*domain.Article, error) {
	ctx, span := tracer.Start(ctx, "ArticleService.CreateArticles")
	defer span.End()
	span.SetAttributes(attribute.Int("articles.count", len(reqs)))

	if len(reqs) == 0 {
		return nil, nil
	}

	if err := checkRequest(s.validator, s.logger, domain.CreateArticlesRequest{Articles: reqs}); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	articles := make([]*domain.Article, 0, len(reqs))
	for _, r := range reqs {
		articles = append(articles, &domain.Article{Name: r.Name, Price: r.Price})
	}

	created, err := s.repo.CreateArticles(ctx, articles)
	if err != nil {
		s.logger.Error("Create articles", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Created articles", zap.Int("count", len(created)))
	return created, nil
}

func (s *ArticleService) CreateArticle(ctx context.Context, req domain.CreateArticleRequest) (*domain.Article, error) {
	created, err := s.CreateArticles(ctx, []domain.CreateArticleRequest{req})
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, nil
	}
	return created[0], nil
}
