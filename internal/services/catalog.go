package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/cache"
	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

// CatalogService manages the categories, marcas and fallas lookups. Lists
// are served from the cache and dropped from it on every write.
type CatalogService interface {
	List(ctx context.Context, kind models.LookupKind) ([]*models.Lookup, error)
	Get(ctx context.Context, kind models.LookupKind, id uuid.UUID) (*models.Lookup, error)
	Create(ctx context.Context, kind models.LookupKind, req *models.LookupRequest) (*models.Lookup, error)
	Update(ctx context.Context, kind models.LookupKind, id uuid.UUID, req *models.LookupRequest) (*models.Lookup, error)
	Delete(ctx context.Context, kind models.LookupKind, id uuid.UUID) error
}

type catalogService struct {
	repos map[models.LookupKind]repository.LookupRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCatalogService(c cache.Cache, ttl time.Duration, repos ...repository.LookupRepository) CatalogService {
	byKind := make(map[models.LookupKind]repository.LookupRepository, len(repos))
	for _, r := range repos {
		byKind[r.Kind()] = r
	}

	return &catalogService{repos: byKind, cache: c, ttl: ttl}
}

func (s *catalogService) repo(kind models.LookupKind) (repository.LookupRepository, error) {
	r, ok := s.repos[kind]
	if !ok {
		return nil, appErrors.NotFoundError("Unknown catalog: " + string(kind))
	}
	return r, nil
}

func listKey(kind models.LookupKind) string {
	return cache.Key(cache.LookupListPrefix, string(kind))
}

func (s *catalogService) List(ctx context.Context, kind models.LookupKind) ([]*models.Lookup, error) {

	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	items, err := cache.Remember(ctx, s.cache, listKey(kind), s.ttl, repo.List)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch " + string(kind)).WithError(err)
	}

	return items, nil
}

func (s *catalogService) Get(ctx context.Context, kind models.LookupKind, id uuid.UUID) (*models.Lookup, error) {

	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(kind, err, "fetch")
	}

	return item, nil
}

func (s *catalogService) Create(ctx context.Context, kind models.LookupKind, req *models.LookupRequest) (*models.Lookup, error) {

	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	item := &models.Lookup{
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
	}

	if err := repo.Create(ctx, item); err != nil {
		return nil, lookupError(kind, err, "create")
	}

	s.invalidate(ctx, kind)

	return item, nil
}

func (s *catalogService) Update(ctx context.Context, kind models.LookupKind, id uuid.UUID, req *models.LookupRequest) (*models.Lookup, error) {

	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	item := &models.Lookup{
		ID:          id,
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
	}

	if err := repo.Update(ctx, item); err != nil {
		return nil, lookupError(kind, err, "update")
	}

	s.invalidate(ctx, kind)

	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, kind models.LookupKind, id uuid.UUID) error {

	repo, err := s.repo(kind)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return lookupError(kind, err, "delete")
	}

	s.invalidate(ctx, kind)

	return nil
}

func (s *catalogService) invalidate(ctx context.Context, kind models.LookupKind) {
	if err := s.cache.Delete(ctx, listKey(kind)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate catalog cache",
			slog.String("kind", string(kind)), slog.String("error", err.Error()))
	}
}

func lookupError(kind models.LookupKind, err error, action string) error {
	name := kind.Singular()

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(name + " not found").WithError(err)
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError(name + " already exists").WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.BadRequestError(name + " is still in use").WithError(err)
	}

	return appErrors.DatabaseError("Failed to " + action + " " + name).WithError(err)
}
