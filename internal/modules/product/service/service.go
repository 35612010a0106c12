package service

import (
	"context"
	"errors"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/product/repository"
	"craftvale.gg/communityapi/pkg/apperror"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductIndexer receives the active catalog whenever a reindex runs.
type ProductIndexer interface {
	IndexProducts(products []entity.Product) error
}

type ProductService interface {
	GetStoreCatalog(ctx context.Context, category string, filter commonDto.ListFilter) ([]entity.Product, commonDto.PaginationMeta, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	// RefreshSearchIndex pushes the active catalog to the search index.
	RefreshSearchIndex(ctx context.Context) error
}

type productService struct {
	repo    repository.ProductRepository
	indexer ProductIndexer
}

func NewProductService(repo repository.ProductRepository, indexer ProductIndexer) ProductService {
	return &productService{
		repo:    repo,
		indexer: indexer,
	}
}

func (s *productService) GetStoreCatalog(ctx context.Context, category string, filter commonDto.ListFilter) ([]entity.Product, commonDto.PaginationMeta, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	products, total, err := s.repo.FindActive(ctx, category, filter.Search, limit, (page-1)*limit)
	if err != nil {
		return nil, commonDto.PaginationMeta{}, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	meta := commonDto.PaginationMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       limit,
	}

	return products, meta, nil
}

func (s *productService) RefreshSearchIndex(ctx context.Context) error {
	if s.indexer == nil {
		return nil
	}

	products, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	return s.indexer.IndexProducts(products)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}
