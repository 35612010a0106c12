package service

import (
	"context"
	"errors"
	"testing"

	"craftvale.gg/communityapi/internal/entity"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeProductRepo struct {
	findActiveFunc    func(ctx context.Context, category, search string, limit, offset int) ([]entity.Product, int64, error)
	findAllActiveFunc func(ctx context.Context) ([]entity.Product, error)
}

func (f *fakeProductRepo) FindActive(ctx context.Context, category, search string, limit, offset int) ([]entity.Product, int64, error) {
	if f.findActiveFunc == nil {
		return nil, 0, nil
	}
	return f.findActiveFunc(ctx, category, search, limit, offset)
}

func (f *fakeProductRepo) FindAllActive(ctx context.Context) ([]entity.Product, error) {
	if f.findAllActiveFunc == nil {
		return nil, nil
	}
	return f.findAllActiveFunc(ctx)
}

func (f *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeProductIndexer struct {
	indexed [][]entity.Product
	err     error
}

func (f *fakeProductIndexer) IndexProducts(products []entity.Product) error {
	f.indexed = append(f.indexed, products)
	return f.err
}

func TestRefreshSearchIndex(t *testing.T) {
	catalog := []entity.Product{
		{ID: uuid.New(), Name: "VIP Rank", Slug: "vip-rank"},
		{ID: uuid.New(), Name: "Elytra Kit", Slug: "elytra-kit"},
	}

	t.Run("pushes the active catalog to the indexer", func(t *testing.T) {
		repo := &fakeProductRepo{
			findAllActiveFunc: func(ctx context.Context) ([]entity.Product, error) {
				return catalog, nil
			},
		}
		indexer := &fakeProductIndexer{}
		svc := NewProductService(repo, indexer)

		if err := svc.RefreshSearchIndex(context.Background()); err != nil {
			t.Fatalf("RefreshSearchIndex: %v", err)
		}
		if len(indexer.indexed) != 1 {
			t.Fatalf("indexer called %d times, want 1", len(indexer.indexed))
		}
		if got := indexer.indexed[0]; len(got) != 2 || got[0].Slug != "vip-rank" {
			t.Errorf("indexed catalog = %v, want the active rows", got)
		}
	})

	t.Run("store errors propagate", func(t *testing.T) {
		storeErr := errors.New("store unreachable")
		repo := &fakeProductRepo{
			findAllActiveFunc: func(ctx context.Context) ([]entity.Product, error) {
				return nil, storeErr
			},
		}
		indexer := &fakeProductIndexer{}
		svc := NewProductService(repo, indexer)

		if err := svc.RefreshSearchIndex(context.Background()); !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want %v", err, storeErr)
		}
		if len(indexer.indexed) != 0 {
			t.Errorf("indexer called %d times, want 0", len(indexer.indexed))
		}
	})

	t.Run("no indexer is a no-op", func(t *testing.T) {
		repo := &fakeProductRepo{
			findAllActiveFunc: func(ctx context.Context) ([]entity.Product, error) {
				t.Error("store should not be read without an indexer")
				return nil, nil
			},
		}
		svc := NewProductService(repo, nil)

		if err := svc.RefreshSearchIndex(context.Background()); err != nil {
			t.Errorf("RefreshSearchIndex: %v", err)
		}
	})
}

func TestGetStoreCatalogPagination(t *testing.T) {
	repo := &fakeProductRepo{
		findActiveFunc: func(ctx context.Context, category, search string, limit, offset int) ([]entity.Product, int64, error) {
			if limit != defaultPageSize || offset != 0 {
				t.Errorf("limit/offset = %d/%d, want %d/0", limit, offset, defaultPageSize)
			}
			return []entity.Product{{Name: "VIP Rank"}}, 41, nil
		},
	}
	svc := NewProductService(repo, nil)

	products, meta, err := svc.GetStoreCatalog(context.Background(), "", commonDto.ListFilter{})
	if err != nil {
		t.Fatalf("GetStoreCatalog: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if meta.CurrentPage != 1 || meta.TotalPages != 3 || meta.TotalItems != 41 {
		t.Errorf("meta = %+v, want page 1 of 3 over 41 items", meta)
	}
}
