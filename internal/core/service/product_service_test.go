package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/ports"
)

func latteInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        "Latte",
		Description: "Espresso with steamed milk",
		Price:       3.5,
		Category:    domain.CategoryDrink,
	}
}

func TestProductService_CreateMany_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, zerolog.Nop())

	created, err := svc.CreateMany(context.Background(), []ports.CreateProductInput{
		latteInput(),
		{Name: "Croissant", Description: "Butter croissant", Price: 2.2, Category: domain.CategoryFood},
	})
	if err != nil {
		t.Fatalf("CreateMany returned error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 products, got %d", len(created))
	}
	for _, p := range created {
		if p.ID == 0 {
			t.Fatalf("expected assigned id, got %+v", p)
		}
		if p.IsBestSeller || p.IsRecommended {
			t.Fatalf("flags must default to false: %+v", p)
		}
	}
}

func TestProductService_CreateMany_DuplicateInBatch(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, zerolog.Nop())

	_, err := svc.CreateMany(context.Background(), []ports.CreateProductInput{latteInput(), latteInput()})
	if !errors.Is(err, domain.ErrDuplicateNames) {
		t.Fatalf("expected ErrDuplicateNames, got %v", err)
	}
	if stored, _ := repo.FindAll(context.Background()); len(stored) != 0 {
		t.Fatalf("nothing should be created on a rejected batch, got %d", len(stored))
	}
}

func TestProductService_CreateMany_NameAlreadyStored(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, zerolog.Nop())

	if _, err := svc.CreateMany(context.Background(), []ports.CreateProductInput{latteInput()}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	_, err := svc.CreateMany(context.Background(), []ports.CreateProductInput{
		{Name: "Mocha", Description: "Chocolate espresso", Price: 4.0, Category: domain.CategoryDrink},
		latteInput(),
	})
	if !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	if stored, _ := repo.FindAll(context.Background()); len(stored) != 1 {
		t.Fatalf("all-or-nothing violated: %d products stored", len(stored))
	}
}

func TestProductService_GetAll_UsesCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if _, err := svc.CreateMany(context.Background(), []ports.CreateProductInput{latteInput()}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("create should invalidate the cache")
	}

	first, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cold read should warm the cache")
	}

	// Mutate the store behind the cache's back: warm reads must not see it.
	_ = repo.Delete(context.Background(), first[0].ID)
	second, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("warm read should come from cache")
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	cache := &stubCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	created, _ := svc.CreateMany(context.Background(), []ports.CreateProductInput{latteInput()})
	id := created[0].ID

	price := 4.25
	best := true
	updated, err := svc.Update(context.Background(), id, ports.UpdateProductInput{
		Price:        &price,
		IsBestSeller: &best,
		Images:       []string{"https://cdn.example.com/latte.png"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 4.25 || !updated.IsBestSeller || len(updated.Images) != 1 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Description != "Espresso with steamed milk" {
		t.Fatalf("unset fields must not change: %+v", updated)
	}
	if !updated.UpdatedAt.After(created[0].UpdatedAt) {
		t.Fatalf("updated-at timestamp not refreshed")
	}
	if cache.invalidates < 2 {
		t.Fatalf("update should invalidate the cache")
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 99, ports.UpdateProductInput{}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, zerolog.Nop())

	created, _ := svc.CreateMany(context.Background(), []ports.CreateProductInput{latteInput()})
	if err := svc.Delete(context.Background(), created[0].ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created[0].ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
