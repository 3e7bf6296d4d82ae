package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/taskora/client-go/application/catalog"
	"github.com/taskora/client-go/cmd/config"
	cachemocks "github.com/taskora/client-go/mocks/repository/cache"
	apimocks "github.com/taskora/client-go/mocks/thirdparty/backendapi"
	"github.com/taskora/client-go/model"
)

func newCatalogApp(api *apimocks.Client, cache *cachemocks.Repository) catalog.CatalogApp {
	cfg := &config.Config{Catalog: config.CatalogConfig{CacheTTL: 5 * time.Minute}}
	return catalog.NewCatalogApp(cfg, api, cache)
}

func TestCatalogApp_ListServices(t *testing.T) {
	t.Run("cache hit skips the backend", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewRepository(t)
		cache.
			On("GetJSON", mock.Anything, "catalog:services", mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(*[]model.Service)
				*out = []model.Service{{ID: 1, Title: "plumbing"}}
			}).
			Return(true, nil).
			Once()

		app := newCatalogApp(api, cache)
		services, err := app.ListServices(context.Background())
		if err != nil {
			t.Fatalf("ListServices() error = %v", err)
		}
		if len(services) != 1 || services[0].Title != "plumbing" {
			t.Fatalf("services = %+v, want the cached listing", services)
		}
	})

	t.Run("cache miss fetches and populates", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewRepository(t)
		cache.
			On("GetJSON", mock.Anything, "catalog:services", mock.Anything).
			Return(false, nil).
			Once()
		api.
			On("ListServices", mock.Anything).
			Return([]model.Service{{ID: 2, Title: "electrics"}}, nil).
			Once()
		cache.
			On("SetJSON", mock.Anything, "catalog:services", mock.Anything, 5*time.Minute).
			Return(nil).
			Once()

		app := newCatalogApp(api, cache)
		services, err := app.ListServices(context.Background())
		if err != nil {
			t.Fatalf("ListServices() error = %v", err)
		}
		if len(services) != 1 || services[0].ID != 2 {
			t.Fatalf("services = %+v, want the backend listing", services)
		}
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewRepository(t)
		cache.
			On("GetJSON", mock.Anything, "catalog:services", mock.Anything).
			Return(false, nil).
			Once()
		api.
			On("ListServices", mock.Anything).
			Return([]model.Service{{ID: 2}}, nil).
			Once()
		cache.
			On("SetJSON", mock.Anything, "catalog:services", mock.Anything, 5*time.Minute).
			Return(errors.New("redis down")).
			Once()

		app := newCatalogApp(api, cache)
		if _, err := app.ListServices(context.Background()); err != nil {
			t.Fatalf("ListServices() error = %v", err)
		}
	})

	t.Run("backend failure surfaces an error", func(t *testing.T) {
		api := apimocks.NewClient(t)
		cache := cachemocks.NewRepository(t)
		cache.
			On("GetJSON", mock.Anything, "catalog:services", mock.Anything).
			Return(false, nil).
			Once()
		api.
			On("ListServices", mock.Anything).
			Return(nil, errors.New("backend down")).
			Once()

		app := newCatalogApp(api, cache)
		if _, err := app.ListServices(context.Background()); err == nil {
			t.Fatal("ListServices() expected error")
		}
	})
}

func TestCatalogApp_ListRegions(t *testing.T) {
	api := apimocks.NewClient(t)
	cache := cachemocks.NewRepository(t)
	cache.
		On("GetJSON", mock.Anything, "catalog:regions", mock.Anything).
		Return(false, nil).
		Once()
	api.
		On("ListRegions", mock.Anything).
		Return([]model.Region{{ID: 1, Name: "North"}}, nil).
		Once()
	cache.
		On("SetJSON", mock.Anything, "catalog:regions", mock.Anything, 5*time.Minute).
		Return(nil).
		Once()

	app := newCatalogApp(api, cache)
	regions, err := app.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("ListRegions() error = %v", err)
	}
	if len(regions) != 1 || regions[0].Name != "North" {
		t.Fatalf("regions = %+v, want the backend listing", regions)
	}
}
