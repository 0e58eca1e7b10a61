package client

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/martinvlcek/shoplist-backend/api/routes"
	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/pkg/config"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Latency.Enabled = false
	server := httptest.NewServer(routes.NewRouter(routes.Params{
		Config: cfg,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Store:  shoplist.NewMemoryStore(),
	}))
	t.Cleanup(server.Close)
	return server
}

func TestShoppingListsRoundTrip(t *testing.T) {
	server := testServer(t)
	api := NewShoppingLists(NewTransport(server.URL))
	ctx := context.Background()

	lists, err := api.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("len(lists) = %d, want 3", len(lists))
	}

	created, err := api.Create(ctx, shoplist.CreateInput{Name: "Chata", OwnerID: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 4 || created.Name != "Chata" || created.OwnerID != 2 {
		t.Fatalf("unexpected created list %+v", created)
	}

	archived := true
	updated, err := api.Update(ctx, created.ID, shoplist.Patch{Archived: &archived})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Archived || updated.Name != "Chata" {
		t.Fatalf("patch should merge, got %+v", updated)
	}

	if err := api.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err = api.Get(ctx, created.ID)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.Status != 404 || reqErr.Message != "Not found" {
		t.Fatalf("unexpected error %+v", reqErr)
	}
}

func TestShoppingListsUpdateReplacesExplicitEmptySlices(t *testing.T) {
	server := testServer(t)
	api := NewShoppingLists(NewTransport(server.URL))
	ctx := context.Background()

	updated, err := api.Update(ctx, 1, shoplist.Patch{Members: []shoplist.Member{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Members) != 0 {
		t.Fatalf("explicit empty members should replace, got %+v", updated.Members)
	}
	if len(updated.Items) == 0 {
		t.Fatalf("absent items should be retained, got %+v", updated.Items)
	}
}
