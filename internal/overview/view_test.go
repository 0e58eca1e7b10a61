package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/internal/view"
)

type stubResource struct {
	listFn   func(ctx context.Context) ([]shoplist.List, error)
	createFn func(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error)
	updateFn func(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error)
	removeFn func(ctx context.Context, id int) error
}

func (s stubResource) List(ctx context.Context) ([]shoplist.List, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return shoplist.SeedLists(), nil
}

func (s stubResource) Create(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return shoplist.List{}, errors.New("not implemented")
}

func (s stubResource) Update(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, patch)
	}
	return shoplist.List{}, errors.New("not implemented")
}

func (s stubResource) Remove(ctx context.Context, id int) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, id)
	}
	return errors.New("not implemented")
}

func loadedSession(t *testing.T, api Resource) *Session {
	t.Helper()
	s := NewSession(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestLoadTransitionsToReady(t *testing.T) {
	s := NewSession(stubResource{})
	if s.Status() != view.StatusLoading {
		t.Fatalf("initial status = %q", s.Status())
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Status() != view.StatusReady {
		t.Fatalf("status = %q, want ready", s.Status())
	}
	if len(s.Lists()) != 3 {
		t.Fatalf("len(lists) = %d, want 3", len(s.Lists()))
	}
}

func TestLoadFailureIsRetryable(t *testing.T) {
	calls := 0
	api := stubResource{
		listFn: func(ctx context.Context) ([]shoplist.List, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("network down")
			}
			return shoplist.SeedLists(), nil
		},
	}

	s := NewSession(api)
	if err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected first load to fail")
	}
	if s.Status() != view.StatusError || s.Err() == nil {
		t.Fatalf("status = %q err = %v", s.Status(), s.Err())
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Status() != view.StatusReady || s.Err() != nil {
		t.Fatalf("retry left status = %q err = %v", s.Status(), s.Err())
	}
}

func TestFilteredByArchived(t *testing.T) {
	s := loadedSession(t, stubResource{})

	s.SetFilter(FilterArchived)
	archived := s.Filtered()
	if len(archived) != 1 || archived[0].ID != 3 {
		t.Fatalf("archived filter returned %v", archived)
	}

	s.SetFilter(FilterActive)
	active := s.Filtered()
	if len(active) != 2 {
		t.Fatalf("active filter returned %d lists", len(active))
	}

	s.SetFilter(FilterAll)
	if len(s.Filtered()) != 3 {
		t.Fatalf("all filter should return everything")
	}
}

func TestCreateAppendsAndClearsDraft(t *testing.T) {
	var got shoplist.CreateInput
	api := stubResource{
		createFn: func(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error) {
			got = input
			list := input.Normalize()
			list.ID = 4
			return list, nil
		},
	}

	s := loadedSession(t, api)
	s.SetCurrentUser(2)
	s.SetDraftName("  Chata  ")

	if err := s.Create(context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if got.Name != "Chata" || got.OwnerID != 2 || got.Archived {
		t.Fatalf("unexpected payload %+v", got)
	}
	if len(got.Members) != 1 || got.Members[0].ID != 2 || got.Members[0].Name != "Petr" {
		t.Fatalf("creator should be the sole member, got %+v", got.Members)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("items should be an explicit empty list, got %+v", got.Items)
	}
	if len(s.Lists()) != 4 {
		t.Fatalf("created list not appended")
	}
	if s.DraftName() != "" {
		t.Fatalf("draft not cleared, got %q", s.DraftName())
	}
}

func TestCreateNoOpForVisitorAndBlankDraft(t *testing.T) {
	calls := 0
	api := stubResource{
		createFn: func(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error) {
			calls++
			return shoplist.List{}, nil
		},
	}

	s := loadedSession(t, api)

	s.SetCurrentUser(shoplist.AnonymousUserID)
	s.SetDraftName("Chata")
	if err := s.Create(context.Background()); err != nil {
		t.Fatalf("visitor create: %v", err)
	}

	s.SetCurrentUser(1)
	s.SetDraftName("   ")
	if err := s.Create(context.Background()); err != nil {
		t.Fatalf("blank create: %v", err)
	}

	if calls != 0 {
		t.Fatalf("no-op creates should not reach the network, got %d calls", calls)
	}
	if len(s.Lists()) != 3 {
		t.Fatalf("lists changed on a no-op create")
	}
}

func TestDeleteRequiresOwnershipAndConfirmation(t *testing.T) {
	removed := 0
	api := stubResource{
		removeFn: func(ctx context.Context, id int) error {
			removed++
			return nil
		},
	}

	s := loadedSession(t, api)

	// list 2 belongs to Petr; Alena is signed in
	if err := s.Delete(context.Background(), 2, true); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if removed != 0 {
		t.Fatalf("refused delete must not reach the network")
	}

	if err := s.Delete(context.Background(), 1, false); err != nil {
		t.Fatalf("unconfirmed delete: %v", err)
	}
	if removed != 0 || len(s.Lists()) != 3 {
		t.Fatalf("unconfirmed delete must be a no-op")
	}

	if err := s.Delete(context.Background(), 1, true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 1 {
		t.Fatalf("confirmed delete should hit the network")
	}
	if len(s.Lists()) != 2 {
		t.Fatalf("deleted list still present")
	}
}

func TestDeleteFailureKeepsLocalState(t *testing.T) {
	api := stubResource{
		removeFn: func(ctx context.Context, id int) error {
			return errors.New("")
		},
	}

	s := loadedSession(t, api)
	err := s.Delete(context.Background(), 1, true)
	if err == nil || err.Error() != "Nepodařilo se smazat seznam" {
		t.Fatalf("expected fallback message, got %v", err)
	}
	if len(s.Lists()) != 3 {
		t.Fatalf("failed delete must not mutate local state")
	}
}

func TestToggleArchiveOptimisticRollback(t *testing.T) {
	api := stubResource{
		updateFn: func(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error) {
			return shoplist.List{}, errors.New("offline")
		},
	}

	s := loadedSession(t, api)
	if s.Lists()[0].Archived {
		t.Fatalf("seed list 1 should start active")
	}

	err := s.ToggleArchive(context.Background(), 1)
	if err == nil || err.Error() != "offline" {
		t.Fatalf("expected offline error, got %v", err)
	}
	if s.Lists()[0].Archived {
		t.Fatalf("failed toggle should roll back")
	}
}

func TestToggleArchiveWithoutOwnership(t *testing.T) {
	var patched *bool
	api := stubResource{
		updateFn: func(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error) {
			patched = patch.Archived
			return shoplist.List{}, nil
		},
	}

	s := loadedSession(t, api)
	s.SetCurrentUser(3) // Katka does not own list 1

	if err := s.ToggleArchive(context.Background(), 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if patched == nil || !*patched {
		t.Fatalf("expected archived:true patch, got %v", patched)
	}
	if !s.Lists()[0].Archived {
		t.Fatalf("optimistic flip missing")
	}
}
