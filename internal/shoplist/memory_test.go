package shoplist

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreSeedSnapshot(t *testing.T) {
	store := NewMemoryStore()

	lists, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 seeded lists, got %d", len(lists))
	}

	// snapshot must not alias store state
	lists[0].Name = "mutated"
	again, err := store.Get(context.Background(), lists[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name == "mutated" {
		t.Fatal("List() leaked internal state")
	}
}

func TestMemoryStoreCreateAssignsNextID(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create(context.Background(), CreateInput{
		Name:    "Zahrada",
		OwnerID: 2,
		Members: []Member{{ID: 2, Name: "Petr"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4 after seed max 3, got %d", created.ID)
	}
	if created.Archived {
		t.Fatal("archived should default to false")
	}
	if created.Items == nil || len(created.Items) != 0 {
		t.Fatalf("items should default to empty, got %v", created.Items)
	}
}

func TestMemoryStoreCreateDefaults(t *testing.T) {
	store := NewEmptyMemoryStore()

	created, err := store.Create(context.Background(), CreateInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1 in empty store, got %d", created.ID)
	}
	if created.Name != DefaultListName {
		t.Fatalf("expected placeholder name, got %q", created.Name)
	}
	if created.OwnerID != 1 {
		t.Fatalf("expected owner default 1, got %d", created.OwnerID)
	}
	if created.Members == nil || created.Items == nil {
		t.Fatal("members/items should default to empty sequences")
	}
}

func TestMemoryStoreUpdateMergesPatch(t *testing.T) {
	store := NewMemoryStore()

	name := "Přejmenovaný"
	updated, err := store.Update(context.Background(), 1, Patch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected renamed list, got %q", updated.Name)
	}
	if len(updated.Members) != 3 || len(updated.Items) != 3 {
		t.Fatal("patch without members/items must retain the existing sequences")
	}

	// explicit empty array replaces wholesale
	updated, err = store.Update(context.Background(), 1, Patch{Items: []Item{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Items) != 0 {
		t.Fatalf("expected items replaced by empty array, got %v", updated.Items)
	}
	if len(updated.Members) != 3 {
		t.Fatal("members must survive an items-only patch")
	}
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Update(context.Background(), 99, Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Remove(context.Background(), 2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Get(context.Background(), 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := store.Remove(context.Background(), 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double remove, got %v", err)
	}
}

func TestMemoryStoreIDReuseAfterRemove(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Remove(context.Background(), 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	created, err := store.Create(context.Background(), CreateInput{Name: "Nový"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("id follows max(existing)+1, expected 3 got %d", created.ID)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Remove(context.Background(), 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	store.Reset()

	lists, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected seed restored, got %d lists", len(lists))
	}
}
