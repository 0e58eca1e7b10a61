package shoplist

import "testing"

func TestOwnerNameResolvesFromMembers(t *testing.T) {
	list := List{
		OwnerID: 2,
		Members: []Member{{ID: 1, Name: "Alena"}, {ID: 2, Name: "Petr"}},
	}
	if got := list.OwnerName(); got != "Petr" {
		t.Fatalf("expected Petr, got %q", got)
	}

	list.OwnerID = 9
	if got := list.OwnerName(); got != "Neznámý" {
		t.Fatalf("expected fallback owner name, got %q", got)
	}
}

func TestNextIDsStartAtOne(t *testing.T) {
	if got := NextMemberID(nil); got != 1 {
		t.Fatalf("expected 1 for empty members, got %d", got)
	}
	if got := NextItemID(nil); got != 1 {
		t.Fatalf("expected 1 for empty items, got %d", got)
	}
	if got := NextItemID([]Item{{ID: 5}}); got != 6 {
		t.Fatalf("expected 6 after max id 5, got %d", got)
	}
	if got := NextMemberID([]Member{{ID: 2}, {ID: 7}, {ID: 3}}); got != 8 {
		t.Fatalf("expected 8 after max id 7, got %d", got)
	}
}

func TestItemCounts(t *testing.T) {
	list := List{Items: []Item{
		{ID: 1, Done: false},
		{ID: 2, Done: true},
		{ID: 3, Done: false},
	}}
	open := list.OpenItems()
	total := list.TotalItems()
	if open != 2 || total != 3 {
		t.Fatalf("expected 2 open of 3, got %d of %d", open, total)
	}
	if done := total - open; done != 1 {
		t.Fatalf("open + done must equal total, got done %d", done)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	orig := SeedLists()[0]
	copied := orig.Clone()
	copied.Members[0].Name = "changed"
	copied.Items[0].Done = true

	if orig.Members[0].Name == "changed" {
		t.Fatal("clone shares members backing array")
	}
	if orig.Items[0].Done {
		t.Fatal("clone shares items backing array")
	}
}

func TestPatchMergeRetainsUnsetFields(t *testing.T) {
	current := SeedLists()[0]
	archived := true
	merged := Patch{Archived: &archived}.Merge(current)

	if !merged.Archived {
		t.Fatal("archived should flip")
	}
	if merged.Name != current.Name || merged.OwnerID != current.OwnerID {
		t.Fatal("unset fields must be retained")
	}
	if len(merged.Members) != len(current.Members) || len(merged.Items) != len(current.Items) {
		t.Fatal("nil slices in a patch must retain existing sequences")
	}
}
