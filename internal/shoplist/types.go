package shoplist

// Member is a list-local participant. IDs are assigned per list, starting at 1.
type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is a single shopping-list entry.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// List is the aggregate record served by the API. Member and item IDs are
// unique within their own sequence; the two sequences are namespaced
// separately.
type List struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Archived bool     `json:"archived"`
	OwnerID  int      `json:"ownerId"`
	Members  []Member `json:"members"`
	Items    []Item   `json:"items"`
}

// Clone returns a deep copy so callers can mutate without aliasing store or
// view state.
func (l List) Clone() List {
	out := l
	out.Members = append([]Member(nil), l.Members...)
	out.Items = append([]Item(nil), l.Items...)
	return out
}

// Owner returns the member entry matching OwnerID, if present.
func (l List) Owner() (Member, bool) {
	for _, m := range l.Members {
		if m.ID == l.OwnerID {
			return m, true
		}
	}
	return Member{}, false
}

// OwnerName resolves the owner's display name from the list's own members.
func (l List) OwnerName() string {
	if owner, ok := l.Owner(); ok {
		return owner.Name
	}
	return "Neznámý"
}

// NextMemberID assigns the next list-local member id: 1 + max(existing, 0).
func NextMemberID(members []Member) int {
	max := 0
	for _, m := range members {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// NextItemID assigns the next list-local item id: 1 + max(existing, 0).
func NextItemID(items []Item) int {
	max := 0
	for _, i := range items {
		if i.ID > max {
			max = i.ID
		}
	}
	return max + 1
}

// OpenItems counts entries not yet done.
func (l List) OpenItems() int {
	open := 0
	for _, i := range l.Items {
		if !i.Done {
			open++
		}
	}
	return open
}

// TotalItems counts all entries.
func (l List) TotalItems() int {
	return len(l.Items)
}
