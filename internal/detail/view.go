package detail

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/martinvlcek/shoplist-backend/internal/client"
	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/internal/view"
)

// ItemFilter selects which items the detail screen shows.
type ItemFilter string

const (
	ItemFilterOpen ItemFilter = "open"
	ItemFilterAll  ItemFilter = "all"
)

// ErrOwnerRemoval is returned when the owner would be removed from the
// member list. The message is user-facing.
var ErrOwnerRemoval = errors.New("Vlastníka nelze odstranit 🙂")

// Resource is the slice of the API client the detail screen needs.
type Resource interface {
	Get(ctx context.Context, id int) (shoplist.List, error)
	Update(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error)
}

// Session holds one list's detail screen state. Not safe for concurrent use.
type Session struct {
	api Resource

	status view.Status
	err    error
	list   shoplist.List

	currentUserID int
	nameDraft     string
	memberDraft   string
	itemDraft     string
	itemFilter    ItemFilter
}

// NewSession starts with the default simulated user (Petr) and the open-items
// filter.
func NewSession(api Resource) *Session {
	return &Session{
		api:           api,
		status:        view.StatusLoading,
		currentUserID: 2,
		itemFilter:    ItemFilterOpen,
	}
}

func (s *Session) Status() view.Status    { return s.status }
func (s *Session) Err() error             { return s.err }
func (s *Session) List() shoplist.List    { return s.list }
func (s *Session) CurrentUserID() int     { return s.currentUserID }
func (s *Session) NameDraft() string      { return s.nameDraft }
func (s *Session) MemberDraft() string    { return s.memberDraft }
func (s *Session) ItemDraft() string      { return s.itemDraft }
func (s *Session) ItemFilter() ItemFilter { return s.itemFilter }

func (s *Session) SetCurrentUser(id int)      { s.currentUserID = id }
func (s *Session) SetNameDraft(name string)   { s.nameDraft = name }
func (s *Session) SetMemberDraft(name string) { s.memberDraft = name }
func (s *Session) SetItemDraft(name string)   { s.itemDraft = name }
func (s *Session) SetItemFilter(f ItemFilter) { s.itemFilter = f }

// Load fetches the list for a raw route id. An id that does not parse is
// notFound without touching the network; a 404 is notFound; any other
// failure is a retryable error.
func (s *Session) Load(ctx context.Context, rawID string) error {
	s.status = view.StatusLoading
	s.err = nil

	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		s.status = view.StatusNotFound
		return nil
	}

	list, err := s.api.Get(ctx, id)
	if err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			s.status = view.StatusNotFound
			return nil
		}
		s.err = err
		s.status = view.StatusError
		return err
	}

	s.list = list
	s.nameDraft = list.Name
	s.status = view.StatusReady
	return nil
}

// CurrentMember resolves the simulated user against the member list.
func (s *Session) CurrentMember() (shoplist.Member, bool) {
	for _, m := range s.list.Members {
		if m.ID == s.currentUserID {
			return m, true
		}
	}
	return shoplist.Member{}, false
}

func (s *Session) IsOwner() bool {
	return s.currentUserID != shoplist.AnonymousUserID && s.list.OwnerID == s.currentUserID
}

// IsVisitor reports whether the user is neither a recognized member nor the
// owner.
func (s *Session) IsVisitor() bool {
	_, member := s.CurrentMember()
	return !member && !s.IsOwner()
}

func (s *Session) FilteredItems() []shoplist.Item {
	if s.itemFilter == ItemFilterAll {
		return s.list.Items
	}
	open := make([]shoplist.Item, 0, len(s.list.Items))
	for _, item := range s.list.Items {
		if !item.Done {
			open = append(open, item)
		}
	}
	return open
}

func (s *Session) OpenItems() int  { return s.list.OpenItems() }
func (s *Session) TotalItems() int { return s.list.TotalItems() }

// SaveName renames the list from the draft. Owner-only; blank drafts are
// silent no-ops.
func (s *Session) SaveName(ctx context.Context) error {
	if !s.IsOwner() {
		return nil
	}
	name := strings.TrimSpace(s.nameDraft)
	if name == "" {
		return nil
	}
	return s.patchName(ctx, name, "Nepodařilo se uložit název")
}

// AddMember appends a member from the draft. Owner-only; blank drafts are
// silent no-ops. The draft clears as soon as the optimistic state shows the
// new member.
func (s *Session) AddMember(ctx context.Context) error {
	if !s.IsOwner() {
		return nil
	}
	name := strings.TrimSpace(s.memberDraft)
	if name == "" {
		return nil
	}

	next := append(append([]shoplist.Member(nil), s.list.Members...),
		shoplist.Member{ID: shoplist.NextMemberID(s.list.Members), Name: name})
	s.memberDraft = ""
	return s.patchMembers(ctx, next, "Nepodařilo se přidat člena")
}

// RemoveMember drops a member. Owner-only; removing the owner is refused.
// Removing the simulated user signs them out to anonymous.
func (s *Session) RemoveMember(ctx context.Context, memberID int) error {
	if !s.IsOwner() {
		return nil
	}
	if memberID == s.list.OwnerID {
		return ErrOwnerRemoval
	}

	next := make([]shoplist.Member, 0, len(s.list.Members))
	for _, m := range s.list.Members {
		if m.ID != memberID {
			next = append(next, m)
		}
	}
	if memberID == s.currentUserID {
		s.currentUserID = shoplist.AnonymousUserID
	}
	return s.patchMembers(ctx, next, "Nepodařilo se odebrat člena")
}

// Leave removes the simulated user from the member list. Only a recognized
// non-owner member may leave.
func (s *Session) Leave(ctx context.Context) error {
	if _, member := s.CurrentMember(); !member || s.IsOwner() {
		return nil
	}

	leavingID := s.currentUserID
	next := make([]shoplist.Member, 0, len(s.list.Members))
	for _, m := range s.list.Members {
		if m.ID != leavingID {
			next = append(next, m)
		}
	}
	s.currentUserID = shoplist.AnonymousUserID
	return s.patchMembers(ctx, next, "Nepodařilo se opustit seznam")
}

// AddItem appends an open item from the draft. Blocked for visitors; blank
// drafts are silent no-ops.
func (s *Session) AddItem(ctx context.Context) error {
	if s.IsVisitor() {
		return nil
	}
	name := strings.TrimSpace(s.itemDraft)
	if name == "" {
		return nil
	}

	next := append(append([]shoplist.Item(nil), s.list.Items...),
		shoplist.Item{ID: shoplist.NextItemID(s.list.Items), Name: name, Done: false})
	s.itemDraft = ""
	return s.patchItems(ctx, next, "Nepodařilo se přidat položku")
}

// RemoveItem drops an item. Blocked for visitors.
func (s *Session) RemoveItem(ctx context.Context, itemID int) error {
	if s.IsVisitor() {
		return nil
	}

	next := make([]shoplist.Item, 0, len(s.list.Items))
	for _, item := range s.list.Items {
		if item.ID != itemID {
			next = append(next, item)
		}
	}
	return s.patchItems(ctx, next, "Nepodařilo se odebrat položku")
}

// ToggleItemDone flips one item's done flag. Blocked for visitors.
func (s *Session) ToggleItemDone(ctx context.Context, itemID int) error {
	if s.IsVisitor() {
		return nil
	}

	next := append([]shoplist.Item(nil), s.list.Items...)
	for i, item := range next {
		if item.ID == itemID {
			next[i].Done = !item.Done
		}
	}
	return s.patchItems(ctx, next, "Nepodařilo se změnit položku")
}

func (s *Session) patchName(ctx context.Context, name string, fallback string) error {
	err := view.ApplyOptimistic(
		func() string { return s.list.Name },
		func(v string) { s.list.Name = v },
		name,
		func() error {
			_, err := s.api.Update(ctx, s.list.ID, shoplist.Patch{Name: &name})
			return err
		},
	)
	if err != nil {
		return messageOr(err, fallback)
	}
	return nil
}

func (s *Session) patchMembers(ctx context.Context, next []shoplist.Member, fallback string) error {
	err := view.ApplyOptimistic(
		func() []shoplist.Member { return s.list.Members },
		func(v []shoplist.Member) { s.list.Members = v },
		next,
		func() error {
			_, err := s.api.Update(ctx, s.list.ID, shoplist.Patch{Members: next})
			return err
		},
	)
	if err != nil {
		return messageOr(err, fallback)
	}
	return nil
}

func (s *Session) patchItems(ctx context.Context, next []shoplist.Item, fallback string) error {
	err := view.ApplyOptimistic(
		func() []shoplist.Item { return s.list.Items },
		func(v []shoplist.Item) { s.list.Items = v },
		next,
		func() error {
			_, err := s.api.Update(ctx, s.list.ID, shoplist.Patch{Items: next})
			return err
		},
	)
	if err != nil {
		return messageOr(err, fallback)
	}
	return nil
}

// messageOr keeps errors that already carry a user-facing message and
// substitutes the per-action fallback otherwise.
func messageOr(err error, fallback string) error {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return errors.New(fallback)
	}
	return err
}
