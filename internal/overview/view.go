package overview

import (
	"context"
	"errors"
	"strings"

	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/internal/view"
)

// Filter selects which lists the overview shows.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterActive   Filter = "active"
	FilterArchived Filter = "archived"
)

// ErrNotOwner is returned when a non-owner tries to delete a list. The
// message is user-facing.
var ErrNotOwner = errors.New("Nákupní seznam může smazat pouze jeho vlastník.")

// Resource is the slice of the API client the overview needs.
type Resource interface {
	List(ctx context.Context) ([]shoplist.List, error)
	Create(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error)
	Update(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error)
	Remove(ctx context.Context, id int) error
}

// Session holds the overview screen state. It mirrors a single user's
// interaction and is not safe for concurrent use.
type Session struct {
	api Resource

	lists         []shoplist.List
	status        view.Status
	err           error
	filter        Filter
	draftName     string
	currentUserID int
}

// NewSession starts with the default simulated user (Alena) and an empty,
// not-yet-loaded collection.
func NewSession(api Resource) *Session {
	return &Session{
		api:           api,
		status:        view.StatusLoading,
		filter:        FilterAll,
		currentUserID: 1,
	}
}

func (s *Session) Lists() []shoplist.List { return s.lists }
func (s *Session) Status() view.Status    { return s.status }
func (s *Session) Err() error             { return s.err }
func (s *Session) Filter() Filter         { return s.filter }
func (s *Session) DraftName() string      { return s.draftName }
func (s *Session) CurrentUserID() int     { return s.currentUserID }

// Load fetches the collection. Calling it again after a failure is the retry
// action.
func (s *Session) Load(ctx context.Context) error {
	s.status = view.StatusLoading
	s.err = nil

	lists, err := s.api.List(ctx)
	if err != nil {
		s.err = err
		s.status = view.StatusError
		return err
	}
	if lists == nil {
		lists = []shoplist.List{}
	}
	s.lists = lists
	s.status = view.StatusReady
	return nil
}

// Filtered returns the lists matching the active filter.
func (s *Session) Filtered() []shoplist.List {
	out := make([]shoplist.List, 0, len(s.lists))
	for _, list := range s.lists {
		switch s.filter {
		case FilterActive:
			if list.Archived {
				continue
			}
		case FilterArchived:
			if !list.Archived {
				continue
			}
		}
		out = append(out, list)
	}
	return out
}

// OwnerName resolves the display name for a list's owner.
func (s *Session) OwnerName(list shoplist.List) string {
	return list.OwnerName()
}

func (s *Session) SetFilter(f Filter)       { s.filter = f }
func (s *Session) SetDraftName(name string) { s.draftName = name }

// SetCurrentUser switches the simulated user. AnonymousUserID encodes the
// signed-out visitor.
func (s *Session) SetCurrentUser(id int) { s.currentUserID = id }

// Create submits the draft as a new list owned by the current user. Visitors
// and blank drafts are silent no-ops. Creation is not optimistic: the server
// assigns the id, so the record is appended only on success.
func (s *Session) Create(ctx context.Context) error {
	if s.currentUserID == shoplist.AnonymousUserID {
		return nil
	}
	name := strings.TrimSpace(s.draftName)
	if name == "" {
		return nil
	}

	ownerName := "Uživatel"
	if user, ok := shoplist.UserByID(s.currentUserID); ok {
		ownerName = user.Name
	}

	created, err := s.api.Create(ctx, shoplist.CreateInput{
		Name:     name,
		Archived: false,
		OwnerID:  s.currentUserID,
		Members:  []shoplist.Member{{ID: s.currentUserID, Name: ownerName}},
		Items:    []shoplist.Item{},
	})
	if err != nil {
		return messageOr(err, "Nepodařilo se vytvořit seznam")
	}

	s.lists = append(s.lists, created)
	s.draftName = ""
	return nil
}

// Delete removes a list after server confirmation. Only the owner may
// delete, and the caller must pass an explicit confirmation.
func (s *Session) Delete(ctx context.Context, id int, confirmed bool) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	if s.currentUserID == shoplist.AnonymousUserID || s.lists[idx].OwnerID != s.currentUserID {
		return ErrNotOwner
	}
	if !confirmed {
		return nil
	}

	if err := s.api.Remove(ctx, id); err != nil {
		return messageOr(err, "Nepodařilo se smazat seznam")
	}

	s.lists = append(s.lists[:idx], s.lists[idx+1:]...)
	return nil
}

// ToggleArchive flips a list's archived flag optimistically and rolls the
// flip back when the server rejects it. Any actor may archive; there is no
// ownership check on this path.
func (s *Session) ToggleArchive(ctx context.Context, id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := s.lists[idx].Clone()
	next.Archived = !next.Archived

	err := view.ApplyOptimistic(
		func() shoplist.List { return s.lists[idx] },
		func(l shoplist.List) { s.lists[idx] = l },
		next,
		func() error {
			_, err := s.api.Update(ctx, id, shoplist.Patch{Archived: &next.Archived})
			return err
		},
	)
	if err != nil {
		return messageOr(err, "Nepodařilo se změnit archivaci")
	}
	return nil
}

func (s *Session) indexOf(id int) int {
	for i, list := range s.lists {
		if list.ID == id {
			return i
		}
	}
	return -1
}

// messageOr keeps errors that already carry a user-facing message and
// substitutes the per-action fallback otherwise.
func messageOr(err error, fallback string) error {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return errors.New(fallback)
	}
	return err
}
