package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/martinvlcek/shoplist-backend/api/responses"
	"github.com/martinvlcek/shoplist-backend/api/validators"
	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	pkgerrors "github.com/martinvlcek/shoplist-backend/pkg/errors"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
)

// ListShoppingLists serves the full collection.
func ListShoppingLists(store shoplist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		lists, err := store.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shopping lists"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, lists)
	}
}

// GetShoppingList serves a single record or a 404 {message} body.
func GetShoppingList(store shoplist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := listID(r)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Not found"))
			return
		}

		list, err := store.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, mapStoreError(err, "get shopping list"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, list)
	}
}

// CreateShoppingList always succeeds with 201; payload fields fall back to
// the store defaults.
func CreateShoppingList(store shoplist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input shoplist.CreateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := store.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shopping list"))
			return
		}

		if logg != nil {
			logg.Info(logg.WithListID(ctx, created.ID), "shopping list created")
		}
		responses.WriteJSON(w, http.StatusCreated, created)
	}
}

// UpdateShoppingList merges a partial patch over the stored record.
func UpdateShoppingList(store shoplist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := listID(r)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Not found"))
			return
		}

		var patch shoplist.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated, err := store.Update(ctx, id, patch)
		if err != nil {
			responses.WriteError(ctx, logg, w, mapStoreError(err, "update shopping list"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, updated)
	}
}

// DeleteShoppingList removes a record and confirms with {ok:true}.
func DeleteShoppingList(store shoplist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := listID(r)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Not found"))
			return
		}

		if err := store.Remove(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, mapStoreError(err, "delete shopping list"))
			return
		}

		if logg != nil {
			logg.Info(logg.WithListID(ctx, id), "shopping list deleted")
		}
		responses.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// listID parses the {listID} route param. Non-numeric ids behave like any
// other miss: the store has no such record.
func listID(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "listID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func mapStoreError(err error, op string) error {
	if errors.Is(err, shoplist.ErrNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, op)
}
