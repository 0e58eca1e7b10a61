package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
)

const shoppingListsPath = "/api/shopping-lists"

// ShoppingLists is the typed resource client for /api/shopping-lists.
type ShoppingLists struct {
	transport *Transport
}

// NewShoppingLists wraps a transport with the shopping-list operations.
func NewShoppingLists(transport *Transport) *ShoppingLists {
	return &ShoppingLists{transport: transport}
}

func (c *ShoppingLists) List(ctx context.Context) ([]shoplist.List, error) {
	raw, err := c.transport.Do(ctx, http.MethodGet, shoppingListsPath, nil)
	if err != nil {
		return nil, err
	}
	var lists []shoplist.List
	if err := json.Unmarshal(raw, &lists); err != nil {
		return nil, fmt.Errorf("decode shopping lists: %w", err)
	}
	return lists, nil
}

func (c *ShoppingLists) Get(ctx context.Context, id int) (shoplist.List, error) {
	raw, err := c.transport.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", shoppingListsPath, id), nil)
	if err != nil {
		return shoplist.List{}, err
	}
	return decodeList(raw)
}

func (c *ShoppingLists) Create(ctx context.Context, input shoplist.CreateInput) (shoplist.List, error) {
	raw, err := c.transport.Do(ctx, http.MethodPost, shoppingListsPath, input)
	if err != nil {
		return shoplist.List{}, err
	}
	return decodeList(raw)
}

func (c *ShoppingLists) Update(ctx context.Context, id int, patch shoplist.Patch) (shoplist.List, error) {
	raw, err := c.transport.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", shoppingListsPath, id), patch)
	if err != nil {
		return shoplist.List{}, err
	}
	return decodeList(raw)
}

func (c *ShoppingLists) Remove(ctx context.Context, id int) error {
	_, err := c.transport.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", shoppingListsPath, id), nil)
	return err
}

func decodeList(raw json.RawMessage) (shoplist.List, error) {
	var list shoplist.List
	if err := json.Unmarshal(raw, &list); err != nil {
		return shoplist.List{}, fmt.Errorf("decode shopping list: %w", err)
	}
	return list, nil
}
