package shoplist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// listRecord is the persisted row shape. Members and items are stored as
// JSON text so the row mirrors the wire format one-to-one.
type listRecord struct {
	ID       int    `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Archived bool   `gorm:"column:archived"`
	OwnerID  int    `gorm:"column:owner_id"`
	Members  string `gorm:"column:members"`
	Items    string `gorm:"column:items"`
}

func (listRecord) TableName() string { return "shopping_lists" }

// GormStore persists shopping lists through GORM (sqlite or postgres),
// honoring the same contract as the in-memory mock.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context) ([]List, error) {
	var records []listRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]List, 0, len(records))
	for _, rec := range records {
		list, err := rec.toList()
		if err != nil {
			return nil, err
		}
		out = append(out, list)
	}
	return out, nil
}

func (s *GormStore) Get(ctx context.Context, id int) (List, error) {
	var rec listRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return List{}, ErrNotFound
		}
		return List{}, err
	}
	return rec.toList()
}

func (s *GormStore) Create(ctx context.Context, input CreateInput) (List, error) {
	list := input.Normalize()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ids follow the mock rule: 1 + max(existing, 0)
		var maxID int
		if err := tx.Model(&listRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		list.ID = maxID + 1

		rec, err := fromList(list)
		if err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return List{}, err
	}
	return list, nil
}

func (s *GormStore) Update(ctx context.Context, id int, patch Patch) (List, error) {
	var updated List
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec listRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			return err
		}
		current, err := rec.toList()
		if err != nil {
			return err
		}
		updated = patch.Merge(current)

		next, err := fromList(updated)
		if err != nil {
			return err
		}
		return tx.Save(&next).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return List{}, ErrNotFound
		}
		return List{}, err
	}
	return updated, nil
}

func (s *GormStore) Remove(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&listRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (rec listRecord) toList() (List, error) {
	list := List{
		ID:       rec.ID,
		Name:     rec.Name,
		Archived: rec.Archived,
		OwnerID:  rec.OwnerID,
		Members:  []Member{},
		Items:    []Item{},
	}
	if rec.Members != "" {
		if err := json.Unmarshal([]byte(rec.Members), &list.Members); err != nil {
			return List{}, fmt.Errorf("decode members for list %d: %w", rec.ID, err)
		}
	}
	if rec.Items != "" {
		if err := json.Unmarshal([]byte(rec.Items), &list.Items); err != nil {
			return List{}, fmt.Errorf("decode items for list %d: %w", rec.ID, err)
		}
	}
	return list, nil
}

func fromList(list List) (listRecord, error) {
	members, err := json.Marshal(list.Members)
	if err != nil {
		return listRecord{}, fmt.Errorf("encode members: %w", err)
	}
	items, err := json.Marshal(list.Items)
	if err != nil {
		return listRecord{}, fmt.Errorf("encode items: %w", err)
	}
	return listRecord{
		ID:       list.ID,
		Name:     list.Name,
		Archived: list.Archived,
		OwnerID:  list.OwnerID,
		Members:  string(members),
		Items:    string(items),
	}, nil
}
