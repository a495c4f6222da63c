package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Generic single-table operations shared by the entity gateways. Every helper
// is one logical round trip; update and delete run inside a transaction so the
// row they return is the row they touched.

func listAll[T any](ctx context.Context, db *gorm.DB, entity, order string) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Order(order).Find(&rows).Error; err != nil {
		return nil, storeError("list", entity, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get", entity, err)
	}
	return &row, nil
}

func create[T any](ctx context.Context, db *gorm.DB, entity string, row *T) (*T, error) {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, storeError("create", entity, err)
	}
	return row, nil
}

func updateByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint, changes map[string]interface{}) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			result := tx.Model(new(T)).Where("id = ?", id).Updates(changes)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return tx.Where("id = ?", id).Take(&row).Error
	})

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, storeError("update", entity, err)
	}
	return &row, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) ([]T, error) {
	removed := []T{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Find(&removed).Error; err != nil {
			return err
		}
		if len(removed) == 0 {
			return nil
		}
		return tx.Where("id = ?", id).Delete(new(T)).Error
	})
	if err != nil {
		return nil, storeError("delete", entity, err)
	}
	if removed == nil {
		removed = []T{}
	}
	return removed, nil
}
