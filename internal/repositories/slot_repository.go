// internal/repositories/slot_repository.go
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "arca/internal/models/db_models"
	"arca/pkg/utils"
)

// SlotRepository is a durable key-value slot per owner. A missing slot is not
// an error: GetSlot reports it with found=false.
type SlotRepository interface {
	GetSlot(ctx context.Context, owner string, key string) (value string, found bool, err error)
	PutSlot(ctx context.Context, owner string, key string, value string) error
}

type slotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) GetSlot(ctx context.Context, owner string, key string) (string, bool, error) {
	var slot dbm.ItinerarySlot
	err := r.db.WithContext(ctx).
		Where("owner = ? AND slot_key = ?", owner, key).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get slot %q: %v", utils.ErrDatabaseError, key, err)
	}
	return slot.Value, true, nil
}

// PutSlot writes the whole value, creating the slot on first use.
func (r *slotRepository) PutSlot(ctx context.Context, owner string, key string, value string) error {
	slot := dbm.ItinerarySlot{Owner: owner, SlotKey: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}, {Name: "slot_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      value,
				"updated_at": utils.NowUnixSeconds(),
			}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("%w: put slot %q: %v", utils.ErrDatabaseError, key, err)
	}
	return nil
}
