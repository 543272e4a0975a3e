package db_models

// ItinerarySlot is one owner's named key-value slot. Value is the serialized
// itinerary exactly as the codec wrote it.
type ItinerarySlot struct {
	BaseModel
	Owner   string `gorm:"size:128;not null;uniqueIndex:idx_slot_owner_key"`
	SlotKey string `gorm:"size:128;not null;uniqueIndex:idx_slot_owner_key"`
	Value   string `gorm:"type:text;not null"`
}
