package models

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// Pump is a fuel-dispensing unit belonging to exactly one station. The
// station_id reference is not validated against the stations table here.
type Pump struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	IDName    string  `gorm:"column:id_name;not null" json:"id_name"`
	FuelType  string  `gorm:"column:fuel_type;not null" json:"fuel_type"`
	Price     float64 `gorm:"not null" json:"price"`
	Available bool    `json:"available"`
	StationID uint    `gorm:"column:station_id;index;not null" json:"station_id"`
}

// CreatePump inserts a new pump row. The id is always assigned by the store.
func CreatePump(db *gorm.DB, p *Pump) error {
	p.ID = 0
	return db.Create(p).Error
}

func FindPumpByID(db *gorm.DB, id string) (*Pump, error) {
	var p Pump
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// PumpsByStationID lists a station's pumps. An empty result is a valid
// listing, not ErrNotFound.
func PumpsByStationID(db *gorm.DB, stationID string) ([]*Pump, error) {
	var pumps []*Pump
	if err := db.Where("station_id = ?", stationID).Find(&pumps).Error; err != nil {
		return nil, err
	}
	return pumps, nil
}

// UpdatePumpByID replaces every pump field by id. Zero affected rows means
// the pump does not exist.
func UpdatePumpByID(db *gorm.DB, id string, p *Pump) (*Pump, error) {
	res := db.Model(&Pump{}).Where("id = ?", id).Updates(map[string]any{
		"id_name":    p.IDName,
		"fuel_type":  p.FuelType,
		"price":      p.Price,
		"available":  p.Available,
		"station_id": p.StationID,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	n, _ := strconv.ParseUint(id, 10, 64)
	p.ID = uint(n)
	return p, nil
}

func RemovePump(db *gorm.DB, id string) error {
	res := db.Delete(&Pump{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePumpsByStationID removes every pump owned by a station. Zero
// affected rows is reported as ErrNotFound; a station without pumps is
// indistinguishable from a failed delete at this level.
func DeletePumpsByStationID(db *gorm.DB, stationID string) error {
	res := db.Where("station_id = ?", stationID).Delete(&Pump{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
