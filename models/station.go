package models

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// Station represents a fuel station. Pumps belong to a station by
// station_id only and are fetched on demand, so GORM must not manage
// the association.
type Station struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	IDName    string  `gorm:"column:id_name;not null" json:"id_name"`
	Name      string  `gorm:"not null" json:"name"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	City      string  `gorm:"not null" json:"city"`
	Address   string  `gorm:"not null" json:"address"`
	Pumps     []*Pump `gorm:"-" json:"pumps,omitempty"`
}

// CreateStation inserts a new station row. The id is always assigned by the
// store; a caller-supplied id is discarded.
func CreateStation(db *gorm.DB, s *Station) error {
	s.ID = 0
	return db.Create(s).Error
}

func FindStationByID(db *gorm.DB, id string) (*Station, error) {
	var s Station
	if err := db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func AllStations(db *gorm.DB) ([]*Station, error) {
	stations := make([]*Station, 0)
	if err := db.Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// UpdateStationByID replaces every station field by id. Zero affected rows
// means the station does not exist.
func UpdateStationByID(db *gorm.DB, id string, s *Station) (*Station, error) {
	res := db.Model(&Station{}).Where("id = ?", id).Updates(map[string]any{
		"id_name":   s.IDName,
		"name":      s.Name,
		"latitude":  s.Latitude,
		"longitude": s.Longitude,
		"city":      s.City,
		"address":   s.Address,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	n, _ := strconv.ParseUint(id, 10, 64)
	s.ID = uint(n)
	return s, nil
}

func RemoveStation(db *gorm.DB, id string) error {
	res := db.Delete(&Station{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
