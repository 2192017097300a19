package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Record is a synthetic dish submitted to the search service.
type Record struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (r Record) String() string {
	return r.Name + " (" + r.Category + ")"
}

// JSON is the wire form of the record.
func (r Record) JSON() []byte {
	b, _ := json.Marshal(r)
	return b
}

// DishRow is what the postgres sink stores for every submitted record.
type DishRow struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"index"`
	Category  string `gorm:"index"`
	Payload   datatypes.JSON
}

func (DishRow) TableName() string {
	return "dishes"
}

func NewDishRow(r Record) DishRow {
	return DishRow{Name: r.Name, Category: r.Category, Payload: datatypes.JSON(r.JSON())}
}
