package domain

import "time"

// CompoundStatus tracks the delivery state of a whole compound.
type CompoundStatus string

const (
	CompoundPlanned     CompoundStatus = "Planned"
	CompoundUnderConstr CompoundStatus = "Under Construction"
	CompoundFinished    CompoundStatus = "Finished"
)

// Compound is a gated development owned by a developer; properties belong to
// exactly one compound.
type Compound struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ReferenceNumber int            `json:"reference_number"`
	City            string         `json:"city"`
	Province        string         `json:"province"`
	Country         string         `json:"country"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	TotalUnits      int            `json:"total_units"`
	PropertyTypes   []PropertyType `json:"property_types"`
	Status          CompoundStatus `json:"status"`
	DeliveryDate    time.Time      `json:"delivery_date"`
	Images          []string       `json:"images"`
	MasterPlan      string         `json:"master_plan"`
	DeveloperID     string         `json:"developer_id"`
	UserID          string         `json:"user_id"`
	IsDeleted       bool           `json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
