package persistence

import (
	"time"
)

// RunModel represents the runs table: one row per saved simulation run
type RunModel struct {
	ID      string    `gorm:"column:id;primaryKey"`
	Phase   string    `gorm:"column:phase;not null"`
	Turn    int       `gorm:"column:turn;not null"`
	Running bool      `gorm:"column:running;not null"`
	SavedAt time.Time `gorm:"column:saved_at;not null;autoUpdateTime"`
}

func (RunModel) TableName() string {
	return "runs"
}

// ResourceModel represents the resources table: one row per (run, kind)
type ResourceModel struct {
	RunID    string `gorm:"column:run_id;primaryKey;not null"`
	Kind     string `gorm:"column:kind;primaryKey;not null"`
	Quantity int    `gorm:"column:quantity;not null"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

// BuildingModel represents the buildings table. Position preserves the
// declaration order the production phase iterates in.
type BuildingModel struct {
	RunID       string `gorm:"column:run_id;primaryKey;not null"`
	Position    int    `gorm:"column:position;primaryKey;not null"`
	Kind        string `gorm:"column:kind;not null"`
	Level       int    `gorm:"column:level;not null;default:1"`
	Operational bool   `gorm:"column:operational;not null;default:true"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// ColonistModel represents the colonists table. Position preserves roster
// order, which the solar-storm responder scan depends on.
type ColonistModel struct {
	ID             string `gorm:"column:id;primaryKey"`
	RunID          string `gorm:"column:run_id;index;not null"`
	Position       int    `gorm:"column:position;not null"`
	Name           string `gorm:"column:name;not null"`
	Specialization string `gorm:"column:specialization;not null"`
	Experience     int    `gorm:"column:experience;not null;default:0"`
	Health         int    `gorm:"column:health;not null;default:100"`
	Assigned       bool   `gorm:"column:assigned;not null;default:false"`
}

func (ColonistModel) TableName() string {
	return "colonists"
}
