package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/stellar-homestead/internal/domain/colony"
	"github.com/andrescamacho/stellar-homestead/internal/domain/resource"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
)

// GormRunRepository implements sim.RunRepository using GORM
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// Save persists a full run snapshot. The previous snapshot for the run is
// replaced wholesale inside one transaction.
func (r *GormRunRepository) Save(ctx context.Context, e *sim.Engine) error {
	snap := e.Snapshot()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		run := &RunModel{
			ID:      snap.RunID,
			Phase:   string(snap.Phase),
			Turn:    snap.Turn,
			Running: snap.Running,
		}
		if err := tx.Save(run).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}

		for _, model := range []interface{}{&ResourceModel{}, &BuildingModel{}, &ColonistModel{}} {
			if err := tx.Where("run_id = ?", snap.RunID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear previous snapshot: %w", err)
			}
		}

		for kind, quantity := range snap.Resources {
			row := &ResourceModel{RunID: snap.RunID, Kind: string(kind), Quantity: quantity}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to save resource %s: %w", kind, err)
			}
		}

		for i, b := range snap.Buildings {
			row := &BuildingModel{
				RunID:       snap.RunID,
				Position:    i,
				Kind:        string(b.Kind),
				Level:       b.Level,
				Operational: b.Operational,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to save building %d: %w", i, err)
			}
		}

		for i, c := range snap.Colonists {
			row := &ColonistModel{
				ID:             c.ID,
				RunID:          snap.RunID,
				Position:       i,
				Name:           c.Name,
				Specialization: string(c.Specialization),
				Experience:     c.Experience,
				Health:         c.Health,
				Assigned:       c.Assigned,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to save colonist %s: %w", c.Name, err)
			}
		}

		return nil
	})
}

// Load reconstructs a run from its persisted snapshot
func (r *GormRunRepository) Load(ctx context.Context, runID string, roller sim.Roller) (*sim.Engine, error) {
	var run RunModel
	result := r.db.WithContext(ctx).Where("id = ?", runID).First(&run)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("run not found: %s", runID)
		}
		return nil, fmt.Errorf("failed to find run: %w", result.Error)
	}

	var resourceRows []ResourceModel
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Find(&resourceRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	quantities := make(map[resource.Kind]int, len(resourceRows))
	for _, row := range resourceRows {
		quantities[resource.Kind(row.Kind)] = row.Quantity
	}

	var buildingRows []BuildingModel
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Order("position").Find(&buildingRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	buildings := make([]*colony.Building, 0, len(buildingRows))
	for _, row := range buildingRows {
		b, err := colony.ReconstructBuilding(colony.BuildingKind(row.Kind), row.Level, row.Operational)
		if err != nil {
			return nil, fmt.Errorf("invalid building in run %s: %w", runID, err)
		}
		buildings = append(buildings, b)
	}

	var colonistRows []ColonistModel
	if err := r.db.WithContext(ctx).Where("run_id = ?", runID).Order("position").Find(&colonistRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load colonists: %w", err)
	}
	colonists := make([]*colony.Colonist, 0, len(colonistRows))
	for _, row := range colonistRows {
		colonists = append(colonists, colony.ReconstructColonist(
			row.ID,
			row.Name,
			colony.Specialization(row.Specialization),
			row.Experience,
			row.Health,
			row.Assigned,
		))
	}

	state := sim.ReconstructState(sim.Phase(run.Phase), run.Turn, run.Running)
	ledger := resource.ReconstructLedger(quantities)

	return sim.ReconstructEngine(runID, state, ledger, buildings, colonists, roller), nil
}

// List returns summaries of all persisted runs, newest first
func (r *GormRunRepository) List(ctx context.Context) ([]sim.RunSummary, error) {
	var rows []RunModel
	if err := r.db.WithContext(ctx).Order("saved_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	summaries := make([]sim.RunSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, sim.RunSummary{
			RunID:   row.ID,
			Turn:    row.Turn,
			Phase:   sim.Phase(row.Phase),
			Running: row.Running,
			SavedAt: row.SavedAt,
		})
	}
	return summaries, nil
}
