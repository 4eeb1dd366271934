package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atelier/contexts/asset-ledger/garment-registry/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
	"atelier/contexts/asset-ledger/garment-registry/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const counterGarments = "garments"

type garmentModel struct {
	ID       uint64 `gorm:"column:id;primaryKey"`
	Owner    string `gorm:"column:owner;not null"`
	Designer string `gorm:"column:designer"`
	URI      string `gorm:"column:uri;not null"`
}

func (garmentModel) TableName() string { return "garments" }

type compositionModel struct {
	GarmentID  uint64 `gorm:"column:garment_id;primaryKey"`
	Position   int    `gorm:"column:position;primaryKey"`
	Catalog    string `gorm:"column:catalog;not null"`
	MaterialID uint64 `gorm:"column:material_id;not null"`
	Amount     uint64 `gorm:"column:amount;not null"`
}

func (compositionModel) TableName() string { return "garment_composition" }

type counterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value uint64 `gorm:"column:value;not null"`
}

func (counterModel) TableName() string { return "ledger_counters" }

// Repository is the PostgreSQL garment ledger. A mint writes the garment row,
// its ordered composition rows, and the counter bump in one transaction.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) MintGarment(ctx context.Context, input ports.MintInput) (entities.Garment, error) {
	var garment entities.Garment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := lockCounter(tx, counterGarments)
		if err != nil {
			return err
		}

		row := garmentModel{
			ID:       next,
			Owner:    input.Recipient,
			Designer: input.Designer,
			URI:      input.URI,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for i, entry := range input.Entries {
			compositionRow := compositionModel{
				GarmentID:  next,
				Position:   i,
				Catalog:    entry.Catalog,
				MaterialID: entry.MaterialID,
				Amount:     entry.Amount,
			}
			if err := tx.Create(&compositionRow).Error; err != nil {
				return err
			}
		}

		if err := bumpCounter(tx, counterGarments, next+1); err != nil {
			return err
		}

		garment = entities.Garment{
			ID:       next,
			Owner:    input.Recipient,
			Designer: input.Designer,
			URI:      input.URI,
		}
		return nil
	})
	if err != nil {
		return entities.Garment{}, err
	}
	return garment, nil
}

func (r *Repository) Garment(ctx context.Context, garmentID uint64) (entities.Garment, error) {
	var row garmentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", garmentID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Garment{}, fmt.Errorf("garment %d: %w", garmentID, domainerrors.ErrUnknownGarment)
		}
		return entities.Garment{}, err
	}
	return entities.Garment{
		ID:       row.ID,
		Owner:    row.Owner,
		Designer: row.Designer,
		URI:      row.URI,
	}, nil
}

func (r *Repository) MaterialBalance(ctx context.Context, garmentID uint64, catalog string, materialID uint64) (uint64, error) {
	var rows []compositionModel
	err := r.db.WithContext(ctx).
		Where("garment_id = ? AND catalog = ? AND material_id = ?", garmentID, catalog, materialID).
		Find(&rows).
		Error
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, row := range rows {
		total += row.Amount
	}
	return total, nil
}

func (r *Repository) MaterialIDsOn(ctx context.Context, garmentID uint64, catalog string) ([]uint64, error) {
	var rows []compositionModel
	err := r.db.WithContext(ctx).
		Where("garment_id = ? AND catalog = ? AND amount > 0", garmentID, catalog).
		Order("position ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uint64]struct{}, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.MaterialID]; dup {
			continue
		}
		seen[row.MaterialID] = struct{}{}
		ids = append(ids, row.MaterialID)
	}
	return ids, nil
}

func lockCounter(tx *gorm.DB, name string) (uint64, error) {
	var row counterModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = counterModel{Name: name, Value: 1}
		if err := tx.Create(&row).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Value, nil
}

func bumpCounter(tx *gorm.DB, name string, next uint64) error {
	return tx.Model(&counterModel{}).
		Where("name = ?", name).
		Update("value", next).
		Error
}
