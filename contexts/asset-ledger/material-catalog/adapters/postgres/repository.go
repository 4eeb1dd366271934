package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atelier/contexts/asset-ledger/material-catalog/domain/entities"
	domainerrors "atelier/contexts/asset-ledger/material-catalog/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const counterMaterials = "materials"

type materialModel struct {
	ID  uint64 `gorm:"column:id;primaryKey"`
	URI string `gorm:"column:uri;not null"`
}

func (materialModel) TableName() string { return "materials" }

type balanceModel struct {
	Holder     string `gorm:"column:holder;primaryKey"`
	MaterialID uint64 `gorm:"column:material_id;primaryKey"`
	Quantity   uint64 `gorm:"column:quantity;not null"`
}

func (balanceModel) TableName() string { return "material_balances" }

type counterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value uint64 `gorm:"column:value;not null"`
}

func (counterModel) TableName() string { return "ledger_counters" }

// Repository is the PostgreSQL material ledger. Creations run inside one
// transaction holding a row lock on the id counter, so committed ids stay
// sequential and gap-free and aborted calls never move the counter.
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

func (r *Repository) CreateMaterials(ctx context.Context, uris []string) ([]entities.Material, error) {
	if len(uris) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}

	var materials []entities.Material
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := lockCounter(tx, counterMaterials)
		if err != nil {
			return err
		}

		rows := make([]materialModel, 0, len(uris))
		materials = make([]entities.Material, 0, len(uris))
		for i, uri := range uris {
			id := next + uint64(i)
			rows = append(rows, materialModel{ID: id, URI: uri})
			materials = append(materials, entities.Material{ID: id, URI: uri})
		}
		if err := tx.Create(&rows).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("material id collision: %w", err)
			}
			return err
		}
		return bumpCounter(tx, counterMaterials, next+uint64(len(uris)))
	})
	if err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *Repository) Mint(ctx context.Context, holder string, materialID uint64, amount uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMaterial(tx, materialID); err != nil {
			return err
		}
		row := balanceModel{Holder: holder, MaterialID: materialID, Quantity: amount}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "holder"}, {Name: "material_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("material_balances.quantity + ?", amount)}),
		}).Create(&row).Error
	})
}

func (r *Repository) URI(ctx context.Context, materialID uint64) (string, error) {
	var row materialModel
	err := r.db.WithContext(ctx).
		Where("id = ?", materialID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("material %d: %w", materialID, domainerrors.ErrUnknownMaterial)
		}
		return "", err
	}
	return row.URI, nil
}

func (r *Repository) BalanceOf(ctx context.Context, holder string, materialID uint64) (uint64, error) {
	var row balanceModel
	err := r.db.WithContext(ctx).
		Where("holder = ? AND material_id = ?", holder, materialID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.Quantity, nil
}

func (r *Repository) DebitBatch(ctx context.Context, holder string, pairs []entities.MaterialAmount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		required := make(map[uint64]uint64, len(pairs))
		for _, pair := range pairs {
			if err := requireMaterial(tx, pair.MaterialID); err != nil {
				return err
			}
			if pair.Amount == 0 {
				return fmt.Errorf("material %d: %w", pair.MaterialID, domainerrors.ErrInvalidAmount)
			}
			required[pair.MaterialID] += pair.Amount
		}

		for materialID, amount := range required {
			var row balanceModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("holder = ? AND material_id = ?", holder, materialID).
				First(&row).
				Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("material %d: need %d, hold 0: %w",
					materialID, amount, domainerrors.ErrInsufficientBalance)
			}
			if err != nil {
				return err
			}
			if row.Quantity < amount {
				return fmt.Errorf("material %d: need %d, hold %d: %w",
					materialID, amount, row.Quantity, domainerrors.ErrInsufficientBalance)
			}
			result := tx.Model(&balanceModel{}).
				Where("holder = ? AND material_id = ?", holder, materialID).
				Update("quantity", row.Quantity-amount)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

func requireMaterial(tx *gorm.DB, materialID uint64) error {
	var count int64
	if err := tx.Model(&materialModel{}).Where("id = ?", materialID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("material %d: %w", materialID, domainerrors.ErrUnknownMaterial)
	}
	return nil
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
