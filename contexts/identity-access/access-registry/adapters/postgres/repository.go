package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"atelier/contexts/identity-access/access-registry/domain/entities"
	domainerrors "atelier/contexts/identity-access/access-registry/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type grantModel struct {
	Address   string    `gorm:"column:address;primaryKey"`
	Role      string    `gorm:"column:role;primaryKey"`
	GrantedBy string    `gorm:"column:granted_by"`
	GrantedAt time.Time `gorm:"column:granted_at"`
}

func (grantModel) TableName() string { return "access_grants" }

// Repository persists grants in PostgreSQL. Revoke runs inside a transaction
// so the last-admin check and the delete commit together.
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

func (r *Repository) Grant(ctx context.Context, grant entities.Grant) error {
	row := grantModel{
		Address:   grant.Address,
		Role:      string(grant.Role),
		GrantedBy: grant.GrantedBy,
		GrantedAt: grant.GrantedAt.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

func (r *Repository) Revoke(ctx context.Context, address string, role entities.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if role == entities.RoleAdmin {
			var admins []grantModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("role = ?", string(entities.RoleAdmin)).
				Find(&admins).
				Error
			if err != nil {
				return err
			}
			if len(admins) == 1 && admins[0].Address == address {
				return domainerrors.ErrLastAdmin
			}
		}
		return tx.
			Where("address = ? AND role = ?", address, string(role)).
			Delete(&grantModel{}).
			Error
	})
}

func (r *Repository) Has(ctx context.Context, address string, role entities.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&grantModel{}).
		Where("address = ? AND role = ?", address, string(role)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListGrants(ctx context.Context, address string) ([]entities.Grant, error) {
	var rows []grantModel
	err := r.db.WithContext(ctx).
		Where("address = ?", address).
		Order("role ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Grant, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Grant{
			Address:   row.Address,
			Role:      entities.Role(row.Role),
			GrantedBy: row.GrantedBy,
			GrantedAt: row.GrantedAt,
		})
	}
	return items, nil
}

// SystemClock satisfies the clock port for postgres wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
