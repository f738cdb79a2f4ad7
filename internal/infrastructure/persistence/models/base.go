// Package models defines the gorm persistence models and their mappings
// to and from domain aggregates.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/shared"
)

// BaseModel carries the columns shared by every table.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// AggregateModel adds the optimistic-locking version column.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

func (m *BaseModel) toBaseEntity() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *AggregateModel) toAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.toBaseEntity(),
		Version:    m.Version,
	}
}

func aggregateModelFrom(root shared.BaseAggregateRoot) AggregateModel {
	return AggregateModel{
		BaseModel: BaseModel{
			ID:        root.ID,
			CreatedAt: root.CreatedAt,
			UpdatedAt: root.UpdatedAt,
		},
		Version: root.Version,
	}
}
