package models

import (
	"github.com/ledgerline/backend/internal/domain/identity"
)

type UserModel struct {
	AggregateModel
	Username     string  `gorm:"size:64;not null;uniqueIndex"`
	DisplayName  string  `gorm:"size:255"`
	Email        *string `gorm:"size:255;uniqueIndex"`
	PasswordHash string  `gorm:"size:255;not null"`
	Active       bool    `gorm:"not null;default:true"`
	Superuser    bool    `gorm:"not null;default:false"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) ToDomain() *identity.User {
	email := ""
	if m.Email != nil {
		email = *m.Email
	}
	return &identity.User{
		BaseAggregateRoot: m.toAggregateRoot(),
		Username:          m.Username,
		DisplayName:       m.DisplayName,
		Email:             email,
		PasswordHash:      m.PasswordHash,
		Active:            m.Active,
		Superuser:         m.Superuser,
	}
}

func UserModelFromDomain(user *identity.User) *UserModel {
	// Empty emails are stored as NULL so the unique index only
	// constrains addresses that are actually set.
	var email *string
	if user.Email != "" {
		email = &user.Email
	}
	return &UserModel{
		AggregateModel: aggregateModelFrom(user.BaseAggregateRoot),
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		Email:          email,
		PasswordHash:   user.PasswordHash,
		Active:         user.Active,
		Superuser:      user.Superuser,
	}
}
