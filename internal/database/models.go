package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account in the system. The gorm ID doubles as the owner id
// carried in JWT claims.
type User struct {
	gorm.Model
	Email        string      `gorm:"uniqueIndex;size:255"`
	DisplayName  string      `gorm:"size:128"`
	PasswordHash string      `gorm:"size:255"`
	Plans        []SavedPlan `gorm:"constraint:OnDelete:CASCADE"`
}

// SavedPlan wraps a generated interview plan for persistence. Input and
// Content store the original request and the full structured plan as
// opaque JSON documents; RawText is the flattened rendition saved
// verbatim alongside them. PlanID is the composer-assigned opaque id.
type SavedPlan struct {
	gorm.Model
	PlanID          string         `gorm:"uniqueIndex;size:64"`
	JobTitle        string         `gorm:"size:255"`
	CompanyName     string         `gorm:"size:255"`
	Locale          string         `gorm:"size:8"`
	Input           datatypes.JSON `gorm:"type:jsonb"`
	Content         datatypes.JSON `gorm:"type:jsonb"`
	RawText         string         `gorm:"type:text"`
	PremiumUnlocked bool           `gorm:"default:false"`
	ExportKey       string         `gorm:"size:512"`
	UserID          uint           `gorm:"index"`
	User            User           `gorm:"constraint:OnDelete:CASCADE"`
}

// Payment record statuses. The webhook moves a record from pending to
// paid or failed out-of-band; premium unlock only trusts paid.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusCanceled = "canceled"
)

// PaymentRecord tracks one checkout attempt for one saved plan.
type PaymentRecord struct {
	gorm.Model
	SessionID string `gorm:"uniqueIndex;size:255"`
	PlanID    string `gorm:"index;size:64"`
	UserID    uint   `gorm:"index"`
	Amount    int64
	Currency  string `gorm:"size:8"`
	Status    string `gorm:"size:32"`
}
