package models

import "time"

type ProposalModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ClientID  string `gorm:"type:uuid"`
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BillingPeriodModel struct {
	ID       string    `gorm:"primaryKey;type:uuid"`
	StartsAt time.Time `gorm:"index:idx_billing_period"`
	EndsAt   time.Time `gorm:"index:idx_billing_period"`
}
