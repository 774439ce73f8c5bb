package models

import "github.com/shopspring/decimal"

type Profile struct {
	ID         string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID     string           `gorm:"type:varchar(36);index;not null" json:"userId"`
	FirstName  string           `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName   string           `gorm:"type:varchar(100);not null" json:"lastName"`
	Country    string           `gorm:"type:varchar(100);not null" json:"country"`
	Phone      string           `gorm:"type:varchar(50);not null" json:"phone"`
	Bio        *string          `gorm:"type:text" json:"bio"`
	Skills     []string         `gorm:"type:text;serializer:json" json:"skills"`
	HourlyRate *decimal.Decimal `gorm:"type:decimal(12,2)" json:"hourlyRate"`
	Avatar     *string          `gorm:"type:text" json:"avatar"`
	Portfolio  *string          `gorm:"type:text" json:"portfolio"`
	Verified   bool             `gorm:"not null;default:false" json:"verified"`
}

// ProfilePatch carries the profile fields to change.
type ProfilePatch struct {
	UserID     *string                `json:"userId"`
	FirstName  *string                `json:"firstName"`
	LastName   *string                `json:"lastName"`
	Country    *string                `json:"country"`
	Phone      *string                `json:"phone"`
	Bio        Field[string]          `json:"bio"`
	Skills     Field[[]string]        `json:"skills"`
	HourlyRate Field[decimal.Decimal] `json:"hourlyRate"`
	Avatar     Field[string]          `json:"avatar"`
	Portfolio  Field[string]          `json:"portfolio"`
	Verified   *bool                  `json:"verified"`
}

// Normalize applies creation defaults: empty optional text becomes null.
func (p *Profile) Normalize() {
	p.Bio = nilIfEmpty(p.Bio)
	p.Avatar = nilIfEmpty(p.Avatar)
	p.Portfolio = nilIfEmpty(p.Portfolio)
}

// Apply merges the patch into the profile.
func (p *Profile) Apply(patch ProfilePatch) {
	applyValue(&p.UserID, patch.UserID)
	applyValue(&p.FirstName, patch.FirstName)
	applyValue(&p.LastName, patch.LastName)
	applyValue(&p.Country, patch.Country)
	applyValue(&p.Phone, patch.Phone)
	applyPtr(&p.Bio, patch.Bio)
	applySlice(&p.Skills, patch.Skills)
	applyPtr(&p.HourlyRate, patch.HourlyRate)
	applyPtr(&p.Avatar, patch.Avatar)
	applyPtr(&p.Portfolio, patch.Portfolio)
	applyValue(&p.Verified, patch.Verified)
}

func (p Profile) Clone() Profile {
	p.Bio = clonePtr(p.Bio)
	p.Skills = cloneSlice(p.Skills)
	p.HourlyRate = clonePtr(p.HourlyRate)
	p.Avatar = clonePtr(p.Avatar)
	p.Portfolio = clonePtr(p.Portfolio)
	return p
}
