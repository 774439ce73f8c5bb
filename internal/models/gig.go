package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gig struct {
	ID           string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FreelancerID string          `gorm:"type:varchar(36);index;not null" json:"freelancerId"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Skills       []string        `gorm:"type:text;serializer:json" json:"skills"`
	Images       []string        `gorm:"type:text;serializer:json" json:"images"`
	Views        int             `gorm:"not null;default:0" json:"views"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// GigPatch carries the gig fields to change.
type GigPatch struct {
	FreelancerID *string          `json:"freelancerId"`
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Skills       Field[[]string]  `json:"skills"`
	Images       Field[[]string]  `json:"images"`
}

// Apply merges the patch into the gig.
func (g *Gig) Apply(patch GigPatch) {
	applyValue(&g.FreelancerID, patch.FreelancerID)
	applyValue(&g.Title, patch.Title)
	applyValue(&g.Description, patch.Description)
	applyValue(&g.Price, patch.Price)
	applySlice(&g.Skills, patch.Skills)
	applySlice(&g.Images, patch.Images)
}

func (g Gig) Clone() Gig {
	g.Skills = cloneSlice(g.Skills)
	g.Images = cloneSlice(g.Images)
	return g
}
