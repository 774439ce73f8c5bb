package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a job posted by a client.
type Project struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientID    string          `gorm:"type:varchar(36);index;not null" json:"clientId"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Budget      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"budget"`
	Skills      []string        `gorm:"type:text;serializer:json" json:"skills"`
	Deadline    *time.Time      `json:"deadline"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ProjectPatch struct {
	ClientID    *string          `json:"clientId"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Budget      *decimal.Decimal `json:"budget"`
	Skills      Field[[]string]  `json:"skills"`
	Deadline    Field[time.Time] `json:"deadline"`
}

func (p *Project) Apply(patch ProjectPatch) {
	applyValue(&p.ClientID, patch.ClientID)
	applyValue(&p.Title, patch.Title)
	applyValue(&p.Description, patch.Description)
	applyValue(&p.Budget, patch.Budget)
	applySlice(&p.Skills, patch.Skills)
	applyPtr(&p.Deadline, patch.Deadline)
}

func (p Project) Clone() Project {
	p.Skills = cloneSlice(p.Skills)
	p.Deadline = clonePtr(p.Deadline)
	return p
}
