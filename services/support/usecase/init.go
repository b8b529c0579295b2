package usecase

import (
	"time"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/support"
)

// SupportUC implements the support ticket use case
type SupportUC struct {
	supportRepo support.SupportRepo
	now         func() time.Time
}

// NewSupportUC creates a new support use case
func NewSupportUC(supportRepo support.SupportRepo) *SupportUC {
	return &SupportUC{
		supportRepo: supportRepo,
		now:         models.Now,
	}
}
