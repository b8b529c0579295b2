package toast

import (
	"context"
	"time"

	"github.com/troski/troski/internal/pkg/models"
)

// ToastUC defines the toast operations of the session in ctx
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/troski/troski/services/toast ToastUC
type ToastUC interface {
	Show(ctx context.Context, message string, toastType models.ToastType, duration time.Duration) string
	Dismiss(ctx context.Context, id string) bool
	List(ctx context.Context) []models.Toast
	Subscribe(ctx context.Context) (<-chan models.ToastEvent, func())
}
