package usecase

import (
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/services/auth"
)

// AuthUC implements the auth use case
type AuthUC struct {
	authGW     auth.AuthGW
	store      session.Store
	tokens     *session.Tokens
	codeSender auth.CodeSender
}

// NewAuthUC creates a new auth use case. A nil codeSender only logs verification codes.
func NewAuthUC(authGW auth.AuthGW, store session.Store, codeSender auth.CodeSender) *AuthUC {
	return &AuthUC{
		authGW:     authGW,
		store:      store,
		tokens:     session.NewTokens(store),
		codeSender: codeSender,
	}
}
