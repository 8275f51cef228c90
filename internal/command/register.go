package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// RegisterRequest is the request for the Register command.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Register creates an account and then logs into it.
type Register struct {
	Registerer datasources.AccountRegisterer
	Login      Command[LoginRequest, domain.User]
}

// NewRegister creates a properly initialized Register command.
func NewRegister(registerer datasources.AccountRegisterer, login Command[LoginRequest, domain.User]) *Register {
	return &Register{
		Registerer: registerer,
		Login:      login,
	}
}

func (c *Register) Execute(ctx context.Context, req RegisterRequest) (domain.User, error) {
	created, err := c.Registerer.Register(ctx, domain.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("registering account: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "registered account", "user_id", created.ID)

	user, err := c.Login.Execute(ctx, LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return domain.User{}, fmt.Errorf("logging in after registration: %w", err)
	}
	return user, nil
}
