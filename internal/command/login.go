package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// LoginRequest is the request for the Login command.
type LoginRequest struct {
	Email    string
	Password string
}

// Login exchanges credentials for an access token and records the authenticated user.
type Login struct {
	Authenticator datasources.Authenticator
	Profile       datasources.OwnProfileGetter
	Session       datasources.SessionWriter
}

// NewLogin creates a properly initialized Login command.
func NewLogin(
	authenticator datasources.Authenticator,
	profile datasources.OwnProfileGetter,
	session datasources.SessionWriter,
) *Login {
	return &Login{
		Authenticator: authenticator,
		Profile:       profile,
		Session:       session,
	}
}

// Execute logs in. If the profile lookup fails the session is cleared again,
// so a token is never kept without the user it belongs to.
func (c *Login) Execute(ctx context.Context, req LoginRequest) (domain.User, error) {
	token, err := c.Authenticator.Login(ctx, req.Email, req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("logging in: %w", err)
	}

	c.Session.SetAccessToken(token)

	user, err := c.Profile.GetOwnProfile(ctx)
	if err != nil {
		c.Session.Clear()
		return domain.User{}, fmt.Errorf("fetching own profile: %w", err)
	}

	c.Session.SetAuthUser(user)

	domain.LoggerFromContext(ctx).InfoContext(ctx, "logged in", "user_id", user.ID)
	return user, nil
}

// Logout forgets the session and evicts every loaded target, so no vote sets survive
// for a user who is no longer authenticated.
type Logout struct {
	Session datasources.SessionWriter
	State   datasources.StateResetter
}

// NewLogout creates a properly initialized Logout command.
func NewLogout(session datasources.SessionWriter, state datasources.StateResetter) *Logout {
	return &Logout{
		Session: session,
		State:   state,
	}
}

func (c *Logout) Execute(ctx context.Context, _ Empty) (Empty, error) {
	c.Session.Clear()
	c.State.Reset()

	domain.LoggerFromContext(ctx).InfoContext(ctx, "logged out")
	return Empty{}, nil
}
