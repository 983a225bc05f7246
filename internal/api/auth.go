package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	applog "github.com/girijakangutkar/Expense-report-client/internal/log"
	"github.com/girijakangutkar/Expense-report-client/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Login authenticates with the service and installs the issued credential
// into the session.
func (c *Client) Login(ctx context.Context, email, password string) (session.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return session.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp, false); err != nil {
		return session.User{}, err
	}
	if err := c.session.Set(resp.Token, resp.User); err != nil {
		return session.User{}, fmt.Errorf("storing session: %w", err)
	}

	slog.InfoContext(ctx, "Logged in",
		applog.FieldComponent, applog.ComponentAPI,
		applog.FieldOperation, applog.OpLogin,
		applog.FieldUser, resp.User.Email)
	return resp.User, nil
}

// Register creates an account and installs the issued credential into the
// session, mirroring the login flow.
func (c *Client) Register(ctx context.Context, name, email, password string) (session.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return session.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if len(password) < 6 {
		return session.User{}, fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", registerRequest{Name: name, Email: email, Password: password}, &resp, false); err != nil {
		return session.User{}, err
	}
	if err := c.session.Set(resp.Token, resp.User); err != nil {
		return session.User{}, fmt.Errorf("storing session: %w", err)
	}
	return resp.User, nil
}
