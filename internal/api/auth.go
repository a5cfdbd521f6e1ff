package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrconsole/internal/models"
	"hrconsole/internal/session"
)

// AuthClient is the auth facade: credential exchange, token lifecycle and
// current-user resolution. The console ships with the local stand-in below;
// a remote implementation can replace it behind this interface.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Accepted credential pair of the local stand-in. This is NOT production
// authentication: the pair is fixed, and tokens are signed with a fixed
// development secret. Swapping in a real credential exchange is a deliberate
// design decision, not a drop-in upgrade.
const (
	localAuthEmail    = "admin@hrms.com"
	localAuthPassword = "admin123"
	localAuthName     = "HR Administrator"
	localAuthRole     = "admin"
)

var localAuthSecret = []byte("hrconsole-local-dev-secret")

// LocalAuth is a local stand-in for the auth backend. Login accepts exactly
// one hardcoded credential pair and synthesizes a signed token; any other
// pair fails with a structured 401-shaped error carrying
// detail.code = "INVALID_CREDENTIALS".
type LocalAuth struct {
	session session.Store

	// onUnauthorized mirrors the client core's 401 reaction for the token
	// lifecycle calls (Refresh/CurrentUser with a dead session).
	onUnauthorized func()

	now func() time.Time // test seam
}

func NewLocalAuth(sess session.Store, onUnauthorized func()) *LocalAuth {
	return &LocalAuth{session: sess, onUnauthorized: onUnauthorized, now: time.Now}
}

func (a *LocalAuth) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(localAuthEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(localAuthPassword)) == 1
	if !emailOK || !passOK {
		return nil, a.failure("authentication_failed", "Invalid email or password", "INVALID_CREDENTIALS", false, ErrInvalidCredentials)
	}

	token, err := a.mintToken(email)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}
	if err := a.session.Set(token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        models.User{Email: email, FullName: localAuthName, Role: localAuthRole},
	}, nil
}

func (a *LocalAuth) Logout(ctx context.Context) error {
	return a.session.Clear()
}

// Refresh reissues a token for the current session. A present-but-invalid
// token behaves like any other 401: the session is cleared and the
// re-authentication reaction fires. With no stored token there is nothing
// to clear, so the call just fails unauthorized.
func (a *LocalAuth) Refresh(ctx context.Context) (*models.LoginResponse, error) {
	user, hadToken, err := a.sessionUser()
	if err != nil {
		// Only a present-but-dead token replays the 401 side effect;
		// with no session there is nothing to clear.
		return nil, a.failure("invalid_token", "Session expired. Please login again.", "INVALID_TOKEN", hadToken, ErrUnauthorized)
	}
	token, err := a.mintToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}
	if err := a.session.Set(token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &models.LoginResponse{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

func (a *LocalAuth) CurrentUser(ctx context.Context) (*models.User, error) {
	user, hadToken, err := a.sessionUser()
	if err != nil {
		return nil, a.failure("invalid_token", "Session expired. Please login again.", "INVALID_TOKEN", hadToken, ErrUnauthorized)
	}
	return user, nil
}

// sessionUser resolves the operator from the stored token. The bool
// reports whether a token was present at all, so callers can decide
// whether the 401 side effect applies.
func (a *LocalAuth) sessionUser() (*models.User, bool, error) {
	raw, err := a.session.Get()
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, ErrUnauthorized
	}
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return localAuthSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, true, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return nil, true, ErrUnauthorized
	}
	return &models.User{Email: email, FullName: localAuthName, Role: localAuthRole}, true, nil
}

func (a *LocalAuth) mintToken(email string) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"name": localAuthName,
		"role": localAuthRole,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(localAuthSecret)
}

// failure builds the structured 401-shaped error. When clear is set the
// session side effect of a real 401 is replayed: the store is cleared and
// the re-authentication reaction fires once.
func (a *LocalAuth) failure(errCode, message, code string, clear bool, sentinel error) *Error {
	body, _ := json.Marshal(models.ErrorBody{Detail: models.ErrorDetail{
		Error:   errCode,
		Message: message,
		Code:    code,
	}})
	if clear {
		_ = a.session.Clear()
		if a.onUnauthorized != nil {
			a.onUnauthorized()
		}
	}
	return &Error{
		Status:      http.StatusUnauthorized,
		UserMessage: NormalizeMessage(http.StatusUnauthorized, "Unauthorized", body),
		Body:        body,
		err:         sentinel,
	}
}
