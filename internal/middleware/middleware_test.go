package middleware

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"SkinSense-Backend/pkg/jwt"
	"SkinSense-Backend/pkg/user"
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeJWTService struct {
	claims domain.AuthClaims
	err    error
}

func (f *fakeJWTService) GenerateToken(domain.AuthClaims, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeJWTService) ValidateToken(string) (*jwtv4.Token, error) {
	return nil, f.err
}

func (f *fakeJWTService) GetClaimsByToken(string) (domain.AuthClaims, error) {
	if f.err != nil {
		return domain.AuthClaims{}, f.err
	}
	return f.claims, nil
}

type fakeUserService struct {
	user *entities.User
	err  error
}

func (f *fakeUserService) EnsureUser(context.Context, domain.AuthClaims) (*entities.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) GetUserByID(context.Context, string) (domain.UserResponse, error) {
	return domain.UserResponse{}, nil
}

func (f *fakeUserService) UpdateProfile(context.Context, string, domain.UpdateUserRequest) (domain.UserResponse, error) {
	return domain.UserResponse{}, nil
}

func whoamiApp(t *testing.T, handler fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/whoami", handler, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.SendString(userID)
	})
	return app
}

var _ jwt.JWTService = (*fakeJWTService)(nil)
var _ user.UserService = (*fakeUserService)(nil)

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	m := NewMiddleware()
	app := whoamiApp(t, m.AuthMiddleware(&fakeJWTService{}, &fakeUserService{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without a bearer token, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	m := NewMiddleware()
	app := whoamiApp(t, m.AuthMiddleware(&fakeJWTService{err: domain.ErrTokenInvalid}, &fakeUserService{}))

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for an invalid token, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	id := uuid.New()
	m := NewMiddleware()
	app := whoamiApp(t, m.AuthMiddleware(
		&fakeJWTService{claims: domain.AuthClaims{UserID: id.String(), Email: "jamie@example.com"}},
		&fakeUserService{user: &entities.User{ID: id, Email: "jamie@example.com"}},
	))

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != id.String() {
		t.Fatalf("expected user_id %q in locals, got %q", id.String(), string(body))
	}
}

func TestOptionalAuthMiddlewareAllowsAnonymous(t *testing.T) {
	m := NewMiddleware()
	app := whoamiApp(t, m.OptionalAuthMiddleware(&fakeJWTService{}, &fakeUserService{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("anonymous request should pass, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "" {
		t.Fatalf("expected empty user_id for anonymous caller, got %q", string(body))
	}
}

func TestOptionalAuthMiddlewareSwallowsBadToken(t *testing.T) {
	m := NewMiddleware()
	app := whoamiApp(t, m.OptionalAuthMiddleware(&fakeJWTService{err: domain.ErrTokenExpired}, &fakeUserService{}))

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bad token should degrade to anonymous, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "" {
		t.Fatalf("expected empty user_id, got %q", string(body))
	}
}

func TestOptionalAuthMiddlewareResolvesIdentity(t *testing.T) {
	id := uuid.New()
	m := NewMiddleware()
	app := whoamiApp(t, m.OptionalAuthMiddleware(
		&fakeJWTService{claims: domain.AuthClaims{UserID: id.String()}},
		&fakeUserService{user: &entities.User{ID: id}},
	))

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != id.String() {
		t.Fatalf("expected user_id %q, got %q", id.String(), string(body))
	}
}
