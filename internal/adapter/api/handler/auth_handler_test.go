package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilicity/internal/adapter/api"
	"mobilicity/internal/domain/entity"
	"mobilicity/internal/usecase"
	apperrors "mobilicity/pkg/errors"
)

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = "user-1"
	}
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *memUserRepo) GetByEmailAndMethod(ctx context.Context, email, method string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.Method == method {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *memUserRepo) Delete(ctx context.Context, id string) error         { return nil }
func (r *memUserRepo) ListByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

type fixedIssuer struct{}

func (fixedIssuer) Generate(email string) (string, error) { return "signed-" + email, nil }

func newAuthHandlerFixture(repo *memUserRepo) (*echo.Echo, *AuthHandler) {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e, NewAuthHandler(usecase.NewAuthUseCase(repo, fixedIssuer{}))
}

func TestRegisterDuplicateReturnsAckFalse(t *testing.T) {
	repo := &memUserRepo{}
	e, h := newAuthHandlerFixture(repo)

	body := `{"email":"alice@example.com","name":"Alice","method":"password"}`

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Register(e.NewContext(req, rec)))

	// The conflict travels in a 200 body, not an HTTP error status.
	assert.Equal(t, http.StatusOK, rec.Code)

	var ack struct {
		Acknowledged bool   `json:"acknowledged"`
		Message      string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.False(t, ack.Acknowledged)
	assert.NotEmpty(t, ack.Message)
	assert.Len(t, repo.users, 1)
}

func TestIssueTokenKnownEmail(t *testing.T) {
	repo := &memUserRepo{users: []*entity.User{
		{ID: "u1", Email: "alice@example.com", Method: entity.MethodPassword, Role: entity.RoleBuyer},
	}}
	e, h := newAuthHandlerFixture(repo)

	req := httptest.NewRequest(http.MethodGet, "/jwt?email=alice@example.com", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.IssueToken(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-alice@example.com")
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	e, h := newAuthHandlerFixture(&memUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/jwt?email=ghost@example.com", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.IssueToken(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.AccessToken)
}

func TestCheckRoleUnknownEmail(t *testing.T) {
	e, h := newAuthHandlerFixture(&memUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/users/admin/ghost@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")
	require.NoError(t, h.CheckAdmin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAdmin": false}`, rec.Body.String())
}
