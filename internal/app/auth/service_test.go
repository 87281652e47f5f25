package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  map[string]*user.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*user.User{}}
}

func (f *fakeUserRepository) Create(u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserRepository) GetByEmail(email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByID(id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepository) Update(id string, updates map[string]interface{}) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := updates["role"]; ok {
		u.Role = v.(string)
	}
	if v, ok := updates["password_hash"]; ok {
		u.PasswordHash = v.(string)
	}
	return nil
}

func (f *fakeUserRepository) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
}

func newTestService() (Service, *fakeUserRepository, *token.Manager) {
	repo := newFakeUserRepository()
	tokens := token.NewManager("test-secret-0123456789abcdef", time.Hour)
	return NewService(repo, tokens), repo, tokens
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestService()

	account, err := svc.Register(RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, authz.RoleUser, account.Role)

	stored := repo.users[account.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")))
	assert.NotEqual(t, "password1", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{Email: "alice@example.com", Name: "Alice2", Password: "password2"})
	requireKind(t, err, apperr.KindConflict)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newTestService()

	account, err := svc.Register(RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "password1"})
	require.NoError(t, err)

	resp, err := svc.Login(LoginRequest{Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, account.ID, resp.User.ID)

	claims, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, authz.RoleUser, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Login(LoginRequest{Email: "alice@example.com", Password: "password2"})
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(LoginRequest{Email: "ghost@example.com", Password: "password1"})
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestMe(t *testing.T) {
	svc, _, _ := newTestService()

	account, err := svc.Register(RegisterRequest{Email: "alice@example.com", Name: "Alice", Password: "password1"})
	require.NoError(t, err)

	me, err := svc.Me(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.False(t, me.CreatedAt.IsZero())

	_, err = svc.Me("ghost")
	requireKind(t, err, apperr.KindNotFound)
}
