package seeder

import (
	"fmt"
	"testing"

	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
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

func testConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-password",
		AdminName:     "Admin",
	}
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	repo := newFakeUserRepository()
	seed := NewSeeder(repo, testConfig(), zap.NewNop())

	require.NoError(t, seed.EnsureAdmin())

	created, err := repo.GetByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleAdmin, created.Role)
	assert.Equal(t, "Admin", created.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin-password")))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := newFakeUserRepository()
	seed := NewSeeder(repo, testConfig(), zap.NewNop())

	require.NoError(t, seed.EnsureAdmin())
	first, err := repo.GetByEmail("admin@example.com")
	require.NoError(t, err)

	require.NoError(t, seed.EnsureAdmin())
	second, err := repo.GetByEmail("admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "repeated runs must keep the same record")
	assert.Len(t, repo.users, 1)
	assert.Equal(t, authz.RoleAdmin, second.Role)
}

func TestEnsureAdminReconcilesDemotedAccount(t *testing.T) {
	repo := newFakeUserRepository()
	require.NoError(t, repo.Create(&user.User{
		Email:        "admin@example.com",
		Name:         "Someone Else",
		PasswordHash: "stale-hash",
		Role:         authz.RoleUser,
	}))

	seed := NewSeeder(repo, testConfig(), zap.NewNop())
	require.NoError(t, seed.EnsureAdmin())

	reconciled, err := repo.GetByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleAdmin, reconciled.Role)
	assert.Equal(t, "Admin", reconciled.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reconciled.PasswordHash), []byte("admin-password")))
	assert.Len(t, repo.users, 1)
}
