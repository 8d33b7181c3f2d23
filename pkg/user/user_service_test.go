package user

import (
	"context"
	"testing"

	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/punam06/chatbot-inovatex/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	usersByID    map[string]*entities.User
	usersByEmail map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByID:    make(map[string]*entities.User),
		usersByEmail: make(map[string]*entities.User),
	}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	copied := *user
	r.usersByID[user.ID.String()] = &copied
	r.usersByEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := r.usersByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	copied := *user
	r.usersByID[user.ID.String()] = &copied
	r.usersByEmail[user.Email] = &copied
	return nil
}

func newTestUserService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayu", registered.Name)
	assert.False(t, registered.IsVerified)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ayu@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Impostor",
		Email:    "ayu@example.com",
		Password: "othersecret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ayu@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsinvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsinvalid)
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc, repo := newTestUserService()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	err = svc.UpdateUser(context.Background(), domain.UpdateUserRequest{
		Preferences: "vegetarian",
	}, registered.ID)
	require.NoError(t, err)

	stored, err := repo.GetUserByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayu", stored.Name)
	assert.Equal(t, "vegetarian", stored.Preferences)
}
