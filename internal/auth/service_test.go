package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgAuth "github.com/sewakita/sewakita-backend/pkg/auth"
	"github.com/sewakita/sewakita-backend/pkg/auth/session"
	"github.com/sewakita/sewakita-backend/pkg/config"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail    map[string]*models.User
	byID       map[uuid.UUID]*models.User
	created    []*models.User
	createErr  error
	lastLogins map[uuid.UUID]time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    map[string]*models.User{},
		byID:       map[uuid.UUID]*models.User{},
		lastLogins: map[uuid.UUID]time.Time{},
	}
}

func (r *stubUserRepo) add(user *models.User) {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, user)
	r.add(user)
	return user, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.lastLogins[id] = at
	return nil
}

type stubSessionManager struct {
	generated map[string]string
	revoked   []string
	rotateErr error
}

func newStubSessionManager() *stubSessionManager {
	return &stubSessionManager{generated: map[string]string{}}
}

func (m *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	token := "refresh-" + accessID
	m.generated[accessID] = token
	return token, nil
}

func (m *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if m.rotateErr != nil {
		return "", "", m.rotateErr
	}
	stored, ok := m.generated[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(m.generated, oldAccessID)
	newAccessID := session.NewAccessID()
	token := "refresh-" + newAccessID
	m.generated[newAccessID] = token
	return newAccessID, token, nil
}

func (m *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	m.revoked = append(m.revoked, accessID)
	delete(m.generated, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "sewakita-test",
		ExpirationMinutes: 15,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T, repo *stubUserRepo, sessions *stubSessionManager) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	require.NoError(t, err)
	return svc
}

func seedCustomer(t *testing.T, repo *stubUserRepo, email, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Siti Rahma",
		Email:        email,
		PasswordHash: hash,
		Role:         enums.RoleCustomer,
	}
	repo.add(user)
	return user
}

func TestRegisterCreatesCustomerSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Siti Rahma",
		Email:    "Siti@Example.com",
		Password: "rahasia-panjang",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "siti@example.com", repo.created[0].Email)
	assert.Equal(t, enums.RoleCustomer, repo.created[0].Role)
	assert.NotEqual(t, "rahasia-panjang", repo.created[0].PasswordHash)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, repo.created[0].ID, claims.UserID)
	assert.Equal(t, enums.RoleCustomer, claims.Role)
	assert.Equal(t, sessions.generated[claims.ID], resp.RefreshToken)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)
	user := seedCustomer(t, repo, "budi@example.com", "kata-sandi-123")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "budi@example.com",
		Password: "kata-sandi-123",
	})
	require.NoError(t, err)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Contains(t, repo.lastLogins, user.ID)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)
	seedCustomer(t, repo, "budi@example.com", "kata-sandi-123")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "salah@example.com", "kata-sandi-123"},
		{"wrong password", "budi@example.com", "salah"},
		{"empty email", "", "kata-sandi-123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginRequest{Email: tc.email, Password: tc.password})
			require.Error(t, err)
			appErr := apperrors.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code())
			assert.Equal(t, invalidCredentialsMessage, appErr.Message())
		})
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)
	seedCustomer(t, repo, "budi@example.com", "kata-sandi-123")

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "budi@example.com",
		Password: "kata-sandi-123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// the old pair is spent
	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code())
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)
	seedCustomer(t, repo, "budi@example.com", "kata-sandi-123")

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "budi@example.com",
		Password: "kata-sandi-123",
	})
	require.NoError(t, err)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), login.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.ID))
	assert.Contains(t, sessions.revoked, claims.ID)
}
