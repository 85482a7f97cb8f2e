package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/service/auth"
	"github.com/trancendos/alervato/internal/store"
)

func newAuthService(
	t *testing.T,
	userStore store.UserStore,
	roleStore store.RoleStore,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
) AuthService {
	t.Helper()

	svc, err := NewAuthService(userStore, roleStore, jwtService, verifier, &sql.DB{}, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService(t *testing.T) {
	userStore := new(MockUserStore)
	roleStore := new(MockRoleStore)
	jwtService := new(MockJWTService)
	verifier := new(MockPasswordVerifier)
	db := &sql.DB{}

	tests := []struct {
		name        string
		userStore   store.UserStore
		roleStore   store.RoleStore
		jwtService  auth.JWTService
		verifier    auth.PasswordVerifier
		db          *sql.DB
		expectError string
	}{
		{
			name:        "nil userStore",
			roleStore:   roleStore,
			jwtService:  jwtService,
			verifier:    verifier,
			db:          db,
			expectError: "userStore",
		},
		{
			name:        "nil roleStore",
			userStore:   userStore,
			jwtService:  jwtService,
			verifier:    verifier,
			db:          db,
			expectError: "roleStore",
		},
		{
			name:        "nil jwtService",
			userStore:   userStore,
			roleStore:   roleStore,
			verifier:    verifier,
			db:          db,
			expectError: "jwtService",
		},
		{
			name:        "nil passwordVerifier",
			userStore:   userStore,
			roleStore:   roleStore,
			jwtService:  jwtService,
			db:          db,
			expectError: "passwordVerifier",
		},
		{
			name:       "nil db",
			userStore:  userStore,
			roleStore:  roleStore,
			jwtService: jwtService,
			verifier:   verifier,

			expectError: "db",
		},
		{
			name:       "all dependencies provided",
			userStore:  userStore,
			roleStore:  roleStore,
			jwtService: jwtService,
			verifier:   verifier,
			db:         db,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAuthService(tt.userStore, tt.roleStore, tt.jwtService, tt.verifier, tt.db, nil)

			if tt.expectError != "" {
				assert.Error(t, err)
				assert.Nil(t, svc)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

// runTxInline replaces the service's transaction runner with one that calls
// the body directly, so the transactional stores can be exercised without a
// live database. The mocks expect WithTx(nil) in exchange.
func runTxInline(t *testing.T, svc AuthService) {
	t.Helper()

	impl, ok := svc.(*authServiceImpl)
	require.True(t, ok)
	impl.runTx = func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	role := &domain.Role{ID: uuid.New(), Name: domain.RoleUser}

	userStore := new(MockUserStore)
	userStore.On("ExistsByUsername", ctx, "alice").Return(false, nil)
	userStore.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
	userStore.On("WithTx", (*sql.Tx)(nil)).Return(userStore)
	userStore.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	roleStore := new(MockRoleStore)
	roleStore.On("WithTx", (*sql.Tx)(nil)).Return(roleStore)
	roleStore.On("GetByName", ctx, domain.RoleUser).Return(role, nil)

	svc := newAuthService(t, userStore, roleStore, new(MockJWTService), new(MockPasswordVerifier))
	runTxInline(t, svc)

	user, err := svc.Register(ctx, RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "pw123",
		FirstName: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.FirstName)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, domain.RoleUser, user.Roles[0].Name)
	assert.NotEqual(t, "pw123", user.HashedPassword)
	userStore.AssertExpectations(t)
	roleStore.AssertExpectations(t)
}

func TestAuthService_Register_MissingDefaultRole(t *testing.T) {
	ctx := context.Background()

	userStore := new(MockUserStore)
	userStore.On("ExistsByUsername", ctx, "alice").Return(false, nil)
	userStore.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
	userStore.On("WithTx", (*sql.Tx)(nil)).Return(userStore)

	roleStore := new(MockRoleStore)
	roleStore.On("WithTx", (*sql.Tx)(nil)).Return(roleStore)
	roleStore.On("GetByName", ctx, domain.RoleUser).Return(nil, store.ErrRoleNotFound)

	svc := newAuthService(t, userStore, roleStore, new(MockJWTService), new(MockPasswordVerifier))
	runTxInline(t, svc)

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, store.ErrRoleNotFound)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, new(MockUserStore), new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "empty username",
			input:   RegisterInput{Email: "alice@example.com", Password: "pw123"},
			wantErr: domain.ErrEmptyUsername,
		},
		{
			name:    "empty email",
			input:   RegisterInput{Username: "alice", Password: "pw123"},
			wantErr: domain.ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			input:   RegisterInput{Username: "alice", Email: "not-an-email", Password: "pw123"},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "empty password",
			input:   RegisterInput{Username: "alice", Email: "alice@example.com"},
			wantErr: domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(ctx, tt.input)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	userStore := new(MockUserStore)
	userStore.On("ExistsByUsername", ctx, "alice").Return(true, nil)

	svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	userStore.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := new(MockUserStore)
	userStore.On("ExistsByUsername", ctx, "alice").Return(false, nil)
	userStore.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

	svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
	userStore.AssertExpectations(t)
}

func TestAuthService_Register_AvailabilityCheckFails(t *testing.T) {
	ctx := context.Background()
	userStore := new(MockUserStore)
	userStore.On("ExistsByUsername", ctx, "alice").Return(false, errors.New("connection reset"))

	svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123",
	})

	assert.Nil(t, user)
	require.Error(t, err)

	var svcErr *AuthServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "register", svcErr.Operation)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	activeUser := &domain.User{
		ID:             userID,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$stored-hash",
		IsActive:       true,
	}
	inactiveUser := &domain.User{
		ID:             uuid.New(),
		Username:       "bob",
		Email:          "bob@example.com",
		HashedPassword: "$2a$10$stored-hash",
		IsActive:       false,
	}

	t.Run("successful login", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByUsername", ctx, "alice").Return(activeUser, nil)

		verifier := new(MockPasswordVerifier)
		verifier.On("Compare", activeUser.HashedPassword, "pw123").Return(nil)

		jwtService := new(MockJWTService)
		jwtService.On("GenerateToken", ctx, userID).Return("signed-token", nil)

		svc := newAuthService(t, userStore, new(MockRoleStore), jwtService, verifier)

		result, err := svc.Login(ctx, "alice", "pw123")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, userID, result.UserID)
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, "alice@example.com", result.Email)
		userStore.AssertExpectations(t)
		verifier.AssertExpectations(t)
		jwtService.AssertExpectations(t)
	})

	t.Run("unknown username", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByUsername", ctx, "nobody").Return(nil, store.ErrUserNotFound)

		svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

		result, err := svc.Login(ctx, "nobody", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByUsername", ctx, "alice").Return(activeUser, nil)

		verifier := new(MockPasswordVerifier)
		verifier.On("Compare", activeUser.HashedPassword, "wrong").
			Return(errors.New("hashedPassword is not the hash of the given password"))

		svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), verifier)

		result, err := svc.Login(ctx, "alice", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByUsername", ctx, "bob").Return(inactiveUser, nil)

		verifier := new(MockPasswordVerifier)
		svc := newAuthService(t, userStore, new(MockRoleStore), new(MockJWTService), verifier)

		result, err := svc.Login(ctx, "bob", "pw123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		verifier.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("token generation failure", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByUsername", ctx, "alice").Return(activeUser, nil)

		verifier := new(MockPasswordVerifier)
		verifier.On("Compare", activeUser.HashedPassword, "pw123").Return(nil)

		jwtService := new(MockJWTService)
		jwtService.On("GenerateToken", ctx, userID).Return("", errors.New("signing failed"))

		svc := newAuthService(t, userStore, new(MockRoleStore), jwtService, verifier)

		result, err := svc.Login(ctx, "alice", "pw123")

		assert.Nil(t, result)

		var svcErr *AuthServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "login", svcErr.Operation)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		jwtService := new(MockJWTService)
		jwtService.On("ValidateToken", ctx, "valid-token").
			Return(&auth.Claims{UserID: uuid.New()}, nil)

		svc := newAuthService(t, new(MockUserStore), new(MockRoleStore), jwtService, new(MockPasswordVerifier))

		assert.NoError(t, svc.Logout(ctx, "valid-token"))
		jwtService.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		svc := newAuthService(t, new(MockUserStore), new(MockRoleStore), new(MockJWTService), new(MockPasswordVerifier))

		assert.ErrorIs(t, svc.Logout(ctx, ""), auth.ErrMissingToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		jwtService := new(MockJWTService)
		jwtService.On("ValidateToken", ctx, "garbage").Return(nil, auth.ErrInvalidToken)

		svc := newAuthService(t, new(MockUserStore), new(MockRoleStore), jwtService, new(MockPasswordVerifier))

		assert.ErrorIs(t, svc.Logout(ctx, "garbage"), auth.ErrInvalidToken)
	})
}
