package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/service/auth"
	"github.com/trancendos/alervato/internal/store"
)

// AuthServiceError is a custom error type for unexpected authentication
// service failures. Expected conditions use the package sentinel errors.
type AuthServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AuthServiceError.
func (e *AuthServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("auth service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthServiceError) Unwrap() error {
	return e.Err
}

// NewAuthServiceError creates a new AuthServiceError.
func NewAuthServiceError(operation, message string, err error) *AuthServiceError {
	return &AuthServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// RegisterInput carries the data needed to register a new user account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token    string
	UserID   uuid.UUID
	Username string
	Email    string
}

// AuthService provides registration, login, and logout operations.
type AuthService interface {
	// Register creates a new user account with the default user role.
	// Returns ErrUsernameTaken or ErrEmailTaken when the username or email
	// is already in use.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login authenticates the user and issues an access token.
	// Returns ErrInvalidCredentials on unknown username, wrong password,
	// or a deactivated account.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout validates the presented token. Issued tokens are not revoked
	// server-side; they remain valid until expiry. Identity is request-scoped,
	// so there is no session state to clear.
	Logout(ctx context.Context, token string) error
}

// authServiceImpl implements the AuthService interface.
type authServiceImpl struct {
	userStore        store.UserStore
	roleStore        store.RoleStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	db               *sql.DB
	logger           *slog.Logger

	// runTx wraps store.RunInTransaction so tests can run the
	// transactional body without a live database.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	userStore store.UserStore,
	roleStore store.RoleStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) (AuthService, error) {
	if userStore == nil {
		return nil, errors.New("userStore cannot be nil")
	}
	if roleStore == nil {
		return nil, errors.New("roleStore cannot be nil")
	}
	if jwtService == nil {
		return nil, errors.New("jwtService cannot be nil")
	}
	if passwordVerifier == nil {
		return nil, errors.New("passwordVerifier cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	svc := &authServiceImpl{
		userStore:        userStore,
		roleStore:        roleStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		db:               db,
		logger:           logger.With(slog.String("component", "auth_service")),
	}
	svc.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, svc.db, fn)
	}

	return svc, nil
}

// Register implements AuthService.Register.
// The uniqueness checks run before the transaction for friendly errors; the
// unique indexes on users remain the authority, so a losing race still maps
// to the same sentinel errors via the store.
func (s *authServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		log.Debug("rejected invalid registration data",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.PhoneNumber = input.PhoneNumber

	taken, err := s.userStore.ExistsByUsername(ctx, input.Username)
	if err != nil {
		log.Error("failed to check username availability",
			slog.String("error", err.Error()))
		return nil, NewAuthServiceError("register", "failed to check username availability", err)
	}
	if taken {
		log.Debug("attempted registration with taken username",
			slog.String("username", input.Username))
		return nil, ErrUsernameTaken
	}

	taken, err = s.userStore.ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Error("failed to check email availability",
			slog.String("error", err.Error()))
		return nil, NewAuthServiceError("register", "failed to check email availability", err)
	}
	if taken {
		log.Debug("attempted registration with taken email",
			slog.String("email", input.Email))
		return nil, ErrEmailTaken
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txRoleStore := s.roleStore.WithTx(tx)
		txUserStore := s.userStore.WithTx(tx)

		role, err := txRoleStore.GetByName(ctx, domain.RoleUser)
		if err != nil {
			return fmt.Errorf("failed to resolve default role: %w", err)
		}
		user.Roles = []domain.Role{*role}

		return txUserStore.Create(ctx, user)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, store.ErrRoleNotFound):
			log.Error("default user role is missing",
				slog.String("role", domain.RoleUser))
			return nil, fmt.Errorf("failed to register user: %w", err)
		default:
			log.Error("failed to register user",
				slog.String("error", err.Error()))
			return nil, NewAuthServiceError("register", "failed to save user", err)
		}
	}

	log.Info("user registered successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}

// Login implements AuthService.Login.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown username",
				slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login",
			slog.String("error", err.Error()))
		return nil, NewAuthServiceError("login", "failed to look up user", err)
	}

	if !user.IsActive {
		log.Debug("login attempt for deactivated account",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login attempt with wrong password",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to generate access token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, NewAuthServiceError("login", "failed to generate token", err)
	}

	log.Info("user logged in successfully",
		slog.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Logout implements AuthService.Logout.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if token == "" {
		return auth.ErrMissingToken
	}

	claims, err := s.jwtService.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("logout with invalid token",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("user logged out",
		slog.String("user_id", claims.UserID.String()))
	return nil
}
