package services

import (
	"context"
	"errors"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/config"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"github.com/tombolaviva/tombola-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// ErrInvalidCredentials is returned for a wrong email or password. The
// two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthServiceImpl issues admin bearer tokens. Every protected call
// carries the resulting token as its proof of authorization; the core
// never consults ambient session state.
type AuthServiceImpl struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies the credentials against the stored bcrypt hash and
// returns a signed JWT
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", classify(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, s.cfg)
	if err != nil {
		return "", classify(err)
	}

	slog.Info("Admin logged in", "email", user.Email)
	return token, nil
}

// EnsureBootstrapAdmin creates the initial admin account from config
// when the collection is empty. A missing bootstrap password leaves the
// collection untouched.
func (s *AuthServiceImpl) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return classify(err)
	}
	if count > 0 {
		return nil
	}
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		slog.Warn("No admin accounts and no bootstrap credentials configured; admin login disabled")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return classify(err)
	}

	admin := &models.AdminUser{
		Email:     s.cfg.Admin.Email,
		Password:  string(hash),
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return classify(err)
	}

	slog.Info("Bootstrap admin created", "email", admin.Email)
	return nil
}
