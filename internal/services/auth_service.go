package services

import (
	"context"
	"errors"

	"legalcase/internal/models"
	"legalcase/internal/monitoring"
	"legalcase/internal/repositories"
	"legalcase/internal/utils"
)

// Failed logins per email tolerated inside the redis counter window before
// the account is throttled.
const maxLoginAttempts = 5

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTooManyAttempts is returned when login throttling kicks in.
	ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")
)

type AuthService struct {
	adminRepo *repositories.AdminRepository
	redisRepo *repositories.RedisRepository // nil disables throttling
	secret    []byte
}

func NewAuthService(adminRepo *repositories.AdminRepository, redisRepo *repositories.RedisRepository, secret []byte) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		redisRepo: redisRepo,
		secret:    secret,
	}
}

// Register creates a new admin identity. The plaintext password is hashed
// before anything is stored and never logged.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Admin, error) {
	existing, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateEmail
	}

	hashed, err := utils.Hash(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Login verifies the credentials and issues a session token with a fixed
// TTL. Unknown email and bad password collapse into one error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	if err := s.checkThrottle(ctx, email); err != nil {
		return "", nil, err
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(admin.PasswordHash, password); err != nil {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}

	if s.redisRepo != nil {
		// Throttling is advisory; a redis hiccup must not block a valid login.
		_ = s.redisRepo.ResetFailedLogins(ctx, email)
	}

	token, err := utils.GenerateJWT(admin.AdminID, utils.TokenTTL, s.secret)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

// GetAdmin loads the admin behind a verified identity.
func (s *AuthService) GetAdmin(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, models.ErrNotFound
	}
	return admin, nil
}

// UpdateProfileRequest carries the optional profile fields; only supplied
// fields change.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateProfile applies a partial update to the admin's own profile. A new
// password is hashed before storage.
func (s *AuthService) UpdateProfile(ctx context.Context, adminID int64, req UpdateProfileRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, models.ErrNotFound
	}

	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Email != nil {
		admin.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hashed
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.redisRepo == nil {
		return nil
	}
	count, err := s.redisRepo.FailedLoginCount(ctx, email)
	if err != nil {
		return nil
	}
	if count >= maxLoginAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	monitoring.LoginFailures.Inc()
	if s.redisRepo == nil {
		return
	}
	_, _ = s.redisRepo.RecordFailedLogin(ctx, email)
}
