package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/errs"
)

// Principal is the minimal authenticated-identity record returned on a
// successful sign-in. No token, expiry or refresh mechanism is produced;
// keeping a session across requests is the caller's concern.
type Principal struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// AuthService verifies the single admin credential. Stateless per call: no
// lockout counter, no rate limiting.
type AuthService struct {
	adminRepo *database.AdminRepo
}

func NewAuthService(adminRepo *database.AdminRepo) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// SignIn looks up the account by exact username and compares the supplied
// password against the stored bcrypt hash. Unknown username and wrong
// password both fail with the same InvalidCredentials error; which of the
// two happened survives only as the wrapped cause for logs.
func (s *AuthService) SignIn(username, password string) (*Principal, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidCredentialsError(fmt.Errorf("unknown username: %w", err))
		}
		return nil, errs.NewStorageError("find", "admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errs.NewInvalidCredentialsError(fmt.Errorf("password mismatch: %w", err))
		}
		return nil, errs.NewVerificationError(err)
	}

	return &Principal{ID: admin.ID, Username: admin.Username}, nil
}
