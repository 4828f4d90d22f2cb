package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogould/fittrack/internal/db"
	"github.com/ogould/fittrack/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordTooShort  = errors.New("password is too short")
)

const minPasswordLength = 6

// DefaultAdminUsername is the account seeded on an empty database so the
// admin flows are reachable on a fresh install.
const DefaultAdminUsername = "admin"

type AuthUserRepository interface {
	CountUsers() (int64, error)
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates an account. Usernames are unique ignoring case; the
// password is stored only as a bcrypt hash.
func (service *AuthService) Register(username string, password string, isAdmin bool) (models.User, error) {
	normalized := NormalizeUsername(username)
	if normalized == "" {
		return models.User{}, ErrUsernameRequired
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	exists, err := service.users.ExistsByNormalizedUsername(normalized)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(passwordHash),
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials against the stored hash. The lookup is
// case-insensitive; a wrong password and an unknown user return distinct
// errors so the caller can decide how much to reveal.
func (service *AuthService) Login(username string, password string) (models.User, error) {
	normalized := NormalizeUsername(username)
	user, err := service.users.FindByNormalizedUsername(normalized)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredential
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePassword(userID, string(passwordHash))
}

// EnsureDefaultAdmin seeds the bootstrap admin account on a fresh database.
// It returns the generated password once; afterwards the account already
// exists and nothing is returned.
func (service *AuthService) EnsureDefaultAdmin(generatePassword func() (string, error)) (string, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return "", fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return "", nil
	}

	password, err := generatePassword()
	if err != nil {
		return "", fmt.Errorf("generate admin password: %w", err)
	}
	if _, err := service.Register(DefaultAdminUsername, password, true); err != nil {
		return "", fmt.Errorf("seed admin account: %w", err)
	}
	return password, nil
}
