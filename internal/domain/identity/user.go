package identity

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ledgerline/backend/internal/domain/shared"
)

const bcryptCost = 12

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var (
	ErrInvalidUsername    = shared.NewDomainError("INVALID_USERNAME", "username must be 3-64 characters of letters, digits, '_', '.' or '-'")
	ErrInvalidEmail       = shared.NewDomainError("INVALID_EMAIL", "email address is not valid")
	ErrWeakPassword       = shared.NewDomainError("WEAK_PASSWORD", "password must be at least 8 characters")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "incorrect username or password")
	ErrUserInactive       = shared.NewDomainError("ACCOUNT_INACTIVE", "inactive user")
	ErrUsernameExists     = shared.NewDomainError("USERNAME_EXISTS", "username is already taken")
	ErrEmailExists        = shared.NewDomainError("EMAIL_EXISTS", "email is already registered")
)

// User is the aggregate root of the identity context. Superusers bypass
// ownership checks; inactive users cannot authenticate.
type User struct {
	shared.BaseAggregateRoot
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	Active       bool
	Superuser    bool
}

// NewUser creates an active regular user with a hashed password. Email is
// optional; a non-empty email must be well-formed.
func NewUser(username, displayName, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		DisplayName:       strings.TrimSpace(displayName),
		Email:             email,
		PasswordHash:      hash,
		Active:            true,
		Superuser:         false,
	}, nil
}

// NewSuperuser creates an active user with superuser privileges.
func NewSuperuser(username, displayName, email, password string) (*User, error) {
	user, err := NewUser(username, displayName, email, password)
	if err != nil {
		return nil, err
	}
	user.Superuser = true
	return user, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainErrorWithCause("PASSWORD_HASH_FAILED", "failed to hash password", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after validating the new password.
func (u *User) ChangePassword(newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.IncrementVersion()
	return nil
}

// SetEmail replaces the email address; an empty value clears it.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email != "" && !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	u.Email = email
	u.IncrementVersion()
	return nil
}

func (u *User) SetDisplayName(name string) {
	u.DisplayName = strings.TrimSpace(name)
	u.IncrementVersion()
}

func (u *User) SetActive(active bool) {
	if u.Active == active {
		return
	}
	u.Active = active
	u.IncrementVersion()
}

func (u *User) SetSuperuser(superuser bool) {
	if u.Superuser == superuser {
		return
	}
	u.Superuser = superuser
	u.IncrementVersion()
}
