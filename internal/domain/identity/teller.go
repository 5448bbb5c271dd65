// Package identity holds shop teller accounts
package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hasLetter     = regexp.MustCompile(`[a-zA-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9 ]{7,20}$`)
)

// Teller is a shop operator who signs in on the till
type Teller struct {
	shared.BaseEntity
	Name         string
	IDNumber     string // national id number
	Phone        string
	Email        string
	PasswordHash string
}

// Registration carries the sign-up form
type Registration struct {
	Name     string
	IDNumber string
	Phone    string
	Email    string
	Password string
}

// NewTeller validates a registration and hashes the password
func NewTeller(reg Registration) (*Teller, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name must be between 1 and 100 characters")
	}
	email := NormalizeEmail(reg.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	phone := strings.TrimSpace(reg.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return nil, shared.NewDomainError("INVALID_PHONE", "Invalid phone number")
	}
	if err := validatePassword(reg.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Teller{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		IDNumber:     strings.TrimSpace(reg.IDNumber),
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (t *Teller) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) == nil
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt ignores bytes past 72
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	if !hasLetter.MatchString(password) || !hasNumber.MatchString(password) {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}
