package services

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("too many failed attempts, account temporarily locked")
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
)

const maxLoginAttempts = 3

// AuthService handles registration and login. Passwords are stored as
// bcrypt hashes; three failed logins in a row lock the account until the
// process restarts.
type AuthService struct {
	users repository.UserRepository

	mu             sync.Mutex
	failedAttempts map[string]int
	activeSessions map[string]struct{}
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{
		users:          users,
		failedAttempts: make(map[string]int),
		activeSessions: make(map[string]struct{}),
	}
}

func (s *AuthService) Register(username, email, password string, role models.UserRole) (*models.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, apperr.InvalidArgument("username must be 4-20 alphanumeric characters")
	}
	email = strings.ToLower(email)
	if !emailPattern.MatchString(email) {
		return nil, apperr.InvalidArgument("invalid email format")
	}
	if len(password) < 8 {
		return nil, apperr.InvalidArgument("password must be at least 8 characters")
	}
	if !role.Valid() {
		return nil, apperr.InvalidArgument("unknown role %q", role)
	}
	if _, taken := s.users.FindByUsername(username); taken {
		return nil, apperr.Conflict("username %q is already in use", username)
	}
	if _, taken := s.users.FindByEmail(email); taken {
		return nil, apperr.Conflict("email %q is already in use", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Save(models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, ok := s.users.FindByUsername(username)
	if !ok {
		return nil, apperr.NotFound("user %q does not exist", username)
	}

	s.mu.Lock()
	locked := s.failedAttempts[username] >= maxLoginAttempts
	s.mu.Unlock()
	if locked {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.mu.Lock()
		s.failedAttempts[username]++
		s.mu.Unlock()
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	delete(s.failedAttempts, username)
	s.activeSessions[user.ID] = struct{}{}
	s.mu.Unlock()

	return &user, nil
}

func (s *AuthService) Logout(userID string) {
	s.mu.Lock()
	delete(s.activeSessions, userID)
	s.mu.Unlock()
}

// HasActiveSession reports whether the user logged in and has not logged out.
func (s *AuthService) HasActiveSession(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.activeSessions[userID]
	return ok
}
