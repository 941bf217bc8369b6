package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service orchestrates signup and login: validation, duplicate check,
// password hashing and token issuance.
type Service struct {
	users  UserStore
	issuer *TokenIssuer
}

// NewService constructs the auth service.
func NewService(users UserStore, issuer *TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// SignupParams carries the seven mandatory registration fields.
type SignupParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
	Location  string
}

// Session is the result of a successful signup or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// Signup registers a new account and issues a session token.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*Session, error) {
	params.FirstName = strings.TrimSpace(params.FirstName)
	params.LastName = strings.TrimSpace(params.LastName)
	params.Email = strings.TrimSpace(params.Email)
	params.Phone = strings.TrimSpace(params.Phone)
	params.Role = strings.TrimSpace(params.Role)
	params.Location = strings.TrimSpace(params.Location)

	if params.FirstName == "" || params.LastName == "" || params.Email == "" ||
		params.Password == "" || params.Phone == "" || params.Role == "" || params.Location == "" {
		return nil, ErrMissingField
	}

	if _, err := s.users.FindByEmail(ctx, params.Email); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: hash,
		Phone:        params.Phone,
		Role:         params.Role,
		Location:     params.Location,
	}
	// The unique index on email closes the race two concurrent signups would
	// otherwise win together; a lost race surfaces as ErrAlreadyExists here.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.startSession(user)
}

// Login authenticates existing credentials and issues a session token.
// An unknown email and a wrong password return the same error so responses
// cannot be used for account enumeration.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.startSession(user)
}

func (s *Service) startSession(user *User) (*Session, error) {
	token, expiresAt, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
