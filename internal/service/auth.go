package service

import (
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"qr-dish-reality/internal/auth"
	"qr-dish-reality/internal/domain"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	profiles ProfileRepository
	secret   []byte
}

func NewAuthService(profiles ProfileRepository, secret []byte) *AuthService {
	return &AuthService{profiles: profiles, secret: secret}
}

// SignUp registers a profile and returns a signed session token.
func (s *AuthService) SignUp(email, password, fullName string) (*domain.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	if existing, err := s.profiles.GetProfileByEmail(email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := &domain.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.profiles.CreateProfile(profile); err != nil {
		return nil, "", err
	}

	token, err := s.token(profile)
	return profile, token, err
}

// SignIn checks the password and returns a signed session token.
func (s *AuthService) SignIn(email, password string) (*domain.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	profile, err := s.profiles.GetProfileByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.token(profile)
	return profile, token, err
}

func (s *AuthService) token(p *domain.Profile) (string, error) {
	return auth.NewToken(auth.Session{
		ProfileID: p.ID,
		Email:     p.Email,
		IsAdmin:   p.IsAdmin,
	}, s.secret)
}
