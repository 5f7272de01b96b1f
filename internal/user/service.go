package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"boldserve-backend/internal/auth"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("name and email are required")
)

// Repository stores user accounts. Find methods return ErrUserNotFound and
// Insert returns ErrEmailTaken on a duplicate email.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (User, error)
	Insert(ctx context.Context, u *User) error
	CountNonAdmin(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]User, error)
}

type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, log: log}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a regular (non-admin) account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return User{}, ErrInvalidInput
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}

	_, err = s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrUserNotFound):
		return User{}, fmt.Errorf("lookup email: %w", err)
	}

	u := User{
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, err
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	s.log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	return u, nil
}

// Login checks the credentials and returns the account with a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", fmt.Errorf("lookup email: %w", err)
	}
	if !auth.CheckPassword(password, u.Password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID.Hex(), u.IsAdmin)
	if err != nil {
		return User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return User{}, ErrUserNotFound
	}
	return s.repo.FindByID(ctx, oid)
}

// List returns every account, newest first. Password hashes are not loaded.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// CountCustomers counts accounts without the admin flag.
func (s *Service) CountCustomers(ctx context.Context) (int64, error) {
	return s.repo.CountNonAdmin(ctx)
}
