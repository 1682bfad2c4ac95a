package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"continuity/config"
	"continuity/internal/domain"
	"continuity/internal/repository"
	continuity_errors "continuity/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int64    `json:"expires_in"`
	User      UserInfo `json:"user"`
}

type UserInfo struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResponse, error) {
	if err := validateRegister(in); err != nil {
		return AuthResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return AuthResponse{}, continuity_errors.BadRequest("Email is already registered.")
	} else if !errors.Is(err, continuity_errors.ErrNotFound) {
		return AuthResponse{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	newUser := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		CreatedOn:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return AuthResponse{}, err
	}

	token, expiresIn, err := s.newAccessToken(newUser)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, ExpiresIn: expiresIn, User: toUserInfo(*newUser)}, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return AuthResponse{}, continuity_errors.BadRequest("Invalid email or password.")
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return AuthResponse{}, continuity_errors.BadRequest("Invalid email or password.")
		}
		return AuthResponse{}, err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return AuthResponse{}, continuity_errors.BadRequest("Invalid email or password.")
	}

	u.LastLoginOn = continuity_errors.NowPtr()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return AuthResponse{}, err
	}

	token, expiresIn, err := s.newAccessToken(&u)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, ExpiresIn: expiresIn, User: toUserInfo(u)}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, continuity_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, continuity_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, continuity_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, continuity_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(u *domain.User) (string, int64, error) {
	now := time.Now()
	claims := AccessClaims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(u.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}

func validateRegister(in RegisterInput) error {
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return continuity_errors.BadRequest("A valid email is required.")
	}
	if in.FirstName == "" || in.LastName == "" {
		return continuity_errors.BadRequest("First and last name are required.")
	}
	if len(in.Password) < 8 {
		return continuity_errors.BadRequest("Password must be at least 8 characters.")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func toUserInfo(u domain.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
