// Package authsvc - registration, login and token verification.
package authsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/shaesansv/pet-new/internal/api/auth/dto"
	"github.com/shaesansv/pet-new/internal/api/auth/models"
	basesvc "github.com/shaesansv/pet-new/internal/api/base/service"
	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/memstore"
	"github.com/shaesansv/pet-new/internal/utility"
)

// TokenTTL is the lifetime of a login token.
const TokenTTL = 24 * time.Hour

// AuthService manages user accounts and their login tokens.
type AuthService struct {
	*basesvc.BaseService[models.User, *models.User]
	jwtSecret string
}

// NewAuthService creates the auth service. jwtSecret signs and verifies
// every token this instance issues.
func NewAuthService(users *memstore.Collection[models.User, *models.User], jwtSecret string) *AuthService {
	return &AuthService{
		BaseService: basesvc.NewBaseService(users),
		jwtSecret:   jwtSecret,
	}
}

// Register creates a new account. The very first account becomes the admin;
// every later one is a customer. Emails are unique (case-insensitive).
func (s *AuthService) Register(ctx context.Context, input *authdto.UserRegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.FindOne(ctx, func(u *models.User) bool { return u.Email == email }); err == nil {
		return models.User{}, common.NewError(
			common.ErrCodeStoreQuery,
			fmt.Sprintf("email %s is already registered", email),
			common.StatusConflict,
			nil,
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, common.NewError(common.ErrCodeInternalServer, "failed to hash password", common.StatusInternalServerError, err)
	}

	role := models.RoleCustomer
	count, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return s.UpdateById(ctx, created.ID, func(u *models.User) error {
		u.UpdatedAt = u.CreatedAt
		return nil
	})
}

// Login verifies credentials and issues a fresh JWT. The token is stored on
// the user record; a later login replaces it, invalidating the old one.
func (s *AuthService) Login(ctx context.Context, input *authdto.UserLoginInput) (authdto.UserLoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.FindOne(ctx, func(u *models.User) bool { return u.Email == email })
	if err != nil {
		return authdto.UserLoginResult{}, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return authdto.UserLoginResult{}, common.ErrInvalidCredentials
	}

	tokenString, err := s.generateToken(user.ID)
	if err != nil {
		return authdto.UserLoginResult{}, err
	}

	updated, err := s.UpdateById(ctx, user.ID, func(u *models.User) error {
		u.Token = tokenString
		u.UpdatedAt = utility.CurrentTimeInMilli()
		return nil
	})
	if err != nil {
		return authdto.UserLoginResult{}, err
	}

	return authdto.UserLoginResult{Token: tokenString, User: updated}, nil
}

// generateToken builds and signs the JWT for a user.
func (s *AuthService) generateToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := models.JwtToken{
		UserID:       userID.Hex(),
		Time:         fmt.Sprintf("%d", now.UnixMilli()),
		RandomNumber: utility.RandomString(16),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "failed to sign token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// Logout clears the user's stored token. The JWT itself stays valid until it
// expires, but it no longer matches any user record and is rejected.
func (s *AuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, func(u *models.User) error {
		u.Token = ""
		u.UpdatedAt = utility.CurrentTimeInMilli()
		return nil
	})
	return err
}

// VerifyToken checks signature and expiry, then resolves the token to the
// user whose record currently holds it.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	claims := &models.JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return models.User{}, common.ErrTokenExpired
		}
		return models.User{}, common.ErrTokenInvalid
	}
	if !token.Valid {
		return models.User{}, common.ErrTokenInvalid
	}

	userID := utility.String2ObjectID(claims.UserID)
	if userID.IsZero() {
		return models.User{}, common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil || user.Token != tokenString {
		return models.User{}, common.ErrTokenInvalid
	}
	return user, nil
}

// ClearExpiredTokens drops stored tokens whose JWT expiry has passed. Used
// by the background cleanup worker; returns how many records were cleared.
func (s *AuthService) ClearExpiredTokens(ctx context.Context) (int, error) {
	users, err := s.Find(ctx, func(u *models.User) bool { return u.Token != "" })
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, user := range users {
		claims := &models.JwtToken{}
		_, err := jwt.ParseWithClaims(user.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.jwtSecret), nil
		})
		if err == nil {
			continue
		}
		validationErr, ok := err.(*jwt.ValidationError)
		if !ok || validationErr.Errors&jwt.ValidationErrorExpired == 0 {
			continue
		}

		if _, err := s.UpdateById(ctx, user.ID, func(u *models.User) error {
			if u.Token == user.Token {
				u.Token = ""
			}
			return nil
		}); err != nil {
			return cleared, err
		}
		cleared++
	}
	return cleared, nil
}
