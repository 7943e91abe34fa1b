package services_test

import (
	"fmt"
	"testing"
	"time"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, err := services.HashPassword("Secret1!")
	require.NoError(t, err)
	user := &models.User{
		ID:       7,
		Username: "anna",
		Password: hashedPassword,
		Role:     models.RoleAdult,
	}

	// Test successful login
	mockRepo.On("GetByUsername", "anna").Return(user, nil).Once()
	res, err := authService.Authenticate("anna", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, "anna", res.Username)
	assert.Equal(t, models.RoleAdult, res.Role)
	assert.NotEmpty(t, res.Token)

	parsed, err := jwt.ParseWithClaims(res.Token, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*services.Claims)
	require.True(t, ok)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, models.RoleAdult, claims.Role)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", "anna").Return(user, nil).Once()
	_, err = authService.Authenticate("anna", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Test invalid credentials (user not found)
	mockRepo.On("GetByUsername", "ghost").Return(nil, errs.NotFound("User with username ghost does not exist.")).Once()
	_, err = authService.Authenticate("ghost", "Secret1!")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.NotErrorIs(t, err, errs.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, time.Hour)

	sign := func(secret string, exp time.Duration) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
			Username: "tim",
			Role:     models.RoleChild,
			StandardClaims: jwt.StandardClaims{
				IssuedAt:  time.Now().Unix(),
				ExpiresAt: time.Now().Add(exp).Unix(),
			},
		})
		s, _ := token.SignedString([]byte(secret))
		return s
	}

	// Test valid token
	claims, err := authService.ValidateToken(sign(testJWTSecret, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "tim", claims.Username)
	assert.Equal(t, models.RoleChild, claims.Role)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "invalid.token.string"},
		{"wrong secret", sign("other_secret", time.Hour)},
		{"expired", sign(testJWTSecret, -time.Hour)},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.ValidateToken(tt.token)
			assert.ErrorIs(t, err, errs.ErrUnauthorized)
			assert.Contains(t, err.Error(), "invalid token")
		})
	}
}

func TestAuthService_ValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, services.Claims{Username: "tim", Role: models.RoleAdmin})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = authService.ValidateToken(s)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
