package service

import (
	"errors"
	"testing"

	"github.com/livemart/internal/constants"
	"github.com/livemart/internal/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret-key-0123456789abcdef", 24)

	user, err := svc.Register(RegisterInput{
		Email:    "Alice@Example.com",
		Password: "password123",
		Name:     "Alice",
		Role:     constants.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email should be lowercased got %s", user.Email)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Fatalf("password must be hashed")
	}

	// 重复邮箱
	if _, err := svc.Register(RegisterInput{
		Email:    "alice@example.com",
		Password: "other",
		Name:     "Dup",
	}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}

	got, token, err := svc.Login("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login user mismatch")
	}
	if token == "" {
		t.Fatalf("token should not be empty")
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleCustomer {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, _, err := svc.Login("alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestRegisterRoleValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret-key-0123456789abcdef", 24)

	if _, err := svc.Register(RegisterInput{
		Email:    "x@example.com",
		Password: "password123",
		Name:     "X",
		Role:     "admin",
	}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole got %v", err)
	}

	// 缺省角色为 customer
	user, err := svc.Register(RegisterInput{
		Email:    "y@example.com",
		Password: "password123",
		Name:     "Y",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("default role want customer got %s", user.Role)
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	db := setupServiceTest(t)
	userRepo := repository.NewUserRepository(db)
	issuer := NewAuthService(userRepo, "test-secret-key-0123456789abcdef", 24)
	verifier := NewAuthService(userRepo, "another-secret-key-fedcba98765432", 24)

	user, err := issuer.Register(RegisterInput{
		Email:    "z@example.com",
		Password: "password123",
		Name:     "Z",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, err := issuer.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("token signed with different key should be rejected")
	}
}
