package domain

import (
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("Should create user with normalized email and trimmed name", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("123", "  Test.User@Gmail.COM  ", "  Ada ")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if user.Email != "test.user@gmail.com" {
			t.Errorf("Expected normalized email, got %s", user.Email)
		}
		if user.Name != "Ada" {
			t.Errorf("Expected trimmed name, got %q", user.Name)
		}
		if user.ID != "123" {
			t.Errorf("Expected id 123, got %s", user.ID)
		}
		if user.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("Should fail with invalid email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", "invalid-email-format", "Ada")

		if err != ErrInvalidEmail {
			t.Errorf("Expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("Should fail with blank name", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("123", "ada@example.com", "   ")

		if err != ErrUserNameEmpty {
			t.Errorf("Expected ErrUserNameEmpty, got %v", err)
		}
	})
}

func TestUserPassword(t *testing.T) {
	t.Parallel()

	t.Run("Should hash password and update timestamp", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "test@test.com", "Test")
		oldUpdatedAt := user.UpdatedAt

		time.Sleep(1 * time.Millisecond)

		if err := user.SetPassword("superSecret123"); err != nil {
			t.Fatalf("Expected no error setting password, got %v", err)
		}
		if user.PasswordHash == "" || user.PasswordHash == "superSecret123" {
			t.Error("Password should be stored hashed")
		}
		if !user.UpdatedAt.After(oldUpdatedAt) {
			t.Error("UpdatedAt should move forward after setting password")
		}
	})

	t.Run("Should validate password length", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "test@test.com", "Test")

		if err := user.SetPassword("short"); err != ErrPasswordTooShort {
			t.Errorf("Expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("CheckPassword should work", func(t *testing.T) {
		t.Parallel()
		user, _ := NewUser("123", "test@test.com", "Test")
		_ = user.SetPassword("correctPassword")

		if err := user.CheckPassword("correctPassword"); err != nil {
			t.Errorf("Expected password to match, got error: %v", err)
		}
		if err := user.CheckPassword("wrongPassword"); err != ErrInvalidCredentials {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}
