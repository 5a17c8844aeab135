package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrCategoryNameEmpty   = errors.New("category name cannot be empty")
	ErrCategoryNameTooLong = errors.New("category name is too long (max 100 chars)")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidColor        = errors.New("invalid color format (must be #RRGGBB)")
	ErrInvalidUserID       = errors.New("invalid user id")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	DefaultCategoryColor = "#6366f1"
	MaxNameLen           = 100
)

type Category struct {
	ID        ID        `json:"id" db:"id"`
	UserID    ID        `json:"user_id,omitempty" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func validateCategory(name, color string) (string, string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", ErrCategoryNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return "", "", ErrCategoryNameTooLong
	}

	if color == "" {
		color = DefaultCategoryColor
	}
	if !colorRegex.MatchString(color) {
		return "", "", ErrInvalidColor
	}

	return trimmed, color, nil
}

func NewCategory(userID ID, name, color string) (*Category, error) {
	if userID.IsZero() {
		return nil, ErrInvalidUserID
	}

	cleanName, cleanColor, err := validateCategory(name, color)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Category{
		ID:        NewID(),
		UserID:    userID,
		Name:      cleanName,
		Color:     cleanColor,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update renames or recolours the category. An empty color keeps the default.
func (c *Category) Update(name, color string) error {
	cleanName, cleanColor, err := validateCategory(name, color)
	if err != nil {
		return err
	}

	c.Name = cleanName
	c.Color = cleanColor
	c.UpdatedAt = time.Now().UTC()
	return nil
}
