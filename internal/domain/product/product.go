package product

import (
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

var ErrNotFound = errors.New("product: not found")

type Category string

const (
	CategoryChessBoard    Category = "chess_board"
	CategoryChessClock    Category = "chess_clock"
	CategoryMerchandise   Category = "merchandise"
	CategoryLessonPackage Category = "lesson_package"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryChessBoard, CategoryChessClock, CategoryMerchandise, CategoryLessonPackage:
		return true
	}
	return false
}

type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    Category  `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    *string   `json:"image_url" bson:"image_url"`
	Stock       int       `json:"stock" bson:"stock"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type CreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    Category `json:"category" validate:"required,enum"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Stock       int      `json:"stock" validate:"gte=0"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Category    *Category `json:"category" validate:"omitempty,enum"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string   `json:"image_url"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool     `json:"is_active"`
}

// Fields returns the supplied fields keyed by their stored names.
func (u UpdateInput) Fields() map[string]any {
	fields := make(map[string]any, 7)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.Stock != nil {
		fields["stock"] = *u.Stock
	}
	if u.IsActive != nil {
		fields["is_active"] = *u.IsActive
	}
	return fields
}

// New builds an active product from validated input.
func New(id string, in CreateInput, now time.Time) *Product {
	p := &Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		IsActive:    true,
		CreatedAt:   isotime.Normalize(now),
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}
