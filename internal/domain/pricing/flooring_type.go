// Package pricing defines the flooring-type price list and quote cost estimation.
package pricing

import (
	"context"
	"math"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

// DefaultUnit is the pricing unit used when none is set
const DefaultUnit = "sqft"

var validate = validators.New()

// FlooringType entity with per-square-foot prices
type FlooringType struct {
	ID                   uint
	Name                 string  `validate:"required,min=1,max=100"`
	Description          string  `validate:"omitempty,max=1000"`
	MaterialPricePerSqft float64 `validate:"gte=0"`
	LaborPricePerSqft    float64 `validate:"gte=0"`
	Unit                 string  `validate:"required,max=20"`
	OrderIndex           int     `validate:"gte=0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate for validating FlooringType struct
func (f *FlooringType) Validate() error {
	if f.Unit == "" {
		f.Unit = DefaultUnit
	}
	return apperr.FromValidator(validate.Struct(f))
}

// PricePerSqft is the combined material and labor price
func (f *FlooringType) PricePerSqft() float64 {
	return f.MaterialPricePerSqft + f.LaborPricePerSqft
}

// Estimate is the cost breakdown for an area of one flooring type
type Estimate struct {
	FlooringTypeID   uint
	FlooringTypeName string
	AreaSqft         float64
	MaterialCost     float64
	LaborCost        float64
	EstimatedCost    float64
}

// EstimateFor computes area * (material + labor), rounded to cents.
func (f *FlooringType) EstimateFor(areaSqft float64) (*Estimate, error) {
	if areaSqft <= 0 || math.IsNaN(areaSqft) || math.IsInf(areaSqft, 0) {
		return nil, apperr.Invalid("area_sqft must be a positive number")
	}

	material := roundCents(areaSqft * f.MaterialPricePerSqft)
	labor := roundCents(areaSqft * f.LaborPricePerSqft)
	return &Estimate{
		FlooringTypeID:   f.ID,
		FlooringTypeName: f.Name,
		AreaSqft:         areaSqft,
		MaterialCost:     material,
		LaborCost:        labor,
		EstimatedCost:    roundCents(areaSqft * f.PricePerSqft()),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FlooringTypeRepository defines the persistence operations for flooring types
type FlooringTypeRepository interface {
	Create(ctx context.Context, flooringType *FlooringType) error
	// List returns all flooring types ordered by order_index then id
	List(ctx context.Context) ([]*FlooringType, error)
	GetByID(ctx context.Context, id uint) (*FlooringType, error)
	GetByName(ctx context.Context, name string) (*FlooringType, error)
	Update(ctx context.Context, flooringType *FlooringType) error
	DeleteByID(ctx context.Context, id uint) error
}

// FlooringTypeService defines the price list operations
type FlooringTypeService interface {
	Create(ctx context.Context, flooringType *FlooringType) (*FlooringType, error)
	List(ctx context.Context) ([]*FlooringType, error)
	GetByID(ctx context.Context, id uint) (*FlooringType, error)
	Update(ctx context.Context, id uint, flooringType *FlooringType) (*FlooringType, error)
	DeleteByID(ctx context.Context, id uint) error
	// Estimate prices areaSqft of the given flooring type without storing anything
	Estimate(ctx context.Context, flooringTypeID uint, areaSqft float64) (*Estimate, error)
}
