package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product categories.
const (
	CategoryBurger  = "hamburguesa"
	CategoryFries   = "papas"
	CategoryDrink   = "bebida"
	CategoryDessert = "postre"
)

// Categories lists every valid product category.
var Categories = []string{CategoryBurger, CategoryFries, CategoryDrink, CategoryDessert}

// Product represents a food product in the catalogue.
type Product struct {
	ID          int64           `json:"id" db:"id_producto"`
	Name        string          `json:"name" db:"nombre"`
	Description string          `json:"description" db:"descripcion"`
	Price       decimal.Decimal `json:"price" db:"precio"`
	Category    string          `json:"category" db:"categoria"`
	Image       *string         `json:"image" db:"imagen"`
	Available   bool            `json:"available" db:"disponible"`
	CreatedAt   time.Time       `json:"createdAt" db:"fecha_creacion"`
}

// ProductInput is the payload accepted by the admin create and update operations.
// ID is ignored on create and required on update.
type ProductInput struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Image       *string          `json:"image"`
	Available   bool             `json:"available"`
}

// Normalize trims free-text fields and drops an empty image.
func (in *ProductInput) Normalize() {
	in.Name = trim(in.Name)
	in.Description = trim(in.Description)
	in.Category = trim(in.Category)
	in.Image = trimOptional(in.Image)
}

// ToProduct builds the row written by create and update.
func (in *ProductInput) ToProduct() *Product {
	p := &Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Available:   in.Available,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

// DeleteOutcome describes what a product delete actually did.
type DeleteOutcome string

const (
	// DeleteOutcomeRemoved means the row was deleted.
	DeleteOutcomeRemoved DeleteOutcome = "removed"
	// DeleteOutcomeDeactivated means the row is referenced by sales and was marked unavailable.
	DeleteOutcomeDeactivated DeleteOutcome = "deactivated"
)

// Message returns the user-facing message for the outcome.
func (o DeleteOutcome) Message() string {
	if o == DeleteOutcomeDeactivated {
		return "Producto desactivado (tiene ventas asociadas)"
	}
	return "Producto eliminado completamente"
}
