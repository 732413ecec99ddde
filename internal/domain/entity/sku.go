package entity

import "time"

// Categorías de SKU. El dominio solo distingue empanadas y bebidas; cualquier
// otra categoría se agrega por hora pero no suma a los totales por categoría.
const (
	CategoryEmpanada = "empanada"
	CategoryDrink    = "drink"
)

// SKU un producto vendible del local (empanada o bebida). Inmutable durante
// una corrida de agregación o pronóstico.
type SKU struct {
	ID        string
	ShopID    string
	Name      string
	Category  string // empanada | drink
	CreatedAt time.Time
}

// IsEmpanada indica si el SKU es de categoría empanada.
func (s SKU) IsEmpanada() bool { return s.Category == CategoryEmpanada }

// IsDrink indica si el SKU es de categoría bebida.
func (s SKU) IsDrink() bool { return s.Category == CategoryDrink }
