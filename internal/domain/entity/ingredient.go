package entity

import "github.com/shopspring/decimal"

// Ingredient un insumo de cocina con su unidad de display ("g", "ml").
type Ingredient struct {
	ID     string
	ShopID string
	Name   string
	Unit   string
}

// RecipeLine consumo de un ingrediente por unidad de SKU vendida
// (bill of materials). Solo las empanadas tienen receta en este dominio,
// aunque el modelo no lo exige.
type RecipeLine struct {
	SKUID         string
	IngredientID  string
	AmountPerUnit decimal.Decimal // >= 0, en la unidad del ingrediente
}
