package dto

// SKUDTO un producto vendible del catálogo.
type SKUDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"` // empanada | drink
}

// IngredientDTO un insumo del catálogo.
type IngredientDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// RecipeLineDTO consumo de un ingrediente por unidad de SKU.
type RecipeLineDTO struct {
	SKUID         string `json:"sku_id"`
	IngredientID  string `json:"ingredient_id"`
	AmountPerUnit string `json:"amount_per_unit"` // decimal como string para no perder precisión
}
