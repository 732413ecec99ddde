// Comando seed: carga idempotente del catálogo inicial de Mari Empanadas.
// Se puede correr las veces que haga falta; todo usa upserts por llave natural.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/empanadas-api/pkg/config"
	"github.com/jhoicas/empanadas-api/pkg/logger"
)

const shopName = "Mari Empanadas"

var skuSpecs = []struct {
	Name     string
	Category string
}{
	{"Chicken", entity.CategoryEmpanada},
	{"Cheese", entity.CategoryEmpanada},
	{"Beef", entity.CategoryEmpanada},
	{"Guava & Cheese", entity.CategoryEmpanada},
	{"Ham & Cheese", entity.CategoryEmpanada},
	{"Morocho", entity.CategoryDrink},
	{"Hot Chocolate", entity.CategoryDrink},
	{"Coffee (Black)", entity.CategoryDrink},
}

var ingredientSpecs = []struct {
	Name string
	Unit string
}{
	{"flour", "g"},
	{"water", "ml"},
	{"salt", "g"},
	{"oil", "ml"},
	{"chicken", "g"},
	{"beef", "g"},
	{"cheese", "g"},
	{"guava paste", "g"},
	{"ham", "g"},
	{"sugar", "g"},
	{"cinnamon", "g"},
	{"milk", "ml"},
	{"cornmeal", "g"},
	{"cocoa powder", "g"},
	{"coffee grounds", "g"},
}

type recipePart struct {
	Ingredient string
	Amount     int
}

// Masa común a toda empanada, por unidad.
var doughPerUnit = []recipePart{
	{"flour", 80},
	{"water", 40},
	{"salt", 2},
	{"oil", 10},
}

// Relleno por variedad, por unidad.
var fillings = map[string][]recipePart{
	"Chicken":        {{"chicken", 60}},
	"Cheese":         {{"cheese", 60}},
	"Beef":           {{"beef", 60}},
	"Guava & Cheese": {{"guava paste", 40}, {"cheese", 30}},
	"Ham & Cheese":   {{"ham", 40}, {"cheese", 30}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ownerID := os.Getenv("SEED_OWNER_ID")
	if ownerID == "" {
		ownerID = uuid.NewString()
		log.Warn().Str("owner_id", ownerID).Msg("SEED_OWNER_ID no definido, generando uno nuevo")
	}

	shopID, err := ensureShop(ctx, pool, ownerID)
	if err != nil {
		log.Fatal().Err(err).Msg("crear local")
	}
	log.Info().Str("shop_id", shopID).Msg("Local listo")

	if err := upsertSKUs(ctx, pool, shopID); err != nil {
		log.Fatal().Err(err).Msg("cargar SKUs")
	}
	if err := upsertIngredients(ctx, pool, shopID); err != nil {
		log.Fatal().Err(err).Msg("cargar ingredientes")
	}
	if err := upsertRecipes(ctx, pool, shopID); err != nil {
		log.Fatal().Err(err).Msg("cargar recetas")
	}

	log.Info().Msg("Seed completado")
}

// ensureShop devuelve el local del owner, creándolo con su configuración
// default si no existe.
func ensureShop(ctx context.Context, pool *pgxpool.Pool, ownerID string) (string, error) {
	var shopID string
	err := pool.QueryRow(ctx,
		`SELECT id FROM shops WHERE owner_id = $1 LIMIT 1`, ownerID,
	).Scan(&shopID)
	if err == nil {
		return shopID, nil
	}

	shopID = uuid.NewString()
	if _, err := pool.Exec(ctx,
		`INSERT INTO shops (id, owner_id, name) VALUES ($1, $2, $3)`,
		shopID, ownerID, shopName,
	); err != nil {
		return "", err
	}

	cfg := entity.DefaultShopConfig(shopID)
	_, err = pool.Exec(ctx, `
		INSERT INTO shop_configs (shop_id, timezone, open_time, close_time, comparable_days, waste_factor)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (shop_id) DO NOTHING`,
		shopID, cfg.Timezone, cfg.OpenTime, cfg.CloseTime, cfg.ComparableDays, cfg.WasteFactor,
	)
	return shopID, err
}

func upsertSKUs(ctx context.Context, pool *pgxpool.Pool, shopID string) error {
	for _, s := range skuSpecs {
		if _, err := pool.Exec(ctx, `
			INSERT INTO skus (id, shop_id, name, category)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (shop_id, name) DO NOTHING`,
			uuid.NewString(), shopID, s.Name, s.Category,
		); err != nil {
			return err
		}
	}
	return nil
}

func upsertIngredients(ctx context.Context, pool *pgxpool.Pool, shopID string) error {
	for _, ing := range ingredientSpecs {
		if _, err := pool.Exec(ctx, `
			INSERT INTO ingredients (id, shop_id, name, unit)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (shop_id, name) DO NOTHING`,
			uuid.NewString(), shopID, ing.Name, ing.Unit,
		); err != nil {
			return err
		}
	}
	return nil
}

// upsertRecipes arma la receta de cada empanada: masa común + relleno propio.
// Las bebidas no llevan receta.
func upsertRecipes(ctx context.Context, pool *pgxpool.Pool, shopID string) error {
	skuIDs, err := idsByName(ctx, pool, `SELECT name, id FROM skus WHERE shop_id = $1`, shopID)
	if err != nil {
		return err
	}
	ingredientIDs, err := idsByName(ctx, pool, `SELECT name, id FROM ingredients WHERE shop_id = $1`, shopID)
	if err != nil {
		return err
	}

	for _, s := range skuSpecs {
		if s.Category != entity.CategoryEmpanada {
			continue
		}
		skuID, ok := skuIDs[s.Name]
		if !ok {
			continue
		}
		parts := append(append([]recipePart{}, doughPerUnit...), fillings[s.Name]...)
		for _, p := range parts {
			ingredientID, ok := ingredientIDs[p.Ingredient]
			if !ok {
				continue
			}
			if _, err := pool.Exec(ctx, `
				INSERT INTO recipes (sku_id, ingredient_id, amount_per_unit)
				VALUES ($1, $2, $3)
				ON CONFLICT (sku_id, ingredient_id) DO UPDATE SET amount_per_unit = EXCLUDED.amount_per_unit`,
				skuID, ingredientID, p.Amount,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func idsByName(ctx context.Context, pool *pgxpool.Pool, query, shopID string) (map[string]string, error) {
	rows, err := pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return nil, err
		}
		result[name] = id
	}
	return result, rows.Err()
}
