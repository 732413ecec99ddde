package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de configuración: un local recién creado siempre debe
// poder pronosticar aunque nunca haya guardado su configuración.
const (
	DefaultTimezone       = "America/New_York"
	DefaultOpenTime       = "11:00"
	DefaultCloseTime      = "19:00"
	DefaultComparableDays = 3

	// LegacyOpenHour ancla la ventana fija 11–18 usada por los reportes
	// históricos (el pronóstico usa el open_time configurado).
	LegacyOpenHour = 11
)

// DefaultWasteFactor descuento multiplicativo del modo "waste minimizer" (0.9).
var DefaultWasteFactor = decimal.NewFromFloat(0.9)

// Shop un local de venta. El sistema es mono-local: cada usuario es dueño de
// exactamente un shop.
type Shop struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

// ShopConfig parámetros operativos del local usados por agregación y pronóstico.
type ShopConfig struct {
	ShopID         string
	Timezone       string          // nombre IANA, ej. "America/New_York"
	OpenTime       string          // "HH:MM", define la ventana de 8 horas
	CloseTime      string          // "HH:MM", solo informativo
	ComparableDays int             // N días históricos a promediar
	WasteFactor    decimal.Decimal // 0 < f <= 1
}

// DefaultShopConfig configuración por defecto para un local sin fila en shop_configs.
func DefaultShopConfig(shopID string) ShopConfig {
	return ShopConfig{
		ShopID:         shopID,
		Timezone:       DefaultTimezone,
		OpenTime:       DefaultOpenTime,
		CloseTime:      DefaultCloseTime,
		ComparableDays: DefaultComparableDays,
		WasteFactor:    DefaultWasteFactor,
	}
}

// Normalize rellena campo a campo los valores ausentes o inválidos con los
// defaults. Devuelve una copia; nunca muta el receptor.
func (c ShopConfig) Normalize() ShopConfig {
	out := c
	if out.Timezone == "" {
		out.Timezone = DefaultTimezone
	}
	if out.OpenTime == "" {
		out.OpenTime = DefaultOpenTime
	}
	if out.CloseTime == "" {
		out.CloseTime = DefaultCloseTime
	}
	if out.ComparableDays <= 0 {
		out.ComparableDays = DefaultComparableDays
	}
	if out.WasteFactor.LessThanOrEqual(decimal.Zero) || out.WasteFactor.GreaterThan(decimal.NewFromInt(1)) {
		out.WasteFactor = DefaultWasteFactor
	}
	return out
}

// OpenHour extrae la hora de apertura de OpenTime ("11:00" -> 11).
// Si el formato es inválido cae al default legacy.
func (c ShopConfig) OpenHour() int {
	hh, _, _ := strings.Cut(c.OpenTime, ":")
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return LegacyOpenHour
	}
	return h
}

// Location resuelve la zona horaria IANA del local. Si el nombre no existe en
// la base tzdata cae a la zona por defecto, y en último caso a UTC.
func (c ShopConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
