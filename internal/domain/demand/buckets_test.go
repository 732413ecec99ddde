package demand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empanadas-api/internal/domain/demand"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err, "la zona %s debe existir en tzdata", name)
	return loc
}

func TestHourWindow_HorasYExtremos(t *testing.T) {
	w := demand.NewHourWindow(11)

	assert.Equal(t, 11, w.First())
	assert.Equal(t, 18, w.Last())
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18}, w.Hours(),
		"la ventana debe tener exactamente 8 horas consecutivas")
}

func TestHourWindow_AperturaFueraDeRangoSeAcota(t *testing.T) {
	assert.Equal(t, 16, demand.NewHourWindow(20).First(),
		"una apertura tardía se acota para que los 8 buckets queden en el día")
	assert.Equal(t, 0, demand.NewHourWindow(-3).First())
}

func TestHourWindow_ClampAprisionaEnBordes(t *testing.T) {
	w := demand.NewHourWindow(11)

	assert.Equal(t, 11, w.Clamp(10), "antes de abrir → primer bucket")
	assert.Equal(t, 11, w.Clamp(0))
	assert.Equal(t, 18, w.Clamp(19), "después de cerrar → último bucket")
	assert.Equal(t, 23, demand.NewHourWindow(16).Clamp(23))
	assert.Equal(t, 14, w.Clamp(14), "una hora dentro de la ventana no cambia")
}

// La venta de las 10am con apertura a las 11 cae en el bucket de las 11,
// nunca se descarta.
func TestHourWindow_BucketForVentaAntesDeAbrir(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	w := demand.NewHourWindow(11)

	// 10:30 local en Nueva York (EST, UTC-5) = 15:30 UTC
	ts := time.Date(2025, 1, 18, 15, 30, 0, 0, time.UTC)
	require.Equal(t, 10, ts.In(loc).Hour())

	assert.Equal(t, 11, w.BucketFor(ts, loc))
}

// BucketFor debe usar la zona real del local: el mismo instante UTC cae en
// buckets distintos según el offset vigente (EST vs EDT).
func TestHourWindow_BucketForRespetaDST(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	w := demand.NewHourWindow(11)

	// 18:00 UTC en enero (EST, UTC-5) → 13:00 local
	invierno := time.Date(2025, 1, 18, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 13, w.BucketFor(invierno, loc))

	// 18:00 UTC en julio (EDT, UTC-4) → 14:00 local
	verano := time.Date(2025, 7, 19, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, w.BucketFor(verano, loc))
}
