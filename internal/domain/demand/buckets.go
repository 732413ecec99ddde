// Package demand implementa el núcleo de cálculo del sistema: agregación de
// ventas por hora y pronóstico de demanda por días comparables. Todo el
// paquete es puro (sin I/O): recibe pedidos y catálogo ya leídos del store y
// produce estructuras agregadas listas para la capa de presentación.
package demand

import (
	"time"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// windowHours la ventana operativa siempre cubre 8 horas consecutivas.
const windowHours = 8

// HourWindow ventana de 8 horas consecutivas que define los buckets de
// agrupación. Todo timestamp fuera de la ventana se aprisiona en el bucket
// extremo más cercano: antes de abrir → primer bucket, después de cerrar →
// último bucket. Nunca se descartan ventas por hora.
type HourWindow struct {
	open int
}

// NewHourWindow construye la ventana anclada en openHour. La hora se acota a
// [0, 16] para que los 8 buckets queden dentro del día.
func NewHourWindow(openHour int) HourWindow {
	if openHour < 0 {
		openHour = 0
	}
	if openHour > 24-windowHours {
		openHour = 24 - windowHours
	}
	return HourWindow{open: openHour}
}

// LegacyWindow la ventana fija 11–18 de los reportes históricos.
func LegacyWindow() HourWindow {
	return NewHourWindow(entity.LegacyOpenHour)
}

// First primer bucket (hora de apertura).
func (w HourWindow) First() int { return w.open }

// Last último bucket.
func (w HourWindow) Last() int { return w.open + windowHours - 1 }

// Hours devuelve los 8 buckets en orden ascendente.
func (w HourWindow) Hours() []int {
	hours := make([]int, windowHours)
	for i := range hours {
		hours[i] = w.open + i
	}
	return hours
}

// Clamp aprisiona una hora dentro de [First, Last].
func (w HourWindow) Clamp(hour int) int {
	if hour < w.First() {
		return w.First()
	}
	if hour > w.Last() {
		return w.Last()
	}
	return hour
}

// BucketFor convierte un timestamp UTC a la zona del local y devuelve su
// bucket. La conversión usa la base tzdata real (loc), nunca offsets fijos:
// la semántica de calendario local, incluidos los cambios de horario de
// verano, la resuelve la librería estándar.
func (w HourWindow) BucketFor(ts time.Time, loc *time.Location) int {
	return w.Clamp(ts.In(loc).Hour())
}
