package timeutil

import "time"

// Zona horaria de referencia del rollout (Brasilia).
const TimezoneName = "America/Sao_Paulo"

var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		// Fallback fijo UTC-3 si la base de zonas no está disponible en el contenedor.
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// ToBrazilianTime convierte una fecha a la zona horaria de Brasilia.
func ToBrazilianTime(t time.Time) time.Time {
	return t.In(location)
}

// FormatDate formatea una fecha como dd/MM/yyyy en hora de Brasilia (celdas del export).
func FormatDate(t time.Time) string {
	return ToBrazilianTime(t).Format("02/01/2006")
}

// FormatDateTime formatea fecha y hora como dd/MM/yyyy HH:mm:ss en hora de Brasilia.
func FormatDateTime(t time.Time) string {
	return ToBrazilianTime(t).Format("02/01/2006 15:04:05")
}

// FileTimestamp genera un timestamp apto para nombres de archivo (yyyy-MM-ddTHH-mm-ss),
// en hora de Brasilia.
func FileTimestamp(t time.Time) string {
	return ToBrazilianTime(t).Format("2006-01-02T15-04-05")
}
