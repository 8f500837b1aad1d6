package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ParseDateTime aceita o formato enviado pelo formulário de agendamento
// (2006-01-02T15:04:05, sem offset) e também RFC3339.
func ParseDateTime(value string, tz string) (time.Time, error) {
	loc := Location(tz)

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return t, nil
	}

	return time.ParseInLocation(time.RFC3339, value, loc)
}
