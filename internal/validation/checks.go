package validation

import (
	"fmt"
	"strconv"
	"time"
)

// Checks estándar. La política de "ausente" es deliberada y exacta:
// la presencia se exige con RequireNonEmpty en una regla aparte, así que los
// demás checks son no-op sobre valores ausentes.

func RequireNonEmpty() Check {
	return func(label, value string, present bool) (string, bool) {
		if !present || value == "" {
			return fmt.Sprintf("'%s' must be present", label), false
		}
		return "", true
	}
}

func CheckDateFormat() Check {
	return func(label, value string, present bool) (string, bool) {
		if !present {
			return "", true
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Sprintf("'%s' is malformed: '%s'. Accepted format is 'yyyy-MM-dd'", label, value), false
		}
		return "", true
	}
}

func CheckIntegerFormat() Check {
	return func(label, value string, present bool) (string, bool) {
		if !present {
			return "", true
		}
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Sprintf("'%s' is malformed: '%s'", label, value), false
		}
		return "", true
	}
}

// RequirePositiveNumber parsea en 64 bits para tolerar input ya inválido
// sin explotar; si ni siquiera parsea, el check no aplica (eso ya lo
// reportó CheckIntegerFormat).
func RequirePositiveNumber() Check {
	return func(label, value string, present bool) (string, bool) {
		if !present {
			return "", true
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return "", true
		}
		if n < 0 {
			return fmt.Sprintf("'%s' must be a positive value", label), false
		}
		return "", true
	}
}

func RequireNonZero() Check {
	return func(label, value string, present bool) (string, bool) {
		if !present {
			return "", true
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return "", true
		}
		if n == 0 {
			return fmt.Sprintf("'%s' must be greater than zero", label), false
		}
		return "", true
	}
}

// AssertTruth falla con mensaje genérico cuando el predicado no se cumple.
func AssertTruth(pred func(value string) bool) Check {
	return func(label, value string, present bool) (string, bool) {
		if !present {
			return "", true
		}
		if !pred(value) {
			return fmt.Sprintf("'%s' has illegal value: '%s'", label, value), false
		}
		return "", true
	}
}
