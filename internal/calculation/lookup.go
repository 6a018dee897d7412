package calculation

import "github.com/shopspring/decimal"

// lookupOr returns the value for key, or def when the key is absent.
func lookupOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// keyOr substitutes the fallback key for a blank answer.
func keyOr(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return key
}

// firstPositive returns the first strictly positive value, or zero when none
// is. Rate tables treat zero as "not set", so fallback chains skip zeros.
func firstPositive(values ...decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v.GreaterThan(decimal.Zero) {
			return v
		}
	}
	return decimal.Zero
}
