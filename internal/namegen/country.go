package namegen

import "math/rand"

// BirthCountry is one weighted entry in the player birth-country
// table, supplemented from the source's birth-country sampling (§2c
// of the expanded spec) for flavor only — it does not partition the
// name pool, which draws from a single generic corpus.
type BirthCountry struct {
	Name        string
	Code        string
	Probability float64
}

// BirthCountries is the weighted sampling table of player birth
// countries, carried over from the source's configured distribution.
var BirthCountries = []BirthCountry{
	{"Canada", "CA", 0.42},
	{"United States", "US", 0.24},
	{"Sweden", "SE", 0.08},
	{"Finland", "FI", 0.05},
	{"Russia", "RU", 0.06},
	{"Czechia", "CZ", 0.035},
	{"Slovakia", "SK", 0.02},
	{"Germany", "DE", 0.02},
	{"Switzerland", "CH", 0.015},
	{"Latvia", "LV", 0.01},
	{"Denmark", "DK", 0.01},
	{"Lithuania", "LT", 0.005},
	{"Norway", "NO", 0.01},
	{"Belarus", "BY", 0.005},
	{"Slovenia", "SI", 0.005},
	{"Austria", "AT", 0.005},
	{"France", "FR", 0.01},
}

// SampleBirthCountry draws one country code from BirthCountries
// weighted by Probability, using rng.
func SampleBirthCountry(rng *rand.Rand) string {
	total := 0.0
	for _, c := range BirthCountries {
		total += c.Probability
	}
	r := rng.Float64() * total
	acc := 0.0
	for _, c := range BirthCountries {
		acc += c.Probability
		if r <= acc {
			return c.Code
		}
	}
	return BirthCountries[0].Code
}
