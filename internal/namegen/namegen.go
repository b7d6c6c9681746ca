// Package namegen generates unique player and coach names from a
// seeded, shuffled cross product of first and last name pools, the
// same approach as the source generator it was distilled from: build
// every combination once, shuffle it with the simulator's RNG, and
// hand out names off the front, falling back to a numbered suffix
// once the pool is exhausted.
package namegen

import "math/rand"

var firstNames = []string{
	"Aiden", "Blake", "Carter", "Dmitri", "Elias", "Felix", "Gustav", "Henrik",
	"Ivan", "Jonas", "Kasper", "Lars", "Magnus", "Niklas", "Oskar", "Petter",
	"Rasmus", "Sven", "Tobias", "Viktor", "William", "Owen", "Logan", "Mason",
	"Ethan", "Noah", "Lucas", "Jack", "Liam", "Connor", "Ryan", "Cole",
	"Dylan", "Hunter", "Brody", "Tyler", "Cameron", "Austin", "Jordan", "Trevor",
	"Mikael", "Anton", "Filip", "Erik", "Johan", "Pavel", "Andrei", "Sergei",
	"Tomas", "Jakub", "Marek", "Radek", "Martin", "Lukas", "Adam", "Daniel",
	"Patrik", "Roman", "Stepan", "Vaclav",
}

var lastNames = []string{
	"Anderson", "Berg", "Carlsson", "Dahl", "Eriksson", "Fredriksen", "Gustafsson",
	"Hansen", "Iverson", "Johansson", "Karlsson", "Larsson", "Magnusson", "Nilsson",
	"Olsen", "Pedersen", "Qvist", "Ronning", "Svensson", "Thorsen", "Virtanen",
	"Makinen", "Koskinen", "Nieminen", "Heikkinen", "Korhonen", "Laine", "Saari",
	"Novak", "Svoboda", "Kral", "Prochazka", "Dvorak", "Cerny", "Horak", "Marek",
	"Sokolov", "Petrov", "Volkov", "Ivanov", "Smirnov", "Kuznetsov", "Popov",
	"MacDonald", "Sinclair", "Fraser", "Campbell", "Stewart", "Mitchell", "Reid",
	"Wilson", "Taylor", "Brown", "Clarke", "Murphy", "Sullivan", "Walsh",
	"Dubois", "Lefebvre", "Girard", "Bernard", "Moreau",
}

// Generator hands out unique names from a seeded shuffle of the
// first x last cross product. Zero value is not usable; construct
// with New.
type Generator struct {
	rng     *rand.Rand
	pool    []string
	next    int
	used    map[string]bool
	numbers map[string]int
}

// New builds a Generator seeded from rng's stream. rng is consumed
// (advanced) by the shuffle so callers should pass the simulator's
// single shared RNG to keep draws deterministic and interleaved with
// everything else that consumes it.
func New(rng *rand.Rand) *Generator {
	pool := make([]string, 0, len(firstNames)*len(lastNames))
	for _, f := range firstNames {
		for _, l := range lastNames {
			pool = append(pool, f+" "+l)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return &Generator{
		rng:     rng,
		pool:    pool,
		used:    make(map[string]bool),
		numbers: make(map[string]int),
	}
}

// Reserve marks name as already taken so Next will never hand it out,
// used when rehydrating a generator against an already-populated
// league (e.g. after load).
func (g *Generator) Reserve(name string) {
	g.used[name] = true
}

// Next returns the next unused name. Once the shuffled pool is
// exhausted it recycles pool entries with an incrementing numeric
// suffix ("Erik Berg II", "Erik Berg III", ...) rather than panicking,
// since a long-running league can outlast the base pool.
func (g *Generator) Next() string {
	for g.next < len(g.pool) {
		candidate := g.pool[g.next]
		g.next++
		if !g.used[candidate] {
			g.used[candidate] = true
			return candidate
		}
	}

	base := g.pool[g.next%len(g.pool)]
	g.next++
	for {
		g.numbers[base]++
		candidate := base + " " + romanNumeral(g.numbers[base]+1)
		if !g.used[candidate] {
			g.used[candidate] = true
			return candidate
		}
	}
}

func romanNumeral(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	out := ""
	for _, num := range numerals {
		for n >= num.value {
			out += num.symbol
			n -= num.value
		}
	}
	return out
}
