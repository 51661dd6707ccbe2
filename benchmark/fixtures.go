// Package benchmark compares tjson against other JSON libraries over shared
// generated corpora.
package benchmark

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator builds compact JSON documents from a seeded source, so every run
// sees byte-identical corpora.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	genFirst = []string{"Ada", "Grace", "Edsger", "Alan", "Barbara", "Donald", "Ken", "Dennis", "Rob", "Robin", "Margaret", "Radia", "Leslie", "Tony", "Niklaus", "Frances"}
	genLast  = []string{"Lovelace", "Hopper", "Dijkstra", "Turing", "Liskov", "Knuth", "Thompson", "Ritchie", "Pike", "Milner", "Hamilton", "Perlman", "Lamport", "Hoare", "Wirth", "Allen"}
	genCity  = []string{"London", "Oslo", "Zurich", "Cambridge", "Pittsburgh", "Edinburgh", "Amsterdam", "Munich", "Kyoto", "Helsinki", "Austin", "Toronto"}
	genLand  = []string{"UK", "Norway", "Switzerland", "USA", "Netherlands", "Germany", "Japan", "Finland", "Canada"}
	genTheme = []string{"light", "dark", "system", "solarized", "mono"}
	genLabel = []string{"alpha", "beta", "stable", "legacy", "canary", "archived", "pinned"}
)

// Records builds a document of the form {"meta":{...},"records":[...]} with
// n records of roughly 330 bytes each.
func (g *Generator) Records(n int) []byte {
	var sb strings.Builder
	sb.Grow(96 + n*330)

	fmt.Fprintf(&sb, `{"meta":{"version":"1.4.2","generated":"2026-08-23T00:00:00Z","count":%d},"records":[`, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		g.writeRecord(&sb, i)
	}
	sb.WriteString("]}")
	return []byte(sb.String())
}

func (g *Generator) writeRecord(sb *strings.Builder, i int) {
	fmt.Fprintf(sb, `{"id":%d,"sku":"sku-%d-%d","name":"%s %s","email":"user%d@example.net","age":%d,"balance":%.2f,"active":%t,"labels":[`,
		i, i, g.rng.Intn(10000), genFirst[i%len(genFirst)], genLast[(i*5)%len(genLast)], i,
		18+i%60, float64(g.rng.Intn(1000000))/100, i%3 != 0)

	labels := 1 + g.rng.Intn(3)
	for l := 0; l < labels; l++ {
		if l > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, `"%s"`, genLabel[g.rng.Intn(len(genLabel))])
	}

	fmt.Fprintf(sb, `],"profile":{"bio":"Record %d biography text","location":{"city":"%s","country":"%s","lat":%.2f,"lng":%.2f}},"prefs":{"theme":"%s","notify":%t,"locale":"en-GB"}}`,
		i, genCity[i%len(genCity)], genLand[i%len(genLand)],
		40+g.rng.Float64()*20, -10+g.rng.Float64()*40,
		genTheme[i%len(genTheme)], i%2 == 0)
}

// Deep builds a chain of objects depth levels deep with a boolean leaf.
func (g *Generator) Deep(depth int) []byte {
	var sb strings.Builder
	sb.Grow(depth*24 + 16)
	for d := 0; d < depth; d++ {
		fmt.Fprintf(&sb, `{"level":%d,"child":`, d)
	}
	sb.WriteString(`{"leaf":true}`)
	for d := 0; d < depth; d++ {
		sb.WriteByte('}')
	}
	return []byte(sb.String())
}

// EscapeHeavy builds a document whose strings are dense with escape
// sequences, to weight the benchmark toward escape decoding.
func (g *Generator) EscapeHeavy(n int) []byte {
	patterns := []string{
		`"line\none \"two\" three\ttab"`,
		`"unicode \u00e9 and \u4e16\u754c mix"`,
		`"slash\/dot \\ control\b\f\r"`,
		`"plain ascii with spaces"`,
	}
	var sb strings.Builder
	sb.Grow(n*40 + 16)
	sb.WriteString(`{"texts":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(patterns[i%len(patterns)])
	}
	sb.WriteString("]}")
	return []byte(sb.String())
}

// ToSize builds a Records document of approximately targetBytes.
func (g *Generator) ToSize(targetBytes int) []byte {
	const bytesPerRecord = 330
	n := targetBytes / bytesPerRecord
	if n < 1 {
		n = 1
	}
	return g.Records(n)
}

// TargetSizes returns the corpus sizes used by the size benchmarks.
func TargetSizes() map[string]int {
	return map[string]int{
		"4KiB":  4 << 10,
		"64KiB": 64 << 10,
		"1MiB":  1 << 20,
		"8MiB":  8 << 20,
	}
}

// SizeOrder returns the size names smallest first.
func SizeOrder() []string {
	return []string{"4KiB", "64KiB", "1MiB", "8MiB"}
}
