// Package generator builds random dish records out of fixed vocabulary tables.
package generator

import (
	"math/rand/v2"
	"slices"
	"strings"

	"dishseed/models"
)

const (
	adjectiveProbability  = 0.5
	ingredientProbability = 0.4 // applied only when no adjective was chosen, 0.2 overall
)

// Decoration tells which prefix, if any, was put in front of the base item.
type Decoration int

const (
	Plain Decoration = iota
	Adjective
	Ingredient
)

// Generator is not safe for concurrent use: it shares rng with its caller.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}

func (g *Generator) Generate() models.Record {
	category := g.pick(categories)
	item := g.pick(items[category])
	switch {
	case g.rng.Float64() < adjectiveProbability:
		item = g.pick(adjectives) + " " + item
	case g.rng.Float64() < ingredientProbability:
		item = g.pick(ingredients) + " " + item
	}
	return models.Record{Name: item, Category: category}
}

func Categories() []string {
	return slices.Clone(categories)
}

func IsCategory(name string) bool {
	_, ok := items[name]
	return ok
}

func Items(category string) []string {
	return slices.Clone(items[category])
}

// Decompose splits a generated name back into its decoration and base item.
// ok is false when the base item does not belong to the record's category.
func Decompose(r models.Record) (base string, d Decoration, ok bool) {
	list, known := items[r.Category]
	if !known {
		return "", Plain, false
	}
	if slices.Contains(list, r.Name) {
		return r.Name, Plain, true
	}
	prefix, rest, found := strings.Cut(r.Name, " ")
	if !found || !slices.Contains(list, rest) {
		return "", Plain, false
	}
	switch {
	case slices.Contains(adjectives, prefix):
		return rest, Adjective, true
	case slices.Contains(ingredients, prefix):
		return rest, Ingredient, true
	}
	return "", Plain, false
}
