// Package namegen produces display names for AI seats that weren't given
// an explicit one, adapted from the teacher's backend/names.go.
package namegen

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Brave", "Clever", "Wild", "Swift", "Bold", "Mighty", "Mystic", "Noble",
	"Fierce", "Gentle", "Silent", "Rapid", "Calm", "Proud", "Wise", "Happy",
	"Lucky", "Sneaky", "Cunning", "Bright", "Dark", "Golden", "Silver", "Royal",
	"Ancient", "Modern", "Quick", "Slow", "Tiny", "Giant", "Cool", "Hot",
}

var pieces = []string{
	"Octopus", "Tiger", "Phoenix", "Dragon", "Eagle", "Wolf", "Bear", "Fox",
	"Lion", "Hawk", "Shark", "Panther", "Raven", "Falcon", "Cobra", "Viper",
	"Lynx", "Owl", "Dolphin", "Whale", "Rhino", "Jaguar", "Cheetah", "Leopard",
	"Puma", "Otter", "Badger", "Raccoon", "Moose", "Buffalo", "Bison", "Elk",
}

// Generator produces AdjectiveAnimalNumber names from a seeded source,
// reseeded from config.Config.Seed instead of time.Now().UnixNano() so a
// whole engine run is reproducible under BLOKUS_SEED.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns one random name in the form AdjectiveAnimalNumber.
func (g *Generator) Next() string {
	adjective := adjectives[g.rng.Intn(len(adjectives))]
	animal := pieces[g.rng.Intn(len(pieces))]
	number := g.rng.Intn(100)
	return fmt.Sprintf("%s%s%d", adjective, animal, number)
}
