package service

import "math/rand"

// Seeder produces the initial engagement counters for fresh captions.
type Seeder interface {
	// Seed returns (likeCount, dislikeCount) for one caption.
	Seed() (int, int)
}

// RandomSeeder fakes plausible social proof: likes in [5,105),
// dislikes in [0,10).
type RandomSeeder struct{}

func (RandomSeeder) Seed() (int, int) {
	return rand.Intn(100) + 5, rand.Intn(10)
}

// ZeroSeeder starts every caption at zero, for deployments that want
// honest counters.
type ZeroSeeder struct{}

func (ZeroSeeder) Seed() (int, int) {
	return 0, 0
}

// NewSeeder selects a seeder by config name, defaulting to RandomSeeder.
// Parameters:
//   - name: "zero" or "random".
// Returns:
//   - Seeder: selected seeder.
func NewSeeder(name string) Seeder {
	if name == "zero" {
		return ZeroSeeder{}
	}
	return RandomSeeder{}
}
