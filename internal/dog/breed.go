package dog

import (
	"fmt"
	"strings"
)

// Breed of a dog.
type Breed int

const (
	BreedMutt Breed = iota
	BreedPitbull
	BreedGermanShepherd
	BreedCorgi
	BreedAustralianShepherd
	BreedBorderCollie
	BreedBloodhound
	BreedCavalierKingCharlesSpaniel
	BreedHavanese
	BreedHusky
	BreedPoodle
	BreedLabradoodle
	BreedGoldendoodle
	BreedShepadoodle
	BreedCockapoo
	BreedSchnauzer
	BreedScottishTerrier
	BreedLabrador
	BreedGoldenRetriever
	BreedSaintBernard
	BreedGreyhound
	BreedGreatDane
	BreedMastiff
	BreedDalmatian

	breedCount
)

var breedNames = [breedCount]string{
	"mutt", "pitbull", "german_shepherd", "corgi", "australian_shepherd", "border_collie",
	"bloodhound", "cavalier_king_charles_spaniel", "havanese", "husky", "poodle", "labradoodle",
	"goldendoodle", "shepadoodle", "cockapoo", "schnauzer", "scottish_terrier", "labrador",
	"golden_retriever", "saint_bernard", "greyhound", "great_dane", "mastiff", "dalmatian",
}

func (b Breed) String() string {
	if b < 0 || b >= breedCount {
		return "unknown"
	}
	return breedNames[b]
}

// Breeds lists every known breed.
func Breeds() []Breed {
	bs := make([]Breed, 0, breedCount)
	for b := range breedCount {
		bs = append(bs, b)
	}
	return bs
}

// ParseBreed converts a name such as "Border Collie" or "border_collie" to a Breed.
func ParseBreed(s string) (Breed, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	for i, n := range breedNames {
		if n == s {
			return Breed(i), nil
		}
	}
	return 0, fmt.Errorf("dog: unknown breed %q", s)
}
