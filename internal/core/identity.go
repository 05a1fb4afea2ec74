package core

import (
	"fmt"
	"strings"
)

// Gender of a dog or player.
type Gender int

const (
	GenderGirl Gender = iota
	GenderBoy
)

func (g Gender) String() string {
	switch g {
	case GenderGirl:
		return "girl"
	case GenderBoy:
		return "boy"
	default:
		return "unknown"
	}
}

// ParseGender converts "girl"/"boy" (case-insensitive) to a Gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "girl":
		return GenderGirl, nil
	case "boy":
		return GenderBoy, nil
	default:
		return 0, fmt.Errorf("core: unknown gender %q", s)
	}
}
