package types

import "strings"

// Intn is the subset of *math/rand.Rand used to pick random elements.
type Intn interface {
	Intn(n int) int
}

// GetRandomSliceValue returns a random value from the given slice.
func GetRandomSliceValue[T any](rnd Intn, slice []T) T {
	var res T
	if len(slice) == 0 {
		return res
	}
	return slice[rnd.Intn(len(slice))]
}

// SliceContains returns true if the given slice contains the given value.
func SliceContains[T comparable](slice []T, value T) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// NormalizeExtensions lower-cases extensions, adds the leading dot and drops duplicates.
func NormalizeExtensions(exts []string) []string {
	var res []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !SliceContains(res, ext) {
			res = append(res, ext)
		}
	}
	return res
}
