package util

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// GenerateRandomSlug builds a URL slug from the title with a short random suffix.
func GenerateRandomSlug(title string) string {
	baseSlug := slug.Make(title)
	shortID := shortuuid.New()[:8]
	if baseSlug == "" {
		return shortID
	}
	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

func RandomUsername() string {
	return RandomString(10)
}

func RandomEmail() string {
	return fmt.Sprintf("%s@email.com", RandomString(8))
}
