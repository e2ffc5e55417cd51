// internal/template/template.go
//
// Placeholder expansion for the templated config fields (containername,
// image, dockerargs, build). Exactly two tokens are recognized; anything
// else in braces passes through untouched.

package template

import (
	"math/rand/v2"
	"strings"
)

const (
	archToken   = "{arch}"
	randomToken = "{random}"

	// RandomLength is the length of each generated {random} value.
	RandomLength = 20
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Expand substitutes {arch} with the given architecture and {random}
// with a fresh 20-character lowercase string. One random value is drawn
// per call, so repeated {random} tokens inside a single template expand
// to the same string; separate calls draw separate values.
func Expand(arch, s string) string {
	s = strings.ReplaceAll(s, archToken, arch)
	if strings.Contains(s, randomToken) {
		s = strings.ReplaceAll(s, randomToken, randomString(RandomLength))
	}
	return s
}

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = lowercase[rand.IntN(len(lowercase))]
	}
	return string(b)
}
