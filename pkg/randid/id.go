// Package randid generates short random identifiers.
package randid

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// maxByte is the largest multiple of len(alphabet) that fits in a byte. Bytes
// at or above it are discarded so every symbol is equally likely.
const maxByte = 256 - 256%len(alphabet)

// Generate returns a random string of length n drawn from [a-z0-9]. It
// returns "" for n <= 0.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/2)
	for len(out) < n {
		// rand.Read never returns an error on supported platforms.
		_, _ = rand.Read(buf)
		for _, c := range buf {
			if int(c) >= maxByte {
				continue
			}
			out = append(out, alphabet[int(c)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
