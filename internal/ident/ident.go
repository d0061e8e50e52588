package ident

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const tokenLen = 16

// New returns prefix followed by 16 random base36 characters, e.g.
// "order_k3j9x0q2mb81v5tz". Uniqueness is probabilistic; callers do not
// collision-check.
func New(prefix string) string {
	buf := make([]byte, tokenLen)
	if _, err := rand.Read(buf); err != nil {
		panic("ident: " + err.Error())
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return prefix + string(buf)
}
