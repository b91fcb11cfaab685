// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package randkey produces the short random identifiers used to key
// queued overlay items and stacked screens.
package randkey

import "math/rand/v2"

// DefaultLength is the key length used across partita.
const DefaultLength = 6

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// String returns a random alphanumeric string of length n.
func String(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// New returns a DefaultLength key.
func New() string {
	return String(DefaultLength)
}

// Unique draws keys until taken reports false. taken may be nil.
func Unique(taken func(string) bool) string {
	for {
		k := New()
		if taken == nil || !taken(k) {
			return k
		}
	}
}
