package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintIgnoresMapOrder(t *testing.T) {
	a := map[string]any{"id": 1, "title": "x"}
	b := map[string]any{"title": "x", "id": 1}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Len(t, Fingerprint(a), 16)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(map[string]any{"id": 2, "title": "x"}))
}

func TestFingerprintUnhashable(t *testing.T) {
	assert.Equal(t, "", Fingerprint(map[string]any{"fn": func() {}}))
}
