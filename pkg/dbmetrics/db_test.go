package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT value FROM blobs WHERE key = $1"))
	assert.Equal(t, "insert", Operation("  INSERT INTO blobs (key,value) VALUES ($1,$2)"))
	assert.Equal(t, "create", Operation("CREATE TABLE IF NOT EXISTS blobs"))
	assert.Equal(t, "unknown", Operation("   "))
}
