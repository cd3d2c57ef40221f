package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/persistence/file"
)

func TestParsePersistenceProvider(t *testing.T) {
	assert.Equal(t, "redis", parsePersistenceProvider("redis://localhost:6379/0"))
	assert.Equal(t, "redis", parsePersistenceProvider("rediss://example.com:6380"))
	assert.Equal(t, "file", parsePersistenceProvider("file://./data"))
	assert.Equal(t, "file", parsePersistenceProvider("./data"))
	assert.Equal(t, "file", parsePersistenceProvider("postgres://ignored"))
}

func TestNewPersistence_FileBackend(t *testing.T) {
	p, err := NewPersistence("file://" + t.TempDir())
	require.NoError(t, err)

	_, ok := p.(*file.Persistence)
	assert.True(t, ok)
}
