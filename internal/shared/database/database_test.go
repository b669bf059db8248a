package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilRedisIsASupportedState(t *testing.T) {
	// Redis is optional at boot; the rest of the DB handle must keep
	// working when the client is absent
	db := &DB{PostgreSQL: nil, Redis: nil}

	require.NoError(t, db.HealthCheck(context.Background()))
	require.NoError(t, db.Close())
	require.Nil(t, db.GetRedis())
}
