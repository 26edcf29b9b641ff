package db

import (
	"context"
	"testing"

	"room-server/confs"
	"room-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteMemory(t *testing.T) {
	database, err := Connect(confs.Database{Driver: "sqlite", SQLitePath: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Ping(context.Background()))

	gdb := database.GetDB()
	assert.True(t, gdb.Migrator().HasTable(&entities.User{}))
	assert.True(t, gdb.Migrator().HasTable(&entities.Room{}))
}

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := Connect(confs.Database{Driver: "oracle"})
	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  confs.Database
		want string
	}{
		{
			name: "url untouched",
			cfg:  confs.Database{URL: "postgres://u:p@h:5432/d"},
			want: "postgres://u:p@h:5432/d",
		},
		{
			name: "url gets sslmode",
			cfg:  confs.Database{URL: "postgres://u:p@h:5432/d?application_name=x", SSLMode: "require"},
			want: "postgres://u:p@h:5432/d?application_name=x&sslmode=require",
		},
		{
			name: "url keeps its own sslmode",
			cfg:  confs.Database{URL: "postgres://u:p@h/d?sslmode=disable", SSLMode: "require"},
			want: "postgres://u:p@h/d?sslmode=disable",
		},
		{
			name: "localhost disables ssl",
			cfg:  confs.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "d"},
			want: "host=localhost user=u password=p dbname=d port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name: "remote requires ssl",
			cfg:  confs.Database{Host: "db.internal", Port: "5432", User: "u", Password: "p", Name: "d"},
			want: "host=db.internal user=u password=p dbname=d port=5432 sslmode=require TimeZone=UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgresDSN(tt.cfg))
		})
	}
}
