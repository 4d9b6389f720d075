package db

import (
	"context"
	"io"
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"gorm.io/driver/postgres"
)

type draftRow struct {
	ID    int
	Title string
}

func newTestClient(t *testing.T, name string) *Client {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	client, err := New(context.Background(), config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + name + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, logg)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.DB().AutoMigrate(&draftRow{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return client
}

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{Driver: config.DriverSQLite}, nil); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestDialectorFollowsDriver(t *testing.T) {
	if name := Dialector(config.DBConfig{Driver: "SQLite", DSN: "file::memory:"}).Name(); name != "sqlite" {
		t.Fatalf("expected sqlite dialector, got %s", name)
	}
	dialector := Dialector(config.DBConfig{Driver: "postgres", DSN: "postgres://localhost/db"})
	if _, ok := dialector.(*postgres.Dialector); !ok {
		t.Fatalf("expected postgres dialector, got %T", dialector)
	}
	if DriverName(config.DBConfig{}) != config.DriverPostgres {
		t.Fatalf("empty driver should default to postgres")
	}
}

func TestSQLiteDSNGetsBusyTimeout(t *testing.T) {
	cases := map[string]string{
		"file::memory:":                    "file::memory:?_busy_timeout=5000",
		"file:x?mode=memory&cache=shared":  "file:x?mode=memory&cache=shared&_busy_timeout=5000",
		"bachelorhub.db?_busy_timeout=100": "bachelorhub.db?_busy_timeout=100",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientCreatesRows(t *testing.T) {
	client := newTestClient(t, "rows")
	if err := client.DB().Create(&draftRow{Title: "first"}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	var count int64
	if err := client.DB().Model(&draftRow{}).Count(&count).Error; err != nil || count != 1 {
		t.Fatalf("expected 1 row, got %d (%v)", count, err)
	}
}

func TestPing(t *testing.T) {
	client := newTestClient(t, "ping")
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}
