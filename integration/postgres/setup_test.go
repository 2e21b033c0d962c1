package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

const createPlayers = `
	CREATE TABLE players (
		"id" serial PRIMARY KEY,
		"name" text,
		"level" int,
		"class" text,
		"rating" double precision
	);
	INSERT INTO players
		("id", "name",     "level", "class",   "rating") VALUES
		(1,    'Alice',    10,      'warrior', 1.5),
		(2,    'Bob',      20,      'mage',    2.5),
		(3,    'Charlie',  30,      'rogue',   3.5),
		(4,    'David',    40,      'warrior', 4.5),
		(5,    'Eve',      50,      'mage',    5.5),
		(6,    'O''Brien', 60,      'rogue',   6.5),
		(7,    'C:\dir',   70,      'mage',    7.5);
`

type testCase struct {
	filters map[string]string
	want    []int
}

var testCases = map[string]testCase{
	"eq":                {filters: map[string]string{"class": "eq.warrior"}, want: []int{1, 4}},
	"implicit_in":       {filters: map[string]string{"class": "mage,rogue"}, want: []int{2, 3, 5, 6, 7}},
	"two_predicates":    {filters: map[string]string{"level": "gte.30", "class": "neq.rogue"}, want: []int{4, 5, 7}},
	"quote":             {filters: map[string]string{"name": "O'Brien"}, want: []int{6}},
	"backslash":         {filters: map[string]string{"name": `C:\dir`}, want: []int{7}},
	"decimal":           {filters: map[string]string{"rating": "gt.4.5"}, want: []int{5, 6, 7}},
	"numeric_in":        {filters: map[string]string{"level": "in.10,50"}, want: []int{1, 5}},
	"lte":               {filters: map[string]string{"level": "lte.10"}, want: []int{1}},
	"lt":                {filters: map[string]string{"level": "lt.30"}, want: []int{1, 2}},
	"gt":                {filters: map[string]string{"level": "gt.60"}, want: []int{7}},
	"injection":         {filters: map[string]string{"name": "x' OR '1'='1"}, want: []int{}},
	"injection_in_list": {filters: map[string]string{"name": "in.a,b') OR ('1'='1"}, want: []int{}},
}
