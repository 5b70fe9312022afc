// Package testutil starts throwaway backends and request fixtures for tests
package testutil

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo/v4"
	"github.com/ory/dockertest"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

const (
	pgUser     = "postgres"
	pgPassword = "secret"
	pgDatabase = "tms_test"
	redisPass  = "secret"
)

var pool *dockertest.Pool
var poolLock = &sync.Mutex{}
var dbLock = &sync.Mutex{}

var tracer = otel.Tracer("testutil")

// SetupMockTraceProvider installs an in-memory span exporter as the global provider
func SetupMockTraceProvider() *tracetest.InMemoryExporter {
	spanChecker := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanChecker))
	otel.SetTracerProvider(provider)
	return spanChecker
}

// CreateHttpRequest returns an echo context whose request carries a root span
func CreateHttpRequest(method, target, body string) (echo.Context, *http.Request, *httptest.ResponseRecorder, string) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	ctx, span := tracer.Start(c.Request().Context(), "testRoot")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	return c, c.Request(), rec, span.SpanContext().TraceID().String()
}

// SpanNames lists the names of spans recorded under traceID
func SpanNames(spans tracetest.SpanStubs, traceID string) []string {
	names := []string{}
	for _, span := range spans {
		if span.SpanContext.TraceID().String() == traceID {
			names = append(names, span.Name)
		}
	}
	return names
}

// CreateDB starts postgres and migrates the document schema
func CreateDB() (*gorm.DB, func()) {
	dbLock.Lock()
	defer dbLock.Unlock()

	resource, cleanup := start(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
		ExposedPorts: []string{"5432/tcp"},
	})

	dsn := fmt.Sprintf(
		"postgres://%s:%s@localhost:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase,
	)

	var db *gorm.DB
	err := getPool().Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	if err != nil {
		log.Fatalf("postgres did not become ready: %s", err)
	}

	err = db.AutoMigrate(&core.Document{})
	if err != nil {
		log.Fatalf("failed to migrate: %s", err)
	}

	return db, cleanup
}

// CreateMC starts memcached
func CreateMC() (*memcache.Client, func()) {
	resource, cleanup := start(&dockertest.RunOptions{
		Repository:   "memcached",
		Tag:          "1.6.7",
		ExposedPorts: []string{"11211/tcp"},
	})

	client := memcache.New("localhost:" + resource.GetPort("11211/tcp"))
	err := getPool().Retry(client.Ping)
	if err != nil {
		log.Fatalf("memcached did not become ready: %s", err)
	}
	return client, cleanup
}

// CreateRDB starts redis
func CreateRDB() (*redis.Client, func()) {
	resource, cleanup := start(&dockertest.RunOptions{
		Repository:   "redis",
		Tag:          "7",
		Cmd:          []string{"redis-server", "--requirepass", redisPass},
		ExposedPorts: []string{"6379/tcp"},
	})

	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:" + resource.GetPort("6379/tcp"),
		Password: redisPass,
	})
	err := getPool().Retry(func() error {
		return client.Ping(context.Background()).Err()
	})
	if err != nil {
		log.Fatalf("redis did not become ready: %s", err)
	}
	return client, cleanup
}

func start(options *dockertest.RunOptions) (*dockertest.Resource, func()) {
	p := getPool()
	resource, err := p.RunWithOptions(options)
	if err != nil {
		log.Fatalf("could not start %s: %s", options.Repository, err)
	}
	log.Printf("%s started (%s)", options.Repository, resource.Container.ID)

	return resource, func() {
		err := p.Purge(resource)
		if err != nil {
			log.Fatalf("could not purge %s: %s", options.Repository, err)
		}
	}
}

func getPool() *dockertest.Pool {
	poolLock.Lock()
	defer poolLock.Unlock()
	if pool == nil {
		var err error
		pool, err = dockertest.NewPool("")
		if err != nil {
			log.Fatalf("could not connect to docker: %s", err)
		}
		pool.MaxWait = time.Second * 30
	}
	return pool
}
