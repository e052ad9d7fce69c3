package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/models"
)

var (
	DB *gorm.DB

	// PgPool is a raw pgx pool next to GORM. It exists for the advisory
	// locks taken around slug writes (see WithSlugLock).
	PgPool *pgxpool.Pool
)

func InitDB() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// fallback to local
		dbURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/mo3d_cms?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ DATABASE_URL not set, using local default")
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	if err := DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Quotation{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}
	log.Println("✅ Database connected (GORM)")

	PgPool, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to open pgx pool: %v", err)
	}
	if err = PgPool.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Database ping failed (pgx): %v", err)
	}
	log.Println("✅ Database connected (pgx)")
}

func CloseDB() {
	if PgPool != nil {
		PgPool.Close()
		log.Println("✅ Database connection closed (pgx)")
	}
	if DB != nil {
		sqlDB, _ := DB.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Database connection closed (GORM)")
		}
	}
}

// WithSlugLock serializes writers of the same (collection, slug) pair behind a
// Postgres advisory lock so the slug-uniqueness pre-check and the write cannot
// interleave between two requests. Without a pool (tests, sqlite) fn runs
// unguarded, which is the behavior the original store tolerated.
func WithSlugLock(ctx context.Context, collection, slug string, fn func() error) error {
	if PgPool == nil || slug == "" {
		return fn()
	}

	key := collection + ":" + slug
	conn, err := PgPool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire lock connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("failed to take slug lock: %w", err)
	}
	defer conn.Exec(context.Background(), "SELECT pg_advisory_unlock(hashtext($1))", key)

	return fn()
}

// WithTimeout returns a context with a 10s timeout for store calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
