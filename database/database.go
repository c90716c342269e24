package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfolio/backend/models"
)

// Database bundles every repository over one shared GORM instance. It is
// built once at startup and injected into the server; nothing reads it as
// ambient global state.
type Database struct {
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
	profileRepo      *ProfileRepo
	adminRepo        *AdminRepo
	contactRepo      *ContactRepo
}

// New initializes a Database with each repository sharing the given GORM instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		profileRepo:      NewProfileRepo(db),
		adminRepo:        NewAdminRepo(db),
		contactRepo:      NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// Open connects to Postgres and bounds the connection pool. Excess demand
// queues on the pool instead of opening unbounded connections.
func Open(dsn string, maxOpenConns, maxIdleConns int) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Project{},
		&models.ProjectImage{},
		&models.Admin{},
		&models.Profile{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Interest{},
		&models.Contact{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
