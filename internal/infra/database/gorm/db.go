package gorm

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zipcode-web/internal/domain/entity"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
	"zipcode-web/pkg/resource"
)

// Config carries the app.db.* properties
type Config struct {
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	AutoMigrate     bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ConfigFromProperties reads app.db.* from the loaded properties
func ConfigFromProperties() Config {
	return Config{
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:         resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		AutoMigrate:     resource.GetBool("app.db.auto-migrate"),
		MaxOpenConns:    resource.GetIntOrDefault("app.db.max-open-conns", 20),
		MaxIdleConns:    resource.GetIntOrDefault("app.db.max-idle-conns", 5),
		ConnMaxLifetime: resource.GetDurationOrDefault("app.db.conn-max-lifetime", 30*time.Minute),
	}
}

// DSN returns the PostgreSQL key/value connection string
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, c.SSLMode, c.Schema)
}

// Open connects to PostgreSQL, sizes the pool and migrates the schema when enabled
func Open(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), NewGormConfig())
	if err != nil {
		return nil, errors.New(msg.GetMessage("db.error.connect", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	log.Info(msg.GetMessage("db.connected", config.Database, config.Host, config.Port))

	if config.AutoMigrate {
		if err = Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// NewGormConfig is shared by every dialect: translated errors and logging through pkg/log
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zapWriter{}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Migrate creates or updates the states, cities and zips tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.State{}, &entity.City{}, &entity.Zip{}); err != nil {
		return errors.New(msg.GetMessage("db.error.migrate", err))
	}
	log.Info(msg.GetMessage("db.migrated"))
	return nil
}

type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}
