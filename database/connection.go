package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Configurator func(c *configuration)

type configuration struct {
	migrations []func(db *gorm.DB) error
}

func SetMigrations(ms ...func(db *gorm.DB) error) Configurator {
	return func(c *configuration) {
		c.migrations = append(c.migrations, ms...)
	}
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	c := &configuration{}
	for _, configurator := range configurators {
		configurator(c)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

	var db *gorm.DB
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		l.WithError(err).Warnf("Unable to connect to database. Retrying.")
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	for _, m := range c.migrations {
		if err = m(db); err != nil {
			l.WithError(err).Fatalf("Unable to migrate database.")
		}
	}

	return db
}
