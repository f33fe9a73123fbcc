package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var C *gorm.DB

func NewGorm() error {
	var dialector gorm.Dialector
	switch driver := viper.GetString("database.driver"); driver {
	case "", "postgres":
		dialector = postgres.Open(viper.GetString("database.dsn"))
	case "sqlite":
		// Used for local development and the test suites, foreign keys must be enabled in the dsn
		dialector = sqlite.Open(viper.GetString("database.dsn"))
	default:
		return fmt.Errorf("unsupported database driver: %s", driver)
	}

	var err error
	C, err = gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: viper.GetString("database.prefix"),
		},
		Logger: logger.New(&log.Logger, logger.Config{
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  lo.Ternary(viper.GetBool("debug.database"), logger.Info, logger.Silent),
		}),
	})

	return err
}
