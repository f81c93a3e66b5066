/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/nuts-foundation/sqlite"
	"github.com/pressly/goose/v3"
	"github.com/tdlaas/tdlaas-node/storage/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	_ "modernc.org/sqlite"
)

//go:embed sql_migrations/*.sql
var sqlMigrationsFS embed.FS

const sqlMigrationsDir = "sql_migrations"

const slowQueryThreshold = 200 * time.Millisecond

func sqliteConnectionString(datadir string) string {
	return "sqlite:file:" + path.Join(datadir, "sqlite.db") + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// openSQLDatabase opens the database identified by the connection string and applies the schema migrations.
func openSQLDatabase(connectionString string) (*gorm.DB, error) {
	scheme, dsn, ok := strings.Cut(connectionString, ":")
	if !ok {
		return nil, errors.New("invalid SQL connection string, expected <type>:<dsn>")
	}
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger: gormLogrusLogger{
			underlying:    log.Logger(),
			slowThreshold: slowQueryThreshold,
		},
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	}
	var dialector gorm.Dialector
	var migrationDialect goose.Dialect
	switch scheme {
	case "sqlite":
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		// SQLite does not support concurrent writers
		db.SetMaxOpenConns(1)
		dialector = sqlite.Dialector{Conn: db}
		migrationDialect = goose.DialectSQLite3
	case "postgres":
		dialector = postgres.Open(connectionString)
		migrationDialect = goose.DialectPostgres
	case "mysql":
		dialector = mysql.Open(dsn)
		migrationDialect = goose.DialectMySQL
	case "sqlserver":
		dialector = sqlserver.Open(connectionString)
		migrationDialect = goose.DialectMSSQL
	default:
		return nil, fmt.Errorf("unsupported SQL database type: %s", scheme)
	}
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", scheme, err)
	}
	if err = migrate(db, migrationDialect); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB, dialect goose.Dialect) error {
	underlying, err := db.DB()
	if err != nil {
		return err
	}
	migrations, err := fs.Sub(sqlMigrationsFS, sqlMigrationsDir)
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(dialect, underlying, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return fmt.Errorf("failed to migrate SQL database: %w", err)
	}
	for _, result := range results {
		log.Logger().Infof("Applied SQL migration %s (took %s)", result.Source.Path, result.Duration)
	}
	return nil
}
