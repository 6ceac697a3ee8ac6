// Package db carries the SQL schema migrations and seed data shipped with the service.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the numbered files.
const MigrationsDir = "migrations"
