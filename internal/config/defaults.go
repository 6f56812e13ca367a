// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:   "dev",
			AuthRealm: "go-book-keeper",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:books.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Events: Events{
			Queue: "book-keeper:events",
		},
	}
}
