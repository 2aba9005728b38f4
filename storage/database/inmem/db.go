package inmemdb

import "sync"

type (
	// DB is an in-memory store used by tests and the seed command.
	DB struct {
		site *siteTable
	}

	siteTable struct {
		mutex sync.RWMutex
		table map[string]siteRow
	}
)

func Open() *DB {
	return &DB{
		site: &siteTable{table: make(map[string]siteRow)},
	}
}
