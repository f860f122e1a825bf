package main

import (
	"database/sql"
	"os"

	"github.com/trknhr/tonality/cmd"
	"github.com/trknhr/tonality/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	db, journalErr := openJournal()
	if journalErr != nil {
		db = nil
	} else {
		defer db.Close()
	}

	if err := cmd.Execute(db, journalErr); err != nil {
		return 1
	}
	return 0
}

func openJournal() (*sql.DB, error) {
	path, err := store.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	db, err := store.OpenDB(path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
