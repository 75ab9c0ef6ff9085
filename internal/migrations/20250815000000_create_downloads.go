package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateDownloads, downCreateDownloads)
}

func upCreateDownloads(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE downloads (
		id SERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		file_path TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX downloads_created_at_idx ON downloads (created_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateDownloads(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE downloads;
	`)
	if err != nil {
		return err
	}
	return nil
}
