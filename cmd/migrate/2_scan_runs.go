package main

import (
	"time"

	"github.com/go-pg/migrations/v8"
)

type ScanRun struct {
	Service    string
	Input      string
	Digest     string
	Workers    int
	Matches    int
	Started    time.Time
	DurationMs int64
}

func init() {
	migrations.MustRegisterTx(func(db migrations.DB) error {
		err := db.Model(&ScanRun{}).CreateTable(nil)
		return err
	}, func(db migrations.DB) error {
		err := db.Model(&ScanRun{}).DropTable(nil)
		return err
	})
}
