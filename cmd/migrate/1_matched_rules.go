package main

import (
	"time"

	"github.com/go-pg/migrations/v8"
)

type MatchedRule struct {
	Service string `pg:",unique:dedup"`
	Digest  string `pg:",unique:dedup"`
	Line    uint64 `pg:",unique:dedup"`
	Msg     string
	Rule    string
	Ts      time.Time
}

func init() {
	migrations.MustRegisterTx(func(db migrations.DB) error {
		err := db.Model(&MatchedRule{}).CreateTable(nil)
		return err
	}, func(db migrations.DB) error {
		err := db.Model(&MatchedRule{}).DropTable(nil)
		return err
	})
}
