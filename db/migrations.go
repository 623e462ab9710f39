package db

import (
	"time"

	"github.com/go-pg/pg/v10"
)

//-------- HERE BE DRAGONS --------//
// DO NOT change or remove elements from this list
// Will cause the binary to desync with the DB and
// potentially corrupt it beyond recovery
// Adding elements is relatively safer (key word _relatively_)
// Can still blow up the db if you don't know what you're doing
var archiveMigrations [2]*Migration = [2]*Migration{
	// 1 - Create MatchedRule table
	{
		Forward: func(tx *pg.Tx) error {
			type MatchedRule struct {
				Service string    `pg:",notnull,unique:dedup"`
				Digest  string    `pg:",notnull,unique:dedup"`
				Line    uint64    `pg:",notnull,unique:dedup"`
				Msg     string    `pg:",notnull"`
				Rule    string    `pg:",notnull"`
				Ts      time.Time `pg:",notnull"`
			}
			err := tx.Model(&MatchedRule{}).CreateTable(nil)
			return err
		},
		Backward: func(tx *pg.Tx) error {
			type MatchedRule struct{}
			err := tx.Model(&MatchedRule{}).DropTable(nil)
			return err
		},
	},

	// 2 - Create ScanRun table
	{
		Forward: func(tx *pg.Tx) error {
			type ScanRun struct {
				Service    string    `pg:",notnull"`
				Input      string    `pg:",notnull"`
				Digest     string    `pg:",notnull"`
				Workers    int       `pg:",notnull"`
				Matches    int       `pg:",notnull,use_zero"`
				Started    time.Time `pg:",notnull"`
				DurationMs int64     `pg:",notnull,use_zero"`
			}
			err := tx.Model(&ScanRun{}).CreateTable(nil)
			return err
		},
		Backward: func(tx *pg.Tx) error {
			type ScanRun struct{}
			err := tx.Model(&ScanRun{}).DropTable(nil)
			return err
		},
	},
}
