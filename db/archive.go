package db

import (
	"strings"
	"time"

	"github.com/go-pg/pg/v10"

	"rulescan/types"
)

// MatchedRule is one archived match. The (service, digest, line) key
// identifies a rule by file content rather than by path, so re-scanning
// an unchanged file is idempotent.
type MatchedRule struct {
	Service string    `pg:",notnull,unique:dedup"`
	Digest  string    `pg:",notnull,unique:dedup"`
	Line    uint64    `pg:",notnull,unique:dedup"`
	Msg     string    `pg:",notnull"`
	Rule    string    `pg:",notnull"`
	Ts      time.Time `pg:",notnull"`
}

// ScanRun is the summary row recorded once per archived run.
type ScanRun struct {
	Service    string    `pg:",notnull"`
	Input      string    `pg:",notnull"`
	Digest     string    `pg:",notnull"`
	Workers    int       `pg:",notnull"`
	Matches    int       `pg:",notnull,use_zero"`
	Started    time.Time `pg:",notnull"`
	DurationMs int64     `pg:",notnull,use_zero"`
}

// Archive stores matched rules in postgres alongside the primary sink.
type Archive struct {
	db      *pg.DB
	run     types.Run
	started time.Time
}

// Open connects to postgres, brings the archive schema up to date and
// returns the archive sink for the given run.
func Open(opts *pg.Options, run types.Run) (*Archive, error) {
	pgdb, err := Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := Migrate(pgdb, "archive", archiveMigrations[:]); err != nil {
		pgdb.Close()
		return nil, err
	}
	return &Archive{db: pgdb, run: run, started: time.Now()}, nil
}

func (a *Archive) Write(m *types.Match) error {
	obj := &MatchedRule{
		Service: a.run.Service,
		Digest:  a.run.Digest,
		Line:    uint64(m.Number),
		Msg:     m.Msg,
		Rule:    strings.TrimRight(m.Line, "\r\n"),
		Ts:      time.Now(),
	}
	_, err := a.db.Model(obj).
		OnConflict("DO NOTHING").
		Insert()
	return err
}

// RecordRun writes the per-run summary row once the scan is done.
func (a *Archive) RecordRun(total int, took time.Duration) error {
	obj := &ScanRun{
		Service:    a.run.Service,
		Input:      a.run.Input,
		Digest:     a.run.Digest,
		Workers:    a.run.Workers,
		Matches:    total,
		Started:    a.started,
		DurationMs: took.Milliseconds(),
	}
	_, err := a.db.Model(obj).Insert()
	return err
}

func (a *Archive) Close() error {
	return a.db.Close()
}
