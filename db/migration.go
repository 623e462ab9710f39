package db

import (
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// Migration is one forward/backward schema step for a component.
type Migration struct {
	Forward, Backward func(tx *pg.Tx) error
}

// SchemaVersion tracks how many migrations a component has applied.
type SchemaVersion struct {
	Component string `pg:",notnull,unique"`
	Version   uint64 `pg:",notnull,use_zero"`
}

// Migrate applies the not-yet-applied tail of steps for component, one
// transaction per step. The version row advances with every step, so a
// failed step leaves the schema at the last completed version.
func Migrate(pgdb *pg.DB, component string, steps []*Migration) error {
	err := pgdb.Model((*SchemaVersion)(nil)).
		CreateTable(&orm.CreateTableOptions{IfNotExists: true})
	if err != nil {
		return err
	}

	state := &SchemaVersion{Component: component}
	_, err = pgdb.Model(state).
		Where("component = ?", component).
		SelectOrInsert()
	if err != nil {
		return err
	}

	if state.Version >= uint64(len(steps)) {
		// Already past target, nothing to do
		return nil
	}

	for _, step := range steps[state.Version:] {
		if err := applyStep(pgdb, state, step); err != nil {
			return err
		}
	}
	return nil
}

func applyStep(pgdb *pg.DB, state *SchemaVersion, step *Migration) error {
	tx, err := pgdb.Begin()
	if err != nil {
		return err
	}
	defer tx.Close()

	if err := step.Forward(tx); err != nil {
		tx.Rollback()
		return err
	}

	state.Version++
	_, err = tx.Model(state).
		OnConflict("(component) DO UPDATE").
		Set("version = EXCLUDED.version").
		Insert()
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
