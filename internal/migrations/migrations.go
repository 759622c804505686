package migrations

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	Name string
	Path string
}

// Apply runs every pending .sql file in dir, ordered by the numeric V<n>__
// prefix, and records each applied file in schema_migrations.
func Apply(db *sqlx.DB, dir string) error {
	if err := ensureTable(db); err != nil {
		return err
	}
	migs, err := listMigrations(dir)
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}
	for _, mig := range migs {
		if applied[mig.Name] {
			continue
		}
		if err := applyMigration(db, mig); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(db *sqlx.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func listMigrations(dir string) ([]migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	migs := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		migs = append(migs, migration{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	sort.Slice(migs, func(i, j int) bool {
		iVersion, iOk := parseVersion(migs[i].Name)
		jVersion, jOk := parseVersion(migs[j].Name)
		switch {
		case iOk && jOk && iVersion != jVersion:
			return iVersion < jVersion
		case iOk != jOk:
			return iOk
		default:
			return migs[i].Name < migs[j].Name
		}
	})
	return migs, nil
}

func appliedMigrations(db *sqlx.DB) (map[string]bool, error) {
	rows := []string{}
	if err := db.Select(&rows, `SELECT name FROM schema_migrations`); err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(rows))
	for _, name := range rows {
		applied[name] = true
	}
	return applied, nil
}

func applyMigration(db *sqlx.DB, mig migration) error {
	content, err := os.ReadFile(mig.Path)
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("apply %s: %w", mig.Name, err)
	}
	_, err = db.Exec(`INSERT INTO schema_migrations (name) VALUES ($1)`, mig.Name)
	return err
}

func parseVersion(name string) (int, bool) {
	if !strings.HasPrefix(name, "V") {
		return 0, false
	}
	parts := strings.SplitN(name[1:], "__", 2)
	if len(parts) < 2 {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	return value, true
}
