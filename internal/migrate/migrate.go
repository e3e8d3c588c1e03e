// Package migrate applies darwin migration sets and reports version changes.
package migrate

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/GuiaBolso/darwin"
)

// Set is one dialect's list of migrations.
// TableExistsSQL must return the number of tables named darwin_migrations.
type Set struct {
	Name           string
	Dialect        darwin.Dialect
	TableExistsSQL string
	Migrations     []darwin.Migration
}

// Run applies every pending migration in s.
func Run(db *sql.DB, s Set) error {
	count, v1, err := currentVersion(db, s.TableExistsSQL)
	if err != nil {
		return err
	}

	migrations := minified(s.Migrations)
	if count == len(migrations) && v1 == migrations[count-1].Version {
		log.Printf("%s database version %.2f is current, no migrations needed", s.Name, v1)
		return nil
	}

	driver := darwin.NewGenericDriver(db, s.Dialect)
	infoChan := make(chan darwin.MigrationInfo, len(migrations))
	d := darwin.New(driver, migrations, infoChan)

	if err := d.Migrate(); err != nil {
		close(infoChan)
		_, v2, _ := currentVersion(db, s.TableExistsSQL)
		prog := progress(infoChan)
		log.Printf("migration (was v%.2f now v%.2f): %v (%s)", v1, v2, err, prog)
		return fmt.Errorf("migration error: %w\n%s", err, prog)
	}
	close(infoChan)

	_, v2, err := currentVersion(db, s.TableExistsSQL)
	if err != nil {
		return err
	}

	log.Print(changes(v1, v2))
	return nil
}

// Describe renders the migration scripts of s for display.
func Describe(s Set) string {
	var b strings.Builder
	for _, m := range s.Migrations {
		_, _ = fmt.Fprintf(&b, "-- %s (%.2f)\n%s\n\n", m.Description, m.Version, m.Script)
	}
	return b.String()
}

func changes(v1, v2 float64) string {
	if v1 != v2 {
		return fmt.Sprintf("DB Version: %.2f (migrated from %.2f to %.2f)", v2, v1, v2)
	}
	return fmt.Sprintf("DB Version: %.2f", v1)
}

// currentVersion returns the number of applied steps and the highest version.
// A database without the darwin table reports zero for both.
func currentVersion(db *sql.DB, tableExistsSQL string) (count int, ver float64, err error) {
	err = db.QueryRow(tableExistsSQL).Scan(&count)
	if err != nil || count == 0 {
		return 0, 0, err
	}

	err = db.QueryRow(`select count(*), max(version) from darwin_migrations`).Scan(&count, &ver)
	return count, ver, err
}

// minified copies migrations with normalized scripts so that whitespace,
// case or comment edits do not change the stored checksum.
func minified(in []darwin.Migration) []darwin.Migration {
	out := make([]darwin.Migration, len(in))
	copy(out, in)
	for i := range out {
		out[i].Script = Minify(out[i].Script)
	}
	return out
}

// Minify lowercases script, strips "--" comments and collapses whitespace.
func Minify(script string) string {
	var b strings.Builder
	s := strings.ToLower(strings.ReplaceAll(script, "/*", "--"))
	for _, line := range strings.Split(s, "\n") {
		if i := strings.Index(line, "--"); i != -1 {
			line = line[:i]
		}
		b.WriteString(strings.TrimSpace(line) + "\n")
	}
	result := strings.TrimSpace(strings.ReplaceAll(b.String(), "\t", " "))
	for {
		next := strings.ReplaceAll(result, "  ", " ")
		if next == result {
			break
		}
		result = next
	}
	return result
}

func progress(ch <-chan darwin.MigrationInfo) string {
	var b strings.Builder
	for info := range ch {
		_, _ = fmt.Fprintf(&b, "v%.2f: %q (%s) Error: %v\n",
			info.Migration.Version, info.Migration.Description, info.Status.String(), info.Error)
	}
	return b.String()
}
