package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"
)

// Tables are the tables this service owns. Every migration name must mention
// one of them, and the embedded set must create each, users first since the
// listing tables reference it.
var Tables = []string{"users", "housing", "shops", "maids"}

var sqlFileRe = regexp.MustCompile(`^(\d{14})_([a-z0-9]+(?:_[a-z0-9]+)*)\.sql$`)

// migrationFile is one parsed file name.
type migrationFile struct {
	version string
	name    string
	file    string
}

// table returns the first owned table the name mentions.
func (m migrationFile) table() string {
	for _, word := range strings.Split(m.name, "_") {
		if slices.Contains(Tables, word) {
			return word
		}
	}
	return ""
}

// ValidateDir checks migration files on disk.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	if _, err := validateFS(os.DirFS(dir), "."); err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}
	return nil
}

// ValidateEmbedded checks the migrations compiled into the binary and that
// they create every owned table, users first.
func ValidateEmbedded() error {
	files, err := validateFS(embedded, embeddedDir)
	if err != nil {
		return err
	}
	created := map[string]int{}
	for i, f := range files {
		if t := f.table(); strings.HasPrefix(f.name, "create_") && t != "" {
			if _, ok := created[t]; !ok {
				created[t] = i
			}
		}
	}
	for _, t := range Tables {
		if _, ok := created[t]; !ok {
			return fmt.Errorf("no create_%s migration", t)
		}
		if created[t] < created["users"] {
			return fmt.Errorf("create_%s runs before create_users", t)
		}
	}
	return nil
}

// validateFS checks names, versions and goose markers, returning the files
// in version order.
func validateFS(fsys fs.FS, dir string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []migrationFile
	seen := map[string]string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		name := e.Name()
		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		f := migrationFile{version: m[1], name: m[2], file: name}
		if f.table() == "" {
			return nil, fmt.Errorf("migration %q does not name a table (%s)", name, strings.Join(Tables, ", "))
		}
		if prev, ok := seen[f.version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", f.version, prev, name)
		}
		seen[f.version] = name

		b, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", name, err)
		}
		if err := checkMarkers(string(b)); err != nil {
			return nil, fmt.Errorf("migration %q: %w", name, err)
		}
		files = append(files, f)
	}

	// fs.ReadDir sorts by name, so files are already in version order.
	return files, nil
}

func checkMarkers(sql string) error {
	up := strings.Index(sql, "-- +goose Up")
	down := strings.Index(sql, "-- +goose Down")
	switch {
	case up < 0:
		return fmt.Errorf(`missing "-- +goose Up"`)
	case down < 0:
		return fmt.Errorf(`missing "-- +goose Down"`)
	case down < up:
		return fmt.Errorf("down section precedes up")
	}
	return nil
}

// latestVersion is the highest version in dir, or "" when there is none.
func latestVersion(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	latest := ""
	for _, e := range entries {
		if m := sqlFileRe.FindStringSubmatch(e.Name()); m != nil && m[1] > latest {
			latest = m[1]
		}
	}
	return latest, nil
}
