package ubigkas

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// Table file names inside a data directory.
const (
	VerbsFile      = "verbs.txt"
	IrregularsFile = "irregulars.txt"
	PastFile       = "past.txt"
	PresentFile    = "present.txt"
	FutureFile     = "future.txt"
)

//go:embed data/*.txt
var embeddedData embed.FS

var defaultTables = sync.OnceValues(func() (*Tables, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, err
	}
	return LoadTables(sub)
})

// DefaultTables returns the tables compiled into the package.
// It panics if the embedded data is malformed.
func DefaultTables() *Tables {
	t, err := defaultTables()
	if err != nil {
		panic(fmt.Sprintf("ubigkas: embedded tables: %v", err))
	}
	return t
}

// LoadTablesDir reads the table files from dir.
func LoadTablesDir(dir string) (*Tables, error) {
	return LoadTables(os.DirFS(dir))
}

// LoadTables reads every table file from fsys. All five files must exist.
func LoadTables(fsys fs.FS) (*Tables, error) {
	t := newTables()
	if err := t.loadVerbs(fsys); err != nil {
		return nil, err
	}
	if err := t.loadIrregulars(fsys); err != nil {
		return nil, err
	}
	keywords := []struct {
		name string
		set  map[string]bool
	}{
		{PastFile, t.past},
		{PresentFile, t.present},
		{FutureFile, t.future},
	}
	for _, kw := range keywords {
		if err := loadWordSet(fsys, kw.name, kw.set); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// scanLines calls fn for every non-blank, non-comment line of name.
// Comment lines start with "!". fn receives the trimmed line and its
// 1-based number.
func scanLines(fsys fs.FS, name string, fn func(line string, n int) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("ubigkas: open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line, n); err != nil {
			return fmt.Errorf("ubigkas: %s:%d: %w", name, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ubigkas: read %s: %w", name, err)
	}
	return nil
}

// loadVerbs reads verbs.txt.
// Format: "root:CLASS", e.g. "kain:UM".
func (t *Tables) loadVerbs(fsys fs.FS) error {
	return scanLines(fsys, VerbsFile, func(line string, _ int) error {
		root, cls, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("missing ':' in %q", line)
		}
		key := FoldKey(root)
		if key == "" {
			return fmt.Errorf("empty root in %q", line)
		}
		class, err := ParseVerbClass(cls)
		if err != nil {
			return err
		}
		t.verbs[key] = class
		return nil
	})
}

// loadIrregulars reads irregulars.txt.
// Format: "root:CLASS:future,present,past"; CLASS "*" applies the
// override to every class.
func (t *Tables) loadIrregulars(fsys fs.FS) error {
	return scanLines(fsys, IrregularsFile, func(line string, _ int) error {
		parts := strings.Split(line, ":")
		if len(parts) != 3 {
			return fmt.Errorf("want root:CLASS:future,present,past, got %q", line)
		}
		irr := &Irregular{Root: FoldKey(parts[0])}
		if irr.Root == "" {
			return fmt.Errorf("empty root in %q", line)
		}
		if c := strings.TrimSpace(parts[1]); c != "*" {
			class, err := ParseVerbClass(c)
			if err != nil {
				return err
			}
			irr.Class = class
		}
		forms := strings.Split(parts[2], ",")
		if len(forms) != 3 {
			return fmt.Errorf("want three forms in %q", line)
		}
		irr.Future = strings.TrimSpace(forms[0])
		irr.Present = strings.TrimSpace(forms[1])
		irr.Past = strings.TrimSpace(forms[2])
		if irr.Future == "" || irr.Present == "" || irr.Past == "" {
			return fmt.Errorf("empty form in %q", line)
		}
		t.addIrregular(irr)
		return nil
	})
}

// loadWordSet reads a one-word-per-line keyword file into set.
func loadWordSet(fsys fs.FS, name string, set map[string]bool) error {
	return scanLines(fsys, name, func(line string, _ int) error {
		set[FoldKey(line)] = true
		return nil
	})
}
