package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/nibbles/internal/games/nibbles/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		FilePath: path,
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	for i, s := range parsed.Spawns {
		level.Spawns[i] = Spawn{U: s.U, V: s.V, Heading: float64(s.Heading)}
	}
	for _, w := range parsed.Walls {
		op, err := wallFromYAML(w)
		if err != nil {
			return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
		}
		level.Walls = append(level.Walls, op)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

func wallFromYAML(w formats.YAMLWall) (WallOp, error) {
	kind, err := ParseWallKind(w.Kind)
	if err != nil {
		return WallOp{}, err
	}
	switch kind {
	case WallHLine:
		return HLine(w.X, w.Y, firstPositive(w.Len, w.W)), nil
	case WallVLine:
		return VLine(w.X, w.Y, firstPositive(w.Len, w.H)), nil
	default:
		return Rect(w.X, w.Y, w.W, w.H), nil
	}
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// Table returns the built-in levels followed by any levels found in dir that
// pass validation for a gw×gh grid. An empty dir yields only the built-ins.
// Files that fail validation are reported through skipped.
func Table(dir string, gw, gh int) (table []Level, skipped []error, err error) {
	table = Builtin()
	if dir == "" {
		return table, nil, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return table, nil, err
	}
	for _, l := range extra {
		if verr := l.Validate(gw, gh); verr != nil {
			skipped = append(skipped, verr)
			continue
		}
		if _, ferr := Find(table, l.ID); ferr == nil {
			skipped = append(skipped, fmt.Errorf("levels: %s: duplicate id", l.ID))
			continue
		}
		table = append(table, l)
	}
	return table, skipped, nil
}
