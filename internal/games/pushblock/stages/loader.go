package stages

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultID is the stage played when none is chosen.
const DefaultID = "classic"

// Loader handles loading stages from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the stages compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// Unreachable: the directory is embedded at build time
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all stage files.
// Returns stages sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil
		}
		layout, err := parse(data, ext, filepath.Join(l.Root, filepath.FromSlash(p)))
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("stages: walking %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadByID loads a specific stage by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("stages: stage not found: %s", id)
}

// ListIDs returns all stage IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, layout := range layouts {
		ids[i] = layout.ID
	}
	return ids, nil
}

// LoadFile loads a single stage file from disk.
func LoadFile(p string) (Layout, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Layout{}, fmt.Errorf("stages: reading file %s: %w", p, err)
	}
	return parse(data, strings.ToLower(filepath.Ext(p)), p)
}

// Resolve finds a stage by ID, looking in dir first (when set) and then in
// the builtin set. A ref that names an existing file is loaded directly.
func Resolve(ref, dir string) (Layout, error) {
	if ref == "" {
		ref = DefaultID
	}
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}
	if dir != "" {
		if layout, err := NewLoader(dir).LoadByID(ref); err == nil {
			return layout, nil
		}
	}
	return Builtin().LoadByID(ref)
}

// Load resolves ref like Resolve and checks the stage is playable with the
// given number of required targets.
func Load(ref, dir string, required int) (Layout, error) {
	layout, err := Resolve(ref, dir)
	if err != nil {
		return Layout{}, err
	}
	if err := layout.Validate(required); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parse routes to the correct parser.
func parse(data []byte, ext, filePath string) (Layout, error) {
	var (
		parsed formats.Stage
		err    error
	)
	switch ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return Layout{}, fmt.Errorf("stages: unsupported extension: %s", ext)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("stages: parsing %s: %w", filePath, err)
	}

	layout := Layout{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}
	// Unknown glyphs fail here, not when a run starts
	if _, err := layout.Grid(); err != nil {
		return Layout{}, fmt.Errorf("stages: %s: %w", filePath, err)
	}
	return layout, nil
}
