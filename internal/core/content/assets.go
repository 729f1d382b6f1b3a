package content

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern matches the static asset types a guide may reference.
const imagePattern = "**/*.{png,jpg,jpeg,gif,svg,webp}"

// Asset is an image resolved against the assets directory.
type Asset struct {
	Image     Image  `json:"image"`
	Path      string `json:"path"`
	Available bool   `json:"available"`
}

// Label is the text shown in place of the image.
func (a Asset) Label() string {
	if a.Image.Alt != "" {
		return a.Image.Alt
	}
	return filepath.Base(a.Image.Path)
}

// Assets resolves image references. A missing directory or file is never an
// error: the asset is simply reported as unavailable.
type Assets struct {
	root string
}

// NewAssets creates a resolver rooted at dir. An empty dir resolves nothing.
func NewAssets(dir string) Assets {
	return Assets{root: dir}
}

// Root returns the assets directory.
func (a Assets) Root() string {
	return a.root
}

// cleanRef turns an image path into a clean slash path relative to the
// assets root. Paths escaping the root are rejected.
func cleanRef(p string) (string, bool) {
	rel := path.Clean(strings.TrimPrefix(filepath.ToSlash(p), "/"))
	return rel, fs.ValidPath(rel) && rel != "."
}

// Resolve locates img on disk.
func (a Assets) Resolve(img Image) Asset {
	asset := Asset{Image: img}
	if a.root == "" || img.Path == "" {
		return asset
	}

	rel, ok := cleanRef(img.Path)
	if !ok {
		return asset
	}
	asset.Path = filepath.Join(a.root, filepath.FromSlash(rel))

	info, err := os.Stat(asset.Path)
	asset.Available = err == nil && !info.IsDir()
	return asset
}

// Referenced resolves every image in doc.
func (a Assets) Referenced(doc *Document) []Asset {
	images := doc.Images()
	out := make([]Asset, 0, len(images))
	for _, img := range images {
		out = append(out, a.Resolve(img))
	}
	return out
}

// Unreferenced lists image files under the assets directory that doc never
// mentions. Paths are slash-separated and relative to the root.
func (a Assets) Unreferenced(doc *Document) ([]string, error) {
	if a.root == "" {
		return nil, nil
	}
	if _, err := os.Stat(a.root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	files, err := doublestar.Glob(os.DirFS(a.root), imagePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, img := range doc.Images() {
		if rel, ok := cleanRef(img.Path); ok {
			used[rel] = true
		}
	}

	var out []string
	for _, f := range files {
		if !used[path.Clean(f)] {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out, nil
}
