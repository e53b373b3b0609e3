// Package res locates and caches the binary resources a report build needs:
// font files and letterheads.
package res

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when a resource exists in none of the search paths
var ErrNotFound = errors.New("resource not found")

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeUnknown is an unknown resource type
	ResourceTypeUnknown ResourceType = iota
	// ResourceTypeFont is a TrueType or OpenType font
	ResourceTypeFont
	// ResourceTypeDocument is a PDF document
	ResourceTypeDocument
	// ResourceTypeImage is a raster or SVG image
	ResourceTypeImage
	// ResourceTypeData is a YAML input or configuration file
	ResourceTypeData
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeFont:
		return "font"
	case ResourceTypeDocument:
		return "document"
	case ResourceTypeImage:
		return "image"
	case ResourceTypeData:
		return "data"
	default:
		return "unknown"
	}
}

// Resource represents a loaded resource
type Resource struct {
	Path     string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Loader handles loading resources
type Loader struct {
	// BaseDir resolves relative paths; empty means the working directory
	BaseDir string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string
}

// NewLoader creates a new resource loader
func NewLoader(baseDir string) *Loader {
	return &Loader{
		BaseDir:     baseDir,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
	}
}

// AddSearchPath adds a directory to search when a path does not resolve directly
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// SearchPaths returns the configured search directories in lookup order
func (l *Loader) SearchPaths() []string {
	return l.searchPaths
}

// Load loads a resource from a file path. Results are cached by the
// requested path.
func (l *Loader) Load(path string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[path]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	res, err := l.loadLocal(l.resolve(path))
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[path] = res
	l.cacheLock.Unlock()

	return res, nil
}

func (l *Loader) resolve(path string) string {
	if filepath.IsAbs(path) || l.BaseDir == "" {
		return path
	}
	return filepath.Join(l.BaseDir, path)
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	return newResource(path, data), nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return newResource(path, data), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

func newResource(path string, data []byte) *Resource {
	mime := determineMimeType(path)
	return &Resource{
		Path:     path,
		Data:     data,
		MimeType: mime,
		Type:     determineResourceType(mime),
	}
}

// determineMimeType determines the MIME type of a file
func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}

// determineResourceType determines the type of a resource
func determineResourceType(mimeType string) ResourceType {
	switch {
	case strings.HasPrefix(mimeType, "font/"):
		return ResourceTypeFont
	case mimeType == "application/pdf":
		return ResourceTypeDocument
	case strings.HasPrefix(mimeType, "image/"):
		return ResourceTypeImage
	case mimeType == "application/yaml":
		return ResourceTypeData
	default:
		return ResourceTypeUnknown
	}
}

// LoadFont loads a font resource
func (l *Loader) LoadFont(path string) (*Resource, error) {
	res, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeFont {
		return nil, fmt.Errorf("resource is not a font: %s", path)
	}
	return res, nil
}

// LoadDocument loads a PDF resource
func (l *Loader) LoadDocument(path string) (*Resource, error) {
	res, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeDocument {
		return nil, fmt.Errorf("resource is not a PDF document: %s", path)
	}
	return res, nil
}

// GetReader returns a reader for a resource
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}
