package static

import (
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/freekieb7/pebble/filesystem"
	"github.com/freekieb7/pebble/http"
)

// Fallback content types for when the host mime database is bare.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

const defaultContentType = "application/octet-stream"

// Resolver maps URL paths onto files under a fixed root directory.
// The root is captured once at construction and never mutated, so a
// Resolver is safe for concurrent use.
type Resolver struct {
	root string
	fs   filesystem.Filesystem
}

func NewResolver(root string) (*Resolver, error) {
	fs := filesystem.NewLocalFileSystem()

	absRoot, err := fs.GetAbsolutePath(root)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		root: absRoot,
		fs:   fs,
	}, nil
}

func (resolver *Resolver) Root() string {
	return resolver.root
}

// Resolve maps a URL path onto a file under the root. Everything that
// is not a readable regular file inside the root is a miss: missing
// files, directories, traversal attempts and unreadable files are
// indistinguishable here.
func (resolver *Resolver) Resolve(urlPath string) (http.Asset, bool) {
	full, ok := resolver.join(urlPath)
	if !ok {
		return http.Asset{}, false
	}

	isFile, err := resolver.fs.IsFile(full)
	if err != nil || !isFile {
		return http.Asset{}, false
	}

	size, err := resolver.fs.FileSize(full)
	if err != nil {
		return http.Asset{}, false
	}

	return http.Asset{
		Path:        full,
		Size:        size,
		ContentType: contentTypeFor(full),
	}, true
}

// Document reads a named document (a page or a fallback error page)
// directly under the root.
func (resolver *Resolver) Document(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil, filesystem.ErrInvalidPath
	}

	return resolver.fs.ReadFile(filepath.Join(resolver.root, name))
}

// join anchors a URL path under the root, rejecting escapes.
func (resolver *Resolver) join(urlPath string) (string, bool) {
	cleaned := path.Clean("/" + urlPath)
	full := filepath.Join(resolver.root, filepath.FromSlash(cleaned))

	if full != resolver.root && !strings.HasPrefix(full, resolver.root+string(filepath.Separator)) {
		return "", false
	}

	return full, true
}

func contentTypeFor(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))

	if byTable, found := contentTypes[ext]; found {
		return byTable
	}
	if byMime := mime.TypeByExtension(ext); byMime != "" {
		return byMime
	}

	return defaultContentType
}
