package assets

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"
)

// ErrAssetLoad matches every AssetLoadError through errors.Is.
var ErrAssetLoad = errors.New("asset load failure")

// AssetLoadError reports an image asset that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

func (e *AssetLoadError) Is(target error) bool { return target == ErrAssetLoad }

// Loader resolves a slash-separated asset path to a decoded image.
type Loader interface {
	Load(path string) (image.Image, error)
}

// FSLoader reads and decodes images from a file system rooted at the asset directory.
type FSLoader struct {
	fsys fs.FS
}

func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load opens name inside the loader's file system and decodes it as PNG or JPEG.
func (l *FSLoader) Load(name string) (image.Image, error) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(clean) {
		return nil, &AssetLoadError{Path: name, Err: fs.ErrInvalid}
	}
	if !IsSupportedFormat(path.Ext(clean)) {
		return nil, &AssetLoadError{Path: name, Err: fmt.Errorf("unsupported image format %q", path.Ext(clean))}
	}

	file, err := l.fsys.Open(clean)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, &AssetLoadError{Path: name, Err: fmt.Errorf("decode: %w", err)}
	}
	return img, nil
}

// IsSupportedFormat reports whether ext names a format the loader can decode.
func IsSupportedFormat(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}
