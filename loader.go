package shader

import (
	"io/fs"
	"os"
)

// Loader reads shader source text from a path.
type Loader func(path string) (string, error)

// ReadFile is the default Loader. It reads from the operating system.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FSLoader returns a Loader that reads from fsys, such as an embed.FS.
func FSLoader(fsys fs.FS) Loader {
	return func(path string) (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// WithFS makes AddShader read source files from fsys.
func WithFS(fsys fs.FS) Option {
	return WithLoader(FSLoader(fsys))
}
