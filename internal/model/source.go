package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path   `yaml:"full_path"`
	ShortPath Path   `yaml:"short_path"`
	Hash      string `yaml:"hash"`
}

// Source is a Go file selected for mutation.
type Source struct {
	Origin  *File   `yaml:"origin"`
	Package *string `yaml:"package,omitempty"`
}
