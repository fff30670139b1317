// Package files groups the file handling used to build a package.
//
//   - filesystem: filesystem abstraction (OS, in-memory and embedded)
//   - scanner: content discovery, exclude globs and sizes
//
// # Usage
//
//	import (
//	    "github.com/romanpravda/scormpack/internal/files/filesystem"
//	    "github.com/romanpravda/scormpack/internal/files/scanner"
//	)
//
//	fsys := filesystem.NewOSFileSystem()
//	s, err := scanner.NewScannerWithFS(fsys).WithExcludes([]string{"drafts/**"})
//	paths, err := s.ListFiles("./course")
package files
