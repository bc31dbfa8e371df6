// Package testdata provides example resources for tests.
package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
)

//go:embed examples/*.json
var examplesFS embed.FS

// GetExamples returns the JSON example resources keyed by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(examplesFS, "examples")
	if err != nil {
		log.Fatal(err)
	}

	examples := map[string][]byte{}
	for _, e := range entries {
		examples[e.Name()], err = examplesFS.ReadFile(path.Join("examples", e.Name()))
		if err != nil {
			log.Fatal(err)
		}
	}
	return examples
}
