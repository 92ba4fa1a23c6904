package content

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed pages/*.mdx
var pagesFS embed.FS

// Source returns the raw MDX source for a cataloged page slug.
func Source(slug string) ([]byte, error) {
	page, ok := BySlug(slug)
	if !ok {
		return nil, fmt.Errorf("unknown page slug %q", slug)
	}
	data, err := pagesFS.ReadFile(page.file)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", slug, err)
	}
	return data, nil
}

// SourceFiles lists the embedded page files, for catalog completeness checks.
func SourceFiles() ([]string, error) {
	entries, err := fs.ReadDir(pagesFS, "pages")
	if err != nil {
		return nil, fmt.Errorf("read pages dir: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, "pages/"+entry.Name())
		}
	}
	return files, nil
}
