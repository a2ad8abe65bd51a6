package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilePages writes a single page to path. When there are several pages the
// page number is inserted before the extension: tree.svg becomes tree-1.svg,
// tree-2.svg and so on.
func FilePages(path string) PageFunc {
	return func(page, total int, data []byte) error {
		name := path
		if total > 1 {
			name = PageName(path, page)
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("write page %d: %w", page+1, err)
		}
		return nil
	}
}

// PageName returns the file name used for page (counted from 0) of path.
func PageName(path string, page int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), page+1, ext)
}

// CollectPages appends a copy of every page to pages.
func CollectPages(pages *[][]byte) PageFunc {
	return func(page, total int, data []byte) error {
		*pages = append(*pages, bytes.Clone(data))
		return nil
	}
}
