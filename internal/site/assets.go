package site

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Default assets ship in the binary so a bare checkout still produces a
// working site. Files of the same name in the assets dir take precedence.
//
//go:embed assets/wiki.css assets/wiki.js
var defaultAssets embed.FS

var assetNames = []string{"wiki.css", "wiki.js"}

// writeAssets copies wiki.css and wiki.js into the output dir, preferring
// the on-disk assets dir and falling back to the embedded defaults.
func (b *Builder) writeAssets() error {
	for _, name := range assetNames {
		data, err := os.ReadFile(filepath.Join(b.cfg.AssetsDir, name))
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("read asset %s: %w", name, err)
			}
			data, err = defaultAssets.ReadFile("assets/" + name)
			if err != nil {
				return fmt.Errorf("embedded asset %s: %w", name, err)
			}
		}
		if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, name), data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", name, err)
		}
	}
	return nil
}
