// Copyright © 2026 The svgls authors

package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed svg.json
var svgJSON []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog for the SVG 1.1 grammar shipped with svgls.
// It is decoded on first use and shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(svgJSON), FormatJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded svg schema: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
