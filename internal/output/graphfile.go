package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/relprep/internal/graph"
)

// WriteGraph writes the finalized entity graph as pretty-printed JSON to
// path. The graph is a once-per-split artifact, so no streaming or rotation
// applies.
func WriteGraph(path string, g *graph.Graph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("graph output: marshal: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("graph output: write %s: %w", path, err)
	}
	return nil
}
