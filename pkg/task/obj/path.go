package obj

import (
	"strings"

	"github.com/karsk/taskseq/pkg/task"
)

// PathValue walks a dot-separated path over nested map[string]any values.
//
// A nil root, a non-map value along the way, or a nil/missing intermediate
// segment short-circuits to nil. The final segment's value is returned
// as-is, so a path that exists but holds nil is indistinguishable from an
// absent path. Array indices and wildcards are not supported.
func PathValue(root any, path string) any {
	if task.IsNil(root) {
		return nil
	}

	segments := strings.Split(path, ".")
	current := root

	for i, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		next := m[seg]

		if i == len(segments)-1 {
			return next
		}

		if next == nil {
			return nil
		}

		current = next
	}

	return nil
}
