package str

import (
	"fmt"
	"strings"

	"github.com/karsk/taskseq/pkg/task"
)

// Concat joins the default string representation of each value in argument
// order. Nil values, typed nil pointers included, contribute the empty
// string.
func Concat(values ...any) string {
	var sb strings.Builder

	for _, v := range values {
		if task.IsNil(v) {
			continue
		}

		sb.WriteString(fmt.Sprint(v))
	}

	return sb.String()
}
