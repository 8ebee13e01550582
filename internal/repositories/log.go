package repositories

import (
	"strings"

	"github.com/sbilibin2017/gif-contest/internal/logger"
)

// logQuery writes the query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
