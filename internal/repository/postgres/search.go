// internal/repository/postgres/search.go
package postgres

import (
	"fmt"
	"strings"

	"secad-service/internal/query"
)

// buildClauses turns the store-eligible constraints into a WHERE clause, its
// positional args, and an ORDER BY clause. Column names are checked against
// the caller's whitelist so a constraint field can never reach the SQL text
// unvalidated.
func buildClauses(cons []query.Constraint, allowed map[string]bool) (string, []interface{}, string, error) {
	var conditions []string
	var args []interface{}
	orderBy := ""

	for _, c := range cons {
		if !allowed[c.Field] {
			return "", nil, "", fmt.Errorf("unknown search field %q", c.Field)
		}
		switch c.Op {
		case query.OpEq:
			args = append(args, c.Value)
			conditions = append(conditions, fmt.Sprintf("%s = $%d", c.Field, len(args)))
		case query.OpOrderDesc:
			orderBy = fmt.Sprintf(" ORDER BY %s DESC", c.Field)
		default:
			return "", nil, "", fmt.Errorf("unsupported constraint op %q", c.Op)
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}
	return where, args, orderBy, nil
}
