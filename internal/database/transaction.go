package database

import "strings"

// transaction wraps SurrealQL statements in a single transaction block so they
// commit or fail together. Queries run as one batch; there is no isolation
// between the statements and the caller.
//
//	query := transaction(
//	    "LET $next = ...",
//	    "CREATE type::thing($collection, $next) CONTENT $content",
//	)
func transaction(statements ...string) string {
	if len(statements) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		sb.WriteString(stmt)
		if !strings.HasSuffix(stmt, ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String()
}
