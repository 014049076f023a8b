package engine

import "fmt"

// DBCmd identifies a statement of a repository. Each repository uses its own id range, e.g. iota + 700.
type DBCmd int

// Query keeps statement text per dialect. Empty Postgres means the sqlite text is valid for both.
type Query struct {
	Sqlite   string
	Postgres string
}

// QueryMap holds statements of a repository keyed by command
type QueryMap struct {
	queries map[DBCmd]Query
}

// NewQueryMap makes an empty QueryMap
func NewQueryMap() *QueryMap {
	return &QueryMap{queries: map[DBCmd]Query{}}
}

// Add sets dialect specific statements of the command, returns the map for chaining
func (q *QueryMap) Add(cmd DBCmd, query Query) *QueryMap {
	q.queries[cmd] = query
	return q
}

// AddSame sets a statement valid for every dialect
func (q *QueryMap) AddSame(cmd DBCmd, query string) *QueryMap {
	return q.Add(cmd, Query{Sqlite: query})
}

// Pick returns statement of the command for the db type, placeholders are not adopted yet
func (q *QueryMap) Pick(dbType Type, cmd DBCmd) (string, error) {
	query, ok := q.queries[cmd]
	if !ok {
		return "", fmt.Errorf("no query for command %d", cmd)
	}
	switch dbType {
	case Postgres:
		if query.Postgres != "" {
			return query.Postgres, nil
		}
		return query.Sqlite, nil
	case Sqlite:
		return query.Sqlite, nil
	}
	return "", fmt.Errorf("no query for database type %q", dbType)
}
