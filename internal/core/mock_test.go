package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type executedQuery struct {
	Query  string
	Params map[string]any
}

// MockDriver records every statement. FailOn makes the matching statement
// return Err.
type MockDriver struct {
	Executed   []executedQuery
	MockResult neo4j.EagerResult
	FailOn     string
	Err        error
	Indexed    bool
	Closed     bool
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil && (m.FailOn == "" || m.FailOn == query) {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	m.Indexed = true
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	m.Closed = true
	return nil
}

// Queries returns the params of every executed statement equal to query.
func (m *MockDriver) Queries(query string) []map[string]any {
	var out []map[string]any
	for _, q := range m.Executed {
		if q.Query == query {
			out = append(out, q.Params)
		}
	}
	return out
}
