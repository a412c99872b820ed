package catalog_repo

import (
	"testing"

	"github.com/Masterminds/squirrel"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table",
		[]string{"id", "code", "name", "deletion_mark"},
		func() any { return nil })
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		orderBy string
		want    string
		wantErr bool
	}{
		{orderBy: "", want: "name ASC"},
		{orderBy: "name", want: "name ASC"},
		{orderBy: "-name", want: "name DESC"},
		{orderBy: "code", want: "code ASC"},
		{orderBy: "-code", want: "code DESC"},
		{orderBy: "missing_col", wantErr: true},
		{orderBy: "name; DROP TABLE test_table", wantErr: true},
	}

	for _, tt := range tests {
		got, err := repo.parseOrderBy(tt.orderBy)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseOrderBy(%q): expected error, got %q", tt.orderBy, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseOrderBy(%q) failed: %v", tt.orderBy, err)
		}
		if got != tt.want {
			t.Errorf("parseOrderBy(%q)\nwant: %s\ngot:  %s", tt.orderBy, tt.want, got)
		}
	}
}

func TestBaseSelect_SearchFilter(t *testing.T) {
	repo := newTestRepo()

	pattern := "%acme%"
	q := repo.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "SELECT id, code, name, deletion_mark FROM test_table " +
		"WHERE deletion_mark = $1 AND (name ILIKE $2 OR code ILIKE $3)"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
	if len(args) != 3 {
		t.Fatalf("args count mismatch: want 3, got %d", len(args))
	}
	if args[1] != pattern || args[2] != pattern {
		t.Errorf("args mismatch: %v", args)
	}
}
