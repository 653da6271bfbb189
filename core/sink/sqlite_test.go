package sink

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/catalystxbrl/xbrl-relational/core/project"
	"github.com/catalystxbrl/xbrl-relational/core/schema"
)

func testTable() *schema.TableSchema {
	return &schema.TableSchema{
		Name: "balance_sheet_instant",
		PrimaryKey: []schema.ColumnSchema{
			{Name: "entity_id", Type: schema.ColumnText},
			{Name: "date", Type: schema.ColumnText},
		},
		Columns: []schema.ColumnSchema{
			{Name: "ferc:AssetAmount", ConceptName: "ferc:AssetAmount", Type: schema.ColumnFloat64},
		},
	}
}

func TestSQLiteWriteTableCreatesAndInserts(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	table := testTable()
	rows := []project.Row{
		{PrimaryKey: []string{"0001", "2023-12-31"}, Values: map[string]any{"ferc:AssetAmount": 1000.5}},
	}

	require.NoError(t, s.WriteTable(table, rows))

	var got float64
	err = s.db.QueryRow(`SELECT "ferc:AssetAmount" FROM "balance_sheet_instant" WHERE "entity_id" = ?`, "0001").Scan(&got)
	require.NoError(t, err)
	assert.Equal(t, 1000.5, got)
}

func TestSQLiteWriteTableHandlesNullValues(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	table := testTable()
	rows := []project.Row{
		{PrimaryKey: []string{"0002", "2023-12-31"}, Values: map[string]any{"ferc:AssetAmount": nil}},
	}

	require.NoError(t, s.WriteTable(table, rows))

	var got sql.NullFloat64
	err = s.db.QueryRow(`SELECT "ferc:AssetAmount" FROM "balance_sheet_instant" WHERE "entity_id" = ?`, "0002").Scan(&got)
	require.NoError(t, err)
	assert.False(t, got.Valid)
}
