package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

func buildModel(t *testing.T, p *taxonomy.StaticProvider) *taxonomy.TaxonomyModel {
	t.Helper()
	m, err := taxonomy.Build(p)
	require.NoError(t, err)
	return m
}

func TestCompileSplitsInstantAndDuration(t *testing.T) {
	p := &taxonomy.StaticProvider{
		ConceptDefs: []taxonomy.ConceptDef{
			{Name: "ferc:Root", Type: taxonomy.PrimitiveMonetary, Period: taxonomy.PeriodInstant},
			{Name: "ferc:AssetAmount", Type: taxonomy.PrimitiveMonetary, Period: taxonomy.PeriodInstant},
			{Name: "ferc:RevenueAmount", Type: taxonomy.PrimitiveMonetary, Period: taxonomy.PeriodDuration},
		},
		LinkRoleDefs: []taxonomy.LinkRoleDef{
			{
				URI:  "http://ferc.gov/role/BalanceSheet",
				Name: "110000 - Balance Sheet",
				Root: "ferc:Root",
				Arcs: []taxonomy.Arc{
					{Parent: "ferc:Root", Child: "ferc:AssetAmount"},
					{Parent: "ferc:Root", Child: "ferc:RevenueAmount"},
				},
			},
		},
	}
	model := buildModel(t, p)

	bundle, err := Compile(model)
	require.NoError(t, err)
	require.Len(t, bundle.Tables, 2)

	byName := make(map[string]*TableSchema)
	for _, tbl := range bundle.Tables {
		byName[tbl.Name] = tbl
	}

	instant, ok := byName["110000_balance_sheet_instant"]
	require.True(t, ok)
	assert.Len(t, instant.Columns, 1)
	assert.Equal(t, "ferc:AssetAmount", instant.Columns[0].ConceptName)
	assert.Equal(t, []string{"entity_id", "filing_name", "publication_time", "date"}, pkNames(instant))

	duration, ok := byName["110000_balance_sheet_duration"]
	require.True(t, ok)
	assert.Len(t, duration.Columns, 1)
	assert.Equal(t, []string{"entity_id", "filing_name", "publication_time", "start_date", "end_date"}, pkNames(duration))
}

// TestCompileOrdersLeavesDepthFirstInDeclaredOrder asserts that declared
// arc order wins: Branch's children are declared Zeta then Alpha, so the
// compiled column order is Zeta, Alpha, Leaf, never the alphabetized
// Alpha, Zeta, Leaf.
func TestCompileOrdersLeavesDepthFirstInDeclaredOrder(t *testing.T) {
	p := &taxonomy.StaticProvider{
		ConceptDefs: []taxonomy.ConceptDef{
			{Name: "ferc:Root", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:Branch", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:Zeta", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:Alpha", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:Leaf", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
		},
		LinkRoleDefs: []taxonomy.LinkRoleDef{
			{
				URI:  "http://ferc.gov/role/Ordering",
				Name: "Ordering",
				Root: "ferc:Root",
				Arcs: []taxonomy.Arc{
					{Parent: "ferc:Root", Child: "ferc:Branch"},
					{Parent: "ferc:Root", Child: "ferc:Leaf"},
					{Parent: "ferc:Branch", Child: "ferc:Zeta"},
					{Parent: "ferc:Branch", Child: "ferc:Alpha"},
				},
			},
		},
	}
	model := buildModel(t, p)

	bundle, err := Compile(model)
	require.NoError(t, err)
	require.Len(t, bundle.Tables, 1)

	var names []string
	for _, c := range bundle.Tables[0].Columns {
		names = append(names, c.ConceptName)
	}
	assert.Equal(t, []string{"ferc:Zeta", "ferc:Alpha", "ferc:Leaf"}, names)
}

func TestCompileNormalizesAxisColumnName(t *testing.T) {
	p := &taxonomy.StaticProvider{
		ConceptDefs: []taxonomy.ConceptDef{
			{Name: "ferc:Root", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:PlantAmount", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
		},
		AxisDefs: []taxonomy.AxisDef{
			{Name: "PlantName", Kind: taxonomy.AxisExplicit, Domain: []string{"Alpha"}},
			{Name: "ferc:PlantNameAxis", Kind: taxonomy.AxisExplicit, Domain: []string{"Alpha"}},
		},
		LinkRoleDefs: []taxonomy.LinkRoleDef{
			{
				URI:  "http://ferc.gov/role/Plants",
				Name: "Plants",
				Root: "ferc:Root",
				Arcs: []taxonomy.Arc{
					{Parent: "ferc:Root", Child: "ferc:PlantAmount"},
				},
				Axes: []string{"PlantName", "ferc:PlantNameAxis"},
			},
		},
	}
	model := buildModel(t, p)

	bundle, err := Compile(model)
	require.NoError(t, err)
	require.Len(t, bundle.Tables, 1)

	var axisColumnNames []string
	for _, pk := range bundle.Tables[0].PrimaryKey {
		if pk.ConceptName == "PlantName" || pk.ConceptName == "ferc:PlantNameAxis" {
			axisColumnNames = append(axisColumnNames, pk.Name)
		}
	}
	assert.Equal(t, []string{"plant_name_axis", "ferc_plant_name_axis"}, axisColumnNames)
}

func TestCompileKeepsSameNamedRolesInDistinctTables(t *testing.T) {
	p := &taxonomy.StaticProvider{
		ConceptDefs: []taxonomy.ConceptDef{
			{Name: "ferc:RootA", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:LeafA", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:RootB", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:LeafB", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
		},
		LinkRoleDefs: []taxonomy.LinkRoleDef{
			{URI: "http://ferc.gov/role/A", Name: "Same Stem", Root: "ferc:RootA",
				Arcs: []taxonomy.Arc{{Parent: "ferc:RootA", Child: "ferc:LeafA"}}},
			{URI: "http://ferc.gov/role/B", Name: "Same Stem", Root: "ferc:RootB",
				Arcs: []taxonomy.Arc{{Parent: "ferc:RootB", Child: "ferc:LeafB"}}},
		},
	}
	model := buildModel(t, p)

	bundle, err := Compile(model)
	require.NoError(t, err)
	require.Len(t, bundle.Tables, 2)
	assert.NotEqual(t, bundle.Tables[0].Name, bundle.Tables[1].Name)
}

func TestCompileIsDeterministicAcrossRuns(t *testing.T) {
	p := &taxonomy.StaticProvider{
		ConceptDefs: []taxonomy.ConceptDef{
			{Name: "ferc:Root", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:B", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
			{Name: "ferc:A", Period: taxonomy.PeriodInstant, Type: taxonomy.PrimitiveMonetary},
		},
		LinkRoleDefs: []taxonomy.LinkRoleDef{
			{URI: "http://ferc.gov/role/Det", Name: "Det", Root: "ferc:Root",
				Arcs: []taxonomy.Arc{
					{Parent: "ferc:Root", Child: "ferc:B"},
					{Parent: "ferc:Root", Child: "ferc:A"},
				}},
		},
	}

	var firstNames []string
	for i := 0; i < 5; i++ {
		model := buildModel(t, p)
		bundle, err := Compile(model)
		require.NoError(t, err)
		var names []string
		for _, c := range bundle.Tables[0].Columns {
			names = append(names, c.ConceptName)
		}
		if i == 0 {
			firstNames = names
		} else {
			assert.Equal(t, firstNames, names)
		}
	}
}

func pkNames(t *TableSchema) []string {
	var out []string
	for _, c := range t.PrimaryKey {
		out = append(out, c.Name)
	}
	return out
}
