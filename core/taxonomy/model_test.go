package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalProvider() *StaticProvider {
	return &StaticProvider{
		ConceptDefs: []ConceptDef{
			{Name: "ferc:Root", Type: PrimitiveMonetary, Period: PeriodInstant},
			{Name: "ferc:ChildA", Type: PrimitiveMonetary, Period: PeriodInstant},
			{Name: "ferc:ChildB", Type: PrimitiveMonetary, Period: PeriodInstant},
		},
		LinkRoleDefs: []LinkRoleDef{
			{
				URI:  "http://ferc.gov/role/BalanceSheet",
				Name: "110000 - Balance Sheet",
				Root: "ferc:Root",
				Arcs: []Arc{
					{Parent: "ferc:Root", Child: "ferc:ChildA"},
					{Parent: "ferc:Root", Child: "ferc:ChildB"},
				},
			},
		},
	}
}

func TestBuildResolvesConceptsAndRoles(t *testing.T) {
	m, err := Build(minimalProvider())
	require.NoError(t, err)

	role, ok := m.Role("http://ferc.gov/role/BalanceSheet")
	require.True(t, ok)
	assert.Equal(t, "ferc:Root", role.Root)
	assert.Equal(t, []string{"ferc:ChildA", "ferc:ChildB"}, role.Children("ferc:Root"))
	assert.Equal(t, "110000_balance_sheet", role.Stem)

	_, ok = m.Concept("ferc:ChildA")
	assert.True(t, ok)
}

func TestBuildFailsOnDanglingConceptRef(t *testing.T) {
	p := minimalProvider()
	p.LinkRoleDefs[0].Arcs = append(p.LinkRoleDefs[0].Arcs, Arc{Parent: "ferc:Root", Child: "ferc:Missing"})

	_, err := Build(p)
	require.Error(t, err)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "concept", incomplete.Kind)
	assert.Equal(t, "ferc:Missing", incomplete.Ref)
}

func TestBuildFailsOnDanglingAxisRef(t *testing.T) {
	p := minimalProvider()
	p.LinkRoleDefs[0].Axes = []string{"ferc:MissingAxis"}

	_, err := Build(p)
	require.Error(t, err)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "axis", incomplete.Kind)
}

func TestBuildFailsOnCycle(t *testing.T) {
	p := minimalProvider()
	p.LinkRoleDefs[0].Arcs = append(p.LinkRoleDefs[0].Arcs, Arc{Parent: "ferc:ChildA", Child: "ferc:Root"})

	_, err := Build(p)
	require.Error(t, err)

	var cyclic *CyclicError
	require.ErrorAs(t, err, &cyclic)
	assert.Equal(t, "http://ferc.gov/role/BalanceSheet", cyclic.Role)
}

func TestBuildResolvesStemCollisions(t *testing.T) {
	p := minimalProvider()
	p.LinkRoleDefs = append(p.LinkRoleDefs, LinkRoleDef{
		URI:  "http://ferc.gov/role/BalanceSheetRestated",
		Name: "110000 - Balance Sheet",
		Root: "ferc:Root",
	})

	m, err := Build(p)
	require.NoError(t, err)

	first, _ := m.Role("http://ferc.gov/role/BalanceSheet")
	second, _ := m.Role("http://ferc.gov/role/BalanceSheetRestated")
	assert.Equal(t, "110000_balance_sheet", first.Stem)
	assert.Equal(t, "110000_balance_sheet_2", second.Stem)
}

func TestAxisColumnType(t *testing.T) {
	explicit := Axis{Kind: AxisExplicit}
	assert.Equal(t, PrimitiveString, explicit.ColumnType())

	typed := Axis{Kind: AxisTyped, ValueType: PrimitiveDate}
	assert.Equal(t, PrimitiveDate, typed.ColumnType())
}
