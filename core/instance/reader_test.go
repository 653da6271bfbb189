package instance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystxbrl/xbrl-relational/core/taxonomy"
)

func knownConcepts() func(string) (taxonomy.Concept, bool) {
	concepts := map[string]taxonomy.Concept{
		"ferc:AssetAmount": {Name: "ferc:AssetAmount", Type: taxonomy.PrimitiveMonetary, Period: taxonomy.PeriodInstant},
	}
	return func(name string) (taxonomy.Concept, bool) {
		c, ok := concepts[name]
		return c, ok
	}
}

const sampleInstance = `<?xml version="1.0"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance" xmlns:ferc="http://ferc.gov/form1">
  <xbrli:context id="c1">
    <xbrli:entity>
      <xbrli:identifier scheme="http://ferc.gov">0001234</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:instant>2023-12-31</xbrli:instant>
    </xbrli:period>
  </xbrli:context>
  <ferc:AssetAmount contextRef="c1">1000.50</ferc:AssetAmount>
</xbrli:xbrl>`

func TestReadParsesContextAndFact(t *testing.T) {
	pub := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f, err := Read(strings.NewReader(sampleInstance), "filing-1.xml", pub, knownConcepts())
	require.NoError(t, err)

	assert.Equal(t, "0001234", f.EntityID)
	require.Contains(t, f.Contexts, "c1")
	assert.Equal(t, PeriodInstant, f.Contexts["c1"].Period.Type)

	sig := f.Contexts["c1"].Signature()
	require.Contains(t, f.Facts, sig)
	require.Len(t, f.Facts[sig], 1)
	assert.Equal(t, "ferc:AssetAmount", f.Facts[sig][0].ConceptName)
	assert.Equal(t, "1000.50", f.Facts[sig][0].RawValue)
}

func TestReadCountsUnknownConceptAsSkipped(t *testing.T) {
	doc := strings.Replace(sampleInstance, "ferc:AssetAmount", "ferc:UnknownThing", -1)
	f, err := Read(strings.NewReader(doc), "filing-1.xml", time.Now(), knownConcepts())
	require.NoError(t, err)
	assert.Equal(t, 1, f.SkippedConcepts)
}

func TestReadFailsOnMissingEntity(t *testing.T) {
	doc := `<?xml version="1.0"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
  <xbrli:context id="c1">
    <xbrli:period><xbrli:instant>2023-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>
</xbrli:xbrl>`
	_, err := Read(strings.NewReader(doc), "filing-1.xml", time.Now(), knownConcepts())
	require.Error(t, err)

	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "c1", malformed.ContextID)
}

func TestReadFailsOnUnparseablePeriod(t *testing.T) {
	doc := `<?xml version="1.0"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance">
  <xbrli:context id="c1">
    <xbrli:entity><xbrli:identifier>0001234</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:instant>not-a-date</xbrli:instant></xbrli:period>
  </xbrli:context>
</xbrli:xbrl>`
	_, err := Read(strings.NewReader(doc), "filing-1.xml", time.Now(), knownConcepts())
	require.Error(t, err)

	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestContextSignatureIsSortedAndCanonical(t *testing.T) {
	c := Context{Dims: []Dimension{
		{Axis: "ferc:RegionAxis", Value: "West"},
		{Axis: "ferc:AccountAxis", Value: "100"},
	}}
	assert.Equal(t, "ferc:AccountAxis=100|ferc:RegionAxis=West", c.Signature())
}
