package rules_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/arules/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteCSV_ReadCSV_RoundTrip verifies a lossless round-trip of the
// five projected columns, including exact float recovery.
func TestWriteCSV_ReadCSV_RoundTrip(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 0.2})
	require.NoError(t, err)
	require.NotEmpty(t, rs)
	rules.SortByLift(rs)

	var buf bytes.Buffer
	require.NoError(t, rules.WriteCSV(&buf, rs))

	back, err := rules.ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, back, len(rs))
	for i, r := range rs {
		assert.True(t, back[i].Antecedent.Equal(r.Antecedent))
		assert.True(t, back[i].Consequent.Equal(r.Consequent))
		assert.Equal(t, r.Support, back[i].Support)
		assert.Equal(t, r.Confidence, back[i].Confidence)
		assert.Equal(t, r.Lift, back[i].Lift)
	}
}

// TestWriteCSV_Header verifies the fixed column layout and set rendering.
func TestWriteCSV_Header(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.5), rules.Options{MinConfidence: 0.5})
	require.NoError(t, err)
	rules.SortByLift(rs)

	var buf bytes.Buffer
	require.NoError(t, rules.WriteCSV(&buf, rs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "antecedents,consequents,support,confidence,lift", lines[0])
	// Lift-descending order puts bread→eggs first and milk→bread last.
	assert.Contains(t, lines[1], "bread")
	assert.Contains(t, lines[1], "eggs")
	assert.Contains(t, lines[4], "milk")
	assert.Contains(t, lines[4], "bread")
}

// TestReadCSV_Malformed verifies rejection of bad headers and rows.
func TestReadCSV_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"WrongHeader", "a,b,c,d,e\nmilk,bread,0.5,0.6,0.8\n"},
		{"TooFewColumns", "antecedents,consequents,support\nmilk,bread,0.5\n"},
		{"NonNumeric", "antecedents,consequents,support,confidence,lift\nmilk,bread,x,0.6,0.8\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rules.ReadCSV(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, rules.ErrMalformedCSV)
		})
	}
}

// TestReadCSV_MultiItemSets verifies ", "-joined sets re-parse into
// canonical multi-member itemsets.
func TestReadCSV_MultiItemSets(t *testing.T) {
	in := "antecedents,consequents,support,confidence,lift\n\"bread, eggs\",milk,0.25,1,1.3333333333333333\n"
	back, err := rules.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, back, 1)

	assert.Equal(t, 2, back[0].Antecedent.Len())
	assert.Equal(t, "bread, eggs", back[0].Antecedent.String())
	assert.Equal(t, "milk", back[0].Consequent.String())
}
