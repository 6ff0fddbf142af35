package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/application/chain"
)

func TestParse_AllDirectives(t *testing.T) {
	steps, err := chain.ParseScript(`# steel phase one
group Steel
mine 240 Iron Ore
all Iron Ore into Iron Ingot
use 0.5 Iron Ingot into Steel Beam
`)
	require.NoError(t, err)
	require.Len(t, steps, 5)

	assert.Equal(t, chain.Comment{Text: "steel phase one"}, steps[0].Action)
	assert.Equal(t, chain.SelectGroup{Name: "Steel"}, steps[1].Action)
	assert.Equal(t, chain.Mine{Quantity: 240, Ingredient: "Iron Ore"}, steps[2].Action)
	assert.Equal(t, chain.AllInto{Ingredient: "Iron Ore", Recipe: "Iron Ingot"}, steps[3].Action)
	assert.Equal(t, chain.UseInto{Fraction: 0.5, Ingredient: "Iron Ingot", Recipe: "Steel Beam"}, steps[4].Action)
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	steps, err := chain.ParseScript("\n  \n\tgroup G\n\n")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, chain.SelectGroup{Name: "G"}, steps[0].Action)
}

func TestParse_StepsKeepLineNumbers(t *testing.T) {
	steps, err := chain.ParseScript("\ngroup G\n\nmine 10 Coal")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 2, steps[0].Line)
	assert.Equal(t, 4, steps[1].Line)
}

func TestParse_NonNumericQuantityIsParseError(t *testing.T) {
	_, err := chain.ParseScript("group G\nmine lots Iron Ore")
	require.Error(t, err)

	var errs chain.ParseErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
	assert.Contains(t, errs[0].Reason, "quantity")
}

func TestParse_UnknownDirectiveIsParseError(t *testing.T) {
	_, err := chain.ParseScript("burn everything")
	require.Error(t, err)

	var errs chain.ParseErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs[0].Reason, "unknown directive")
}

func TestParse_AllErrorsCollected(t *testing.T) {
	// Every malformed line is reported; nothing is returned for a
	// script with any syntax error
	steps, err := chain.ParseScript(`group G
mine ten Iron Ore
bogus line here
use half Iron Ore into Iron Ingot
all Iron Ore
`)
	assert.Nil(t, steps)
	require.Error(t, err)

	var errs chain.ParseErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 4)
	assert.Equal(t, []int{2, 3, 4, 5}, []int{errs[0].Line, errs[1].Line, errs[2].Line, errs[3].Line})
}

func TestParse_MissingInto(t *testing.T) {
	_, err := chain.ParseScript("all Iron Ore onto Iron Ingot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "into")
}

func TestParse_KeywordsAreCaseSensitive(t *testing.T) {
	_, err := chain.ParseScript("Group G")
	require.Error(t, err)

	var errs chain.ParseErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs[0].Reason, `"Group"`)
}

func TestParse_EmptyGroupName(t *testing.T) {
	_, err := chain.ParseScript("group")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group name")
}
