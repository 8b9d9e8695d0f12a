package extscan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/extscan/pkg/extscan"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want extscan.SortOrder
	}{
		{"asc", extscan.SortAscending},
		{"DESC", extscan.SortDescending},
		{" random ", extscan.SortRandom},
	}
	for _, tt := range tests {
		got, err := extscan.ParseSortOrder(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, in := range []string{"sideways", "", "   "} {
		_, err := extscan.ParseSortOrder(in)
		require.Error(t, err, "ParseSortOrder(%q)", in)
		assert.True(t, errors.Is(err, extscan.ErrInvalidArgument))
	}
}

func TestActionOptions_HasAction(t *testing.T) {
	assert.False(t, extscan.ActionOptions{}.HasAction())
	assert.False(t, extscan.ActionOptions{Confirm: true}.HasAction())
	assert.True(t, extscan.ActionOptions{Display: true}.HasAction())
	assert.True(t, extscan.ActionOptions{Delete: true}.HasAction())
}

func TestDistributionReport_CountAndShare(t *testing.T) {
	report := extscan.DistributionReport{
		Entries: []extscan.ExtensionCount{{Extension: "py", Count: 3}, {Extension: "", Count: 1}},
		Total:   4,
	}
	assert.Equal(t, 3, report.Count(".PY"))
	assert.Equal(t, 1, report.Count(""))
	assert.Equal(t, 0, report.Count("go"))
	assert.InDelta(t, 75.0, report.Share(report.Entries[0]), 0.001)
	assert.Equal(t, extscan.NoExtensionLabel, report.Entries[1].Label())

	assert.Zero(t, extscan.DistributionReport{}.Share(extscan.ExtensionCount{Count: 1}))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "yes", extscan.DecisionYes.String())
	assert.Equal(t, "no", extscan.DecisionNo.String())
	assert.Equal(t, "all", extscan.DecisionAll.String())
	assert.Equal(t, "quit", extscan.DecisionQuit.String())
}
