package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Range
		wantErr bool
	}{
		{name: "thousands", input: "$120k-$150k", want: Range{Min: 120000, Max: 150000}},
		{name: "spaced", input: "$120k - $150k", want: Range{Min: 120000, Max: 150000}},
		{name: "plain dollars", input: "$95000-$120000", want: Range{Min: 95000, Max: 120000}},
		{name: "single bound", input: "$120k", wantErr: true},
		{name: "equity marker", input: "Equity-based", wantErr: true},
		{name: "three parts", input: "$1k-$2k-$3k", wantErr: true},
		{name: "millions", input: "$1.2M-$2M", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				_, ok := err.(*ParseError)
				assert.True(t, ok, "error should be ParseError type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelta(t *testing.T) {
	got, err := ParseDelta("+$20k-$40k")
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 20000, Max: 40000}, got)

	_, err = ParseDelta("$20k-$40k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not additive")

	_, err = ParseDelta("Equity + $150k-$300k")
	require.Error(t, err)
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "$120k-$190k", Range{Min: 120000, Max: 190000}.String())
	assert.Equal(t, "$95k-$120k", Range{Min: 95500, Max: 120999}.String(), "formats with integer division")
}

func TestIsEquity(t *testing.T) {
	assert.True(t, IsEquity("Equity-based"))
	assert.True(t, IsEquity("Equity + $150k-$300k"))
	assert.False(t, IsEquity("+$20k-$40k"))
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		delta    string
		want     string
		wantKind Kind
		wantErr  bool
	}{
		{name: "additive", base: "$100k-$150k", delta: "+$20k-$40k", want: "$120k-$190k", wantKind: Computed},
		{name: "large delta", base: "$180k-$240k", delta: "+$100k-$250k", want: "$280k-$490k", wantKind: Computed},
		{name: "equity based", base: "$100k-$150k", delta: "Equity-based", want: "Equity-based", wantKind: Verbatim},
		{name: "equity plus", base: "$100k-$150k", delta: "Equity + $150k-$300k", want: "Equity + $150k-$300k", wantKind: Verbatim},
		{name: "no base", base: "", delta: "+$20k-$40k", want: "+$20k-$40k", wantKind: Verbatim},
		{name: "non additive delta", base: "$100k-$150k", delta: "$150k-$300k", want: "$150k-$300k", wantKind: Verbatim},
		{name: "unparseable base", base: "$150k+", delta: "+$20k-$40k", want: "+$20k-$40k", wantKind: Verbatim, wantErr: true},
		{name: "equity base", base: "Equity-based", delta: "+$20k-$40k", want: "+$20k-$40k", wantKind: Verbatim, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.base, tt.delta)
			assert.Equal(t, tt.want, got.Salary)
			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantErr {
				assert.Error(t, got.Err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestDerive_ComputedCarriesRange(t *testing.T) {
	got := Derive("$100k-$150k", "+$20k-$40k")
	assert.Equal(t, Range{Min: 120000, Max: 190000}, got.Range)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "computed", Computed.String())
	assert.Equal(t, "verbatim", Verbatim.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
