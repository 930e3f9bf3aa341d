package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleData() []Price {
	return []Price{
		{Commodity: "Rice", Market: "APMC Pune", State: "Maharashtra"},
		{Commodity: "Wheat", Market: "APMC Delhi", State: "Delhi"},
		{Commodity: "Onion", Market: "APMC Nashik", State: "Maharashtra"},
		{Commodity: "Brown Rice", Market: "APMC Indore", State: "Madhya Pradesh"},
		{Commodity: "Turmeric", Market: "Rice Mandi Sangli", State: "maharashtra"},
		{Commodity: "Tomato", Market: "APMC Bangalore", State: "Karnataka"},
	}
}

func commodities(prices []Price) []string {
	out := make([]string, 0, len(prices))
	for _, p := range prices {
		out = append(out, p.Commodity)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		state string
		query string
		want  []string
	}{
		{name: "no filters", want: []string{"Rice", "Wheat", "Onion", "Brown Rice", "Turmeric", "Tomato"}},
		{name: "state only", state: "MAHARASHTRA", want: []string{"Rice", "Onion", "Turmeric"}},
		{name: "state substring", state: "pradesh", want: []string{"Brown Rice"}},
		{name: "query matches commodity or market", query: "rice", want: []string{"Rice", "Brown Rice", "Turmeric"}},
		{name: "conjunctive", state: "Maharashtra", query: "rice", want: []string{"Rice", "Turmeric"}},
		{name: "market name", query: "bangalore", want: []string{"Tomato"}},
		{name: "no match", state: "Kerala", want: []string{}},
		{name: "whitespace ignored", state: "  ", query: " ", want: []string{"Rice", "Wheat", "Onion", "Brown Rice", "Turmeric", "Tomato"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, commodities(Filter(sampleData(), tt.state, tt.query)))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	data := sampleData()
	_ = Filter(data, "Delhi", "")
	require.Equal(t, sampleData(), data)
}

func TestCatalog(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	require.Equal(t, "Cereals", cats[0].Name)
	require.Contains(t, cats[4].Commodities, "Onion")

	cats[0].Commodities[0] = "changed"
	require.Equal(t, "Rice", Categories()[0].Commodities[0])

	require.Equal(t, []string{"APMC Bangalore", "APMC Mysore", "APMC Hubli", "APMC Belgaum"}, MarketsIn("karnataka"))
	require.Equal(t, []string{"APMC Market"}, MarketsIn("Kerala"))
}
