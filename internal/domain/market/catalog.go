package market

import "strings"

var categories = []Category{
	{Name: "Cereals", Commodities: []string{"Rice", "Wheat", "Maize", "Bajra", "Jowar", "Barley", "Ragi"}},
	{Name: "Pulses", Commodities: []string{"Arhar/Tur", "Moong", "Urad", "Chana", "Masur", "Rajma", "Cowpea"}},
	{Name: "Oilseeds", Commodities: []string{"Groundnut", "Mustard", "Sunflower", "Soybean", "Sesame", "Safflower", "Niger"}},
	{Name: "Spices", Commodities: []string{"Turmeric", "Coriander", "Cumin", "Fenugreek", "Red Chilli", "Black Pepper", "Cardamom"}},
	{Name: "Vegetables", Commodities: []string{"Onion", "Potato", "Tomato", "Cauliflower", "Cabbage", "Brinjal", "Okra", "Bitter Gourd"}},
	{Name: "Fruits", Commodities: []string{"Apple", "Banana", "Orange", "Mango", "Grapes", "Pomegranate", "Papaya", "Guava"}},
}

var stateMarkets = map[string][]string{
	"Maharashtra":    {"APMC Pune", "APMC Mumbai", "APMC Nashik", "APMC Aurangabad", "APMC Nagpur"},
	"Karnataka":      {"APMC Bangalore", "APMC Mysore", "APMC Hubli", "APMC Belgaum"},
	"Madhya Pradesh": {"APMC Indore", "APMC Bhopal", "APMC Ujjain", "APMC Ratlam"},
	"Uttar Pradesh":  {"APMC Lucknow", "APMC Kanpur", "APMC Agra", "APMC Meerut"},
	"Gujarat":        {"APMC Ahmedabad", "APMC Surat", "APMC Rajkot", "APMC Vadodara"},
}

var defaultMarkets = []string{"APMC Market"}

// Categories returns the commodity browsing groups.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category{Name: c.Name, Commodities: append([]string(nil), c.Commodities...)})
	}
	return out
}

// MarketsIn lists known APMC markets for a state ("APMC Market" when unknown).
func MarketsIn(state string) []string {
	state = strings.TrimSpace(state)
	for name, markets := range stateMarkets {
		if strings.EqualFold(name, state) {
			return append([]string(nil), markets...)
		}
	}
	return append([]string(nil), defaultMarkets...)
}
