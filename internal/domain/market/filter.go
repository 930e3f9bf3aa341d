package market

import "strings"

// Filter keeps records whose state contains state and whose commodity or
// market contains query. Matching is case-insensitive; an empty argument
// does not filter. Input order is preserved.
func Filter(prices []Price, state, query string) []Price {
	state = strings.ToLower(strings.TrimSpace(state))
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Price, 0, len(prices))
	for _, p := range prices {
		if state != "" && !strings.Contains(strings.ToLower(p.State), state) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Commodity), query) &&
			!strings.Contains(strings.ToLower(p.Market), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
