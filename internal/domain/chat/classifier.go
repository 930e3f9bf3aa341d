package chat

import "strings"

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is evaluated top to bottom; the first rule with a matching
// keyword wins.
var intentRules = []intentRule{
	{intent: IntentWeather, keywords: []string{"weather"}},
	{intent: IntentMarketPrice, keywords: []string{"price", "market"}},
	{intent: IntentCropPlanning, keywords: []string{"crop", "plant"}},
	{intent: IntentSoilHealth, keywords: []string{"soil"}},
	{intent: IntentPestDisease, keywords: []string{"pest", "disease"}},
	{intent: IntentFertilizer, keywords: []string{"fertilizer"}},
}

// Classify maps free text to a single intent using substring keywords.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
