package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "weather", text: "What is the WEATHER tomorrow?", want: IntentWeather},
		{name: "price", text: "onion price today", want: IntentMarketPrice},
		{name: "market", text: "Which market is best?", want: IntentMarketPrice},
		{name: "crop", text: "Best crop for kharif", want: IntentCropPlanning},
		{name: "plant", text: "When should I plant wheat", want: IntentCropPlanning},
		{name: "soil", text: "my soil is sandy", want: IntentSoilHealth},
		{name: "pest", text: "Pests on leaves", want: IntentPestDisease},
		{name: "disease", text: "leaf disease spots", want: IntentPestDisease},
		{name: "fertilizer", text: "How much fertilizer?", want: IntentFertilizer},
		{name: "unknown", text: "hello there", want: IntentUnknown},
		{name: "empty", text: "", want: IntentUnknown},
		{name: "crop beats soil", text: "which crop suits my soil", want: IntentCropPlanning},
		{name: "weather beats price", text: "does weather affect price", want: IntentWeather},
		{name: "price beats fertilizer", text: "fertilizer price", want: IntentMarketPrice},
		{name: "substring match", text: "supermarkets", want: IntentMarketPrice},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "soil and pest problems"
	first := Classify(text)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Classify(text))
	}
	require.Equal(t, IntentSoilHealth, first)
}

func TestRespond(t *testing.T) {
	require.Contains(t, Respond("weather please"), "latest weather information")
	require.Contains(t, Respond("tomato market"), "current market prices")
	require.Contains(t, Respond("fertilizer dose"), "NPK requirements")
	require.Contains(t, Respond("namaste"), "more specific details")
	require.Equal(t, Respond("crop and soil"), ResponseFor(IntentCropPlanning))
	require.Equal(t, ResponseFor(IntentUnknown), ResponseFor(Intent("bogus")))
}

func TestEveryIntentHasResponse(t *testing.T) {
	for _, rule := range intentRules {
		_, ok := responses[rule.intent]
		require.True(t, ok, "missing response for %s", rule.intent)
	}
	_, ok := responses[IntentUnknown]
	require.True(t, ok)
}
