package chat

const welcomeMessage = `Namaste! 🙏 I'm your AI Crop Advisor. I'm here to help you with:

• Crop selection and planning
• Weather-based alerts
• Pest and disease identification
• Soil health recommendations
• Market prices
• Fertilizer guidance

How can I assist you today?`

var responses = map[Intent]string{
	IntentWeather:      "I'll get you the latest weather information for your location. Please share your location or specify the area you're interested in. Check the Weather Alerts section for detailed forecasts and farming recommendations.",
	IntentMarketPrice:  "I can help you with current market prices for various crops. Which crop are you interested in selling or buying? You can also check the Market Prices section for live updates from APMCs across India.",
	IntentCropPlanning: "I'd be happy to help with crop recommendations! What's your location and what season are you planning for? I can suggest the best crops based on your soil type, climate, and market demand.",
	IntentSoilHealth:   "For soil health analysis, I can provide recommendations based on your soil type and crop requirements. Do you have any recent soil test reports? I can help interpret the results and suggest improvements.",
	IntentPestDisease:  "I can help identify pests and diseases! Please describe the symptoms you're seeing, or if you have images, I can analyze them. Early detection is key to effective treatment.",
	IntentFertilizer:   "For fertilizer recommendations, I need to know your crop type, growth stage, and soil conditions. NPK requirements vary by crop and season. What specific crop are you growing?",
	IntentUnknown:      "That's a great question! I'm here to help with all aspects of farming. Could you provide more specific details so I can give you the most accurate advice?",
}

// Respond returns the canned reply for the intent of text.
func Respond(text string) string {
	return ResponseFor(Classify(text))
}

// ResponseFor returns the canned reply for an intent.
func ResponseFor(intent Intent) string {
	if msg, ok := responses[intent]; ok {
		return msg
	}
	return responses[IntentUnknown]
}

var quickActions = []QuickAction{
	{ID: "weather", Label: "Weather Forecast", Prompt: "Show me the weather forecast for my area"},
	{ID: "crops", Label: "Seasonal Crops", Prompt: "What crops should I plant this season?"},
	{ID: "prices", Label: "Market Prices", Prompt: "Show me current market prices"},
	{ID: "soil", Label: "Soil Health", Prompt: "Help me with soil health recommendations"},
}
