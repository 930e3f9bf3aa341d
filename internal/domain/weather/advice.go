package weather

import (
	"strings"

	"github.com/yanqian/kisan-advisor/internal/domain/tip"
)

const (
	hotThreshold          = 35
	coldThreshold         = 10
	highHumidityThreshold = 80
	lowHumidityThreshold  = 30
	strongWindThreshold   = 20
)

var favorableTip = tip.New("🌱", "Current weather conditions are favorable for most farming activities.")

// Advise turns a reading into farming tips. Every matching rule contributes;
// thresholds are strict. The result is never empty.
func Advise(r Reading) []tip.Tip {
	var tips []tip.Tip

	if r.Temperature > hotThreshold {
		tips = append(tips,
			tip.New("🌡️", "Very hot weather! Ensure adequate irrigation and shade for crops."),
			tip.New("💧", "Increase watering frequency, especially for young plants."),
		)
	}
	if r.Temperature < coldThreshold {
		tips = append(tips,
			tip.New("❄️", "Cold weather alert! Protect sensitive crops from frost."),
			tip.New("🛡️", "Consider using row covers or plastic tunnels."),
		)
	}
	if r.Humidity > highHumidityThreshold {
		tips = append(tips,
			tip.New("💨", "High humidity detected! Monitor for fungal diseases."),
			tip.New("🍃", "Ensure good air circulation around plants."),
		)
	}
	if r.Humidity < lowHumidityThreshold {
		tips = append(tips, tip.New("🏜️", "Low humidity! Increase watering and consider mulching."))
	}
	if r.WindSpeed > strongWindThreshold {
		tips = append(tips, tip.New("💨", "Strong winds expected! Secure tall plants and provide windbreaks."))
	}
	if strings.Contains(strings.ToLower(r.Description), "rain") {
		tips = append(tips,
			tip.New("🌧️", "Rain expected! Avoid field work and ensure proper drainage."),
			tip.New("🚿", "Good natural irrigation - reduce manual watering."),
		)
	}

	if len(tips) == 0 {
		return []tip.Tip{favorableTip}
	}
	return tips
}
