package weather

import (
	"math"
	"time"

	"github.com/yanqian/kisan-advisor/pkg/util"
)

type dayBucket struct {
	date        string
	minTemp     float64
	maxTemp     float64
	description string
	icon        string
	humiditySum float64
	windSum     float64
	count       int
}

// AggregateByDay collapses sub-daily samples into daily summaries. Days are
// keyed by the sample timestamp in loc (UTC when nil) and emitted in the
// order they first appear.
func AggregateByDay(samples []ForecastSample, loc *time.Location) []ForecastDay {
	if len(samples) == 0 {
		return nil
	}

	order := make([]string, 0, len(samples))
	buckets := make(map[string]*dayBucket)
	for _, sample := range samples {
		key := util.DateKey(time.Unix(sample.Timestamp, 0), loc)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{
				date:        key,
				minTemp:     sample.Temperature,
				maxTemp:     sample.Temperature,
				description: sample.Description,
				icon:        sample.Icon,
			}
			buckets[key] = b
			order = append(order, key)
		}
		b.minTemp = math.Min(b.minTemp, sample.Temperature)
		b.maxTemp = math.Max(b.maxTemp, sample.Temperature)
		b.humiditySum += sample.Humidity
		b.windSum += sample.WindSpeed
		b.count++
	}

	days := make([]ForecastDay, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		n := float64(b.count)
		days = append(days, ForecastDay{
			Date: b.date,
			Temperature: TemperatureRange{
				Min: int(roundHalfUp(b.minTemp)),
				Max: int(roundHalfUp(b.maxTemp)),
			},
			Description: b.description,
			Icon:        b.icon,
			Humidity:    int(roundHalfUp(b.humiditySum / n)),
			WindSpeed:   roundHalfUp(b.windSum/n*10) / 10,
		})
	}
	return days
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
