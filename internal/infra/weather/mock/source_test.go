package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/kisan-advisor/internal/domain/weather"
)

func TestCurrent(t *testing.T) {
	src := NewSource(nil)
	r, err := src.Current(context.Background(), " Nashik ")
	require.NoError(t, err)
	require.Equal(t, "Nashik", r.Location)
	require.Equal(t, 28, r.Temperature)

	r, err = src.Current(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Demo Location", r.Location)

	r, err = src.CurrentAt(context.Background(), 18.5, 73.8)
	require.NoError(t, err)
	require.Equal(t, "Your Location", r.Location)
}

func TestForecastAggregatesToDemoDays(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	cases := []struct {
		name  string
		loc   *time.Location
		now   time.Time
		first string
		last  string
	}{
		{name: "utc", loc: time.UTC, now: time.Date(2024, 7, 1, 15, 4, 0, 0, time.UTC), first: "2024-07-01", last: "2024-07-05"},
		{name: "kolkata", loc: kolkata, now: time.Date(2024, 7, 1, 15, 4, 0, 0, time.UTC), first: "2024-07-01", last: "2024-07-05"},
		{name: "kolkata after local midnight", loc: kolkata, now: time.Date(2024, 7, 1, 19, 0, 0, 0, time.UTC), first: "2024-07-02", last: "2024-07-06"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &Source{now: func() time.Time { return tc.now }, loc: tc.loc}
			samples, err := src.Forecast(context.Background(), "Pune")
			require.NoError(t, err)
			require.Len(t, samples, forecastDays*samplesPerDay)

			agg := weather.AggregateByDay(samples, tc.loc)
			require.Len(t, agg, forecastDays)
			require.Equal(t, tc.first, agg[0].Date)
			require.Equal(t, tc.last, agg[4].Date)
			for i, day := range agg {
				require.Equal(t, 22+i, day.Temperature.Min)
				require.Equal(t, 30+i, day.Temperature.Max)
				require.Equal(t, 60+i*5, day.Humidity)
				require.Equal(t, float64(10+i*2), day.WindSpeed)
				require.Equal(t, days[i].description, day.Description)
				require.Equal(t, days[i].icon, day.Icon)
			}
			require.Equal(t, "Light rain", agg[3].Description)
			require.Equal(t, "10d", agg[3].Icon)
		})
	}
}
