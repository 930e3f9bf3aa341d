package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 7, 1, 20, 30, 0, 0, time.UTC)
	require.Equal(t, "2024-07-01", DateKey(ts, nil))
	require.Equal(t, "2024-07-02", DateKey(ts, time.FixedZone("IST", 5*60*60+30*60)))
}

func TestNowUTC(t *testing.T) {
	require.Equal(t, time.UTC, NowUTC().Location())
}
