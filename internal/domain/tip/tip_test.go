package tip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringAndParseRoundTrip(t *testing.T) {
	original := New("📈", "Rice prices are rising (+8.7%) - Good time to sell!")
	line := original.String()
	require.Equal(t, "📈 Rice prices are rising (+8.7%) - Good time to sell!", line)
	require.Equal(t, original, Parse(line))
}

func TestParseSplitsOnFirstSpaceOnly(t *testing.T) {
	got := Parse("🌱 Current weather conditions are favorable")
	require.Equal(t, "🌱", got.Icon)
	require.Equal(t, "Current weather conditions are favorable", got.Text)

	require.Equal(t, Tip{Icon: "🌱"}, Parse("🌱"))
}

func TestLines(t *testing.T) {
	lines := Lines([]Tip{New("a", "one"), New("b", "two")})
	require.Equal(t, []string{"a one", "b two"}, lines)
	require.Empty(t, Lines(nil))
}

func TestJSONCarriesLegacyLine(t *testing.T) {
	raw, err := json.Marshal([]Tip{New("🌧️", "Rain expected! Avoid field work and ensure proper drainage.")})
	require.NoError(t, err)
	require.JSONEq(t, `[{"icon":"🌧️","text":"Rain expected! Avoid field work and ensure proper drainage.","line":"🌧️ Rain expected! Avoid field work and ensure proper drainage."}]`, string(raw))

	var decoded []Tip
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, []Tip{New("🌧️", "Rain expected! Avoid field work and ensure proper drainage.")}, decoded)
}

func TestJSONAcceptsLegacyForms(t *testing.T) {
	var tips []Tip
	require.NoError(t, json.Unmarshal([]byte(`["📉 Tomato prices are falling (-12.5%)", {"line":"📊 Market prices are relatively stable."}]`), &tips))
	require.Equal(t, []Tip{
		New("📉", "Tomato prices are falling (-12.5%)"),
		New("📊", "Market prices are relatively stable."),
	}, tips)

	var bad Tip
	require.Error(t, json.Unmarshal([]byte(`42`), &bad))
}
