package colormath

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#1a2B3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "without hash", input: "FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "short form", input: "#0f0", want: RGB{R: 0, G: 255, B: 0}},
		{name: "surrounding space", input: "  #000000 ", want: RGB{}},
		{name: "too short", input: "#12345", wantErr: true},
		{name: "not hex", input: "#GGHHII", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidHex)
				assert.Equal(t, Sentinel, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGB_InvalidYieldsSentinel(t *testing.T) {
	assert.Equal(t, Sentinel, HexToRGB("not-a-color"))
	assert.Equal(t, Sentinel, HexToRGB("#12"))
}

func TestHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		c := RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		hex := c.Hex()

		parsed, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, RGBToHex(parsed))
	}

	assert.Equal(t, "#ABCDEF", HexToRGB("#abcdef").Hex())
}

func TestRGB_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Color RGB `json:"color"`
	}{Color: RGB{R: 1, G: 2, B: 3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#010203"}`, string(data))

	var decoded struct {
		Color RGB `json:"color"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"color":"#ff0000"}`), &decoded))
	assert.Equal(t, RGB{R: 255}, decoded.Color)

	assert.Error(t, json.Unmarshal([]byte(`{"color":"red"}`), &decoded))
}

func TestNew_Clamps(t *testing.T) {
	assert.Equal(t, RGB{R: 0, G: 255, B: 12}, New(-40, 900, 12))
}
