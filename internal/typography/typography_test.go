package typography

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreComplete(t *testing.T) {
	require.Len(t, Presets, 10)
	for _, p := range Presets {
		_, latin := findFont(LatinFonts, p.Values.FontLatin)
		_, arabic := findFont(ArabicFonts, p.Values.FontArabic)
		assert.True(t, latin, "latin font of %s", p.Key)
		assert.True(t, arabic, "arabic font of %s", p.Key)
		assert.NotZero(t, p.Values.BaseFontSize)
	}
}

func TestApplyPresetKeepsCustomValues(t *testing.T) {
	custom := Values{FontLatin: "roboto", FontArabic: "cairo", BaseFontSize: 15, HeadingWeight: 800, BodyWeight: 300}
	st := EditCustom(Default(), custom)
	assert.Equal(t, ModeCustom, st.Mode)

	st, err := ApplyPreset(st, "luxury")
	require.NoError(t, err)
	assert.Equal(t, ModePreset, st.Mode)
	assert.Equal(t, "playfair", st.Effective().FontLatin)
	assert.Equal(t, 18, st.Effective().BaseFontSize)

	st = SwitchToCustom(st)
	assert.Equal(t, custom, st.Effective())
}

func TestApplyPresetUnknown(t *testing.T) {
	st := Default()
	next, err := ApplyPreset(st, "neon")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, st, next)
}

func TestSwitchToCustomWithoutHistoryStartsFromPreset(t *testing.T) {
	st, err := ApplyPreset(State{}, "bold")
	require.NoError(t, err)
	st = SwitchToCustom(st)
	assert.Equal(t, "manrope", st.Custom.FontLatin)
	assert.Equal(t, 700, st.Custom.HeadingWeight)
}

func TestResolve(t *testing.T) {
	vars := Resolve(Default())
	assert.Equal(t, "'Inter', sans-serif", vars["--font-latin"])
	assert.Equal(t, "'IBM Plex Sans Arabic', sans-serif", vars["--font-arabic"])
	assert.Equal(t, "16px", vars["--font-size-base"])
	assert.Equal(t, "400", vars["--font-weight-body"])
	assert.Equal(t, "600", vars["--font-weight-heading"])
}

func TestResolveNormalizesBrokenCustomValues(t *testing.T) {
	st := EditCustom(Default(), Values{FontLatin: "comic", BaseFontSize: 99, HeadingWeight: 650})
	vars := Resolve(st)
	assert.Equal(t, "'Inter', sans-serif", vars["--font-latin"])
	assert.Equal(t, "16px", vars["--font-size-base"])
	assert.Equal(t, "600", vars["--font-weight-heading"])
}

func TestStateJSON(t *testing.T) {
	t.Run("legacy preset", func(t *testing.T) {
		var st State
		require.NoError(t, json.Unmarshal([]byte(`{"preset":"tech","fontLatin":"space-grotesk","fontArabic":"ibm","baseFontSize":16,"headingWeight":600,"bodyWeight":400}`), &st))
		assert.Equal(t, ModePreset, st.Mode)
		assert.Equal(t, "tech", st.Preset)
	})

	t.Run("legacy custom", func(t *testing.T) {
		var st State
		require.NoError(t, json.Unmarshal([]byte(`{"preset":"custom","fontLatin":"roboto","fontArabic":"rubik","baseFontSize":17,"headingWeight":700,"bodyWeight":300}`), &st))
		assert.Equal(t, ModeCustom, st.Mode)
		assert.Equal(t, "rubik", st.Effective().FontArabic)
	})

	t.Run("round trip", func(t *testing.T) {
		st, err := ApplyPreset(EditCustom(Default(), Values{"roboto", "rubik", 17, 700, 300}), "minimal")
		require.NoError(t, err)

		raw, err := json.Marshal(st)
		require.NoError(t, err)

		var back State
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, st, back)
	})
}
