package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tou-pricegen/internal/model"
	"tou-pricegen/internal/tou"
)

func TestCompute_SingleWeekday(t *testing.T) {
	start, err := tou.ParseStart("2025-01-06 00:00:00") // Monday
	require.NoError(t, err)
	s, err := tou.Generate(model.GridSpec{Start: start, NumDays: 1, TimeStepMinutes: 15}, model.DefaultTariff())
	require.NoError(t, err)

	st := Compute(s.Records, s.Tariff)
	assert.Equal(t, 96, st.Rows)
	// Peak window 14..22 is 8 hours = 32 slots at 15-minute resolution.
	assert.Equal(t, 32, st.PeakRows)
	assert.Equal(t, 64, st.OffPeakRows)
	assert.InDelta(t, 32.0/96.0, st.PeakShare, 1e-9)
	assert.Equal(t, 34.43, st.MinPrice)
	assert.Equal(t, 38.52, st.MaxPrice)
	assert.InDelta(t, (64*34.43+32*38.52)/96, st.MeanPrice, 1e-9)
	assert.Equal(t, 96, st.RowsByDay[0])
	assert.Equal(t, 0, st.RowsByDay[5])
}

func TestCompute_WeekendOnly(t *testing.T) {
	start, err := tou.ParseStart("2025-01-11 00:00:00") // Saturday
	require.NoError(t, err)
	s, err := tou.Generate(model.GridSpec{Start: start, NumDays: 2, TimeStepMinutes: 60}, model.DefaultTariff())
	require.NoError(t, err)

	st := Compute(s.Records, s.Tariff)
	assert.Equal(t, 48, st.Rows)
	assert.Equal(t, 0, st.PeakRows)
	assert.Equal(t, 0.0, st.PeakShare)
	assert.InDelta(t, 34.43, st.MeanPrice, 1e-9)
	assert.Equal(t, 24, st.RowsByDay[5])
	assert.Equal(t, 24, st.RowsByDay[6])
}

func TestCompute_Empty(t *testing.T) {
	st := Compute(nil, model.DefaultTariff())
	assert.Equal(t, 0, st.Rows)
	assert.Equal(t, 0.0, st.PeakShare)
}

func TestInferTariff_CustomRates(t *testing.T) {
	custom := model.Tariff{
		Name:             "custom",
		OffPeakSenPerKWh: 21.5,
		PeakSenPerKWh:    55.0,
		PeakStartHour:    14,
		PeakEndHour:      22,
	}
	start, err := tou.ParseStart("2025-01-06 00:00:00") // Monday
	require.NoError(t, err)
	s, err := tou.Generate(model.GridSpec{Start: start, NumDays: 1, TimeStepMinutes: 15}, custom)
	require.NoError(t, err)

	inferred := InferTariff(s.Records)
	assert.Equal(t, 21.5, inferred.OffPeakSenPerKWh)
	assert.Equal(t, 55.0, inferred.PeakSenPerKWh)

	// Stats computed against the inferred tariff classify the custom peak
	// rows correctly.
	st := Compute(s.Records, inferred)
	assert.Equal(t, 32, st.PeakRows)
	assert.Equal(t, 64, st.OffPeakRows)
}

func TestInferTariff_Empty(t *testing.T) {
	assert.Equal(t, model.DefaultTariff(), InferTariff(nil))
}

func TestCompute_FlatTariffCountsNoPeak(t *testing.T) {
	flat := model.Tariff{Name: "flat", OffPeakSenPerKWh: 30, PeakSenPerKWh: 30, PeakStartHour: 14, PeakEndHour: 22}
	start, err := tou.ParseStart("2025-01-06 00:00:00")
	require.NoError(t, err)
	s, err := tou.Generate(model.GridSpec{Start: start, NumDays: 1, TimeStepMinutes: 60}, flat)
	require.NoError(t, err)

	st := Compute(s.Records, flat)
	assert.Equal(t, 0, st.PeakRows)
	assert.Equal(t, 24, st.OffPeakRows)
}
