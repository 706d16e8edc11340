package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewSensor_ActivePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       SensorKind
		wantActive bool
	}{
		{name: "level sensor starts active", kind: SensorLevel, wantActive: true},
		{name: "infrared sensor starts active", kind: SensorInfrared, wantActive: true},
		{name: "other sensor starts active", kind: SensorOther, wantActive: true},
		{name: "ph sensor starts inactive", kind: SensorPH, wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSensor(Device{Code: "S-01", Name: "sensor"}, tt.kind, "cm")
			assert.Equal(t, tt.wantActive, s.Active)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, "cm", s.Unit)
		})
	}
}

func TestSensor_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rangeMin *float64
		rangeMax *float64
		value    float64
		want     bool
	}{
		{name: "no bounds never out of range", value: 1e9, want: false},
		{name: "below min", rangeMin: ptr(10.0), value: 9.99, want: true},
		{name: "equal to min is inside", rangeMin: ptr(10.0), value: 10, want: false},
		{name: "above max", rangeMax: ptr(90.0), value: 200, want: true},
		{name: "equal to max is inside", rangeMax: ptr(90.0), value: 90, want: false},
		{name: "inside both bounds", rangeMin: ptr(10.0), rangeMax: ptr(90.0), value: 50, want: false},
		{name: "only max bound, low value", rangeMax: ptr(90.0), value: -500, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &Sensor{RangeMin: tt.rangeMin, RangeMax: tt.rangeMax}
			assert.Equal(t, tt.want, s.OutOfRange(tt.value))

			r := &Reading{Value: tt.value}
			assert.Equal(t, tt.want, r.IsOutOfRange(s))
			assert.Equal(t, tt.want, s.IsOutOfRange(r))
		})
	}
}

func TestSensor_IsOutOfRange_NoReading(t *testing.T) {
	t.Parallel()

	s := &Sensor{RangeMin: ptr(10.0), RangeMax: ptr(90.0)}
	assert.False(t, s.IsOutOfRange(nil))

	r := &Reading{Value: 1000}
	assert.False(t, r.IsOutOfRange(nil))
}

func TestActuator_PumpState(t *testing.T) {
	t.Parallel()

	a := NewActuator(Device{Code: "A-01"}, ActuatorPump, "GPIO23")
	assert.False(t, a.IsOn)
	assert.True(t, a.IsPump())
	assert.Equal(t, "off", a.PumpState())

	a.IsOn = true
	assert.Equal(t, "on", a.PumpState())

	v := NewActuator(Device{Code: "V-01"}, ActuatorValve, "GPIO5")
	assert.Equal(t, "not a pump", v.PumpState())
}

func TestNewRule_Defaults(t *testing.T) {
	t.Parallel()

	r := NewRule(7, CompareGT, 50, "high level")
	assert.Equal(t, int64(7), r.SensorID)
	assert.Equal(t, SeverityWarn, r.Severity)
	assert.True(t, r.Active)
	assert.Nil(t, r.ActuatorID)
}

func TestComparator_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cmp       Comparator
		value     float64
		threshold float64
		want      bool
		wantErr   error
	}{
		{name: "GT above", cmp: CompareGT, value: 60, threshold: 50, want: true},
		{name: "GT equal", cmp: CompareGT, value: 50, threshold: 50, want: false},
		{name: "LT below", cmp: CompareLT, value: 40, threshold: 50, want: true},
		{name: "LT equal", cmp: CompareLT, value: 50, threshold: 50, want: false},
		{name: "GE equal", cmp: CompareGE, value: 50, threshold: 50, want: true},
		{name: "GE below", cmp: CompareGE, value: 49.9, threshold: 50, want: false},
		{name: "LE equal", cmp: CompareLE, value: 50, threshold: 50, want: true},
		{name: "LE above", cmp: CompareLE, value: 50.1, threshold: 50, want: false},
		{name: "EQ equal", cmp: CompareEQ, value: 7.5, threshold: 7.5, want: true},
		{name: "EQ different", cmp: CompareEQ, value: 7.5, threshold: 7.4, want: false},
		{name: "unknown comparator", cmp: Comparator("BETWEEN"), value: 1, threshold: 1, wantErr: ErrUnknownComparator},
		{name: "NaN value", cmp: CompareGT, value: math.NaN(), threshold: 1, wantErr: ErrNonFiniteOperand},
		{name: "infinite threshold", cmp: CompareLT, value: 1, threshold: math.Inf(1), wantErr: ErrNonFiniteOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cmp.Compare(tt.value, tt.threshold)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnums_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, CompareLE.Valid())
	assert.False(t, Comparator("MAYOR").Valid())
	assert.Equal(t, ">=", CompareGE.Symbol())
	assert.True(t, SeverityCritical.Valid())
	assert.False(t, Severity("CRITICA").Valid())
	assert.True(t, SensorPH.Valid())
	assert.False(t, SensorKind("NIVEL").Valid())
	assert.True(t, ActuatorAlarm.Valid())
	assert.False(t, ActuatorKind("BOMBA").Valid())
	assert.True(t, AlertInProgress.Valid())
	assert.False(t, AlertStatus("NUEVA").Valid())
}
