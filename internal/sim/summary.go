package sim

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a trace into the numbers worth eyeballing after a run.
type Summary struct {
	Ticks      int
	Characters int

	MeanSpeed   float64
	SpeedStdDev float64
	MaxSpeed    float64

	// MeanSpeedLag is how far simulated speed trails desired speed on average.
	MeanSpeedLag float64
	MaxYawError  float64
	MeanYawError float64

	FinalGait   float64 // mean over characters at the last tick
	BlockedRows int
}

// Summarize computes a Summary over the whole trace.
func (w *World) Summarize() Summary {
	s := Summary{Ticks: w.tick, Characters: w.Len()}
	if len(w.trace) == 0 {
		return s
	}

	n := len(w.trace)
	speeds := make([]float64, n)
	lags := make([]float64, n)
	yawErrs := make([]float64, n)
	for i, row := range w.trace {
		speeds[i] = float64(row.Speed)
		lags[i] = float64(row.DesiredSpeed - row.Speed)
		yawErrs[i] = float64(row.YawError)
		if row.Blocked {
			s.BlockedRows++
		}
	}

	s.MeanSpeed, s.SpeedStdDev = stat.MeanStdDev(speeds, nil)
	s.MaxSpeed = floats.Max(speeds)
	s.MeanSpeedLag = stat.Mean(lags, nil)
	s.MaxYawError = floats.Max(yawErrs)
	s.MeanYawError = stat.Mean(yawErrs, nil)

	last := w.trace[n-s.Characters:]
	gaits := make([]float64, len(last))
	for i, row := range last {
		gaits[i] = float64(row.Gait)
	}
	s.FinalGait = stat.Mean(gaits, nil)

	return s
}

// MarshalLogObject lets a Summary be logged with zap.Object.
func (s Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("ticks", s.Ticks)
	enc.AddInt("characters", s.Characters)
	enc.AddFloat64("mean_speed", s.MeanSpeed)
	enc.AddFloat64("speed_stddev", s.SpeedStdDev)
	enc.AddFloat64("max_speed", s.MaxSpeed)
	enc.AddFloat64("mean_speed_lag", s.MeanSpeedLag)
	enc.AddFloat64("max_yaw_error", s.MaxYawError)
	enc.AddFloat64("mean_yaw_error", s.MeanYawError)
	enc.AddFloat64("final_gait", s.FinalGait)
	enc.AddInt("blocked_rows", s.BlockedRows)
	return nil
}

// Field returns the summary as a single zap field.
func (s Summary) Field() zap.Field {
	return zap.Object("summary", s)
}
