package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultStatsDays = 30
	MaxStatsDays     = 3650
)

type BloodPressureAverage struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

type BloodPressurePoint struct {
	Date      time.Time `json:"date"`
	Systolic  float64   `json:"systolic"`
	Diastolic *float64  `json:"diastolic"`
}

type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type SampleCounts struct {
	Systolic    int `json:"bloodPressureSystolic"`
	Diastolic   int `json:"bloodPressureDiastolic"`
	BloodSugar  int `json:"bloodSugar"`
	Weight      int `json:"weight"`
	Temperature int `json:"temperature"`
	HeartRate   int `json:"heartRate"`
}

type Trends struct {
	BloodPressure []BloodPressurePoint `json:"bloodPressure"`
	BloodSugar    []TrendPoint         `json:"bloodSugar"`
	Weight        []TrendPoint         `json:"weight"`
	Temperature   []TrendPoint         `json:"temperature"`
	HeartRate     []TrendPoint         `json:"heartRate"`
}

// VitalsStats is the aggregate over one lookback window. A metric with no
// samples reports a mean of 0; SampleCounts tells the two cases apart.
type VitalsStats struct {
	Days                 int                  `json:"days"`
	TotalRecords         int                  `json:"totalRecords"`
	AverageBloodPressure BloodPressureAverage `json:"averageBloodPressure"`
	AverageBloodSugar    float64              `json:"averageBloodSugar"`
	AverageWeight        float64              `json:"averageWeight"`
	AverageTemperature   float64              `json:"averageTemperature"`
	AverageHeartRate     float64              `json:"averageHeartRate"`
	SampleCounts         SampleCounts         `json:"sampleCounts"`
	Trends               Trends               `json:"trends"`
}

// mean accumulates only present samples.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v *float64) bool {
	if v == nil {
		return false
	}
	m.sum += *v
	m.n++
	return true
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// AggregateVitals computes per-metric means and trend series. records must
// be ordered by VitalDate ascending; trends keep that order.
func AggregateVitals(records []models.Vitals) VitalsStats {
	var sys, dia, sugar, weight, temp, hr mean
	trends := Trends{
		BloodPressure: []BloodPressurePoint{},
		BloodSugar:    []TrendPoint{},
		Weight:        []TrendPoint{},
		Temperature:   []TrendPoint{},
		HeartRate:     []TrendPoint{},
	}

	for _, r := range records {
		if sys.add(r.BloodPressureSystolic) {
			trends.BloodPressure = append(trends.BloodPressure, BloodPressurePoint{
				Date:      r.VitalDate,
				Systolic:  *r.BloodPressureSystolic,
				Diastolic: r.BloodPressureDiastolic,
			})
		}
		dia.add(r.BloodPressureDiastolic)
		if sugar.add(r.BloodSugar) {
			trends.BloodSugar = append(trends.BloodSugar, TrendPoint{r.VitalDate, *r.BloodSugar})
		}
		if weight.add(r.Weight) {
			trends.Weight = append(trends.Weight, TrendPoint{r.VitalDate, *r.Weight})
		}
		if temp.add(r.Temperature) {
			trends.Temperature = append(trends.Temperature, TrendPoint{r.VitalDate, *r.Temperature})
		}
		if hr.add(r.HeartRate) {
			trends.HeartRate = append(trends.HeartRate, TrendPoint{r.VitalDate, *r.HeartRate})
		}
	}

	return VitalsStats{
		TotalRecords: len(records),
		AverageBloodPressure: BloodPressureAverage{
			Systolic:  roundTo(sys.value(), 0),
			Diastolic: roundTo(dia.value(), 0),
		},
		AverageBloodSugar:  roundTo(sugar.value(), 0),
		AverageWeight:      roundTo(weight.value(), 0),
		AverageTemperature: roundTo(temp.value(), 1),
		AverageHeartRate:   roundTo(hr.value(), 0),
		SampleCounts: SampleCounts{
			Systolic:    sys.n,
			Diastolic:   dia.n,
			BloodSugar:  sugar.n,
			Weight:      weight.n,
			Temperature: temp.n,
			HeartRate:   hr.n,
		},
		Trends: trends,
	}
}

// ParseStatsDays validates the ?days= window. Empty means the default.
func ParseStatsDays(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultStatsDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindValidation, "days must be a whole number", err)
	}
	if days < 1 || days > MaxStatsDays {
		return 0, apperr.Validation("days must be between 1 and " + strconv.Itoa(MaxStatsDays))
	}
	return days, nil
}

// VitalsSource is the read side of the vitals store used for statistics.
type VitalsSource interface {
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Vitals, error)
}

type VitalsStatsService struct {
	vitals VitalsSource
	now    func() time.Time
}

func NewVitalsStatsService(vitals VitalsSource) *VitalsStatsService {
	return &VitalsStatsService{vitals: vitals, now: time.Now}
}

func (s *VitalsStatsService) Stats(ctx context.Context, userID uuid.UUID, days int) (*VitalsStats, error) {
	if days < 1 || days > MaxStatsDays {
		return nil, apperr.Validation("days must be between 1 and " + strconv.Itoa(MaxStatsDays))
	}
	since := s.now().AddDate(0, 0, -days)
	records, err := s.vitals.Since(ctx, userID, since)
	if err != nil {
		return nil, apperr.Internal("Failed to load vitals", err)
	}
	stats := AggregateVitals(records)
	stats.Days = days
	return &stats, nil
}
