package pipeline

import (
	"sort"
	"strconv"

	"marine-platform/internal/models"
)

// DecadalBucket summarizes one decade of the SST series.
type DecadalBucket struct {
	Decade      int     `json:"decade"`
	Label       string  `json:"label"`
	MeanSST     float64 `json:"mean_sst"`
	MeanAnomaly float64 `json:"mean_anomaly"`
	MaxAnomaly  float64 `json:"max_anomaly"`
	Count       int     `json:"count"`
}

// DecadalAggregate groups temperature records by decade
// (floor(year/10)*10) and computes mean SST, mean anomaly, and max
// anomaly per bucket, in ascending decade order. Values stay in Celsius;
// unit conversion is applied downstream.
func DecadalAggregate(records []models.TemperatureRecord) []DecadalBucket {
	byDecade := make(map[int][]models.TemperatureRecord)
	for _, rec := range records {
		decade := (rec.Year / 10) * 10
		byDecade[decade] = append(byDecade[decade], rec)
	}

	decades := make([]int, 0, len(byDecade))
	for d := range byDecade {
		decades = append(decades, d)
	}
	sort.Ints(decades)

	buckets := make([]DecadalBucket, 0, len(decades))
	for _, d := range decades {
		recs := byDecade[d]
		sumSST, sumAnom := 0.0, 0.0
		maxAnom := recs[0].AnomalyCelsius
		for _, rec := range recs {
			sumSST += rec.SSTCelsius
			sumAnom += rec.AnomalyCelsius
			if rec.AnomalyCelsius > maxAnom {
				maxAnom = rec.AnomalyCelsius
			}
		}
		n := float64(len(recs))
		buckets = append(buckets, DecadalBucket{
			Decade:      d,
			Label:       strconv.Itoa(d) + "s",
			MeanSST:     sumSST / n,
			MeanAnomaly: sumAnom / n,
			MaxAnomaly:  maxAnom,
			Count:       len(recs),
		})
	}
	return buckets
}

// TrendFit is an ordinary least squares fit of value against year.
// SlopePerDecade is the slope scaled to a ten-year step.
type TrendFit struct {
	Slope          float64 `json:"slope"`
	Intercept      float64 `json:"intercept"`
	SlopePerDecade float64 `json:"slope_per_decade"`
}

// At evaluates the fitted line at the given year.
func (f TrendFit) At(year int) float64 {
	return f.Slope*float64(year) + f.Intercept
}

// LinearTrend fits value vs year by ordinary least squares. Fewer than
// two distinct years make the fit undefined and return
// *models.UndefinedAggregateError.
func LinearTrend(years []int, values []float64) (TrendFit, error) {
	if len(years) != len(values) {
		return TrendFit{}, &models.UndefinedAggregateError{
			Operation: "linear trend",
			Reason:    "year and value lengths differ",
		}
	}
	distinct := make(map[int]bool, len(years))
	for _, y := range years {
		distinct[y] = true
	}
	if len(distinct) < 2 {
		return TrendFit{}, &models.UndefinedAggregateError{
			Operation: "linear trend",
			Reason:    "fewer than two distinct years",
		}
	}

	n := float64(len(years))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range years {
		x := float64(y)
		sumX += x
		sumY += values[i]
		sumXY += x * values[i]
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	return TrendFit{
		Slope:          slope,
		Intercept:      intercept,
		SlopePerDecade: slope * 10,
	}, nil
}

// BaselineShift contrasts the mean of a series before one cutoff against
// the mean at or after a second cutoff, characterizing a regime shift.
type BaselineShift struct {
	BeforeYear int     `json:"before_year"`
	SinceYear  int     `json:"since_year"`
	MeanBefore float64 `json:"mean_before"`
	MeanSince  float64 `json:"mean_since"`
	Delta      float64 `json:"delta"`
}

// BaselineComparison computes the mean of values with year strictly
// before beforeYear versus the mean of values with year >= sinceYear.
// Either side being empty makes the comparison undefined.
func BaselineComparison(years []int, values []float64, beforeYear, sinceYear int) (BaselineShift, error) {
	if len(years) != len(values) {
		return BaselineShift{}, &models.UndefinedAggregateError{
			Operation: "baseline comparison",
			Reason:    "year and value lengths differ",
		}
	}
	var sumBefore, sumSince float64
	var nBefore, nSince int
	for i, y := range years {
		if y < beforeYear {
			sumBefore += values[i]
			nBefore++
		}
		if y >= sinceYear {
			sumSince += values[i]
			nSince++
		}
	}
	if nBefore == 0 || nSince == 0 {
		return BaselineShift{}, &models.UndefinedAggregateError{
			Operation: "baseline comparison",
			Reason:    "one side of the cutoff has no records",
		}
	}
	meanBefore := sumBefore / float64(nBefore)
	meanSince := sumSince / float64(nSince)
	return BaselineShift{
		BeforeYear: beforeYear,
		SinceYear:  sinceYear,
		MeanBefore: meanBefore,
		MeanSince:  meanSince,
		Delta:      meanSince - meanBefore,
	}, nil
}
