package analytics

import (
	"context"
	"math"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/app/services/core/reports"
	"omerald-service/internal/pkg/dto/responses"
	"omerald-service/internal/pkg/exceptions"
	"omerald-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type analyticsUsecase struct {
	ProfileRepository contracts.ProfileRepository
	ReportRepository  contracts.ReportRepository
	Log               *zap.Logger
}

func NewAnalyticsUsecase(
	profileRepository contracts.ProfileRepository,
	reportRepository contracts.ReportRepository,
	log *zap.Logger,
) contracts.AnalyticsUsecase {
	return &analyticsUsecase{
		ProfileRepository: profileRepository,
		ReportRepository:  reportRepository,
		Log:               log,
	}
}

// BuildBMISeries converts a profile's height/weight history into chartable
// points, ordered by measurement date. Entries with a non-numeric or
// non-positive height are skipped rather than failing the series.
func (uc *analyticsUsecase) BuildBMISeries(ctx context.Context, profileID string) ([]responses.BMIPoint, error) {
	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	points := []responses.BMIPoint{}
	for _, record := range profile.BMIRecords {
		height, heightOK := utils.ToFloat64(record.Height)
		weight, weightOK := utils.ToFloat64(record.Weight)
		if !heightOK || !weightOK || height <= 0 {
			continue
		}

		heightMeters := height / 100
		bmi := weight / (heightMeters * heightMeters)
		points = append(points, responses.BMIPoint{
			RecordedAt: record.RecordedAt,
			Height:     height,
			Weight:     weight,
			BMI:        math.Round(bmi*10) / 10,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].RecordedAt < points[j].RecordedAt
	})
	return points, nil
}

// ReportsPerMonth buckets a user's reports by the month of their report
// date, probing the historical date field names. Reports without a parseable
// date are ignored.
func (uc *analyticsUsecase) ReportsPerMonth(ctx context.Context, userID string) ([]responses.MonthBucket, error) {
	userReports, err := uc.ReportRepository.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, report := range userReports {
		raw := report.FirstStr(models.ReportDateKeys...)
		month, ok := monthOf(raw)
		if !ok {
			continue
		}
		counts[month]++
	}

	buckets := make([]responses.MonthBucket, 0, len(counts))
	for month, count := range counts {
		buckets = append(buckets, responses.MonthBucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets, nil
}

// ConditionFrequency counts condition mentions across a user's parsed
// reports, case-insensitively, keeping the first-seen spelling for display.
func (uc *analyticsUsecase) ConditionFrequency(ctx context.Context, userID string) ([]responses.ConditionCount, error) {
	userReports, err := uc.ReportRepository.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	display := map[string]string{}
	for _, report := range userReports {
		for _, condition := range conditionsOf(reports.NormalizeShape(report)) {
			key := strings.ToLower(condition)
			if _, seen := display[key]; !seen {
				display[key] = condition
			}
			counts[key]++
		}
	}

	results := make([]responses.ConditionCount, 0, len(counts))
	for key, count := range counts {
		results = append(results, responses.ConditionCount{Condition: display[key], Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Condition < results[j].Condition
	})
	return results, nil
}

// monthOf extracts "YYYY-MM" from the date formats found in stored records.
func monthOf(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01"), true
		}
	}
	return "", false
}

// conditionsOf collects condition names from the record: top-level
// conditions and parsedData.conditions, as plain strings or objects with a
// name field.
func conditionsOf(report models.Report) []string {
	entries := report.Slice("conditions")
	if parsed := report.ParsedData(); parsed != nil {
		if more, ok := parsed["conditions"].([]interface{}); ok {
			entries = append(entries, more...)
		}
	}

	conditions := []string{}
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				conditions = append(conditions, trimmed)
			}
		case map[string]interface{}:
			if name, ok := v["name"].(string); ok {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					conditions = append(conditions, trimmed)
				}
			}
		}
	}
	return conditions
}
