package analytics

import (
	"context"
	"omerald-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepository struct {
	profile *models.Profile
}

func (f *fakeProfileRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	return f.profile, nil
}

type fakeReportRepository struct {
	reports []models.Report
}

func (f *fakeReportRepository) CreateReport(ctx context.Context, report models.Report) (string, error) {
	return "", nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, reportID string) (models.Report, error) {
	return nil, nil
}

func (f *fakeReportRepository) FindByOwner(ctx context.Context, userID string, page, pageSize int) ([]models.Report, int, error) {
	return f.reports, len(f.reports), nil
}

func (f *fakeReportRepository) FindAllByOwner(ctx context.Context, userID string) ([]models.Report, error) {
	return f.reports, nil
}

func (f *fakeReportRepository) UpdateReport(ctx context.Context, reportID string, report models.Report) error {
	return nil
}

func (f *fakeReportRepository) UpdateStatus(ctx context.Context, reportID, status string) error {
	return nil
}

func (f *fakeReportRepository) DeleteReport(ctx context.Context, reportID string) error {
	return nil
}

func TestBuildBMISeries(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and orders points", func(t *testing.T) {
		usecase := NewAnalyticsUsecase(&fakeProfileRepository{profile: &models.Profile{
			UserID: "user-1",
			BMIRecords: []models.BMIRecord{
				{Height: 170.0, Weight: 70.0, RecordedAt: "2024-02-01"},
				{Height: "168", Weight: "66", RecordedAt: "2024-01-01"},
			},
		}}, &fakeReportRepository{}, zap.NewNop())

		points, err := usecase.BuildBMISeries(ctx, "507f1f77bcf86cd799439011")

		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "2024-01-01", points[0].RecordedAt, "points should be ordered by date")
		assert.InDelta(t, 23.4, points[0].BMI, 0.05)
		assert.InDelta(t, 24.2, points[1].BMI, 0.05)
	})

	t.Run("skips unusable measurements", func(t *testing.T) {
		usecase := NewAnalyticsUsecase(&fakeProfileRepository{profile: &models.Profile{
			BMIRecords: []models.BMIRecord{
				{Height: "N/A", Weight: 70.0},
				{Height: 0.0, Weight: 70.0},
				{Height: 170.0, Weight: 70.0, RecordedAt: "2024-02-01"},
			},
		}}, &fakeReportRepository{}, zap.NewNop())

		points, err := usecase.BuildBMISeries(ctx, "507f1f77bcf86cd799439011")

		require.NoError(t, err)
		assert.Len(t, points, 1)
	})

	t.Run("missing profile errors", func(t *testing.T) {
		usecase := NewAnalyticsUsecase(&fakeProfileRepository{}, &fakeReportRepository{}, zap.NewNop())

		_, err := usecase.BuildBMISeries(ctx, "507f1f77bcf86cd799439011")

		assert.Error(t, err)
	})
}

func TestReportsPerMonth(t *testing.T) {
	ctx := context.Background()

	usecase := NewAnalyticsUsecase(&fakeProfileRepository{}, &fakeReportRepository{reports: []models.Report{
		{"reportDate": "2024-01-15"},
		{"reportDate": "2024-01-20T10:00:00Z"},
		{"uploadDate": "2024-02-02"},
		{"uploadedAt": "02/03/2024"},
		{"name": "undated"},
	}}, zap.NewNop())

	buckets, err := usecase.ReportsPerMonth(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, "2024-02", buckets[1].Month)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, "2024-03", buckets[2].Month)
	assert.Equal(t, 1, buckets[2].Count)
}

func TestConditionFrequency(t *testing.T) {
	ctx := context.Background()

	usecase := NewAnalyticsUsecase(&fakeProfileRepository{}, &fakeReportRepository{reports: []models.Report{
		{"conditions": []interface{}{"Anemia", "Diabetes"}},
		{
			"parsedData": map[string]interface{}{
				"conditions": []interface{}{"anemia", map[string]interface{}{"name": "Thyroid"}},
			},
		},
	}}, zap.NewNop())

	results, err := usecase.ConditionFrequency(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Anemia", results[0].Condition, "case-insensitive counting keeps first-seen spelling")
	assert.Equal(t, 2, results[0].Count)
	assert.Equal(t, "Diabetes", results[1].Condition, "ties order alphabetically")
	assert.Equal(t, "Thyroid", results[2].Condition)
}
