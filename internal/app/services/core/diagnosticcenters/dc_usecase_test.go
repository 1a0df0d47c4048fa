package diagnosticcenters

import (
	"context"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/dto/requests"
	"omerald-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDCClient struct {
	centers      map[string]*models.DCDetails
	pathologists map[string]*models.PathologistDetails
	byBranch     map[string][]models.PathologistDetails
	centerCalls  int
}

func (f *fakeDCClient) GetCenterByID(ctx context.Context, dcID string) (*models.DCDetails, error) {
	f.centerCalls++
	return f.centers[dcID], nil
}

func (f *fakeDCClient) GetBranchByID(ctx context.Context, branchID string) (*models.BranchDetails, error) {
	return nil, nil
}

func (f *fakeDCClient) GetPathologistByID(ctx context.Context, pathologistID string) (*models.PathologistDetails, error) {
	return f.pathologists[pathologistID], nil
}

func (f *fakeDCClient) GetPathologistsByBranch(ctx context.Context, branchID string) ([]models.PathologistDetails, error) {
	return f.byBranch[branchID], nil
}

type fakeRedis struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{entries: map[string]string{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = string(encoded)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{DCDetailCacheTTLInMinutes: 30},
	}
}

func TestGetDCDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches and caches upstream details", func(t *testing.T) {
		client := &fakeDCClient{centers: map[string]*models.DCDetails{
			"dc-1": {CenterID: "dc-1", CenterName: "Acme Labs"},
		}}
		usecase := NewDiagnosticCenterUsecase(client, newFakeRedis(), testInternalConfig(), zap.NewNop())

		first, err := usecase.GetDCDetails(ctx, &requests.GetDCDetailsRequest{DCID: "dc-1"})
		require.NoError(t, err)
		assert.Equal(t, "Acme Labs", first.CenterName)

		second, err := usecase.GetDCDetails(ctx, &requests.GetDCDetailsRequest{DCID: "dc-1"})
		require.NoError(t, err)
		assert.Equal(t, "Acme Labs", second.CenterName)
		assert.Equal(t, 1, client.centerCalls, "second lookup should come from cache")
	})

	t.Run("unknown center is a 404", func(t *testing.T) {
		usecase := NewDiagnosticCenterUsecase(&fakeDCClient{}, newFakeRedis(), testInternalConfig(), zap.NewNop())

		_, err := usecase.GetDCDetails(ctx, &requests.GetDCDetailsRequest{DCID: "missing"})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestGetPathologistDetails(t *testing.T) {
	ctx := context.Background()

	roster := map[string][]models.PathologistDetails{
		"branch-1": {
			{PathologistID: "p-1", Name: "Dr. Rao"},
			{PathologistID: "p-2", Name: "Dr. Iyer"},
		},
	}

	t.Run("direct ID lookup", func(t *testing.T) {
		client := &fakeDCClient{pathologists: map[string]*models.PathologistDetails{
			"p-1": {PathologistID: "p-1", Name: "Dr. Rao"},
		}}
		usecase := NewDiagnosticCenterUsecase(client, newFakeRedis(), testInternalConfig(), zap.NewNop())

		details, err := usecase.GetPathologistDetails(ctx, &requests.GetPathologistDetailsRequest{PathologistID: "p-1"})

		require.NoError(t, err)
		assert.Equal(t, "Dr. Rao", details.Name)
	})

	t.Run("branch scan matches by name", func(t *testing.T) {
		usecase := NewDiagnosticCenterUsecase(&fakeDCClient{byBranch: roster}, newFakeRedis(), testInternalConfig(), zap.NewNop())

		details, err := usecase.GetPathologistDetails(ctx, &requests.GetPathologistDetailsRequest{
			BranchID:        "branch-1",
			PathologistName: "dr. iyer",
		})

		require.NoError(t, err)
		assert.Equal(t, "p-2", details.PathologistID, "name match is case-insensitive")
	})

	t.Run("branch scan without name returns the first entry", func(t *testing.T) {
		usecase := NewDiagnosticCenterUsecase(&fakeDCClient{byBranch: roster}, newFakeRedis(), testInternalConfig(), zap.NewNop())

		details, err := usecase.GetPathologistDetails(ctx, &requests.GetPathologistDetailsRequest{BranchID: "branch-1"})

		require.NoError(t, err)
		assert.Equal(t, "p-1", details.PathologistID)
	})

	t.Run("no identifier is a 400", func(t *testing.T) {
		usecase := NewDiagnosticCenterUsecase(&fakeDCClient{}, newFakeRedis(), testInternalConfig(), zap.NewNop())

		_, err := usecase.GetPathologistDetails(ctx, &requests.GetPathologistDetailsRequest{PathologistName: "Dr. Rao"})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("unmatched name is a 404", func(t *testing.T) {
		usecase := NewDiagnosticCenterUsecase(&fakeDCClient{byBranch: roster}, newFakeRedis(), testInternalConfig(), zap.NewNop())

		_, err := usecase.GetPathologistDetails(ctx, &requests.GetPathologistDetailsRequest{
			BranchID:        "branch-1",
			PathologistName: "Dr. Unknown",
		})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
