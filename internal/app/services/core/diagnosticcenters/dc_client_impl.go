package diagnosticcenters

import (
	"context"
	"fmt"
	"net/http"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	dcClientInstance contracts.DiagnosticCenterClient
	onceDCClient     sync.Once
)

type dcClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewDiagnosticCenterClient returns the HTTP client for the upstream
// diagnostic center service. Responses are plain resource JSON; a 404 comes
// back as (nil, nil) so callers decide the client-facing message.
func NewDiagnosticCenterClient(baseUrl string, logger *zap.Logger) contracts.DiagnosticCenterClient {
	onceDCClient.Do(func() {
		dcClientInstance = &dcClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 10 * time.Second},
			Log:        logger,
		}
	})
	return dcClientInstance
}

func (c *dcClient) GetCenterByID(ctx context.Context, dcID string) (*models.DCDetails, error) {
	details := new(models.DCDetails)
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/api/diagnostic-centers/%s", c.BaseUrl, dcID), details)
	if err != nil || !found {
		return nil, err
	}
	if details.CenterID == "" {
		details.CenterID = dcID
	}
	return details, nil
}

func (c *dcClient) GetBranchByID(ctx context.Context, branchID string) (*models.BranchDetails, error) {
	details := new(models.BranchDetails)
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/api/branches/%s", c.BaseUrl, branchID), details)
	if err != nil || !found {
		return nil, err
	}
	if details.BranchID == "" {
		details.BranchID = branchID
	}
	return details, nil
}

func (c *dcClient) GetPathologistByID(ctx context.Context, pathologistID string) (*models.PathologistDetails, error) {
	details := new(models.PathologistDetails)
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/api/pathologists/%s", c.BaseUrl, pathologistID), details)
	if err != nil || !found {
		return nil, err
	}
	if details.PathologistID == "" {
		details.PathologistID = pathologistID
	}
	return details, nil
}

func (c *dcClient) GetPathologistsByBranch(ctx context.Context, branchID string) ([]models.PathologistDetails, error) {
	pathologists := []models.PathologistDetails{}
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/api/branches/%s/pathologists", c.BaseUrl, branchID), &pathologists)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return pathologists, nil
}

// getJSON performs one upstream GET. It reports found=false on 404 without
// an error; every other non-2xx status is an upstream failure.
func (c *dcClient) getJSON(ctx context.Context, requestURL string, target interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := fmt.Errorf("upstream returned status %d for %s", resp.StatusCode, requestURL)
		c.Log.Error("diagnostic center upstream request failed",
			zap.String("url", requestURL),
			zap.Int("status", resp.StatusCode),
		)
		return false, exceptions.ErrDCUpstreamRequest(statusErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, exceptions.ErrDecodeResponse(err)
	}
	return true, nil
}
