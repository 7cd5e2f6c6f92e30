package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mgnrega-dashboard-go/internal/metrics"
	"mgnrega-dashboard-go/pkg/model"
)

// FeedConfig holds configuration for the data.gov.in feed client
type FeedConfig struct {
	BaseURL    string
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// DataGovClient fetches one district's monthly record from the open-data
// feed. Non-2xx responses and malformed bodies surface as ErrFeedUnavailable
// so the ingestion job can absorb them per district.
type DataGovClient struct {
	config     FeedConfig
	httpClient *http.Client
}

// NewDataGovClient creates a new client for the data.gov.in feed
func NewDataGovClient(config FeedConfig) *DataGovClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 2 * time.Second
	}
	return &DataGovClient{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// feedRecord mirrors the record shape returned by the feed.
type feedRecord struct {
	DistrictCode                string  `json:"district_code"`
	TotalBeneficiaries          int64   `json:"total_beneficiaries"`
	PersonDaysGenerated         int64   `json:"person_days_generated"`
	AverageWagePerDay           float64 `json:"average_wage_per_day"`
	TotalWageOutlay             float64 `json:"total_wage_outlay"`
	PaymentsReleased            float64 `json:"payments_released"`
	PaymentCompletionPercentage float64 `json:"payment_completion_percentage"`
	TotalWorksCompleted         int64   `json:"total_works_completed"`
	TotalWorksOngoing           int64   `json:"total_works_ongoing"`
	WomenBeneficiaries          int64   `json:"women_beneficiaries"`
	SCBeneficiaries             int64   `json:"sc_beneficiaries"`
	STBeneficiaries             int64   `json:"st_beneficiaries"`
}

type feedResponse struct {
	Records []feedRecord `json:"records"`
}

// FetchDistrict returns one district's payload for the given period.
func (c *DataGovClient) FetchDistrict(ctx context.Context, district model.District, month, year int) (model.MonthlyPerformance, error) {
	metrics.FeedRequestsTotal.Inc()

	body, err := c.getWithRetry(ctx, c.recordURL(district.Code, month, year))
	if err != nil {
		metrics.FeedFailuresTotal.Inc()
		return model.MonthlyPerformance{}, err
	}

	var parsed feedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.FeedFailuresTotal.Inc()
		return model.MonthlyPerformance{}, fmt.Errorf("%w: parsing feed response for %s: %v", model.ErrFeedUnavailable, district.Code, err)
	}
	if len(parsed.Records) == 0 {
		metrics.FeedFailuresTotal.Inc()
		return model.MonthlyPerformance{}, fmt.Errorf("%w: no record for district %s in %02d/%d", model.ErrFeedUnavailable, district.Code, month, year)
	}

	r := parsed.Records[0]
	return model.MonthlyPerformance{
		DistrictID:                  district.ID,
		Month:                       month,
		Year:                        year,
		TotalBeneficiaries:          r.TotalBeneficiaries,
		PersonDaysGenerated:         r.PersonDaysGenerated,
		AverageWagePerDay:           r.AverageWagePerDay,
		TotalWageOutlay:             r.TotalWageOutlay,
		PaymentsReleased:            r.PaymentsReleased,
		PaymentCompletionPercentage: r.PaymentCompletionPercentage,
		TotalWorksCompleted:         r.TotalWorksCompleted,
		TotalWorksOngoing:           r.TotalWorksOngoing,
		WomenBeneficiaries:          r.WomenBeneficiaries,
		SCBeneficiaries:             r.SCBeneficiaries,
		STBeneficiaries:             r.STBeneficiaries,
		DataSource:                  "data.gov.in",
		FetchedAt:                   time.Now().UTC(),
	}, nil
}

func (c *DataGovClient) recordURL(districtCode string, month, year int) string {
	q := url.Values{}
	q.Set("api-key", c.config.APIKey)
	q.Set("format", "json")
	q.Set("filters[district_code]", districtCode)
	q.Set("filters[month]", fmt.Sprintf("%d", month))
	q.Set("filters[year]", fmt.Sprintf("%d", year))
	q.Set("limit", "1")
	return c.config.BaseURL + "?" + q.Encode()
}

func (c *DataGovClient) getWithRetry(ctx context.Context, requestURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.config.RetryDelay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", model.ErrFeedUnavailable, ctx.Err())
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: creating feed request: %v", model.ErrFeedUnavailable, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", model.ErrFeedUnavailable, err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: reading feed response: %v", model.ErrFeedUnavailable, err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: feed returned status %d", model.ErrFeedUnavailable, resp.StatusCode)
			continue
		}
		return body, nil
	}
	return nil, lastErr
}
