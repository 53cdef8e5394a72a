package conditions

import (
	"fmt"
	"net/url"

	"surf-server/api"
	"surf-server/models"
)

// ConditionsApiClient embeds the common HTTPClient
type ConditionsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewConditionsApiClient creates a new instance of ConditionsApiClient
func NewConditionsApiClient(httpClient *api.HTTPClient) *ConditionsApiClient {
	return &ConditionsApiClient{
		HTTPClient: httpClient,
	}
}

func (c *ConditionsApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GetCurrentConditions retrieves the live conditions for a spot and
// decodes the response into a SurfConditions record.
func (c *ConditionsApiClient) GetCurrentConditions(spot string) (*models.SurfConditions, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["X-Api-Key"] = c.apiKey
	}

	var response models.SurfConditions
	endpoint := "/conditions?spot=" + url.QueryEscape(spot)
	if err := c.Request("GET", endpoint, headers, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch conditions for %q: %w", spot, err)
	}
	return &response, nil
}
