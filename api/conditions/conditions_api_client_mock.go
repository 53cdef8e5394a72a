package conditions

import (
	"fmt"

	"surf-server/config"
	"surf-server/models"
	"surf-server/util"
)

// ConditionsApiClientMock embeds mocked logic for the conditions api client
type ConditionsApiClientMock struct {
}

// NewConditionsApiClientMock creates a new instance of ConditionsApiClientMock
func NewConditionsApiClientMock() *ConditionsApiClientMock {
	return &ConditionsApiClientMock{}
}

func (c *ConditionsApiClientMock) SetAPIKey(apiKey string) {
}

// GetCurrentConditions returns the canned conditions fixture with the
// requested spot name stamped on.
func (c *ConditionsApiClientMock) GetCurrentConditions(spot string) (*models.SurfConditions, error) {
	cond, err := util.ReadSurfConditionsFromJSON(config.GetResourcePath(config.SURF_CONDITIONS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read surf conditions from json")
		return nil, err
	}
	if spot != "" {
		cond.Location = spot
	}
	return cond, nil
}
