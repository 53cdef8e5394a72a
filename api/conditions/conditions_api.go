package conditions

import (
	"surf-server/models"
)

// ConditionsAPI defines the interface for fetching live surf conditions
// for a spot. Its failure is fatal to report generation: without a
// conditions record there is nothing to report on.
type ConditionsAPI interface {
	GetCurrentConditions(spot string) (*models.SurfConditions, error)
	SetAPIKey(apiKey string)
}
