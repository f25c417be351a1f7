package fantasy

import (
	"context"

	"github.com/kiratsb/vorpbot/internal/api/espn"
	"github.com/kiratsb/vorpbot/internal/models"
)

// API fronts the league-data provider so the service layer never
// touches provider-specific types.
type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) FetchLeague(ctx context.Context) (*models.LeagueSnapshot, error) {
	return a.espnAPI.FetchLeague(ctx)
}
