package espn

// Wire types for the ESPN fantasy v3 API, trimmed to the views the
// importer reads (mSettings, mTeam, mRoster, proTeamSchedules_wl).

type leagueResponse struct {
	ID              int      `json:"id"`
	ScoringPeriodID int      `json:"scoringPeriodId"`
	SeasonID        int      `json:"seasonId"`
	Status          status   `json:"status"`
	Teams           []team   `json:"teams"`
	Settings        settings `json:"settings"`
}

type settings struct {
	Name                string              `json:"name"`
	Size                int                 `json:"size"`
	RosterSettings      rosterSettings      `json:"rosterSettings"`
	AcquisitionSettings acquisitionSettings `json:"acquisitionSettings"`
}

type rosterSettings struct {
	LineupSlotCounts map[string]int `json:"lineupSlotCounts"`
}

type acquisitionSettings struct {
	AcquisitionBudget int `json:"acquisitionBudget"`
}

type status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbrev"`
	Name         string `json:"name"`
	Roster       roster `json:"roster"`
}

type roster struct {
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
	LineupSlotID    int             `json:"lineupSlotId"`
}

type playerPoolEntry struct {
	ID       int    `json:"id"`
	OnTeamID int    `json:"onTeamId"`
	Player   player `json:"player"`
}

type player struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	DefaultPositionID int    `json:"defaultPositionId"`
	ProTeamID         int    `json:"proTeamId"`
	InjuryStatus      string `json:"injuryStatus"`
}

type proTeamInfo struct {
	ID      int    `json:"id"`
	Abbrev  string `json:"abbrev"`
	ByeWeek int    `json:"byeWeek"`
	Name    string `json:"name"`
}
