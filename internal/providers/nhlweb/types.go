package nhlweb

import "encoding/json"

// feedResponse covers both shapes served by api-web: a flat "games" list
// (score/now) and a "gamesByDate" list of days (week schedules).
type feedResponse struct {
	Games       *[]gameResponse `json:"games"`
	GamesByDate *[]dayResponse  `json:"gamesByDate"`
}

type dayResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID               json.Number     `json:"id"`
	GameID           json.Number     `json:"gameId"`
	GameState        string          `json:"gameState"`
	StartTimeUTC     string          `json:"startTimeUTC"`
	GameStartTimeUTC string          `json:"gameStartTimeUTC"`
	StartTime        string          `json:"startTime"`
	HomeTeam         teamResponse    `json:"homeTeam"`
	AwayTeam         teamResponse    `json:"awayTeam"`
	Clock            *clockResponse  `json:"clock"`
	PeriodDescriptor *periodResponse `json:"periodDescriptor"`
}

type teamResponse struct {
	Abbrev  string        `json:"abbrev"`
	TriCode string        `json:"triCode"`
	Score   *int          `json:"score"`
	Name    *nameResponse `json:"name"`
}

type nameResponse struct {
	Default string `json:"default"`
}

type clockResponse struct {
	TimeRemaining  string `json:"timeRemaining"`
	Running        bool   `json:"running"`
	InIntermission bool   `json:"inIntermission"`
}

type periodResponse struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}
