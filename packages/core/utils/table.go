package utils

import (
	"strconv"
	"strings"

	"foosball-league/packages/core/models"

	"github.com/olekukonko/tablewriter"
)

var (
	FixtureHeader   = []string{"Match_id", "Home_player", "Away_player", "Home_goals", "Away_goals", "Winner"}
	StandingsHeader = []string{"Player_id", "Name", "Played", "Won", "For", "Against", "Points"}
)

// RenderTable draws rows as fixed-width text: a header, a line of '=' under it
// and '|' between columns, without outer borders.
func RenderTable(header []string, rows [][]string) string {
	var sb strings.Builder

	table := tablewriter.NewWriter(&sb)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetRowLine(false)
	table.SetRowSeparator("=")
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("+")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return sb.String()
}

func FixtureRows(matches []models.Match) [][]string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.HomePlayer.FullName(),
			m.AwayPlayer.FullName(),
			strconv.Itoa(m.HomeGoals),
			strconv.Itoa(m.AwayGoals),
			m.WinnerName(),
		})
	}
	return rows
}

func StandingsRows(players []models.Player) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.FullName(),
			strconv.Itoa(p.MatchesPlayed),
			strconv.Itoa(p.MatchesWon),
			strconv.Itoa(p.GoalsScored),
			strconv.Itoa(p.GoalsConceded),
			strconv.Itoa(p.Points),
		})
	}
	return rows
}

func RenderFixtures(matches []models.Match) string {
	return RenderTable(FixtureHeader, FixtureRows(matches))
}

func RenderStandings(players []models.Player) string {
	return RenderTable(StandingsHeader, StandingsRows(players))
}
