package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"

	maxBars = 12
)

var palette = []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawDepartmentChart draws total monthly cost per department, most expensive first.
func DrawDepartmentChart(accountId string, instances []model.InstanceRecord) {
	groups := CostByTag(instances, model.TagDepartment)
	if len(groups) == 0 {
		return
	}
	if len(groups) > maxBars {
		groups = groups[:maxBars]
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏷️  COST BY DEPARTMENT"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountId))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(130, 20)
	for rank, group := range groups {
		bc.Push(barchart.BarData{
			Label: getBarLabel(group),
			Values: []barchart.BarValue{
				{
					Value: group.Total.InexactFloat64(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(rankColor(rank))),
				},
			},
		})
	}

	fmt.Println()
	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

func getBarLabel(group GroupCost) string {
	return fmt.Sprintf("%s: %s", group.Name, group.Total.StringFixed(2))
}

// rankColor colors the most expensive bars red and the rest green.
func rankColor(rank int) string {
	if rank < len(palette) {
		return palette[rank]
	}
	return palette[len(palette)-1]
}
