package utils

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

const topInstances = 10

func DrawInstanceCostTable(costs model.CostReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏷️  AWS TAGGER REPORT"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(costs.AccountID))
	if len(costs.FailedRegions) > 0 {
		fmt.Printf(" Skipped regions: %s\n", text.FgRed.Sprint(strings.Join(costs.FailedRegionNames(), ", ")))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))
	fmt.Println(renderInstanceCostTable(costs.Instances))
}

func renderInstanceCostTable(instances []model.InstanceRecord) string {
	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Instance",
		"Region",
		"Type",
		"Department",
		"Compute\n(USD/month)",
		"Storage\n(USD/month)",
		"Total\n(USD/month)",
	})

	var rows []table.Row
	for _, instance := range TopByTotal(instances, topInstances) {
		rows = append(rows, instanceRow(instance))
	}
	tw.AppendRows(rows)
	tw.AppendFooter(totalRow(instances))

	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlignHeader: text.VAlignMiddle},
		{Number: 2, VAlignHeader: text.VAlignMiddle},
		{Number: 3, VAlignHeader: text.VAlignMiddle},
		{Number: 4, VAlignHeader: text.VAlignMiddle},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 7, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

func totalRow(instances []model.InstanceRecord) table.Row {
	return table.Row{
		fmt.Sprintf("Total (%d instances)", len(instances)),
		"",
		"",
		"",
		FormatUSD(SumComputeCost(instances)),
		FormatUSD(SumStorageCost(instances)),
		FormatUSD(SumTotal(instances)),
	}
}

func instanceRow(instance model.InstanceRecord) table.Row {
	name := instance.ID
	if tagName, ok := instance.TagValue(model.TagName); ok && tagName != "" {
		name = fmt.Sprintf("%s\n%s", tagName, instance.ID)
	}
	dept, _ := instance.TagValue(model.TagDepartment)

	row := make(table.Row, 7)
	row[0] = text.FgGreen.Sprint(name)
	row[1] = instance.Region
	row[2] = instance.Type
	row[3] = dept
	row[4] = FormatUSD(instance.ComputeMonthlyCost)
	row[5] = FormatUSD(instance.StorageMonthlyCost)
	row[6] = text.FgYellow.Sprint(FormatUSD(instance.TotalMonthlyCost))

	if instance.ComputeMonthlyCost.IsZero() && instance.State == "running" {
		// no catalog price for a running instance
		row[4] = text.FgRed.Sprint(FormatUSD(instance.ComputeMonthlyCost))
	}
	return row
}

func DrawReconcileSummary(filename string, result model.ReconcileResult) {
	title := " 🏷️  AWS TAGGER UPDATE"
	if result.DryRun {
		title += " (dry run)"
	}
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(title))
	fmt.Printf(" File: %s\n", text.FgBlue.Sprint(filename))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Status", "Count", "Details"})
	tw.AppendRows([]table.Row{
		{text.FgHiGreen.Sprint("Applied"), len(result.Applied), ""},
		{text.FgHiRed.Sprint("Failed"), len(result.Failed), strings.Join(result.FailedIDs(), "\n")},
		{text.FgHiYellow.Sprint("Rejected"), len(result.Rejected), rejectedDetails(result.Rejected)},
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

func rejectedDetails(rejected []model.RowError) string {
	lines := make([]string, 0, len(rejected))
	for _, r := range rejected {
		lines = append(lines, fmt.Sprintf("row %d: %s", r.Row, r.Reason))
	}
	return strings.Join(lines, "\n")
}

func DrawKubeCostTable(cluster string, usages []model.ServiceUsage) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏷️  KUBE SERVICE COSTS"))
	fmt.Printf(" Cluster: %s\n", text.FgBlue.Sprint(cluster))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Namespace", "Service", "Owner", "Pods", "CPU\n(USD/month)", "RAM\n(USD/month)"})

	cpuTotal := decimal.Zero
	ramTotal := decimal.Zero
	var rows []table.Row
	for _, u := range usages {
		cpuTotal = cpuTotal.Add(u.CPUCost)
		ramTotal = ramTotal.Add(u.RAMCost)
		rows = append(rows, table.Row{u.Namespace, text.FgGreen.Sprint(u.ServiceName), u.Owner, u.PodCount, FormatUSD(u.CPUCost), FormatUSD(u.RAMCost)})
	}
	tw.AppendRows(rows)
	tw.AppendFooter(table.Row{"", "", "", "Total", FormatUSD(cpuTotal), FormatUSD(ramTotal)})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

// FormatUSD renders a monthly amount with two decimals.
func FormatUSD(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " USD"
}
