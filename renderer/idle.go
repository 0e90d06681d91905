// Package renderer turns analysis results into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/idlefund/idlefund"
	md "github.com/nao1215/markdown"
)

// IdleMarkdown renders an idle-funds detection result. A nil result renders
// the all-clear message.
func IdleMarkdown(r *idlefund.IdleFundsResult, pattern *idlefund.SpendingPattern) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Idle Funds Report")

	if r == nil {
		doc.PlainText("No idle funds detected: the cash balance stays within the spending safety net.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Cash Balance"), md.Bold(r.TotalBalance.String())},
		Rows: [][]string{
			{"Monthly Spending", r.MonthlyAverage.String()},
			{"Safety Net", r.SafetyNet.String()},
			{"Detection Threshold", r.Threshold.String()},
			{"Available to Invest", r.IdleFunds.String()},
		},
	})

	if pattern != nil {
		doc.H2("Spending Pattern")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Window", "Average"},
			Rows: [][]string{
				{"Daily", pattern.DailyAverage.String()},
				{"Weekly", pattern.WeeklyAverage.String()},
				{"Monthly", pattern.MonthlyAverage.String()},
			},
		})
	}

	doc.PlainText(fmt.Sprintf("%s is sitting idle beyond one month of expenses and could be put to work.", r.IdleFunds))
	return doc.String()
}
