package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pkeshava/portfolio"
)

var (
	primaryColor = lipgloss.Color("#3b82f6")
	warningColor = lipgloss.Color("#f59e0b")
	mutedColor   = lipgloss.Color("#94a3b8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	pathStyle = lipgloss.NewStyle().
			Width(28)

	titleColStyle = lipgloss.NewStyle().
			Width(12)

	sizeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(10).
			Align(lipgloss.Right)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)
)

func renderExportReport(rep portfolio.ExportReport) string {
	var b strings.Builder
	var total uint64

	b.WriteString(titleStyle.Render("Exported to "+rep.OutDir) + "\n")
	for _, f := range rep.Files {
		total += uint64(f.Size)
		b.WriteString("  " + pathStyle.Render(f.Path) + sizeStyle.Render(humanize.Bytes(uint64(f.Size))) + "\n")
	}
	for _, w := range rep.Warnings {
		b.WriteString("  " + warningStyle.Render("warning: "+w) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d files, %s in %s",
		len(rep.Files), humanize.Bytes(total), rep.Duration.Round(time.Millisecond))) + "\n")
	return b.String()
}

func renderRoutes(routes []portfolio.Route, baseURL string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d routes", len(routes))) + "\n")
	for _, rt := range routes {
		b.WriteString("  " + pathStyle.Render(rt.Path) +
			titleColStyle.Render(rt.Title) +
			mutedStyle.Render(portfolio.RouteFile(rt.Path)+"  "+portfolio.AbsoluteURL(baseURL, rt.Path)) + "\n")
	}
	return b.String()
}
