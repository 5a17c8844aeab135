// Package ui holds the terminal styles shared by the lifesync CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconCalendar = "📅"
	IconClock    = "🕗"
	IconChart    = "📊"
	IconFire     = "🔥"
	IconCrystal  = "🔮"
	IconBolt     = "⚡"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

const barWidth = 20

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RateText colours a completion percentage: green from 70, orange from 40.
func RateText(rate int) string {
	s := fmt.Sprintf("%3d%%", rate)
	switch {
	case rate >= 70:
		return Good.Render(s)
	case rate >= 40:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

// TrendText renders a signed percentage point difference.
func TrendText(delta int) string {
	switch {
	case delta > 0:
		return Good.Render(fmt.Sprintf("▲ %d", delta))
	case delta < 0:
		return Bad.Render(fmt.Sprintf("▼ %d", -delta))
	default:
		return Muted.Render("= 0")
	}
}

// Bar draws a fixed-width gauge for a value in [0,100].
func Bar(value int) string {
	value = min(max(value, 0), 100)
	filled := value * barWidth / 100
	return strings.Repeat("█", filled) + Muted.Render(strings.Repeat("░", barWidth-filled))
}

// Score renders a score in the hex colour of its level.
func Score(score int, hexColor string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor)).Render(fmt.Sprintf("%3d", score))
}
