package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-granular/instrument"
	"github.com/cwbudde/algo-granular/instrument/param"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	nameStyle  = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderParams(inst *instrument.Instrument) string {
	info := instrument.PluginInfo()
	lines := []string{titleStyle.Render(fmt.Sprintf("%s #%d", info.Name, info.UniqueID))}
	for _, id := range param.All() {
		value := inst.Display(id)
		if label := id.Info().Label; label != "" {
			value += " " + label
		}
		lines = append(lines, nameStyle.Render(id.String())+valueStyle.Render(value))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderStatus(inst *instrument.Instrument, frames int) string {
	st := inst.Status()
	line := fmt.Sprintf("%s  %d source frames  %d rendered", st.Name, st.Frames, frames)
	if st.Err != nil {
		line += "  " + errStyle.Render(st.Err.Error())
	}
	return renderParams(inst) + "\n" + line
}
