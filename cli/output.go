package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/trackd/cereal/msg"
)

type outputModel struct {
	output msg.TrackdOut
	valid  bool
}

func (m outputModel) Update(message tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return ""
	}
	return docStyle.Render(fmt.Sprintf(
		"linear velocity: %f\nangular velocity: %f\ncurvature: %f\ncursor: %d\nplan length: %d\ngoal reached: %t",
		m.output.Linear(),
		m.output.Angular(),
		m.output.Curvature(),
		m.output.Cursor(),
		m.output.PlanLength(),
		m.output.GoalReached(),
	) + "\n")
}
