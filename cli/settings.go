package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/trackd/cereal/msg"
)

type SettingType int

const (
	Float SettingType = iota
	Bool
	Level
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	sendPlain
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType msg.TrackdInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(message tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if message.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput.SetValue("")
				m.textInput.Focus()
			case sendPlain:
				m.state = showSettingsMenu
				event, input := mm.pub.NewMessage(true)
				input.SetType(m.selectedItem.MessageType)
				if err := mm.pub.Send(event); err != nil {
					panic(err)
				}
			}
			return m, nil
		}
		if message.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
		if message.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu

			event, input := mm.pub.NewMessage(true)
			input.SetType(m.selectedItem.MessageType)

			result := m.textInput.Value()

			switch m.selectedItem.Type {
			case Bool:
				switch result {
				case "true":
					input.SetBool(true)
				case "false":
					input.SetBool(false)
				}
			case Level:
				input.SetLevel(parseLevel(result))
			case Float:
				val, err := strconv.ParseFloat(result, 64)
				if err != nil {
					return m, nil
				}
				input.SetFloat(val)
			}
			if err := mm.pub.Send(event); err != nil {
				panic(err)
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(message.Width-h, message.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(message)
		return m, cmd
	}
	m.list, cmd = m.list.Update(message)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to return)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func parseLevel(s string) msg.LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return msg.LogLevelDebug
	case "info":
		return msg.LogLevelInfo
	case "warn":
		return msg.LogLevelWarn
	default:
		return msg.LogLevelError
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Move Enabled",
			desc:        "When disabled trackd keeps tracking the plan but always commands zero velocity",
			MessageType: msg.TrackdInputType_setMove,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Max Velocity",
			desc:        "The highest linear speed in m/s that trackd will command",
			MessageType: msg.TrackdInputType_setMaxVel,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Min Velocity",
			desc:        "The lowest nonzero linear speed in m/s that trackd will command",
			MessageType: msg.TrackdInputType_setMinVel,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Min Turning Radius",
			desc:        "The tightest turn in meters the vehicle can physically make",
			MessageType: msg.TrackdInputType_setMinRadius,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Acceleration Limit",
			desc:        "The maximum change in commanded speed in m/s^2 between cycles",
			MessageType: msg.TrackdInputType_setAccLim,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Forward Point Distance",
			desc:        "How far ahead along the plan in meters the steering target sits",
			MessageType: msg.TrackdInputType_setForwardPointDistance,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "XY Goal Tolerance",
			desc:        "How close to the final waypoint in meters counts as arrived",
			MessageType: msg.TrackdInputType_setXYGoalTolerance,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Yaw Goal Tolerance",
			desc:        "How close to the final heading in radians counts as arrived",
			MessageType: msg.TrackdInputType_setYawGoalTolerance,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Heading Weight",
			desc:        "How many meters of position error one radian of heading error is worth when matching the plan",
			MessageType: msg.TrackdInputType_setHeadingWeight,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the trackd system",
			MessageType: msg.TrackdInputType_setLogLevel,
			Type:        Level,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discards unsaved changes and reloads the persisted settings",
			MessageType: msg.TrackdInputType_reloadSettings,
			state:       sendPlain,
		},
		settingsItem{
			title:       "Load Defaults",
			desc:        "Replaces the active settings with the defaults",
			MessageType: msg.TrackdInputType_loadDefaultSettings,
			state:       sendPlain,
		},
		settingsItem{
			title:       "Load Recommended",
			desc:        "Replaces the active settings with the recommended values",
			MessageType: msg.TrackdInputType_loadRecommendedSettings,
			state:       sendPlain,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: msg.TrackdInputType_saveSettings,
			state:       sendPlain,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Trackd Settings"
	return m
}
