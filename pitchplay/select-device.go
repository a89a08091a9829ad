package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// selectDeviceModel lets the user pick one of several MIDI inputs. It is
// only shown when more than one input exists and none was configured.
type selectDeviceModel struct {
	menuList list.Model
	selected string
	done     bool
}

type deviceItem string

func (d deviceItem) Title() string       { return string(d) }
func (d deviceItem) Description() string { return "" }
func (d deviceItem) FilterValue() string { return string(d) }

func initialSelectDeviceModel(names []string) selectDeviceModel {
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = deviceItem(name)
	}

	menuList := list.New(items, createListDd(), 56, len(names)+6)
	menuList.Title = "Choose your MIDI keyboard"
	menuList.SetShowStatusBar(false)
	menuList.SetFilteringEnabled(false)
	menuList.SetShowHelp(true)
	menuList.DisableQuitKeybindings()
	styleList(&menuList)
	setupKeymapForList(&menuList)

	return selectDeviceModel{menuList: menuList}
}

func (m selectDeviceModel) Init() tea.Cmd {
	return nil
}

func (m selectDeviceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if item, ok := m.menuList.SelectedItem().(deviceItem); ok {
				m.selected = string(item)
			}
			m.done = true
			return m, nil
		case "esc":
			// continue without a keyboard, space still skips notes
			m.selected = ""
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menuList, cmd = m.menuList.Update(msg)
	return m, cmd
}

func (m selectDeviceModel) View() string {
	return deviceListStyle.Render(m.menuList.View()) + "\n" +
		grayTextStyle.Render("enter: use keyboard • esc: continue without one")
}
