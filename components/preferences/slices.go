package preferences

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Defaults for the visual slices.
const (
	DefaultThemeColor      = "radial-gradient( circle 897px at 9% 80.3%,  rgba(55,60,245,1) 0%, rgba(234,161,15,0.90) 100.2% )"
	DefaultBackgroundImage = "wave.png"
	DefaultFontSize        = "text-sm"
	DefaultBoardView       = "Kanban"
)

// Theme holds the shell colour.
type Theme struct {
	Color string `yaml:"color"`
}

// SetColor replaces the colour.
func (t *Theme) SetColor(color string) { t.Color = color }

// Background holds the shell background image.
type Background struct {
	Image string `yaml:"image"`
}

// SetImage replaces the image.
func (b *Background) SetImage(image string) { b.Image = image }

// Font holds the base text size class.
type Font struct {
	Size string `yaml:"size"`
}

// SetSize replaces the size.
func (f *Font) SetSize(size string) { f.Size = size }

// Groups holds user-defined groups and their subgroups.
type Groups struct {
	Names     []string            `yaml:"names"`
	SubGroups map[string][]string `yaml:"sub_groups"`
}

// AddGroup appends a group name.
func (g *Groups) AddGroup(name string) {
	g.Names = append(g.Names, name)
}

// AddSubGroup appends sub to group, creating the bucket on demand.
func (g *Groups) AddSubGroup(group, sub string) {
	if g.SubGroups == nil {
		g.SubGroups = map[string][]string{}
	}
	g.SubGroups[group] = append(g.SubGroups[group], sub)
}

// EmailOption is a selectable board assignee.
type EmailOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// BoardPayload is the response consumed by Board.FetchSuccess. Board
// carries an assign_to list of {user_id, email} objects.
type BoardPayload struct {
	Board     map[string]any `json:"board"`
	Data      any            `json:"data"`
	BoardView string         `json:"board_view"`
}

// Board tracks the project board fetch cycle and the active view.
type Board struct {
	Data          map[string]any `yaml:"-"`
	TaskData      any            `yaml:"-"`
	Loading       bool           `yaml:"-"`
	Error         string         `yaml:"-"`
	ActiveView    string         `yaml:"active_view"`
	SelectedEmail []EmailOption  `yaml:"selected_email"`
}

// FetchStart marks the board as loading and clears the previous error.
func (b *Board) FetchStart() {
	b.Loading = true
	b.Error = ""
}

// FetchSuccess stores the fetched board. The active view falls back to
// Kanban and the assignee list becomes the selectable emails.
func (b *Board) FetchSuccess(p BoardPayload) {
	b.Data = p.Board
	b.TaskData = p.Data
	b.ActiveView = p.BoardView
	if b.ActiveView == "" {
		b.ActiveView = DefaultBoardView
	}
	b.SelectedEmail = assignees(p.Board["assign_to"])
	b.Loading = false
}

// FetchFailure stops loading and records msg.
func (b *Board) FetchFailure(msg string) {
	b.Loading = false
	b.Error = msg
}

// UpdateActiveView switches the board view.
func (b *Board) UpdateActiveView(view string) { b.ActiveView = view }

func assignees(raw any) []EmailOption {
	list, _ := raw.([]any)
	out := make([]EmailOption, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, EmailOption{Value: text(obj["user_id"]), Label: text(obj["email"])})
	}
	return out
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Added is a single boolean toggle.
type Added struct {
	Value bool `yaml:"value"`
}

func (a *Added) SetTrue()  { a.Value = true }
func (a *Added) SetFalse() { a.Value = false }
func (a *Added) Toggle()   { a.Value = !a.Value }

// FileItem is one entry of the file explorer.
type FileItem struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// FileExplorer is an append-only list of folders and files.
type FileExplorer struct {
	Items []FileItem `yaml:"items"`
}

// AddFolder appends a folder entry.
func (f *FileExplorer) AddFolder(name, path string) FileItem {
	return f.add("folder", name, path)
}

// AddFile appends a file entry.
func (f *FileExplorer) AddFile(name, path string) FileItem {
	return f.add("file", name, path)
}

func (f *FileExplorer) add(kind, name, path string) FileItem {
	item := FileItem{ID: uuid.NewString(), Type: kind, Name: name, Path: path}
	f.Items = append(f.Items, item)
	return item
}

// Preferences bundles every slice. Slices never reach into each other.
type Preferences struct {
	Theme        Theme        `yaml:"theme"`
	Background   Background   `yaml:"background"`
	Font         Font         `yaml:"font"`
	Groups       Groups       `yaml:"groups"`
	Board        Board        `yaml:"board"`
	Added        Added        `yaml:"added"`
	FileExplorer FileExplorer `yaml:"file_explorer"`
}

// Defaults returns the initial state of every slice.
func Defaults() Preferences {
	return Preferences{
		Theme:      Theme{Color: DefaultThemeColor},
		Background: Background{Image: DefaultBackgroundImage},
		Font:       Font{Size: DefaultFontSize},
		Groups:     Groups{Names: []string{}, SubGroups: map[string][]string{}},
		Board:      Board{ActiveView: DefaultBoardView, SelectedEmail: []EmailOption{}},
	}
}

func (p Preferences) clone() Preferences {
	out := p
	out.Groups.Names = append([]string(nil), p.Groups.Names...)
	out.Groups.SubGroups = make(map[string][]string, len(p.Groups.SubGroups))
	for k, v := range p.Groups.SubGroups {
		out.Groups.SubGroups[k] = append([]string(nil), v...)
	}
	out.Board.SelectedEmail = append([]EmailOption(nil), p.Board.SelectedEmail...)
	if p.Board.Data != nil {
		out.Board.Data = make(map[string]any, len(p.Board.Data))
		for k, v := range p.Board.Data {
			out.Board.Data[k] = v
		}
	}
	out.FileExplorer.Items = append([]FileItem(nil), p.FileExplorer.Items...)
	return out
}

// fillDefaults restores blank scalar fields after a partial file load.
func (p *Preferences) fillDefaults() {
	d := Defaults()
	if p.Theme.Color == "" {
		p.Theme = d.Theme
	}
	if p.Background.Image == "" {
		p.Background = d.Background
	}
	if p.Font.Size == "" {
		p.Font = d.Font
	}
	if p.Board.ActiveView == "" {
		p.Board.ActiveView = DefaultBoardView
	}
	if p.Groups.SubGroups == nil {
		p.Groups.SubGroups = map[string][]string{}
	}
}
