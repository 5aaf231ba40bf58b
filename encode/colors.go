package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/keygrove/keygrove/token"
)

type Colorable struct {
	Type token.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range token.Types() {
		able := Colorable{
			Type: t,
			Attr: HeaderColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = token.TString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = token.TInt
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = token.TFloat
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = token.TBool
	colors.Map[able] = color.CyanString

	able.Type = token.TDateTime
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Type = token.TOpaque
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t token.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t token.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
