package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/structdiff/xmldiff"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[xmldiff.ChangeKind]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[xmldiff.ChangeKind]func(string, ...any) string{
			xmldiff.Inserted: color.GreenString,
			xmldiff.Deleted:  color.RedString,
			xmldiff.Modified: color.YellowString,
			xmldiff.Moved:    color.CyanString,
		},
	}
}

func colorDefault(s string, args ...any) string {
	return fmt.Sprintf(s, args...)
}

func (c *Colors) sprintf(k xmldiff.ChangeKind) func(string, ...any) string {
	if f, ok := c.Map[k]; ok {
		return f
	}
	return c.Default
}
