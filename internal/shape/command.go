package shape

import "strings"

// Command is a verbatim TikZ statement such as "\tikzset{...}" or
// "\foreach \x in {1,...,4} {...}". It has no geometry and ignores
// transforms.
type Command struct {
	Statement string
}

// NewCommand returns a raw statement. A trailing semicolon is added when
// missing.
func NewCommand(statement string) *Command {
	return &Command{Statement: statement}
}

func (c *Command) Code() string {
	s := strings.TrimSpace(c.Statement)
	if s == "" || strings.HasSuffix(s, ";") || strings.HasSuffix(s, "}") {
		return s
	}
	return s + ";"
}
