package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share one *Command; print each once under its first name
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		names[cmd] = append(names[cmd], name)
	}
	type entry struct {
		names []string
		cmd   *Command
	}
	var entries []entry
	for cmd, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{ns, cmd})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		line := indent + strings.Join(e.names, ", ")
		if e.cmd.Description != "" {
			line += "\t" + e.cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(e.cmd.Subs) > 0 {
			printCommands(w, e.cmd.Subs, depth+1)
		}
	}
}
