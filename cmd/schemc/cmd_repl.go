package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"goschem/pkg/circuit"
	"goschem/pkg/compiler"
	"goschem/pkg/layout"
)

const (
	historyFile = ".schemc_history"
	promptMain  = "bs> "
	promptCont  = "... "
	replBanner  = "schemc repl. Ctrl+D to exit, :help for commands."
	replHelp    = `
repl commands:
  :help                   Show this help
  :quit / :exit           Exit the repl
  :levers a=true,b=false  Set lever levels for later evaluations
  :levers                 Show the current lever settings
  :last                   Print the full report for the last program
`
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile programs interactively and watch their outputs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLayout()
		if err != nil {
			return err
		}
		runREPL(cfg)
		return nil
	},
}

// replSession carries the state that survives across submitted
// programs: lever settings by name and the last rendered report.
type replSession struct {
	cfg        layout.Config
	leverNames map[string]bool
	lastReport string
}

func runREPL(cfg layout.Config) {
	fmt.Println(replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := &replSession{cfg: cfg, leverNames: map[string]bool{}}

	for {
		code, ok := readProgram(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if done := s.command(trimmed); done {
				return
			}
			continue
		}

		if s.run(code) {
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		}
	}
}

// run compiles one submitted program from scratch, prints the observed
// outputs under the session's lever settings, and keeps the full report
// for :last.
func (s *replSession) run(code string) bool {
	circ, err := compiler.Compile(code)
	if err != nil {
		fmt.Println(err)
		return false
	}
	g, err := layout.Arrange(circ, s.cfg)
	if err != nil {
		fmt.Println(err)
		return false
	}

	levers, err := circuit.LeversByName(circ, s.leverNames)
	if err != nil {
		fmt.Println(styleDim.Render(err.Error()))
	}

	_, outs := circuit.Evaluate(circ, levers)
	for i, out := range circ.Outputs {
		level := styleOff.Render("false")
		if outs[i] {
			level = styleOn.Render("true")
		}
		fmt.Printf("%s = %s\n", out, level)
	}
	fmt.Println(styleDim.Render(fmt.Sprintf("%d nodes across %d layers", len(circ.Nodes), g.LayerCount())))

	s.lastReport = renderReport(circ, g, levers)
	return true
}

// command handles one :-prefixed repl command and reports whether the
// repl should exit.
func (s *replSession) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Print(replHelp)

	case ":quit", ":exit":
		return true

	case ":levers":
		if len(fields) < 2 {
			fmt.Println(formatLevers(s.leverNames))
			return false
		}
		set, err := parseLevers(strings.Join(fields[1:], ""))
		if err != nil {
			fmt.Println(err)
			return false
		}
		for name, level := range set {
			s.leverNames[name] = level
		}
		fmt.Println(formatLevers(s.leverNames))

	case ":last":
		if s.lastReport == "" {
			fmt.Println("no program compiled yet")
			return false
		}
		fmt.Print(s.lastReport)

	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}

// readProgram reads one or more lines until the source parses as a
// complete program. A parse error at end of input means the program
// continues on the next prompt; any other outcome submits the buffer as
// is, so real errors surface once, from the compiler.
func readProgram(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the current input and starts over.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		tokens, err := compiler.Lex(src)
		if err != nil {
			return src, true
		}
		if _, err := compiler.Parse(tokens, src); compiler.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// parseLevers parses comma-separated name=bool settings, the argument
// form of :levers.
func parseLevers(arg string) (map[string]bool, error) {
	set := map[string]bool{}
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, found := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("bad lever setting %q; want name=true or name=false", part)
		}
		switch strings.TrimSpace(value) {
		case "true", "on", "1":
			set[name] = true
		case "false", "off", "0":
			set[name] = false
		default:
			return nil, fmt.Errorf("bad lever level %q for %s; want true or false", value, name)
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no lever settings given; want :levers name=true,name=false")
	}
	return set, nil
}

// formatLevers renders the lever settings sorted by name.
func formatLevers(levers map[string]bool) string {
	if len(levers) == 0 {
		return "no levers set; all default to false"
	}
	names := make([]string, 0, len(levers))
	for name := range levers {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, levers[name])
	}
	return "levers: " + strings.Join(parts, " ")
}
