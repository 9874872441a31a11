package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"optres/cmd/optres/option"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell [preset]",
	Short: "Resolve a preset step by step in an interactive shell",
	Long: "Start a shell bound to one resolution of the preset. Bids are made one\n" +
		"at a time with `set`, and `finish` fills in the defaults. A failed bid\n" +
		"poisons the resolution until `reset`. Type `help` for the commands.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: presetCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveTarget(args)
		if err != nil {
			return err
		}
		sh, err := newShell(p, resolutionOpts()...)
		if err != nil {
			return err
		}
		defer sh.close()
		return sh.run(cmd.OutOrStdout())
	},
}

func init() {
	addSpecFlag(shellCmd)
}

// shellCommands maps each shell command to its usage line.
var shellCommands = map[string]string{
	"set":    "set NAME VALUE   bid VALUE for parameter NAME",
	"finish": "finish           fill every remaining parameter with its default",
	"get":    "get KEY          print the resolved value keyed by KEY",
	"ranges": "ranges KEY       list the values declared for KEY",
	"show":   "show             print every parameter",
	"reset":  "reset            discard all bids and start over",
	"help":   "help             print this list",
	"quit":   "quit             leave the shell",
}

// shell holds one resolution and dispatches command lines against it.
type shell struct {
	preset   option.Preset
	opts     []option.Opt
	res      *option.Resolution
	finished bool
}

func newShell(p option.Preset, opts ...option.Opt) (*shell, error) {
	s := &shell{preset: p, opts: opts}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shell) reset() error {
	s.close()
	r, err := option.New(s.preset.Guide, s.preset.Spec, s.opts...)
	if err != nil {
		return err
	}
	s.res = r
	s.finished = false
	return nil
}

func (s *shell) close() {
	if s.res != nil {
		s.res.Close()
		s.res = nil
	}
}

// run reads lines until quit, EOF or interrupt.
func (s *shell) run(w io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.preset.Name + "> ",
		HistoryFile:     historyFile(),
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintf(w, "%s  %s\ntype `help` for commands\n", s.preset.Name, s.preset.Spec)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.exec(w, line) {
			return nil
		}
	}
}

// historyFile keeps shell history next to the config files. An empty
// path disables history.
func historyFile() string {
	dir, err := resolveConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

func (s *shell) completer() *readline.PrefixCompleter {
	var names, chars []readline.PrefixCompleterInterface
	for _, e := range s.preset.Guide.Params() {
		if !option.Contains(s.preset.Spec, string(e.Char)) {
			continue
		}
		names = append(names, readline.PcItem(e.Name))
		chars = append(chars, readline.PcItem(string(e.Char)))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("set", names...),
		readline.PcItem("finish"),
		readline.PcItem("get", chars...),
		readline.PcItem("ranges", chars...),
		readline.PcItem("show"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// exec runs one command line and reports whether the shell should exit.
// Errors are printed, never returned: the shell keeps running.
func (s *shell) exec(w io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.help(w)
	case "set":
		err = s.set(w, line)
	case "finish":
		err = s.finish(w)
	case "get":
		err = s.get(w, args)
	case "ranges":
		err = s.ranges(w, args)
	case "show":
		err = s.show(w)
	case "reset":
		if err = s.reset(); err == nil {
			fmt.Fprintln(w, "reset")
		}
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}
	if err != nil {
		fmt.Fprintln(w, "error:", err)
	}
	return false
}

func (s *shell) help(w io.Writer) {
	names := make([]string, 0, len(shellCommands))
	for name := range shellCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, "  "+shellCommands[name])
	}
}

// set takes the value verbatim from the line so that string values may
// contain spaces. A missing value is a usage error, not an empty bid.
func (s *shell) set(w io.Writer, line string) error {
	fields := splitFields(line, 3)
	if len(fields) < 3 {
		return fmt.Errorf("usage: %s", shellCommands["set"])
	}
	name, value := fields[1], fields[2]

	if err := s.res.AddParam(name, value); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", name, value)
	return nil
}

// splitFields splits line into at most n fields separated by whitespace.
// The last field keeps its inner whitespace.
func splitFields(line string, n int) []string {
	var out []string
	rest := strings.TrimSpace(line)
	for rest != "" && len(out) < n-1 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}

func (s *shell) finish(w io.Writer) error {
	if err := s.res.Finish(); err != nil {
		return err
	}
	s.finished = true
	fmt.Fprintln(w, option.ErrorString(option.Success))
	return nil
}

func (s *shell) get(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", shellCommands["get"])
	}
	c, err := parseChar(args[0])
	if err != nil {
		return err
	}
	if !s.finished {
		return fmt.Errorf("run finish first")
	}
	e, ok := option.FindOption(s.preset.Guide, c)
	if !ok {
		return option.ErrParamNotFound
	}
	if e.Kind == option.KindString {
		v, ok := s.res.LookupString(c)
		if !ok {
			return option.ErrParamNotFound
		}
		fmt.Fprintln(w, v)
		return nil
	}
	v := s.res.LookupInt(c)
	if v == -1 {
		return option.ErrParamNotFound
	}
	fmt.Fprintln(w, v)
	return nil
}

func (s *shell) ranges(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", shellCommands["ranges"])
	}
	c, err := parseChar(args[0])
	if err != nil {
		return err
	}
	return printRanges(w, s.preset, c)
}

// show prints every parameter; unresolved ones are shown as "-".
func (s *shell) show(w io.Writer) error {
	if err := s.res.Err(); err != nil {
		return fmt.Errorf("%w (use reset)", err)
	}
	for _, p := range s.res.Params() {
		v := "-"
		if p.Specified {
			v = p.Text(s.preset.Guide)
		}
		fmt.Fprintf(w, "%c  %-14s %s\n", p.Entry.Char, p.Entry.Name, v)
	}
	return nil
}
