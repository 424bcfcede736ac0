package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/parser"
)

const (
	replModule  = "<repl>"
	historyFile = ".corvid_history"
	promptMain  = "corvid> "
	promptCont  = "   ...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parser session",
	Long: `Read statements interactively and print their AST.

A line ending in ':' or '=' opens a block; continuation lines are
collected until an empty line. Type :quit to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Println("corvid repl; :quit to exit")

	for {
		src, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(trimmed); quit {
				break
			}
			continue
		}

		evalLine(src)
		ln.AppendHistory(strings.ReplaceAll(strings.TrimRight(src, "\n"), "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// readStatement reads one statement, collecting continuation lines
// when the first line opens a block with ':' or '='. An empty line
// closes the block.
func readStatement(ln *liner.State) (string, bool) {
	first, err := ln.Prompt(promptMain)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true // drop the aborted line, keep the session
		}
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(first)
	sb.WriteString("\n")

	if t := strings.TrimSpace(first); !strings.HasSuffix(t, ":") && !strings.HasSuffix(t, "=") {
		return sb.String(), true
	}

	for {
		line, err := ln.Prompt(promptCont)
		if err != nil {
			return sb.String(), true
		}
		if strings.TrimSpace(line) == "" {
			return sb.String(), true
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func replCommand(line string) (quit bool) {
	switch line {
	case ":quit", ":exit", ":q":
		return true
	case ":help":
		fmt.Println("enter a statement or declaration; :quit exits")
	default:
		fmt.Println("unknown command; :help for help")
	}
	return false
}

// evalLine parses the input as a declaration when it starts with a
// declaration keyword, and as a single statement otherwise, then
// prints the tree.
func evalLine(src string) {
	head := strings.Fields(src)[0]

	var (
		tree ast.Node
		err  error
	)
	p := parser.New(src, parser.WithModule(replModule))
	switch head {
	case "type", "fn", "import":
		tree, err = p.ParseFile()
	default:
		tree, err = p.ParseStmt()
	}
	if err != nil {
		f := diag.NewFormatterTo(os.Stderr)
		f.AddSource(replModule, src)
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			f.Format(pe.ToDiagnostic())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	ast.Fprint(os.Stdout, tree)
}
