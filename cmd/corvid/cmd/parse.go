package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/diag"
	"github.com/corvid-lang/corvid/internal/parser"
)

var (
	dumpTree  bool
	watchFile bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Corvid source file",
	Long: `Parse a Corvid source file and report the first syntax error, if any.

With --dump the resulting AST is printed as an indented tree. With
--watch the file is re-parsed every time it changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&dumpTree, "dump", false, "print the parsed AST")
	parseCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "re-parse on file changes")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !watchFile {
		return parseFile(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	if err := parseFile(path); err != nil {
		fmt.Fprintln(os.Stderr, "waiting for changes...")
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "-- %s changed --\n", path)
			if err := parseFile(path); err != nil {
				continue
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// parseFile parses one module and prints either the outcome or a
// formatted diagnostic for the first error.
func parseFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	p := parser.New(string(src), parser.WithModule(path))
	file, err := p.ParseFile()
	if err != nil {
		reportParseError(err)
		return err
	}

	if dumpTree {
		ast.Fprint(os.Stdout, file)
	} else {
		fmt.Printf("%s: %d declarations\n", path, len(file.Decls))
	}
	return nil
}

func reportParseError(err error) {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		diag.NewFormatter().Format(pe.ToDiagnostic())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
