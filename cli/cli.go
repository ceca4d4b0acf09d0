// Package cli implements the interactive shell over the ordered index.
// It reads one command per line, dispatches to the tree, and re-prompts
// after every command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bptree/bptree"

	"github.com/fatih/color"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *bptree.Tree[string]
	visualizer *bptree.Visualizer[string]
	out        io.Writer
	done       bool
}

var (
	okColor   = color.New(color.FgGreen)
	missColor = color.New(color.FgRed)
)

func NewCli(s *bufio.Scanner, t *bptree.Tree[string], out io.Writer) *Cli {
	v := &bptree.Visualizer[string]{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v, out: out}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for !c.done && c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		if !c.done {
			c.printPrompt()
		}
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
Ordered Index CLI

Available Commands:
  INSERT <key>  Insert a key into the index
  SEARCH <key>  Check whether a key is present
  DELETE <key>  Remove one occurrence of a key
  SCAN          List all keys in ascending order
  SHOW          Display the tree level by level
  HELP          Print this message
  EXIT          Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command %q\n", command)
	case "insert":
		c.processInsertCommand(fields[1:])
	case "search":
		c.processSearchCommand(fields[1:])
	case "delete":
		c.processDeleteCommand(fields[1:])
	case "scan":
		c.processScanCommand()
	case "show":
		fmt.Fprint(c.out, c.visualizer.Visualize())
	case "help":
		c.printHelp()
	case "exit":
		// nothing to flush or save, the index is in-memory only
		c.done = true
	}
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>")
		return
	}
	c.tree.Insert(args[0])
	fmt.Fprintf(c.out, "%s %q (%d keys)\n", okColor.Sprint("Inserted"), args[0], c.tree.Len())
}

func (c *Cli) processSearchCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEARCH <key>")
		return
	}
	if !c.tree.Search(args[0]) {
		fmt.Fprintf(c.out, "%s %q\n", missColor.Sprint("Not found:"), args[0])
		return
	}
	fmt.Fprintf(c.out, "%s %q\n", okColor.Sprint("Found"), args[0])
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DELETE <key>")
		return
	}
	if !c.tree.Delete(args[0]) {
		fmt.Fprintf(c.out, "%s %q\n", missColor.Sprint("Not found:"), args[0])
		return
	}
	fmt.Fprintf(c.out, "%s %q (%d keys)\n", okColor.Sprint("Deleted"), args[0], c.tree.Len())
}

func (c *Cli) processScanCommand() {
	count := 0
	c.tree.Ascend(func(key string) bool {
		fmt.Fprintln(c.out, key)
		count++
		return true
	})
	fmt.Fprintf(c.out, "%d keys\n", count)
}
