package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"btree/btree"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *btree.Tree[string, string]
	visualizer *btree.Visualizer[string, string]
}

func NewCli(s *bufio.Scanner, t *btree.Tree[string, string]) *Cli {
	v := &btree.Visualizer[string, string]{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Print(`
B-Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the B-Tree
  UPD <key> <val> Overwrite the value of an existing key
  GET <key>       Retrieve the value for key from the B-Tree
  DEL <key>       Remove a key-value pair from the B-Tree
  DUMP            Print an in-order dump with entry count and height
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "upd":
		c.processUpdateCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "dump":
		fmt.Println(c.tree)
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	c.tree.Insert(args[0], args[1])
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processUpdateCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: UPD <key> <value>")
		return
	}
	if _, ok := c.tree.Get(args[0]); !ok {
		fmt.Println("Key not found.")
		return
	}
	c.tree.Update(args[0], args[1])
	fmt.Println(c.tree)
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	val, ok := c.tree.Delete(args[0])

	if !ok {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(val)
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	val, ok := c.tree.Get(args[0])

	if !ok {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(val)
}
