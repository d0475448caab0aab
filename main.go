package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"btree/btree"
	"btree/cli"

	"github.com/go-faker/faker/v4"
)

var degree *int
var shouldSeed *bool
var seedNumRecords *int

func seedTreeWithTestRecords(t *btree.Tree[string, string]) {
	for i := 0; i < *seedNumRecords; i++ {
		k := faker.Word() + faker.Word()
		v := faker.Word()
		t.Insert(k, v)
	}
}

func main() {
	setupFlags()

	tree := btree.NewWithDegree[string, string](*degree)

	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", btree.DefaultDegree, "Minimum degree of the B-tree (at least 2).")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
