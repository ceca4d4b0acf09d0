package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"bptree/bptree"
	"bptree/cli"
	"bptree/loader"

	"github.com/go-faker/faker/v4"
	"github.com/golang/glog"
)

var loadPath *string
var fanout *int
var shouldSeed *bool
var seedNumKeys *int

func seedIndexWithTestKeys(tree *bptree.Tree[string]) {
	for i := 0; i < *seedNumKeys; i++ {
		tree.Insert(faker.Word())
	}
}

func main() {
	setupFlags()

	tree := bptree.New[string](*fanout, strings.Compare)

	if *loadPath != "" {
		res, err := loader.Load(tree, *loadPath)
		if err != nil {
			// the index stays usable, just empty or partially loaded
			glog.Errorf("initial load failed: %v", err)
		} else {
			glog.Infof("initial load done: %d keys", res.KeysInserted)
		}
	}

	if *shouldSeed {
		seedIndexWithTestKeys(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	shell := cli.NewCli(scanner, tree, os.Stdout)
	shell.Start()
}

func setupFlags() {
	loadPath = flag.String("load", "", "Newline-delimited key file to load on startup (.sz/.snappy for compressed).")
	fanout = flag.Int("fanout", bptree.DefaultMaxKeys, "Maximum keys per tree node before a split.")
	shouldSeed = flag.Bool("seed", false, "Seed the index using keys created with go-faker.")
	seedNumKeys = flag.Int("records", 1000, "Amount of keys to seed the index with upon startup.")
	flag.Usage = func() {
		fmt.Println("\nOrdered Index CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
