package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
)

var (
	listFlag  = flag.String("l", "", "The path to the list of raw MIDI captures,\nfind . -type f -name \"*.syx\" > midi_list.txt")
	maxFlag   = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

type result struct {
	name     string
	bytes    int64
	messages []midi.Message
	invalid  int
	err      error
}

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func printKindMap(m kindMap) {
	kinds := make([]string, 0, len(m))
	for kind := range m {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		channels := make([]int, 0, len(m[kind]))
		for ch := range m[kind] {
			channels = append(channels, ch)
		}
		sort.Ints(channels)

		for _, ch := range channels {
			if ch == 0 {
				fmt.Printf("%-22s -\t%d\n", kind, m[kind][ch])
			} else {
				fmt.Printf("%-22s %d\t%d\n", kind, ch, m[kind][ch])
			}
		}
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	if *debugFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	paths := readList(f)
	var m kindMap
	m, err = newKindMap(context.Background(), paths, *maxFlag)

	if err != nil {
		log.Fatal(err)
	}

	printKindMap(m)
}
