package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	legacy := flag.Bool("legacy", false, "Generate timestamp-named notes to time the migration")
	keep := flag.Bool("keep", false, "Keep the benchmark notes after running")
	flag.Parse()

	if *count < 2 {
		fmt.Fprintln(os.Stderr, "count must be at least 2")
		os.Exit(1)
	}

	// 1. Setup Notes Root
	benchDir, err := os.MkdirTemp("", "quire_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	workspace := filepath.Join(benchDir, core.DefaultWorkspaceID)
	if err := os.MkdirAll(workspace, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating %d notes in %s...\n", *count, workspace)
	startGen := time.Now()

	// Keys are packed densely (1..count) so the first move has no gap and
	// renumbers everything.
	for i := 1; i <= *count; i++ {
		content := fmt.Sprintf("# Benchmark Note %d\nThis is a test note.\n", i)
		name := fmt.Sprintf("%d-benchmark-note-%d.md", i, i)
		if *legacy {
			name = fmt.Sprintf("%d.md", 1700000000000+int64(i))
		}
		if err := os.WriteFile(filepath.Join(workspace, name), []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// 2. Initialize Service (runs the migration when -legacy is set)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	startInit := time.Now()
	service, err := quire.New(
		quire.WithNotesRoot(benchDir),
		quire.WithConfigPath(filepath.Join(benchDir, "workspaces.json")),
		quire.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}
	initDuration := time.Since(startInit)

	ctx := context.TODO()

	fmt.Println("Running List...")
	startList := time.Now()
	list, err := service.ListNotes(ctx)
	if err != nil {
		panic(err)
	}
	listDuration := time.Since(startList)
	fmt.Printf("List Result: %v (Items: %d)\n", listDuration, len(list))

	// 3. Move the bottom note to the top: dense pass
	fmt.Println("Running Reorder (dense)...")
	bottom := list[len(list)-1].Path
	startDense := time.Now()
	top, err := service.ReorderNote(ctx, bottom, 0)
	if err != nil {
		panic(err)
	}
	denseDuration := time.Since(startDense)

	// 4. Move it back to the middle
	fmt.Println("Running Reorder (second move)...")
	startSecond := time.Now()
	if _, err := service.ReorderNote(ctx, top, len(list)/2); err != nil {
		panic(err)
	}
	secondDuration := time.Since(startSecond)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Init:          %v\n", initDuration)
	fmt.Printf("  List:          %v\n", listDuration)
	fmt.Printf("  Reorder dense: %v\n", denseDuration)
	fmt.Printf("  Reorder again: %v\n", secondDuration)
	fmt.Printf("--------------------------------------------------\n")
}
