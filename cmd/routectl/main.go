package main

import (
	"bufio"
	"campus-route-service/internal/adapters/matrix"
	"campus-route-service/internal/config"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/services"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kr/pretty"
)

// routectl answers a single route query from a local matrix file and
// prints the ranked routes.
func main() {
	var (
		matrixPath = flag.String("matrix", config.Get("MATRIX_PATH", "data/campus_matrix.csv"), "CSV or XLSX distance matrix")
		sheet      = flag.String("sheet", config.Get("XLSX_SHEET", ""), "XLSX sheet name (default first sheet)")
		tuningPath = flag.String("tuning", config.Get("TUNING_PATH", ""), "YAML tuning overrides")
		start      = flag.String("start", "", "start location")
		end        = flag.String("end", "", "end location")
		queryFile  = flag.String("query", "", "file holding the start and end locations on two lines")
		sortBy     = flag.String("sort", string(domain.SortByDistance), "distance, time, efficiency or composite")
		maxRoutes  = flag.Int("max", 5, "maximum routes to print")
		landmark   = flag.String("landmark", "", "route via a landmark such as atm or library")
		detour     = flag.Float64("detour", 1.0, "maximum landmark detour in km")
		noOpt      = flag.Bool("no-opt", false, "skip the synthesized and multi-path routes")
		validate   = flag.Bool("validate", false, "list suspicious edges and exit")
		debug      = flag.Bool("debug", false, "dump the raw results")
	)
	flag.Parse()

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	m, err := loadMatrix(*matrixPath, *sheet)
	if err != nil {
		log.Fatal(err)
	}

	opts := services.DefaultPlannerOptions()
	opts.Tuning = tuning
	opts.DisplaySuffix = config.Get("DISPLAY_SUFFIX", "")

	planner, err := services.NewPlanner(m, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *validate {
		printIssues(os.Stdout, services.SuspiciousEdges(planner.Graph(), tuning))
		return
	}

	if *queryFile != "" {
		*start, *end, err = readQuery(*queryFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *start == "" || *end == "" {
		log.Fatal("start and end are required (use -start/-end or -query)")
	}

	prefs := domain.RoutePreferences{
		SortBy:           domain.SortCriterion(*sortBy),
		MaxRoutes:        *maxRoutes,
		Landmark:         *landmark,
		MaxDetour:        *detour,
		UseOptimizations: !*noOpt,
	}

	results, err := planner.FindBestRoutes(context.Background(), *start, *end, prefs)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLocation) {
			log.Fatalf("location not found: %v", err)
		}
		log.Fatal(err)
	}

	if *debug {
		pretty.Println(results)
	}
	printResults(os.Stdout, results)
}

func loadMatrix(path, sheet string) (*domain.DistanceMatrix, error) {
	ctx := context.Background()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return matrix.NewXLSXMatrixSource(path, sheet).LoadMatrix(ctx)
	}
	return matrix.NewCSVMatrixSource(path).LoadMatrix(ctx)
}

// readQuery takes the first two non-blank lines as start and end.
func readQuery(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("read query: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(lines) < 2 {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return "", "", fmt.Errorf("read query: %w", err)
	}
	if len(lines) < 2 {
		return "", "", fmt.Errorf("read query %q: need start and end on separate lines", path)
	}
	return lines[0], lines[1], nil
}

func printResults(w io.Writer, res domain.RouteResults) {
	if len(res.Routes) == 0 {
		fmt.Fprintln(w, "No routes found.")
		return
	}

	fmt.Fprintf(w, "Found %d distinct routes, showing %d\n\n", res.TotalFound, len(res.Routes))
	for i, r := range res.Routes {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Algorithm)
		fmt.Fprintf(w, "   %s\n", r.Path())
		fmt.Fprintf(w, "   %.2f km, %.1f min\n", r.Distance, r.Minutes)
	}

	fmt.Fprintln(w)
	for _, alg := range slices.Sorted(maps.Keys(res.Summary)) {
		fmt.Fprintf(w, "%s: %d\n", alg, res.Summary[alg])
	}
}

func printIssues(w io.Writer, issues []services.EdgeIssue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No suspicious edges.")
		return
	}
	for _, is := range issues {
		fmt.Fprintf(w, "%s -> %s: %.2f km, %.1f min (%s)\n", is.From, is.To, is.Distance, is.Minutes, is.Reason)
	}
}
