// Package main provides the normalize command for inspecting the
// normalization stage: raw launch CSV in, normalized records out.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"elevron/internal/dataset"
	"elevron/internal/models"
	"elevron/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to input CSV file")
	outputPath := flag.String("output", "", "Path to output file (.csv or .json)")
	format := flag.String("format", "csv", "Output format: csv or json")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalize -input <launches.csv> -output <normalized.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	table, err := dataset.Load(*inputPath)
	if err != nil {
		log.Fatalf("Error loading dataset: %v\n", err)
	}

	fmt.Printf("📂 Loaded: %s (%d rows, %d columns)\n", *inputPath, table.Len(), len(table.Headers))

	processor := normalizer.NewProcessor(normalizer.Options{
		MinYear:                      1957,
		MaxYear:                      time.Now().Year(),
		CountPartialFailureAsSuccess: true,
	})

	result, err := processor.Process(table)
	if err != nil {
		log.Fatalf("Error normalizing dataset: %v\n", err)
	}

	for _, warning := range result.Warnings {
		fmt.Printf("⚠️  %s\n", warning)
	}

	fmt.Printf("📊 Normalized %d records\n", len(result.Records))

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("Error creating directory: %v\n", err)
	}

	switch *format {
	case "json":
		data, err := json.MarshalIndent(result.Records, "", "  ")
		if err != nil {
			log.Fatalf("Error marshaling JSON: %v\n", err)
		}

		if err := os.WriteFile(*outputPath, data, 0644); err != nil {
			log.Fatalf("Error writing file: %v\n", err)
		}

	case "csv":
		if err := writeCSV(*outputPath, result.Records); err != nil {
			log.Fatalf("Error writing CSV: %v\n", err)
		}

	default:
		log.Fatalf("Unknown format: %s (want csv or json)\n", *format)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}

func writeCSV(path string, records []models.LaunchRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	rows := [][]string{{
		"organization", "org_type", "rocket_name", "launch_year",
		"status", "is_successful", "launch_cost", "country",
	}}

	for i := range records {
		rec := &records[i]

		year := ""
		if rec.HasYear() {
			year = strconv.Itoa(*rec.LaunchYear)
		}

		success := ""
		if rec.HasOutcome() {
			success = strconv.FormatBool(*rec.IsSuccessful)
		}

		cost := ""
		if rec.HasCost() {
			cost = strconv.FormatFloat(*rec.LaunchCost, 'f', 0, 64)
		}

		rows = append(rows, []string{
			rec.Organization,
			string(rec.OrgType),
			rec.RocketName,
			year,
			rec.StatusRaw,
			success,
			cost,
			rec.Country,
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}

	writer.Flush()

	return writer.Error()
}
