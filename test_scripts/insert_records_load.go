package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// Student represents the fields of a record to insert
type Student struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Grade string `json:"grade"`
	Major string `json:"major"`
}

var majors = []string{"Computer Science", "Mathematics", "Physics", "Chemistry", "Biology", "History"}

// generateRandomName generates a random 6-letter name
func generateRandomName() string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	name := make([]byte, 6)
	for i := range name {
		name[i] = letters[rand.Intn(len(letters))]
	}
	// Capitalize first letter
	name[0] = name[0] - 32
	return string(name)
}

func randomStudent() Student {
	return Student{
		Name:  generateRandomName(),
		Age:   domain.MinStudentAge + rand.Intn(domain.MaxStudentAge-domain.MinStudentAge+1),
		Grade: domain.Grades[rand.Intn(len(domain.Grades))],
		Major: majors[rand.Intn(len(majors))],
	}
}

// insertStudent sends a POST request to insert a student record
func insertStudent(baseURL string, student Student) error {
	body, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("failed to marshal student: %w", err)
	}

	resp, err := http.Post(baseURL+"/records", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run test_scripts/insert_records_load.go <number_of_records> [server_url]")
		fmt.Println("Example: go run test_scripts/insert_records_load.go 1000 http://localhost:8080")
		os.Exit(1)
	}

	numRecords, err := strconv.Atoi(os.Args[1])
	if err != nil || numRecords <= 0 {
		fmt.Printf("Error: Invalid number of records '%s'. Please provide a positive integer.\n", os.Args[1])
		os.Exit(1)
	}

	serverURL := "http://localhost:8080"
	if len(os.Args) >= 3 {
		serverURL = os.Args[2]
	}

	fmt.Printf("Starting load test: inserting %d records to %s\n", numRecords, serverURL)

	startTime := time.Now()
	successCount := 0
	errorCount := 0

	// Progress reporting
	reportInterval := max(1, numRecords/10)

	for i := 0; i < numRecords; i++ {
		student := randomStudent()
		if err := insertStudent(serverURL, student); err != nil {
			errorCount++
			fmt.Printf("Error inserting record %d (%s): %v\n", i+1, student.Name, err)
		} else {
			successCount++
		}

		if (i+1)%reportInterval == 0 || i == numRecords-1 {
			elapsed := time.Since(startTime)
			rate := float64(i+1) / elapsed.Seconds()
			fmt.Printf("Progress: %d/%d records (%.1f%%) - Rate: %.1f records/sec - Success: %d, Errors: %d\n",
				i+1, numRecords, float64(i+1)/float64(numRecords)*100, rate, successCount, errorCount)
		}
	}

	totalTime := time.Since(startTime)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("LOAD TEST COMPLETE")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total records attempted: %d\n", numRecords)
	fmt.Printf("Successful inserts:      %d\n", successCount)
	fmt.Printf("Failed inserts:          %d\n", errorCount)
	fmt.Printf("Total time:              %v\n", totalTime)
	fmt.Printf("Average rate:            %.2f records/sec\n", float64(numRecords)/totalTime.Seconds())

	if errorCount > 0 {
		os.Exit(1)
	}
}
