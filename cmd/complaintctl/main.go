// complaintctl inspects the complaint data set from a terminal: listing
// and filtering complaints, showing one complaint with its comments,
// printing dashboard analytics and the staff directory, and probing a
// running server's health endpoint.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/models"
	"github.com/civiclink/backend/internal/services"
	"github.com/civiclink/backend/internal/store"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type options struct {
	seedFile   string
	output     string
	category   string
	status     string
	priority   string
	department string
	search     string
	timeout    time.Duration
}

func run(args []string, stdout io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("complaintctl", pflag.ContinueOnError)
	flagSet.SetOutput(stdout)
	flagSet.StringVar(&opts.seedFile, "seed", "", "JSON seed file (default: built-in demo data)")
	flagSet.StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json or yaml")
	flagSet.StringVar(&opts.category, "category", models.FilterAll, "filter by category")
	flagSet.StringVar(&opts.status, "status", models.FilterAll, "filter by status")
	flagSet.StringVar(&opts.priority, "priority", models.FilterAll, "filter by priority")
	flagSet.StringVar(&opts.department, "department", models.FilterAll, "filter by assigned department")
	flagSet.StringVarP(&opts.search, "search", "s", "", "case-insensitive text search")
	flagSet.DurationVar(&opts.timeout, "timeout", 10*time.Second, "health probe timeout")
	flagSet.Usage = func() { printHelp(stdout, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	switch opts.output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", errUsage, opts.output)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stdout, flagSet)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	logger.Initialize(logger.Options{Level: "ERROR"})

	if rest[0] == "health" {
		url := "http://localhost:8080/health"
		if len(rest) > 1 {
			url = rest[1]
		}
		return runHealth(stdout, url, opts)
	}

	service, err := openService(opts.seedFile)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "list":
		criteria := services.ParseCriteria(opts.category, opts.status, opts.priority, opts.department, opts.search)
		return writeComplaints(stdout, opts.output, service.GetComplaints(criteria))
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("%w: show requires a complaint id", errUsage)
		}
		id, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("%w: invalid complaint id %q", errUsage, rest[1])
		}
		complaint, err := service.GetComplaint(id)
		if err != nil {
			return err
		}
		return writeComplaint(stdout, opts.output, complaint)
	case "stats":
		criteria := services.ParseCriteria(opts.category, opts.status, opts.priority, opts.department, opts.search)
		return writeReport(stdout, opts.output, service.GetAnalytics(criteria))
	case "users":
		return writeUsers(stdout, opts.output, service.GetUsers())
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

func openService(seedFile string) (*services.ComplaintService, error) {
	seed, err := store.ResolveSeed(seedFile)
	if err != nil {
		return nil, err
	}
	st, err := store.NewSeeded(seed)
	if err != nil {
		return nil, err
	}
	return services.NewComplaintService(st, nil), nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `complaintctl inspects municipal complaint data.

Usage:
  complaintctl [flags] list
  complaintctl [flags] show <id>
  complaintctl [flags] stats
  complaintctl [flags] users
  complaintctl [flags] health [url]

Flags:
%s`, flagSet.FlagUsages())
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unknown output format %q", errUsage, format)
}

func writeComplaints(w io.Writer, format string, complaints []models.Complaint) error {
	if format != outputTable {
		return encode(w, format, complaints)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tCATEGORY\tDEPARTMENT\tTITLE")
	for _, c := range complaints {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Status, c.Priority, c.Category, c.DepartmentLabel(), c.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d complaint(s)\n", len(complaints))
	return err
}

func writeComplaint(w io.Writer, format string, c models.Complaint) error {
	if format != outputTable {
		return encode(w, format, c)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", c.Title)
	fmt.Fprintf(tw, "Status:\t%s\n", c.Status)
	fmt.Fprintf(tw, "Priority:\t%s\n", c.Priority)
	fmt.Fprintf(tw, "Category:\t%s\n", c.Category)
	fmt.Fprintf(tw, "Department:\t%s\n", c.DepartmentLabel())
	fmt.Fprintf(tw, "Address:\t%s\n", c.Location.Address)
	fmt.Fprintf(tw, "Reported by:\t%s\n", c.ReportedBy)
	fmt.Fprintf(tw, "Created:\t%s\n", c.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(tw, "Updated:\t%s\n", c.UpdatedAt.Format(time.RFC3339))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", c.Description)
	if len(c.Comments) > 0 {
		fmt.Fprintf(w, "\nComments (%d):\n", len(c.Comments))
		for _, comment := range c.Comments {
			fmt.Fprintf(w, "  [%s] %s: %s\n", comment.Timestamp.Format(time.RFC3339), comment.Author, comment.Message)
		}
	}
	return nil
}

func writeReport(w io.Writer, format string, report models.AnalyticsReport) error {
	if format != outputTable {
		return encode(w, format, report)
	}

	fmt.Fprintf(w, "Total: %d  Open: %d  In progress: %d  Resolved: %d  Resolution rate: %d%%\n",
		report.TotalComplaints, report.OpenComplaints, report.InProgressComplaints,
		report.ResolvedComplaints, report.ResolutionRate)

	sections := []struct {
		title   string
		buckets []models.Bucket
	}{
		{"By status", report.StatusBreakdown},
		{"By category", report.CategoryBreakdown},
		{"By priority", report.PriorityBreakdown},
		{"By department", report.DepartmentBreakdown},
	}
	for _, section := range sections {
		fmt.Fprintf(w, "\n%s:\n", section.title)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, b := range section.buckets {
			fmt.Fprintf(tw, "  %s\t%d\t%d%%\n", b.Name, b.Count, b.Percentage)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func writeUsers(w io.Writer, format string, users []models.User) error {
	if format != outputTable {
		return encode(w, format, users)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tDEPARTMENT\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.Department, u.Email)
	}
	return tw.Flush()
}

type healthResponse struct {
	Status     string `json:"status" yaml:"status"`
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
	Version    string `json:"version" yaml:"version"`
	Complaints int    `json:"complaints" yaml:"complaints"`
}

func runHealth(w io.Writer, url string, opts options) error {
	client := &http.Client{Timeout: opts.timeout}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}

	var health healthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("failed to parse health response: %w", err)
	}

	if opts.output != outputTable {
		if err := encode(w, opts.output, health); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "%s %s (version %s, %d complaints) at %s\n",
			url, strings.ToUpper(health.Status), health.Version, health.Complaints, health.Timestamp)
	}

	if resp.StatusCode != http.StatusOK || health.Status != "ok" {
		return fmt.Errorf("server unhealthy: %s", resp.Status)
	}
	return nil
}
