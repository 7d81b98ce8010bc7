package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
)

var (
	flagBaseURL string
	flagToken   string
	flagYear    int
	flagMonth   int
	flagPerson  string
)

var rootCmd = &cobra.Command{
	Use:   "puantajctl",
	Short: "Reporting companion for the puantaj backend",
	Long: `puantajctl talks to a running puantaj backend over its HTTP API and
writes timesheet reports as semicolon-separated CSV, ready for Excel.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a monthly timesheet as CSV to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	now := time.Now()

	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "url", "http://localhost:8080", "Backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("PUANTAJ_TOKEN"), "Access token (defaults to PUANTAJ_TOKEN)")

	exportCmd.Flags().IntVar(&flagYear, "year", now.Year(), "Report year")
	exportCmd.Flags().IntVar(&flagMonth, "month", int(now.Month()), "Report month (1-12)")
	exportCmd.Flags().StringVar(&flagPerson, "person", "", "Limit to one person ID")

	rootCmd.AddCommand(exportCmd)
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool                              `json:"success"`
	Data    timesheet.TimesheetReportResponse `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func fetchMonthly(year, month int, personID string) (timesheet.TimesheetReportResponse, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	if personID != "" {
		query.Set("person_id", personID)
	}

	req, err := http.NewRequest(http.MethodGet, flagBaseURL+"/api/v1/timesheets/monthly?"+query.Encode(), nil)
	if err != nil {
		return timesheet.TimesheetReportResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+flagToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return timesheet.TimesheetReportResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return timesheet.TimesheetReportResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		msg := resp.Status
		if env.Error != nil {
			msg = env.Error.Message
		}
		return timesheet.TimesheetReportResponse{}, fmt.Errorf("backend error: %s", msg)
	}

	return env.Data, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	report, err := fetchMonthly(flagYear, flagMonth, flagPerson)
	if err != nil {
		return err
	}

	// Semicolon separator so Excel in Turkish locale opens it directly.
	w := csv.NewWriter(os.Stdout)
	w.Comma = ';'

	header := []string{
		"sicil_no", "person", "date", "kind", "leave_type", "holiday",
		"check_in", "check_out", "worked_minutes", "expected_minutes",
		"classification", "anomalies",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range report.Persons {
		for _, day := range p.Days {
			row := []string{
				p.RegistrationNo,
				p.PersonName,
				day.Date,
				day.Kind,
				deref(day.LeaveType),
				deref(day.HolidayName),
				deref(day.CheckIn),
				deref(day.CheckOut),
				derefInt(day.WorkedMinutes),
				strconv.Itoa(day.ExpectedMinutes),
				deref(day.Classification),
				joinAnomalies(day.Anomalies),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}

		summary := []string{
			p.RegistrationNo,
			p.PersonName,
			"TOPLAM",
			"",
			"",
			"",
			"",
			"",
			strconv.Itoa(p.Summary.TotalWorkedMinutes),
			strconv.Itoa(p.Summary.TotalExpectedMinutes),
			fmt.Sprintf("fazla=%d;eksik=%d", p.Summary.OvertimeMinutes, p.Summary.ShortfallMinutes),
			"",
		}
		if err := w.Write(summary); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func joinAnomalies(anomalies []string) string {
	out := ""
	for i, a := range anomalies {
		if i > 0 {
			out += ","
		}
		out += a
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
