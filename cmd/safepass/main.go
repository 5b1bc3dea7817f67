package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	safepass "github.com/Saadoxyz/safepass-go"
	"github.com/Saadoxyz/safepass-go/visitor"
)

var serviceURL string
var debug bool

// config carries credentials and defaults from SAFEPASS_* environment
// variables so they never appear in shell history.
type config struct {
	ServiceURL string `envconfig:"SERVICE_URL" default:"http://localhost:8080"`
	Email      string `envconfig:"EMAIL"`
	Password   string `envconfig:"PASSWORD"`
}

var cfg config

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safepass",
		Short: "Safepass CLI for visitor registration, approvals and gate operations",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("SAFEPASS_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	if err := envconfig.Process("safepass", &cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid SAFEPASS_* environment")
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.ServiceURL, "Base URL of the Safepass backend")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newListVisitorsCmd())
	rootCmd.AddCommand(newPendingCmd())
	rootCmd.AddCommand(newTransitionCmd("approve", "Approve a pending visitor", (*safepass.Client).Approve))
	rootCmd.AddCommand(newTransitionCmd("reject", "Reject a pending visitor", (*safepass.Client).Reject))
	rootCmd.AddCommand(newTransitionCmd("check-in", "Check an approved visitor in at the gate", (*safepass.Client).CheckIn))
	rootCmd.AddCommand(newTransitionCmd("check-out", "Check a visitor out at the gate", (*safepass.Client).CheckOut))
	rootCmd.AddCommand(newFlagCmd())
	rootCmd.AddCommand(newResolveFlagCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newListReportsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newGatePassCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHostsCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

// login builds a client against serviceURL and authenticates with the
// SAFEPASS_EMAIL / SAFEPASS_PASSWORD credentials.
func login(ctx context.Context) (*safepass.Client, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SAFEPASS_EMAIL and SAFEPASS_PASSWORD must be set")
	}
	c := safepass.New(serviceURL)
	if _, err := c.Login(ctx, cfg.Email, cfg.Password); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func newRegisterCmd() *cobra.Command {
	var req safepass.CreateVisitorRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new visit request (starts pending)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			v, err := c.RegisterVisitor(ctx, req)
			if err != nil {
				log.Error().Err(err).Str("name", req.Name).Msg("register failed")
				return err
			}
			fmt.Printf("Visitor registered: %s (%s)\n", v.ID, v.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Visitor name (required)")
	cmd.Flags().StringVar(&req.CNIC, "cnic", "", "Visitor CNIC (required)")
	cmd.Flags().StringVar(&req.Contact, "contact", "", "Contact number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Visitor email")
	cmd.Flags().StringVar(&req.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&req.HostID, "host-id", "", "Host user ID (required)")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().StringVar(&req.Purpose, "purpose", "", "Purpose of visit (required)")
	cmd.Flags().StringVar(&req.VisitDate, "visit-date", "", "Visit date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.VisitTime, "visit-time", "", "Visit time, HH:MM")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cnic")
	_ = cmd.MarkFlagRequired("host-id")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("visit-date")

	return cmd
}

func newListVisitorsCmd() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "visitors",
		Short: "List visitors with their display status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			var list []visitor.Visitor
			if mine {
				list, err = c.ListMyVisitors(ctx)
			} else {
				list, err = c.ListVisitors(ctx)
			}
			if err != nil {
				return err
			}

			now := time.Now()
			for _, v := range list {
				fmt.Printf("%s\t%s\t%s\t%s\n", v.ID, v.Name, visitor.MaskCNIC(v.CNIC), visitor.ScheduleStatus(v, now))
			}
			fmt.Printf("Total: %d\n", len(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only visitors hosted by the logged-in user")
	return cmd
}

func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List the logged-in host's visitors awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListMyPendingVisitors(ctx)
			if err != nil {
				return err
			}
			for _, v := range list {
				fmt.Printf("%s\t%s\t%s %s\t%s\n", v.ID, v.Name, v.VisitDate.Format("2006-01-02"), v.VisitTime, v.Purpose)
			}
			fmt.Printf("Total: %d\n", len(list))
			return nil
		},
	}
}

// newTransitionCmd builds approve/reject/check-in/check-out, which share a
// fetch-then-transition shape.
func newTransitionCmd(use, short string, fn func(*safepass.Client, context.Context, visitor.Visitor) (*visitor.Visitor, error)) *cobra.Command {
	var visitorID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			v, err := c.GetVisitor(ctx, visitorID)
			if err != nil {
				return err
			}

			updated, err := fn(c, ctx, *v)
			if err != nil {
				log.Error().Err(err).Str("visitor_id", visitorID).Str("status", string(v.Status)).Msg(use + " failed")
				return err
			}
			fmt.Printf("Visitor %s is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&visitorID, "visitor-id", "", "Visitor ID (required)")
	_ = cmd.MarkFlagRequired("visitor-id")
	return cmd
}

func newFlagCmd() *cobra.Command {
	var visitorID, reason, notes string

	cmd := &cobra.Command{
		Use:   "flag",
		Short: "Flag a visitor for security attention",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			v, err := c.GetVisitor(ctx, visitorID)
			if err != nil {
				return err
			}
			f, err := c.FlagVisitor(ctx, *v, safepass.FlagRequest{Reason: reason, Notes: notes})
			if err != nil {
				return err
			}
			fmt.Printf("Flag %s raised on visitor %s\n", f.ID, visitorID)
			return nil
		},
	}

	cmd.Flags().StringVar(&visitorID, "visitor-id", "", "Visitor ID (required)")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the visitor is being flagged (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Additional notes")
	_ = cmd.MarkFlagRequired("visitor-id")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newResolveFlagCmd() *cobra.Command {
	var flagID, notes string

	cmd := &cobra.Command{
		Use:   "resolve-flag",
		Short: "Resolve an active flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			f, err := c.ResolveFlag(ctx, visitor.Flag{ID: flagID, Status: visitor.FlagFlagged}, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Flag %s resolved\n", f.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagID, "flag-id", "", "Flag ID (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Resolution notes")
	_ = cmd.MarkFlagRequired("flag-id")
	return cmd
}

func newReportCmd() *cobra.Command {
	var visitorID, reason, notes string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "File a suspicious-activity report against a visitor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			v, err := c.GetVisitor(ctx, visitorID)
			if err != nil {
				return err
			}
			r, err := c.ReportSuspicious(ctx, *v, safepass.ReportRequest{Reason: reason, Notes: notes})
			if err != nil {
				return err
			}
			fmt.Printf("Report %s filed (%s)\n", r.ID, r.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&visitorID, "visitor-id", "", "Visitor ID (required)")
	cmd.Flags().StringVar(&reason, "reason", "", "What was observed (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Additional details")
	_ = cmd.MarkFlagRequired("visitor-id")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newListReportsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List suspicious-activity reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			list, err := c.ListSuspiciousReports(ctx, visitor.ReportStatus(status))
			if err != nil {
				return err
			}
			printJSON(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter: reported, investigating or resolved")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			stats, err := c.TodayStats(ctx)
			if err != nil {
				return err
			}
			printJSON(stats)
			return nil
		},
	}
}

func newGatePassCmd() *cobra.Command {
	var number, out string

	cmd := &cobra.Command{
		Use:   "gate-pass",
		Short: "Look up a gate pass by number, optionally downloading the PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			gp, err := c.GetGatePassByNumber(ctx, number)
			if err != nil {
				return err
			}
			printJSON(gp)

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				if err := c.DownloadGatePass(ctx, number, f); err != nil {
					return err
				}
				fmt.Printf("Gate pass written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Gate-pass number (required)")
	cmd.Flags().StringVar(&out, "out", "", "Write the rendered PDF to this file")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newExportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the visitor log as CSV or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			c, err := login(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			if err := c.ExportVisitors(ctx, format, f); err != nil {
				return err
			}
			fmt.Printf("Export written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or pdf")
	cmd.Flags().StringVar(&out, "out", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newHostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hosts",
		Short: "List hosts available on the public registration form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			// Public endpoint, no login needed.
			c := safepass.New(serviceURL)
			defer func() { _ = c.Close() }()

			hosts, err := c.ListAvailableHosts(ctx)
			if err != nil {
				return err
			}
			for _, h := range hosts {
				fmt.Printf("%s\t%s\t%s\n", h.ID, h.Name, h.Department)
			}
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream live change events until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := login(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			events := make(chan safepass.Event, 16)
			errCh := make(chan error, 1)
			go func() { errCh <- c.Watch(cmd.Context(), events) }()

			for {
				select {
				case ev, ok := <-events:
					if !ok {
						return <-errCh
					}
					fmt.Printf("%s\t%s\t%s\n", ev.Resource, ev.ID, ev.Status)
				case err := <-errCh:
					return err
				}
			}
		},
	}
}
