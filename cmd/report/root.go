package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"travel-backoffice/config/sqlite"
	"travel-backoffice/internal/booking"
	bookingRepo "travel-backoffice/internal/booking/repository"
	bookingSQLite "travel-backoffice/internal/booking/repository/sqlite"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/stay"
)

const defaultDBPath = "./data/backoffice.db"

type periodFlags struct {
	month  int
	year   int
	dbPath string
}

func (f *periodFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.month, "month", 0, "Month (1-12)")
	cmd.Flags().IntVar(&f.year, "year", 0, "Year")
	cmd.Flags().StringVar(&f.dbPath, "db", defaultDBPath, "SQLite database path")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("year")
}

func (f *periodFlags) validate() error {
	if f.month < 1 || f.month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", f.month)
	}
	if f.year < 1970 || f.year > 9999 {
		return fmt.Errorf("year must be 1970-9999, got %d", f.year)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "report",
		Short:        "Monthly stay reports from the back-office database",
		Long:         "report prints nights and totals per hotel for the complete bookings stored in the back-office SQLite database.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newNightsCmd(),
		newTotalsCmd(),
	)

	return rootCmd
}

func newNightsCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "nights",
		Short: "Nights spent per hotel in a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stays, err := loadStays(cmd.Context(), &flags)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "HOTEL\tNIGHTS")
			for _, n := range stay.NightsByHotel(stays, time.Month(flags.month), flags.year) {
				fmt.Fprintf(w, "%s\t%d\n", n.Hotel, n.Nights)
			}
			return w.Flush()
		},
	}
	flags.bind(cmd)

	return cmd
}

func newTotalsCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Amount billed per hotel for stays checking in during a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stays, err := loadStays(cmd.Context(), &flags)
			if err != nil {
				return err
			}

			month := time.Month(flags.month)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "HOTEL\tTOTAL")
			for _, t := range stay.TotalByHotel(stays, month, flags.year) {
				fmt.Fprintf(w, "%s\t%.2f\n", t.Hotel, t.Total)
			}
			fmt.Fprintf(w, "TOTAL\t%.2f\n", stay.GrandTotal(stays, month, flags.year))
			return w.Flush()
		},
	}
	flags.bind(cmd)

	return cmd
}

// loadStays reads every complete booking from the database.
func loadStays(ctx context.Context, flags *periodFlags) ([]stay.Booking, error) {
	if err := flags.validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := sqlite.Connect(ctx, sqlite.Config{Path: flags.dbPath})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer sqlite.Disconnect(db)

	repo := bookingSQLite.New(db, log.NewNop())
	bookings, _, err := repo.ListBookings(ctx, bookingRepo.ListBookingsOptions{Status: stay.CompletionComplete})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return toStays(bookings), nil
}

func toStays(bookings []booking.Booking) []stay.Booking {
	stays := make([]stay.Booking, len(bookings))
	for i, b := range bookings {
		stays[i] = b.Stay()
	}
	return stays
}
