package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"dronelog-go/internal/app"
	"dronelog-go/internal/backup"
	"dronelog-go/internal/config"
	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "AddFlight", "Export").
func newApp(operation string) (*app.App, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.New(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config (run 'dronelog config init' first): %w", err)
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:   "dronelog",
	Short: "Personal drone flight logbook",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		installationID := uuid.New().String()
		cfg := config.NewConfig(installationID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Installation ID: %s\n", installationID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Installation ID: %s\n", cfg.InstallationID)
		fmt.Printf("Base Dir:        %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:         %s\n", cfg.LogDir)
		fmt.Printf("Database:        %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("Export Dir:      %s\n", cfg.Export.ExportDir)
		fmt.Printf("Backup Dir:      %s\n", cfg.Backup.BackupDir)
		return nil
	},
}

// profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the pilot profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the pilot profile",
	Long: "Save the pilot profile, replacing any existing one. Fields not given\n" +
		"as flags are prompted for when running in a terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		input := logbook.ProfileInput{}
		input.FirstName, _ = cmd.Flags().GetString("first-name")
		input.LastName, _ = cmd.Flags().GetString("last-name")
		input.Address, _ = cmd.Flags().GetString("address")
		input.MobilePhone, _ = cmd.Flags().GetString("mobile")
		input.LandlinePhone, _ = cmd.Flags().GetString("landline")
		input.DateOfBirth, _ = cmd.Flags().GetString("birth-date")
		input.CertificateNumber, _ = cmd.Flags().GetString("certificate")

		if stdinIsTerminal() {
			promptIfEmpty(&input.FirstName, "First name")
			promptIfEmpty(&input.LastName, "Last name")
			promptIfEmpty(&input.Address, "Address")
			promptIfEmpty(&input.MobilePhone, "Mobile phone")
			promptIfEmpty(&input.DateOfBirth, "Date of birth (YYYY-MM-DD)")
			promptIfEmpty(&input.CertificateNumber, "Certificate number")
		}

		if err := a.Service().SaveProfile(input); err != nil {
			return reportError(err)
		}

		fmt.Println("Profile saved")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View the pilot profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		profile, err := a.Service().Profile()
		if err != nil {
			return err
		}
		if profile == nil {
			fmt.Println("No profile saved. Run 'dronelog profile set'.")
			return nil
		}

		fmt.Printf("First name:         %s\n", profile.FirstName)
		fmt.Printf("Last name:          %s\n", profile.LastName)
		fmt.Printf("Address:            %s\n", profile.Address)
		fmt.Printf("Mobile phone:       %s\n", profile.MobilePhone)
		if profile.LandlinePhone != "" {
			fmt.Printf("Landline phone:     %s\n", profile.LandlinePhone)
		}
		fmt.Printf("Date of birth:      %s\n", profile.DateOfBirth.Format(time.DateOnly))
		fmt.Printf("Certificate number: %s\n", profile.CertificateNumber)
		if profile.Complete() {
			fmt.Println("\nProfile is complete.")
		} else {
			fmt.Println("\nProfile is incomplete; exports are blocked until it is filled in.")
		}
		return nil
	},
}

// flight command
var flightCmd = &cobra.Command{
	Use:   "flight",
	Short: "Manage flight entries",
}

var flightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new flight",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddFlight")
		if err != nil {
			return err
		}
		defer a.Close()

		input := flightInputFromFlags(cmd)
		if stdinIsTerminal() {
			promptFlightInput(&input)
		}

		entry, err := a.Service().AddFlight(input)
		if err != nil {
			return reportError(err)
		}

		fmt.Printf("Flight added (%s)\n", entry.ID)
		return nil
	},
}

var flightEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a flight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateFlight")
		if err != nil {
			return err
		}
		defer a.Close()

		input := flightInputFromFlags(cmd)
		if stdinIsTerminal() {
			promptFlightInput(&input)
		}

		if _, err := a.Service().UpdateFlight(args[0], input); err != nil {
			return reportError(err)
		}

		fmt.Println("Flight updated")
		return nil
	},
}

var flightDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a flight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete flight %s?", args[0])) {
			fmt.Println("Aborted.")
			return nil
		}

		a, err := newApp("DeleteFlight")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteFlight(args[0]); err != nil {
			return reportError(err)
		}

		fmt.Println("Flight deleted")
		return nil
	},
	Args: cobra.ExactArgs(1),
}

var flightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse flight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListFlights")
		if err != nil {
			return err
		}
		defer a.Close()

		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		entries, err := a.Service().ListFlights(filter)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No flights found.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s  %-12s  %-10s  %-20s  %s\n",
				e.ID,
				e.Date.Format(time.DateOnly),
				e.Type,
				e.Registration,
				e.Route,
				logbook.MinutesToTime(e.TimeMinutes),
			)
		}
		fmt.Printf("\n%d entries · %s\n", len(entries), logbook.MinutesToTime(logbook.TotalMinutes(entries)))
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View logbook summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetStats")
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.Service().Stats()
		if err != nil {
			return err
		}
		years, err := a.Service().Years()
		if err != nil {
			return err
		}

		fmt.Printf("Total flights:   %d", stats.TotalFlights)
		if !stats.Pro {
			fmt.Printf("  (%d/5 on free plan)", stats.TotalFlights)
		}
		fmt.Println()
		fmt.Printf("Total time:      %s\n", logbook.MinutesToTime(stats.TotalMinutes))
		fmt.Printf("This month:      %s\n", logbook.MinutesToTime(stats.ThisMonthMinutes))
		if stats.ProfileComplete {
			fmt.Println("Profile:         complete")
		} else {
			fmt.Println("Profile:         incomplete")
		}
		if len(years) > 0 {
			parts := make([]string, len(years))
			for i, y := range years {
				parts[i] = fmt.Sprintf("%d", y)
			}
			fmt.Printf("Years logged:    %s\n", strings.Join(parts, ", "))
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a logbook export document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Export")
		if err != nil {
			return err
		}
		defer a.Close()

		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		result, err := a.Service().Export(filter)
		if err != nil {
			if errors.Is(err, logbook.ErrRenderSurface) {
				// The document was built; only the handoff failed.
				fmt.Fprintf(os.Stderr, "Could not open the export for display: %v\n", err)
				if result.Location != "" {
					fmt.Printf("Export %s written to %s\n", result.Document.Metadata.ID, result.Location)
				}
				fmt.Println("The export data is not lost; you may retry.")
				return nil
			}
			return reportError(err)
		}

		fmt.Printf("Export %s generated", result.Document.Metadata.ID)
		if result.Location != "" {
			fmt.Printf(": %s", result.Location)
		}
		fmt.Println()
		return nil
	},
}

// upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade to the pro plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Upgrade")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Upgrade(); err != nil {
			return err
		}

		fmt.Println("Upgraded to Pro: unlimited entries, no export watermark.")
		return nil
	},
}

// lang command
var langCmd = &cobra.Command{
	Use:   "lang [en|ro]",
	Short: "View or set the display language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetLanguage")
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			fmt.Println(a.Language())
			return nil
		}

		if err := a.Service().SetLanguage(args[0]); err != nil {
			return err
		}

		fmt.Printf("Language set to %s\n", args[0])
		return nil
	},
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage encrypted logbook backups",
}

var backupInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the backup key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		keyring := app.Keyring(cfg)
		if keyring.IsConfigured() {
			return fmt.Errorf("backup keys already exist")
		}

		passphrase, err := readPassphrase("Passphrase for the backup key: ")
		if err != nil {
			return err
		}

		if err := keyring.Setup(passphrase); err != nil {
			return fmt.Errorf("generating backup keys: %w", err)
		}

		fmt.Printf("Backup keys written under %s\n", cfg.Backup.PublicKeyPath)
		return nil
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an encrypted snapshot of the logbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		dbPath, err := app.DatabasePath(cfg)
		if err != nil {
			return err
		}

		keyring := app.Keyring(cfg)
		if !keyring.IsConfigured() {
			return fmt.Errorf("backup keys not set up (run 'dronelog backup init' first)")
		}

		path, err := backup.Create(keyring, dbPath, cfg.Backup.BackupDir, time.Now())
		if err != nil {
			return fmt.Errorf("creating backup: %w", err)
		}

		fmt.Printf("Backup written to %s\n", path)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore FILE",
	Short: "Restore the logbook from an encrypted snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		dbPath, err := app.DatabasePath(cfg)
		if err != nil {
			return err
		}

		passphrase, err := readPassphrase("Passphrase for the backup key: ")
		if err != nil {
			return err
		}

		if err := backup.Restore(app.Keyring(cfg), args[0], dbPath, passphrase); err != nil {
			return fmt.Errorf("restoring backup: %w", err)
		}

		fmt.Println("Logbook restored.")
		return nil
	},
}

// wipe command
var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Delete the pilot profile and all flight entries?") {
			fmt.Println("Aborted.")
			return nil
		}

		a, err := newApp("Wipe")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Wipe(); err != nil {
			return err
		}

		fmt.Println("All data deleted.")
		return nil
	},
}

// flightInputFromFlags collects the entry form fields from flags.
func flightInputFromFlags(cmd *cobra.Command) logbook.FlightInput {
	input := logbook.FlightInput{}
	input.Date, _ = cmd.Flags().GetString("date")
	input.Type, _ = cmd.Flags().GetString("type")
	input.Registration, _ = cmd.Flags().GetString("registration")
	input.Route, _ = cmd.Flags().GetString("route")
	input.Time, _ = cmd.Flags().GetString("time")
	return input
}

func promptFlightInput(input *logbook.FlightInput) {
	promptIfEmpty(&input.Date, "Date (YYYY-MM-DD)")
	promptIfEmpty(&input.Type, "Aircraft type")
	promptIfEmpty(&input.Registration, "Registration")
	promptIfEmpty(&input.Route, "Route")
	promptIfEmpty(&input.Time, "Flight time (HH:MM)")
}

// filterFromFlags builds a FilterState from the shared filter flags.
func filterFromFlags(cmd *cobra.Command) (model.FilterState, error) {
	filter := model.FilterState{}

	scope, _ := cmd.Flags().GetString("scope")
	switch model.FilterScope(scope) {
	case model.ScopeAll, model.ScopeYear, model.ScopeMonth, model.ScopeCustom:
		filter.Scope = model.FilterScope(scope)
	default:
		return filter, fmt.Errorf("unknown scope %q (use all, year, month or custom)", scope)
	}

	filter.Year, _ = cmd.Flags().GetInt("year")
	filter.Month, _ = cmd.Flags().GetInt("month")
	filter.Search, _ = cmd.Flags().GetString("search")

	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		parsed, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return filter, fmt.Errorf("invalid --from date (expected YYYY-MM-DD): %q", from)
		}
		filter.From = parsed
	}

	to, _ := cmd.Flags().GetString("to")
	if to != "" {
		parsed, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return filter, fmt.Errorf("invalid --to date (expected YYYY-MM-DD): %q", to)
		}
		filter.To = parsed
	}

	return filter, nil
}

// addFilterFlags registers the shared filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("scope", "all", "Date scope: all, year, month or custom")
	cmd.Flags().Int("year", 0, "Year for scope=year or scope=month")
	cmd.Flags().Int("month", 0, "Month (1-12) for scope=month")
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD) for scope=custom")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD) for scope=custom")
	cmd.Flags().String("search", "", "Free-text search over type, registration and route")
}

// addFlightFlags registers the entry form flags on a command.
func addFlightFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Flight date (YYYY-MM-DD)")
	cmd.Flags().String("type", "", "Aircraft/drone type")
	cmd.Flags().String("registration", "", "Registration")
	cmd.Flags().String("route", "", "Route")
	cmd.Flags().String("time", "", "Flight time (HH:MM)")
}

// reportError maps the domain error taxonomy onto user-facing messages.
// Everything here is recoverable; nothing aborts beyond the current command.
func reportError(err error) error {
	var fieldErrs logbook.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		fmt.Fprintln(os.Stderr, "Please correct the following fields:")
		for field, violation := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, violation)
		}
		return fmt.Errorf("validation failed")
	case errors.Is(err, logbook.ErrPlanLimit):
		fmt.Fprintln(os.Stderr, "The free plan is limited to 5 entries.")
		fmt.Fprintln(os.Stderr, "Run 'dronelog upgrade' for unlimited entries and watermark-free exports.")
		return err
	case errors.Is(err, logbook.ErrProfileIncomplete):
		fmt.Fprintln(os.Stderr, "The pilot profile is incomplete. Run 'dronelog profile set' first.")
		return err
	default:
		return err
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptIfEmpty asks for a value on the terminal when the flag was not given.
func promptIfEmpty(value *string, label string) {
	if *value != "" {
		return
	}
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	*value = strings.TrimSpace(line)
}

// confirm asks a yes/no question on the terminal. Non-terminal stdin means no.
func confirm(question string) bool {
	if !stdinIsTerminal() {
		return false
	}
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readPassphrase reads a passphrase without echoing it.
func readPassphrase(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("passphrase must not be empty")
	}
	return string(raw), nil
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// profile subcommands
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileSetCmd.Flags().String("first-name", "", "First name")
	profileSetCmd.Flags().String("last-name", "", "Last name")
	profileSetCmd.Flags().String("address", "", "Address")
	profileSetCmd.Flags().String("mobile", "", "Mobile phone")
	profileSetCmd.Flags().String("landline", "", "Landline phone (optional)")
	profileSetCmd.Flags().String("birth-date", "", "Date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().String("certificate", "", "Certificate number")

	// flight subcommands
	flightCmd.AddCommand(flightAddCmd)
	flightCmd.AddCommand(flightEditCmd)
	flightCmd.AddCommand(flightDeleteCmd)
	flightCmd.AddCommand(flightListCmd)
	addFlightFlags(flightAddCmd)
	addFlightFlags(flightEditCmd)
	addFilterFlags(flightListCmd)
	flightDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	// backup subcommands
	backupCmd.AddCommand(backupInitCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	// export flags
	addFilterFlags(exportCmd)
	exportCmd.Flags().MarkHidden("search")

	wipeCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(flightCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(wipeCmd)
}
