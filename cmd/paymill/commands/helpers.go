package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/logging"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/fivetwenty-io/paymill-go/pkg/paymillclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	timeLayout      = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
	rangeSeparator  = ".."
	debugLogLevel   = "debug"
	consoleLogStyle = "console"
)

// CreateClient builds a PAYMILL client from flags, environment and the
// config file.
func CreateClient() (paymill.API, error) {
	config := loadConfig()
	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	client, err := paymillclient.New(buildPaymillConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func buildPaymillConfig(config *Config) *paymill.Config {
	debug := viper.GetBool("debug")

	paymillConfig := &paymill.Config{
		APIKey:   config.APIKey,
		BaseURL:  config.BaseURL,
		RetryMax: config.RetryMax,
		Debug:    debug,
	}

	if debug || config.LogLevel != "" {
		paymillConfig.Logger = newLogger(config, debug)
	}

	return paymillConfig
}

func newLogger(config *Config, debug bool) *logging.Logger {
	level := config.LogLevel
	if debug {
		level = debugLogLevel
	}

	format := config.LogFormat
	if format == "" {
		format = consoleLogStyle
	}

	return logging.New(logging.Options{Level: level, Format: format})
}

func setViperConfig(config *Config) {
	viper.Set("api_key", config.APIKey)
	viper.Set("base_url", config.BaseURL)
	viper.Set("retry_max", config.RetryMax)
}

// outputFormat returns the selected output format.
func outputFormat() (string, error) {
	output := viper.GetString("output")
	if output == "" {
		return constants.FormatTable, nil
	}

	if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, output) {
		return "", constants.ErrInvalidOutputFormat
	}

	return output, nil
}

// render writes data as JSON or YAML, or hands the writer to table for the
// table format.
func render(cmd *cobra.Command, data interface{}, table func(w io.Writer) error) error {
	output, err := outputFormat()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(data)
	default:
		return table(w)
	}
}

// renderTable renders rows under headers.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	cells := make([]any, 0, len(headers))
	for _, header := range headers {
		cells = append(cells, header)
	}

	table := tablewriter.NewWriter(w)
	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderDetails renders a two-column property table titled with the entity
// noun and id.
func renderDetails(w io.Writer, noun, id string, properties [][]string) error {
	_, _ = fmt.Fprintf(w, "%s: %s\n\n", cases.Title(language.English).String(noun), id)

	return renderTable(w, []string{"Property", "Value"}, properties)
}

// renderList renders list rows followed by a paging hint.
func renderList[T any](w io.Writer, noun string, items []T, total paymill.Int, headers []string, row func(T) []string) error {
	if len(items) == 0 {
		_, _ = fmt.Fprintf(w, "No %ss found\n", noun)

		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}

	err := renderTable(w, headers, rows)
	if err != nil {
		return err
	}

	if total.Int() > len(items) {
		_, _ = fmt.Fprintf(w, "\nShowing %d of %d %ss. Use --all to fetch everything.\n", len(items), total.Int(), noun)
	}

	return nil
}

// pageFlags are the paging flags shared by list commands.
type pageFlags struct {
	count  int
	offset int
	all    bool
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&p.offset, "offset", 0, "results to skip")
	cmd.Flags().BoolVar(&p.all, "all", false, "fetch all pages")
}

// fetchPages lists one page, or every page starting at the offset when all
// is set.
func fetchPages[T any](
	ctx context.Context,
	flags pageFlags,
	fetch func(context.Context, *paymill.Page) (*paymill.ListResponse[T], error),
) (*paymill.ListResponse[T], error) {
	count := min(max(flags.count, 1), constants.MaxPageSize)
	page := paymill.NewPage(count, flags.offset)

	result, err := fetch(ctx, page)
	if err != nil {
		return nil, err
	}

	if !flags.all {
		return result, nil
	}

	batch := len(result.Items)
	for batch > 0 && flags.offset+len(result.Items) < result.Total.Int() {
		page.Offset += batch

		next, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch offset %d: %w", page.Offset, err)
		}

		batch = len(next.Items)
		result.Items = append(result.Items, next.Items...)
	}

	return result, nil
}

// sortable is implemented by every resource order.
type sortable[O any] interface {
	Asc() O
	Desc() O
}

// sortFlags are the ordering flags shared by list commands.
type sortFlags struct {
	field     string
	direction string
}

func (s *sortFlags) register(cmd *cobra.Command, fields []string) {
	cmd.Flags().StringVar(&s.field, "sort", "", "sort field ("+strings.Join(fields, ", ")+")")
	cmd.Flags().StringVar(&s.direction, "order", constants.SortOrderAsc, "sort order (asc, desc)")
}

// buildOrder applies the sort flags to order using the field selectors.
func buildOrder[O sortable[O]](order O, fields map[string]func(O) O, flags sortFlags) (O, error) {
	if flags.field == "" {
		return order, nil
	}

	by, ok := fields[flags.field]
	if !ok {
		var zero O

		return zero, fmt.Errorf("%w '%s', use one of %s", constants.ErrInvalidSortField,
			flags.field, strings.Join(slices.Sorted(maps.Keys(fields)), ", "))
	}

	order = by(order)

	switch strings.ToLower(flags.direction) {
	case "", constants.SortOrderAsc:
		return order.Asc(), nil
	case constants.SortOrderDesc:
		return order.Desc(), nil
	default:
		var zero O

		return zero, constants.ErrInvalidSortOrder
	}
}

func sortFields[O any](fields map[string]func(O) O) []string {
	return slices.Sorted(maps.Keys(fields))
}

// parseDateRange parses "<start>..<end>", each side RFC 3339 or YYYY-MM-DD.
// A date-only end covers the whole day.
func parseDateRange(value string) (time.Time, time.Time, error) {
	startText, endText, ok := strings.Cut(value, rangeSeparator)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDateRange, value)
	}

	start, _, err := parseTime(startText)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDateRange, value)
	}

	end, dateOnly, err := parseTime(endText)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidDateRange, value)
	}

	if dateOnly {
		end = end.Add(24*time.Hour - time.Second)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end before start", constants.ErrInvalidDateRange)
	}

	return start, end, nil
}

func parseTime(value string) (time.Time, bool, error) {
	value = strings.TrimSpace(value)

	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, false, nil
	}

	parsed, err = time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing time %q: %w", value, err)
	}

	return parsed, true, nil
}

// optionalInt returns a pointer to the flag value when the flag was set.
func optionalInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

// optionalString returns a pointer to the flag value when the flag was set.
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

// optionalInterval parses the flag value when the flag was set.
func optionalInterval(cmd *cobra.Command, name, value string) (*paymill.Interval, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	interval, err := paymill.ParseInterval(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return &interval, nil
}

// confirmDelete asks for confirmation unless force is set. Without a
// terminal the deletion is refused.
func confirmDelete(cmd *cobra.Command, noun, id string, force bool) (bool, error) {
	if force {
		return true, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, constants.ErrConfirmationNeeded
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s '%s'? (y/N): ", noun, id)

	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')

	response = strings.TrimSpace(response)
	if response != "y" && response != "Y" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

		return false, nil
	}

	return true, nil
}

// reportDelete prints the outcome of a delete call.
func reportDelete(cmd *cobra.Command, noun, id string, deleted bool) error {
	if !deleted {
		return fmt.Errorf("%s '%s': %w", noun, id, constants.ErrNotDeleted)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted %s '%s'\n", noun, id)

	return nil
}

func formatTimestamp(ts paymill.Timestamp) string {
	if ts.IsZero() {
		return constants.NotAvailable
	}

	return ts.Format(timeLayout)
}

func formatAmount(amount interface{ String() string }, currency string) string {
	return strings.TrimSpace(amount.String() + " " + currency)
}

func formatInt(value paymill.Int) string {
	return strconv.Itoa(value.Int())
}

func formatInterval(interval paymill.Interval) string {
	return orNA(interval.String())
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func joinIDs(ids []string) string {
	return orNA(strings.Join(ids, ", "))
}

// refID renders the identifier of a related entity.
func refID[T any](ref paymill.Ref[T]) string {
	return orNA(ref.ID())
}

func orNA(value string) string {
	return orDefault(value, constants.NotAvailable)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	return string(runes[:length-3]) + "..."
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
