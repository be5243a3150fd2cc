package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/spf13/cobra"
)

var offerSortFields = map[string]func(*paymill.OfferOrder) *paymill.OfferOrder{
	"interval":          (*paymill.OfferOrder).ByInterval,
	"amount":            (*paymill.OfferOrder).ByAmount,
	"created_at":        (*paymill.OfferOrder).ByCreatedAt,
	"trial_period_days": (*paymill.OfferOrder).ByTrialPeriodDays,
}

// NewOffersCommand creates the offers command group.
func NewOffersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "offers",
		Aliases: []string{"offer"},
		Short:   "Manage offers",
		Long:    "List and manage recurring billing offers",
	}

	cmd.AddCommand(newOffersListCommand())
	cmd.AddCommand(newOffersGetCommand())
	cmd.AddCommand(newOffersCreateCommand())
	cmd.AddCommand(newOffersUpdateCommand())
	cmd.AddCommand(newOffersDeleteCommand())

	return cmd
}

func newOffersListCommand() *cobra.Command {
	var (
		name      string
		amount    int
		amountGT  int
		amountLT  int
		trialDays int
		created   string
		updated   string
		sort      sortFlags
		paging    pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offers",
		Long:  "List offers with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewOfferFilter()

			if name != "" {
				filter.ByName(name)
			}

			if cmd.Flags().Changed("trial-days") {
				filter.ByTrialPeriodDays(trialDays)
			}

			// Amount constraints share one key; a later flag replaces an earlier one.
			if cmd.Flags().Changed("amount") {
				filter.ByAmount(amount)
			}

			if cmd.Flags().Changed("amount-gt") {
				filter.ByAmountGreaterThan(amountGT)
			}

			if cmd.Flags().Changed("amount-lt") {
				filter.ByAmountLessThan(amountLT)
			}

			if created != "" {
				start, end, err := parseDateRange(created)
				if err != nil {
					return err
				}

				filter.ByCreatedAt(start, end)
			}

			if updated != "" {
				start, end, err := parseDateRange(updated)
				if err != nil {
					return err
				}

				filter.ByUpdatedAt(start, end)
			}

			order, err := buildOrder(paymill.NewOfferOrder(), offerSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			offers, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Offer], error) {
					return client.Offers().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list offers: %w", err)
			}

			return render(cmd, offers, func(w io.Writer) error {
				return renderList(w, "offer", offers.Items, offers.Total,
					[]string{"ID", "Name", "Amount", "Interval", "Trial Days", "Active Subs", "Created"},
					func(offer paymill.Offer) []string {
						return []string{
							offer.ID,
							truncate(offer.Name, constants.DescriptionDisplayLength),
							formatAmount(offer.AmountFormatted(), offer.Currency),
							formatInterval(offer.Interval),
							formatInt(offer.TrialPeriodDays),
							formatInt(offer.SubscriptionCount.Active),
							formatTimestamp(offer.CreatedAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().IntVar(&amount, "amount", 0, "filter by exact amount in minor units")
	cmd.Flags().IntVar(&amountGT, "amount-gt", 0, "filter by amount greater than")
	cmd.Flags().IntVar(&amountLT, "amount-lt", 0, "filter by amount less than")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "filter by trial period days")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	cmd.Flags().StringVar(&updated, "updated", "", "filter by update date range START..END")
	sort.register(cmd, sortFields(offerSortFields))
	paging.register(cmd)

	return cmd
}

func newOffersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OFFER_ID",
		Short: "Get offer details",
		Long:  "Display detailed information about a specific offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			offer, err := client.Offers().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get offer: %w", err)
			}

			return renderOffer(cmd, offer)
		},
	}
}

func newOffersCreateCommand() *cobra.Command {
	var (
		name      string
		amount    int
		currency  string
		interval  string
		trialDays int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an offer",
		Long:  "Create a recurring billing offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := paymill.ParseInterval(interval)
			if err != nil {
				return fmt.Errorf("invalid --interval: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			offer, err := client.Offers().Create(commandContext(cmd), &paymill.OfferCreateRequest{
				Name:            name,
				Amount:          amount,
				Currency:        currency,
				Interval:        parsed,
				TrialPeriodDays: optionalInt(cmd, "trial-days", trialDays),
			})
			if err != nil {
				return fmt.Errorf("failed to create offer: %w", err)
			}

			return renderOffer(cmd, offer)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "offer name")
	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units, e.g. 4200 for 42.00")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")
	cmd.Flags().StringVar(&interval, "interval", "1 MONTH", "billing interval, e.g. \"1 MONTH\"")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "trial period in days")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newOffersUpdateCommand() *cobra.Command {
	var (
		name                string
		amount              int
		currency            string
		interval            string
		trialDays           int
		updateSubscriptions bool
	)

	cmd := &cobra.Command{
		Use:   "update OFFER_ID",
		Short: "Update an offer",
		Long:  "Change an offer. Only the given flags are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := optionalInterval(cmd, "interval", interval)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			offer, err := client.Offers().Update(commandContext(cmd), args[0], &paymill.OfferUpdateRequest{
				Name:                optionalString(cmd, "name", name),
				Amount:              optionalInt(cmd, "amount", amount),
				Currency:            optionalString(cmd, "currency", currency),
				Interval:            parsed,
				TrialPeriodDays:     optionalInt(cmd, "trial-days", trialDays),
				UpdateSubscriptions: updateSubscriptions,
			})
			if err != nil {
				return fmt.Errorf("failed to update offer: %w", err)
			}

			return renderOffer(cmd, offer)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "offer name")
	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&interval, "interval", "", "billing interval, e.g. \"1 MONTH\"")
	cmd.Flags().IntVar(&trialDays, "trial-days", 0, "trial period in days")
	cmd.Flags().BoolVar(&updateSubscriptions, "update-subscriptions", false, "apply the change to existing subscriptions")

	return cmd
}

func newOffersDeleteCommand() *cobra.Command {
	var (
		force             bool
		withSubscriptions bool
	)

	cmd := &cobra.Command{
		Use:   "delete OFFER_ID",
		Short: "Delete an offer",
		Long:  "Delete an offer, optionally together with its subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := confirmDelete(cmd, "offer", args[0], force)
			if err != nil || !confirmed {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Offers().Delete(commandContext(cmd), args[0], withSubscriptions)
			if err != nil {
				return fmt.Errorf("failed to delete offer: %w", err)
			}

			return reportDelete(cmd, "offer", args[0], deleted)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")
	cmd.Flags().BoolVar(&withSubscriptions, "with-subscriptions", false, "also delete the offer's subscriptions")

	return cmd
}

func renderOffer(cmd *cobra.Command, offer *paymill.Offer) error {
	return render(cmd, offer, func(w io.Writer) error {
		return renderDetails(w, "offer", offer.ID, [][]string{
			{"Name", offer.Name},
			{"Amount", formatAmount(offer.AmountFormatted(), offer.Currency)},
			{"Interval", formatInterval(offer.Interval)},
			{"Trial Days", formatInt(offer.TrialPeriodDays)},
			{"Active Subscriptions", formatInt(offer.SubscriptionCount.Active)},
			{"Inactive Subscriptions", formatInt(offer.SubscriptionCount.Inactive)},
			{"Created", formatTimestamp(offer.CreatedAt)},
			{"Updated", formatTimestamp(offer.UpdatedAt)},
		})
	})
}
