package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/spf13/cobra"
)

var subscriptionSortFields = map[string]func(*paymill.SubscriptionOrder) *paymill.SubscriptionOrder{
	"offer":       (*paymill.SubscriptionOrder).ByOffer,
	"canceled_at": (*paymill.SubscriptionOrder).ByCanceledAt,
	"created_at":  (*paymill.SubscriptionOrder).ByCreatedAt,
}

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "List and manage client subscriptions to offers",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCreateCommand())
	cmd.AddCommand(newSubscriptionsUpdateCommand())
	cmd.AddCommand(newSubscriptionsPauseCommand(true))
	cmd.AddCommand(newSubscriptionsPauseCommand(false))
	cmd.AddCommand(newSubscriptionsDeleteCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		offerID string
		created string
		updated string
		sort    sortFlags
		paging  pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewSubscriptionFilter()

			if offerID != "" {
				filter.ByOfferID(offerID)
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

			order, err := buildOrder(paymill.NewSubscriptionOrder(), subscriptionSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriptions, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Subscription], error) {
					return client.Subscriptions().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return render(cmd, subscriptions, func(w io.Writer) error {
				return renderList(w, "subscription", subscriptions.Items, subscriptions.Total,
					[]string{"ID", "Offer", "Client", "Amount", "Interval", "Status", "Next Capture"},
					func(subscription paymill.Subscription) []string {
						return []string{
							subscription.ID,
							refID(subscription.Offer),
							refID(subscription.Client),
							formatAmount(subscription.AmountFormatted(), subscription.Currency),
							formatInterval(subscription.Interval),
							subscription.Status.DisplayName(),
							formatTimestamp(subscription.NextCaptureAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "filter by offer id")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	cmd.Flags().StringVar(&updated, "updated", "", "filter by update date range START..END")
	sort.register(cmd, sortFields(subscriptionSortFields))
	paging.register(cmd)

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return renderSubscription(cmd, subscription)
		},
	}
}

func newSubscriptionsCreateCommand() *cobra.Command {
	var (
		offerID          string
		paymentID        string
		clientID         string
		startAt          string
		amount           int
		currency         string
		interval         string
		name             string
		periodOfValidity string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		Long:  "Subscribe the client of a payment, or the given client, to an offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedInterval, err := optionalInterval(cmd, "interval", interval)
			if err != nil {
				return err
			}

			validity, err := optionalInterval(cmd, "period-of-validity", periodOfValidity)
			if err != nil {
				return err
			}

			request := &paymill.SubscriptionCreateRequest{
				Offer:            offerID,
				Payment:          paymentID,
				Client:           clientID,
				Amount:           optionalInt(cmd, "amount", amount),
				Currency:         currency,
				Interval:         parsedInterval,
				Name:             name,
				PeriodOfValidity: validity,
			}

			if startAt != "" {
				start, _, err := parseTime(startAt)
				if err != nil {
					return fmt.Errorf("invalid --start-at: %w", err)
				}

				request.StartAt = &start
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Create(commandContext(cmd), request)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return renderSubscription(cmd, subscription)
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "offer id")
	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id")
	cmd.Flags().StringVar(&clientID, "client", "", "client id (defaults to the payment's client)")
	cmd.Flags().StringVar(&startAt, "start-at", "", "first charge, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().IntVar(&amount, "amount", 0, "override the offer amount in minor units")
	cmd.Flags().StringVar(&currency, "currency", "", "override the offer currency")
	cmd.Flags().StringVar(&interval, "interval", "", "override the offer interval, e.g. \"1 WEEK\"")
	cmd.Flags().StringVar(&name, "name", "", "subscription name")
	cmd.Flags().StringVar(&periodOfValidity, "period-of-validity", "", "end the subscription after this period, e.g. \"1 YEAR\"")
	_ = cmd.MarkFlagRequired("offer")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}

func newSubscriptionsUpdateCommand() *cobra.Command {
	var (
		offerID          string
		paymentID        string
		amount           int
		currency         string
		interval         string
		name             string
		periodOfValidity string
	)

	cmd := &cobra.Command{
		Use:   "update SUBSCRIPTION_ID",
		Short: "Update a subscription",
		Long:  "Change a subscription. Only the given flags are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedInterval, err := optionalInterval(cmd, "interval", interval)
			if err != nil {
				return err
			}

			validity, err := optionalInterval(cmd, "period-of-validity", periodOfValidity)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Update(commandContext(cmd), args[0], &paymill.SubscriptionUpdateRequest{
				Offer:            offerID,
				Payment:          paymentID,
				Amount:           optionalInt(cmd, "amount", amount),
				Currency:         optionalString(cmd, "currency", currency),
				Interval:         parsedInterval,
				Name:             optionalString(cmd, "name", name),
				PeriodOfValidity: validity,
			})
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			return renderSubscription(cmd, subscription)
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "move to another offer")
	cmd.Flags().StringVar(&paymentID, "payment", "", "charge another payment")
	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&interval, "interval", "", "billing interval, e.g. \"1 MONTH\"")
	cmd.Flags().StringVar(&name, "name", "", "subscription name")
	cmd.Flags().StringVar(&periodOfValidity, "period-of-validity", "", "validity period, e.g. \"1 YEAR\"")

	return cmd
}

func newSubscriptionsPauseCommand(pause bool) *cobra.Command {
	use, short := "resume SUBSCRIPTION_ID", "Resume a paused subscription"
	if pause {
		use, short = "pause SUBSCRIPTION_ID", "Pause a subscription"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Update(commandContext(cmd), args[0], &paymill.SubscriptionUpdateRequest{
				Pause: &pause,
			})
			if err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}

			return renderSubscription(cmd, subscription)
		},
	}
}

func newSubscriptionsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SUBSCRIPTION_ID",
		Short: "Delete a subscription",
		Long:  "Cancel and remove a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := confirmDelete(cmd, "subscription", args[0], force)
			if err != nil || !confirmed {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Subscriptions().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete subscription: %w", err)
			}

			return reportDelete(cmd, "subscription", args[0], deleted)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func renderSubscription(cmd *cobra.Command, subscription *paymill.Subscription) error {
	return render(cmd, subscription, func(w io.Writer) error {
		return renderDetails(w, "subscription", subscription.ID, [][]string{
			{"Name", orNA(subscription.Name)},
			{"Offer", refID(subscription.Offer)},
			{"Client", refID(subscription.Client)},
			{"Payment", refID(subscription.Payment)},
			{"Amount", formatAmount(subscription.AmountFormatted(), subscription.Currency)},
			{"Interval", formatInterval(subscription.Interval)},
			{"Period of Validity", formatInterval(subscription.PeriodOfValidity)},
			{"Status", subscription.Status.DisplayName()},
			{"Canceled", formatBool(subscription.IsCanceled)},
			{"Trial", formatTimestamp(subscription.TrialStart) + " - " + formatTimestamp(subscription.TrialEnd)},
			{"Next Capture", formatTimestamp(subscription.NextCaptureAt)},
			{"Created", formatTimestamp(subscription.CreatedAt)},
			{"Updated", formatTimestamp(subscription.UpdatedAt)},
		})
	})
}
