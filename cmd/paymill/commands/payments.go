package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/spf13/cobra"
)

var paymentSortFields = map[string]func(*paymill.PaymentOrder) *paymill.PaymentOrder{
	"created_at": (*paymill.PaymentOrder).ByCreatedAt,
}

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Manage payments",
		Long:    "List and manage stored credit cards and debit accounts",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsDeleteCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		cardType string
		created  string
		sort     sortFlags
		paging   pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Long:  "List payments with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewPaymentFilter()

			if cardType != "" {
				filter.ByCardType(cardType)
			}

			if created != "" {
				start, end, err := parseDateRange(created)
				if err != nil {
					return err
				}

				filter.ByCreatedAt(start, end)
			}

			order, err := buildOrder(paymill.NewPaymentOrder(), paymentSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payments, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Payment], error) {
					return client.Payments().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			return render(cmd, payments, func(w io.Writer) error {
				return renderList(w, "payment", payments.Items, payments.Total,
					[]string{"ID", "Type", "Client", "Holder", "Number", "Created"},
					func(payment paymill.Payment) []string {
						return []string{
							payment.ID,
							payment.Type.DisplayName(),
							refID(payment.Client),
							paymentHolder(&payment),
							paymentNumber(&payment),
							formatTimestamp(payment.CreatedAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&cardType, "card-type", "", "filter by card type, e.g. visa")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	sort.register(cmd, sortFields(paymentSortFields))
	paging.register(cmd)

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Get payment details",
		Long:  "Display detailed information about a specific payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}
}

func newPaymentsCreateCommand() *cobra.Command {
	var (
		token    string
		clientID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		Long:  "Store a payment from a bridge token, optionally attached to a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Create(commandContext(cmd), &paymill.PaymentCreateRequest{
				Token:  token,
				Client: clientID,
			})
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bridge token")
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newPaymentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PAYMENT_ID",
		Short: "Delete a payment",
		Long:  "Delete a stored payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := confirmDelete(cmd, "payment", args[0], force)
			if err != nil || !confirmed {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Payments().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete payment: %w", err)
			}

			return reportDelete(cmd, "payment", args[0], deleted)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func paymentHolder(payment *paymill.Payment) string {
	return orNA(orDefault(payment.CardHolder, payment.Holder))
}

// paymentNumber shows the masked card number or the debit account.
func paymentNumber(payment *paymill.Payment) string {
	switch {
	case payment.Last4 != "":
		return "**** " + payment.Last4
	case payment.IBAN != "":
		return payment.IBAN
	default:
		return orNA(payment.Account)
	}
}

func renderPayment(cmd *cobra.Command, payment *paymill.Payment) error {
	return render(cmd, payment, func(w io.Writer) error {
		properties := [][]string{
			{"Type", payment.Type.DisplayName()},
			{"Client", refID(payment.Client)},
			{"Holder", paymentHolder(payment)},
			{"Number", paymentNumber(payment)},
		}

		if payment.CardType != "" {
			properties = append(properties,
				[]string{"Card Type", payment.CardType},
				[]string{"Expires", fmt.Sprintf("%02d/%d", payment.ExpireMonth.Int(), payment.ExpireYear.Int())},
				[]string{"Country", orNA(payment.Country)},
			)
		}

		if payment.BIC != "" || payment.Code != "" {
			properties = append(properties, []string{"Bank Code", orNA(orDefault(payment.BIC, payment.Code))})
		}

		properties = append(properties,
			[]string{"Created", formatTimestamp(payment.CreatedAt)},
			[]string{"Updated", formatTimestamp(payment.UpdatedAt)},
		)

		return renderDetails(w, "payment", payment.ID, properties)
	})
}
