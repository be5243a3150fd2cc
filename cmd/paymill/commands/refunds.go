package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/spf13/cobra"
)

var refundSortFields = map[string]func(*paymill.RefundOrder) *paymill.RefundOrder{
	"transaction": (*paymill.RefundOrder).ByTransaction,
	"client":      (*paymill.RefundOrder).ByClient,
	"amount":      (*paymill.RefundOrder).ByAmount,
	"created_at":  (*paymill.RefundOrder).ByCreatedAt,
}

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund"},
		Short:   "Manage refunds",
		Long:    "List refunds and refund transactions",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsCreateCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	var (
		clientID      string
		transactionID string
		amount        int
		amountGT      int
		amountLT      int
		created       string
		sort          sortFlags
		paging        pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds",
		Long:  "List refunds with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewRefundFilter()

			if clientID != "" {
				filter.ByClientID(clientID)
			}

			if transactionID != "" {
				filter.ByTransactionID(transactionID)
			}

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

			order, err := buildOrder(paymill.NewRefundOrder(), refundSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			refunds, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Refund], error) {
					return client.Refunds().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list refunds: %w", err)
			}

			return render(cmd, refunds, func(w io.Writer) error {
				return renderList(w, "refund", refunds.Items, refunds.Total,
					[]string{"ID", "Transaction", "Amount", "Status", "Description", "Created"},
					func(refund paymill.Refund) []string {
						return []string{
							refund.ID,
							refID(refund.Transaction),
							refundAmount(&refund),
							refund.Status.DisplayName(),
							truncate(orNA(refund.Description), constants.DescriptionDisplayLength),
							formatTimestamp(refund.CreatedAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "filter by client id")
	cmd.Flags().StringVar(&transactionID, "transaction", "", "filter by transaction id")
	cmd.Flags().IntVar(&amount, "amount", 0, "filter by exact amount in minor units")
	cmd.Flags().IntVar(&amountGT, "amount-gt", 0, "filter by amount greater than")
	cmd.Flags().IntVar(&amountLT, "amount-lt", 0, "filter by amount less than")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	sort.register(cmd, sortFields(refundSortFields))
	paging.register(cmd)

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REFUND_ID",
		Short: "Get refund details",
		Long:  "Display detailed information about a specific refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get refund: %w", err)
			}

			return renderRefund(cmd, refund)
		},
	}
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		amount      int
		description string
	)

	cmd := &cobra.Command{
		Use:   "create TRANSACTION_ID",
		Short: "Refund a transaction",
		Long:  "Refund all or part of a transaction's amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Create(commandContext(cmd), &paymill.RefundCreateRequest{
				Transaction: args[0],
				Amount:      amount,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create refund: %w", err)
			}

			return renderRefund(cmd, refund)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount to refund in minor units")
	cmd.Flags().StringVar(&description, "description", "", "refund description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// refundAmount uses the currency of the refunded transaction when it was
// returned in full.
func refundAmount(refund *paymill.Refund) string {
	currency := ""
	if transaction, ok := refund.Transaction.Entity(); ok {
		currency = transaction.Currency
	}

	return formatAmount(refund.AmountFormatted(), currency)
}

func renderRefund(cmd *cobra.Command, refund *paymill.Refund) error {
	return render(cmd, refund, func(w io.Writer) error {
		return renderDetails(w, "refund", refund.ID, [][]string{
			{"Transaction", refID(refund.Transaction)},
			{"Amount", refundAmount(refund)},
			{"Status", refund.Status.DisplayName()},
			{"Description", orNA(refund.Description)},
			{"Response Code", formatInt(refund.ResponseCode)},
			{"Live", formatBool(refund.Livemode)},
			{"Created", formatTimestamp(refund.CreatedAt)},
			{"Updated", formatTimestamp(refund.UpdatedAt)},
		})
	})
}
