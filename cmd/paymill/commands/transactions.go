package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/spf13/cobra"
)

var transactionSortFields = map[string]func(*paymill.TransactionOrder) *paymill.TransactionOrder{
	"created_at": (*paymill.TransactionOrder).ByCreatedAt,
	"amount":     (*paymill.TransactionOrder).ByAmount,
}

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "Manage transactions",
		Long:    "List, inspect and create charges",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())
	cmd.AddCommand(newTransactionsCreateCommand())
	cmd.AddCommand(newTransactionsUpdateCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var (
		clientID    string
		paymentID   string
		amount      int
		amountGT    int
		amountLT    int
		description string
		status      string
		created     string
		updated     string
		sort        sortFlags
		paging      pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  "List transactions with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewTransactionFilter()

			if clientID != "" {
				filter.ByClientID(clientID)
			}

			if paymentID != "" {
				filter.ByPaymentID(paymentID)
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

			if description != "" {
				filter.ByDescription(description)
			}

			if status != "" {
				if _, ok := paymill.TransactionStatuses.Lookup(status); !ok {
					return fmt.Errorf("%w: %q", constants.ErrInvalidStatus, status)
				}

				filter.ByStatus(paymill.TransactionStatuses.Parse(status))
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

			order, err := buildOrder(paymill.NewTransactionOrder(), transactionSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			transactions, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Transaction], error) {
					return client.Transactions().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return render(cmd, transactions, func(w io.Writer) error {
				return renderList(w, "transaction", transactions.Items, transactions.Total,
					[]string{"ID", "Amount", "Status", "Client", "Payment", "Description", "Created"},
					func(transaction paymill.Transaction) []string {
						return []string{
							transaction.ID,
							formatAmount(transaction.AmountFormatted(), transaction.Currency),
							transaction.Status.DisplayName(),
							refID(transaction.Client),
							refID(transaction.Payment),
							truncate(orNA(transaction.Description), constants.DescriptionDisplayLength),
							formatTimestamp(transaction.CreatedAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "filter by client id")
	cmd.Flags().StringVar(&paymentID, "payment", "", "filter by payment id")
	cmd.Flags().IntVar(&amount, "amount", 0, "filter by exact amount in minor units")
	cmd.Flags().IntVar(&amountGT, "amount-gt", 0, "filter by amount greater than")
	cmd.Flags().IntVar(&amountLT, "amount-lt", 0, "filter by amount less than")
	cmd.Flags().StringVar(&description, "description", "", "filter by description")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, pending, closed, failed, partial_refunded, refunded, preauthorize, chargeback)")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	cmd.Flags().StringVar(&updated, "updated", "", "filter by update date range START..END")
	sort.register(cmd, sortFields(transactionSortFields))
	paging.register(cmd)

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction details",
		Long:  "Display detailed information about a specific transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			return renderTransaction(cmd, transaction)
		},
	}
}

func newTransactionsCreateCommand() *cobra.Command {
	var (
		amount      int
		currency    string
		paymentID   string
		token       string
		clientID    string
		description string
		feeAmount   int
		feePayment  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transaction",
		Long:  "Charge a stored payment or a bridge token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Create(commandContext(cmd), &paymill.TransactionCreateRequest{
				Amount:      amount,
				Currency:    currency,
				Payment:     paymentID,
				Token:       token,
				Client:      clientID,
				Description: description,
				FeeAmount:   optionalInt(cmd, "fee-amount", feeAmount),
				FeePayment:  feePayment,
			})
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			return renderTransaction(cmd, transaction)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "amount in minor units, e.g. 4200 for 42.00")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")
	cmd.Flags().StringVar(&paymentID, "payment", "", "payment id to charge")
	cmd.Flags().StringVar(&token, "token", "", "bridge token to charge")
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().StringVar(&description, "description", "", "transaction description")
	cmd.Flags().IntVar(&feeAmount, "fee-amount", 0, "application fee in minor units")
	cmd.Flags().StringVar(&feePayment, "fee-payment", "", "payment id receiving the fee")
	cmd.MarkFlagsMutuallyExclusive("payment", "token")
	cmd.MarkFlagsOneRequired("payment", "token")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsUpdateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update TRANSACTION_ID",
		Short: "Update a transaction",
		Long:  "Change the description of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Update(commandContext(cmd), args[0], &paymill.TransactionUpdateRequest{
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			return renderTransaction(cmd, transaction)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "transaction description")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func renderTransaction(cmd *cobra.Command, transaction *paymill.Transaction) error {
	return render(cmd, transaction, func(w io.Writer) error {
		return renderDetails(w, "transaction", transaction.ID, [][]string{
			{"Amount", formatAmount(transaction.AmountFormatted(), transaction.Currency)},
			{"Origin Amount", formatInt(transaction.OriginAmount)},
			{"Status", transaction.Status.DisplayName()},
			{"Successful", formatBool(transaction.Successful())},
			{"Response Code", strconv.Itoa(transaction.ResponseCode.Int())},
			{"Description", orNA(transaction.Description)},
			{"Client", refID(transaction.Client)},
			{"Payment", refID(transaction.Payment)},
			{"Refunds", joinIDs(transaction.Refunds.IDs())},
			{"Short ID", orNA(transaction.ShortID)},
			{"Live", formatBool(transaction.Livemode)},
			{"Fraud", formatBool(transaction.IsFraud)},
			{"Created", formatTimestamp(transaction.CreatedAt)},
			{"Updated", formatTimestamp(transaction.UpdatedAt)},
		})
	})
}
