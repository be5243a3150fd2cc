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

var clientSortFields = map[string]func(*paymill.ClientOrder) *paymill.ClientOrder{
	"email":       (*paymill.ClientOrder).ByEmail,
	"description": (*paymill.ClientOrder).ByDescription,
	"created_at":  (*paymill.ClientOrder).ByCreatedAt,
}

// NewClientsCommand creates the clients command group.
func NewClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client", "customers"},
		Short:   "Manage clients",
		Long:    "List and manage the merchant's clients",
	}

	cmd.AddCommand(newClientsListCommand())
	cmd.AddCommand(newClientsGetCommand())
	cmd.AddCommand(newClientsCreateCommand())
	cmd.AddCommand(newClientsUpdateCommand())
	cmd.AddCommand(newClientsDeleteCommand())

	return cmd
}

func newClientsListCommand() *cobra.Command {
	var (
		paymentID   string
		email       string
		description string
		created     string
		sort        sortFlags
		paging      pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Long:  "List clients with optional filtering and ordering",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := paymill.NewClientFilter()

			if paymentID != "" {
				filter.ByPaymentID(paymentID)
			}

			if email != "" {
				filter.ByEmail(email)
			}

			if description != "" {
				filter.ByDescription(description)
			}

			if created != "" {
				start, end, err := parseDateRange(created)
				if err != nil {
					return err
				}

				filter.ByCreatedAt(start, end)
			}

			order, err := buildOrder(paymill.NewClientOrder(), clientSortFields, sort)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			clients, err := fetchPages(commandContext(cmd), paging,
				func(ctx context.Context, page *paymill.Page) (*paymill.ListResponse[paymill.Client], error) {
					return client.Clients().List(ctx, filter, order, page)
				})
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			return render(cmd, clients, func(w io.Writer) error {
				return renderList(w, "client", clients.Items, clients.Total,
					[]string{"ID", "Email", "Description", "Payments", "Subscriptions", "Created"},
					func(c paymill.Client) []string {
						return []string{
							c.ID,
							orNA(c.Email),
							truncate(orNA(c.Description), constants.DescriptionDisplayLength),
							strconv.Itoa(len(c.Payment)),
							strconv.Itoa(len(c.Subscription)),
							formatTimestamp(c.CreatedAt),
						}
					})
			})
		},
	}

	cmd.Flags().StringVar(&paymentID, "payment", "", "filter by payment id")
	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().StringVar(&description, "description", "", "filter by description")
	cmd.Flags().StringVar(&created, "created", "", "filter by creation date range START..END")
	sort.register(cmd, sortFields(clientSortFields))
	paging.register(cmd)

	return cmd
}

func newClientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLIENT_ID",
		Short: "Get client details",
		Long:  "Display detailed information about a specific client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			c, err := client.Clients().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}

			return renderClient(cmd, c)
		},
	}
}

func newClientsCreateCommand() *cobra.Command {
	var (
		email       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		Long:  "Create a client. Both email and description are optional.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			c, err := client.Clients().Create(commandContext(cmd), &paymill.ClientCreateRequest{
				Email:       email,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			return renderClient(cmd, c)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "client email")
	cmd.Flags().StringVar(&description, "description", "", "client description")

	return cmd
}

func newClientsUpdateCommand() *cobra.Command {
	var (
		email       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update CLIENT_ID",
		Short: "Update a client",
		Long:  "Change a client. Only the given flags are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			c, err := client.Clients().Update(commandContext(cmd), args[0], &paymill.ClientUpdateRequest{
				Email:       optionalString(cmd, "email", email),
				Description: optionalString(cmd, "description", description),
			})
			if err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}

			return renderClient(cmd, c)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "client email")
	cmd.Flags().StringVar(&description, "description", "", "client description")

	return cmd
}

func newClientsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CLIENT_ID",
		Short: "Delete a client",
		Long:  "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, err := confirmDelete(cmd, "client", args[0], force)
			if err != nil || !confirmed {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Clients().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete client: %w", err)
			}

			return reportDelete(cmd, "client", args[0], deleted)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func renderClient(cmd *cobra.Command, c *paymill.Client) error {
	return render(cmd, c, func(w io.Writer) error {
		return renderDetails(w, "client", c.ID, [][]string{
			{"Email", orNA(c.Email)},
			{"Description", orNA(c.Description)},
			{"Payments", joinIDs(c.Payment.IDs())},
			{"Subscriptions", joinIDs(c.Subscription.IDs())},
			{"Created", formatTimestamp(c.CreatedAt)},
			{"Updated", formatTimestamp(c.UpdatedAt)},
		})
	})
}
