package main

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bookkeephq/bookkeep/pkg/catalog"
)

func newBooksCmd() *cobra.Command {
	booksCmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the book catalog",
	}

	booksCmd.AddCommand(newBooksListCmd())
	booksCmd.AddCommand(newBooksAddCmd())
	booksCmd.AddCommand(newBooksDeleteCmd())
	return booksCmd
}

func newBooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			books, err := client.ListBooks(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPIN\tPHONE\tSTATUS\tCREATED")
			for _, b := range books {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					b.ID, b.Name, b.Address, b.Pin, b.Phone, b.Status,
					b.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newBooksAddCmd() *cobra.Command {
	var params catalog.CreateBookParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book record",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			book, err := client.CreateBook(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", book.Name, book.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "book title")
	cmd.Flags().StringVar(&params.Address, "address", "", "shelf location")
	cmd.Flags().StringVar(&params.Pin, "pin", "", "identifying code")
	cmd.Flags().StringVar(&params.Phone, "phone", "", "inventory id")
	cmd.Flags().StringVar(&params.Status, "status", "", "status (Available, Borrowed, Reserved)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("address")
	cmd.MarkFlagRequired("pin")
	cmd.MarkFlagRequired("phone")
	return cmd
}

func newBooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			if err := client.DeleteBook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}
}

func newRoleCmd() *cobra.Command {
	roleCmd := &cobra.Command{
		Use:   "role",
		Short: "Inspect or claim role assignments",
	}

	var email string
	setCmd := &cobra.Command{
		Use:   "set <userId> <role>",
		Short: "Claim a role for an identity (first assignment is permanent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			body, code, err := client.SetRole(cmd.Context(), args[0], email, args[1])
			if err != nil {
				return err
			}
			switch code {
			case http.StatusCreated:
				fmt.Printf("assigned role %s to %s\n", body.Role, args[0])
			case http.StatusConflict:
				fmt.Printf("already assigned: %s holds role %s\n", body.UserID, body.CurrentRole)
			default:
				return fmt.Errorf("%s (status %d)", body.Message, code)
			}
			return nil
		},
	}
	setCmd.Flags().StringVar(&email, "email", "", "identity email")
	setCmd.MarkFlagRequired("email")

	getCmd := &cobra.Command{
		Use:   "get <userId>",
		Short: "Look up an identity's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			body, code, err := client.GetRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if code == http.StatusNotFound {
				return fmt.Errorf("no role assigned to %s", args[0])
			}
			fmt.Println(body.Role)
			return nil
		},
	}

	roleCmd.AddCommand(setCmd)
	roleCmd.AddCommand(getCmd)
	return roleCmd
}
