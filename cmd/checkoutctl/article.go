package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/spf13/cobra"
)

func articleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Inspect and create articles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			svc, err := articleService(db, log)
			if err != nil {
				return err
			}

			list, err := svc.ListArticles(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE")
			for _, a := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Name, a.Price)
			}
			return w.Flush()
		},
	})

	var name, price string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a single article",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.Parse(price)
			if err != nil {
				return fmt.Errorf("bad price %q: %w", price, err)
			}

			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			svc, err := articleService(db, log)
			if err != nil {
				return err
			}

			a, err := svc.CreateArticle(cmd.Context(), domain.CreateArticleRequest{Name: name, Price: p})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created article %d\n", a.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "article name")
	add.Flags().StringVar(&price, "price", "", "article price, e.g. 3.99")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("price")
	cmd.AddCommand(add)

	return cmd
}
