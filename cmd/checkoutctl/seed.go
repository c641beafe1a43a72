package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MikeRez0/checkout/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// catalog is the seed file format:
//
//	articles:
//	  - name: Coffee
//	    price: "3.99"
type catalog struct {
	Articles []catalogArticle `yaml:"articles"`
}

type catalogArticle struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

func parseCatalog(r io.Reader) ([]domain.CreateArticleRequest, error) {
	var c catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	reqs := make([]domain.CreateArticleRequest, 0, len(c.Articles))
	for i, a := range c.Articles {
		price, err := decimal.Parse(a.Price)
		if err != nil {
			return nil, fmt.Errorf("article %d (%s): bad price %q: %w", i, a.Name, a.Price, err)
		}
		reqs = append(reqs, domain.CreateArticleRequest{Name: a.Name, Price: price})
	}
	return reqs, nil
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the articles listed in a YAML catalog file",
		Example: `  checkoutctl seed -f catalog.yaml
  cat catalog.yaml | checkoutctl seed -f -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			reqs, err := parseCatalog(in)
			if err != nil {
				return err
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

			created, err := svc.CreateArticles(cmd.Context(), reqs)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty, nothing created")
				return nil
			}
			for _, a := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", a.ID, a.Name, a.Price)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file, - for stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
