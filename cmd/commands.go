package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/config"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/pizzeria"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pizzeria",
		Short: "Order pizzas from stores built on different creational strategies",
		Long: `Order pizzas from stores built on a simple factory, a factory method
or an abstract factory, and list what every store can make.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newOrderCmd(), newMenuCmd())
	return root
}

func newOrderCmd() *cobra.Command {
	var (
		storeKey string
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "order [pizza-type]",
		Short: "Order one pizza and print each lifecycle step",
		Long: `Order one pizza from a store and print each lifecycle step.

Available stores: ` + strings.Join(pizzeria.Keys(), ", ") + `

Examples:
  # NY store, cheese pizza
  pizzeria order

  # Chicago clam pizza from the ingredient-driven store
  pizzeria order clam --store chicago

  # Veggie pizza from the simple factory, summary as YAML
  pizzeria order veggie -s simple --yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pizzaType := models.PizzaTypeCheese
			if len(args) == 1 {
				parsed, err := models.ParsePizzaType(args[0])
				if err != nil {
					return err
				}
				pizzaType = parsed
			}
			if storeKey == "" {
				storeKey = configuration.Store
			}
			return runOrder(cmd, configuration, storeKey, pizzaType, asYAML)
		},
	}

	cmd.Flags().StringVarP(&storeKey, "store", "s", "", "store key (default from PIZZA_STORE)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the order summary as YAML")
	return cmd
}

func runOrder(cmd *cobra.Command, conf *config.Config, storeKey string, pizzaType models.PizzaType, asYAML bool) error {
	out := cmd.OutOrStdout()

	var opts []services.StoreOption
	if conf.PrintSteps {
		opts = append(opts, services.WithObserver(services.NewWriterObserver(out)))
	}

	summary, err := pizzeria.Order(cmd.Context(), storeKey, pizzaType, opts...)
	if err != nil {
		return err
	}
	return writeSummary(out, summary, asYAML)
}

func writeSummary(w io.Writer, summary models.PizzaSummary, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Pizza: %s (order %s, %s)\n", summary.Name, summary.OrderID, summary.Store)
	for _, ingredient := range summary.Ingredients {
		fmt.Fprintf(w, "  %s\n", ingredient)
	}
	return nil
}

func newMenuCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List every store and the pizzas it makes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = configuration.MenuFormat
			}
			return pizzeria.WriteMenu(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or yaml (default from MENU_FORMAT)")
	return cmd
}
