package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"tangtang/internal/validate"
	"tangtang/internal/vnd"
	"tangtang/pkg/types"
)

var supportCommand = &cli.Command{
	Name:  "support",
	Usage: "Pledge money or items toward a case",
	Subcommands: []*cli.Command{
		{
			Name:  "submit",
			Usage: "Submit a support",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "case", Required: true, Usage: "Case id"},
				&cli.Int64Flag{Name: "amount", Usage: "Amount in VND"},
				&cli.StringSliceFlag{Name: "item", Usage: "Pledged item as itemId:quantity, repeatable"},
				&cli.StringFlag{Name: "message"},
				&cli.StringFlag{Name: "payment", Value: string(types.PaymentTransfer), Usage: "transfer or momo"},
				&cli.StringFlag{Name: "transaction-id", Usage: "Bank transfer reference"},
				&cli.BoolFlag{Name: "anonymous"},
			},
			Action: submitSupport,
		},
		{
			Name:   "mine",
			Usage:  "List your own supports",
			Action: listMySupports,
		},
	},
}

func submitSupport(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	caseID := cCtx.String("case")

	// The case decides which tracks a support may use, so fetch it first.
	c, err := a.client.GetCase(cCtx.Context, caseID)
	if err != nil {
		return err
	}

	choices, items, err := pledgedItems(cCtx.StringSlice("item"), c.NeededItems)
	if err != nil {
		return err
	}

	input := validate.SupportInput{
		SupportType:   c.SupportType,
		Amount:        cCtx.Int64("amount"),
		Items:         choices,
		PaymentMethod: types.PaymentMethod(cCtx.String("payment")),
		TransactionID: cCtx.String("transaction-id"),
	}
	if err := validate.Support(input); err != nil {
		return err
	}

	draft := types.SupportDraft{
		Amount:        input.Amount,
		Items:         items,
		Message:       cCtx.String("message"),
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Anonymous:     cCtx.Bool("anonymous"),
	}

	sup, err := a.client.SubmitSupport(cCtx.Context, caseID, draft)
	if err != nil {
		return err
	}

	fmt.Printf("support %s submitted, status %s\n", sup.ID, sup.Status)
	return nil
}

func listMySupports(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	supports, err := a.client.ListMySupports(cCtx.Context)
	if err != nil {
		return err
	}

	for _, sup := range supports {
		printSupportLine(sup)
	}

	return nil
}

// pledgedItems resolves itemId:quantity flags against the case's needed-item
// list, producing both the validator's view and the wire payload.
func pledgedItems(raw []string, needed []types.NeededItem) ([]validate.ItemChoice, []types.SupportItem, error) {
	byID := make(map[string]types.NeededItem, len(needed))
	for _, item := range needed {
		byID[item.ID] = item
	}

	var choices []validate.ItemChoice
	var items []types.SupportItem

	for _, entry := range raw {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("invalid --item %q, want itemId:quantity", entry)
		}

		qty, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid quantity in --item %q: %w", entry, err)
		}

		item, ok := byID[parts[0]]
		if !ok {
			return nil, nil, fmt.Errorf("case has no needed item %q", parts[0])
		}

		choices = append(choices, validate.ItemChoice{ItemID: item.ID, Selected: true, DonateQuantity: qty})
		items = append(items, types.SupportItem{ItemID: item.ID, Name: item.Name, Quantity: qty, Unit: item.Unit})
	}

	return choices, items, nil
}

func printSupportLine(sup types.Support) {
	who := "anonymous"
	if !sup.Anonymous && sup.User != nil {
		who = sup.User.Name
	}

	parts := []string{fmt.Sprintf("%s  %-10s  %s", sup.ID, sup.Status, who)}
	if sup.Amount > 0 {
		parts = append(parts, vnd.Format(sup.Amount))
	}
	for _, item := range sup.Items {
		parts = append(parts, fmt.Sprintf("%d %s %s", item.Quantity, item.Unit, item.Name))
	}

	fmt.Println(strings.Join(parts, "  "))
}
