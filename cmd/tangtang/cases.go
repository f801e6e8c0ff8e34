package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"

	"tangtang/internal/progress"
	"tangtang/internal/utils"
	"tangtang/internal/validate"
	"tangtang/internal/vnd"
	"tangtang/pkg/types"
)

var casesCommand = &cli.Command{
	Name:  "cases",
	Usage: "Browse and manage cases",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List cases",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}},
				&cli.IntFlag{Name: "page", Value: 1},
				&cli.StringFlag{Name: "category"},
				&cli.StringFlag{Name: "support-type"},
			},
			Action: listCases,
		},
		{
			Name:      "show",
			Usage:     "Show one case with its progress and recent supports",
			ArgsUsage: "<case-id>",
			Action:    showCase,
		},
		{
			Name:   "create",
			Usage:  "Publish a new case",
			Flags:  caseDraftFlags,
			Action: createCase,
		},
		{
			Name:  "update",
			Usage: "Update an existing case",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
			}, caseDraftFlags...),
			Action: updateCase,
		},
		{
			Name:      "delete",
			Usage:     "Delete a case",
			ArgsUsage: "<case-id>",
			Action:    deleteCase,
		},
	},
}

var caseDraftFlags = []cli.Flag{
	&cli.StringFlag{Name: "title", Required: true},
	&cli.StringFlag{Name: "description"},
	&cli.StringFlag{Name: "category", Value: string(types.CategoryOther)},
	&cli.StringFlag{Name: "support-type", Value: string(types.SupportTypeMoney)},
	&cli.Int64Flag{Name: "target", Usage: "Target amount in VND"},
	&cli.StringSliceFlag{Name: "item", Usage: "Needed item as name:unit:quantity, repeatable"},
	&cli.StringFlag{Name: "end-date", Usage: "Deadline as YYYY-MM-DD"},
}

func listCases(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	filter := types.CaseFilter{
		Keyword:     cCtx.String("keyword"),
		Page:        cCtx.Int("page"),
		Category:    types.CaseCategory(cCtx.String("category")),
		SupportType: types.SupportType(cCtx.String("support-type")),
	}

	list, err := a.client.ListCases(cCtx.Context, filter)
	if err != nil {
		return err
	}

	if a.debug {
		pp.Println(list)
	}

	for _, c := range list.Cases {
		printCaseLine(c)
	}
	fmt.Printf("page %d of %d (%d cases)\n", list.Page, list.Pages, list.Total)

	return nil
}

func showCase(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	id := cCtx.Args().First()
	if id == "" {
		return fmt.Errorf("usage: tangtang cases show <case-id>")
	}

	c, err := a.client.GetCase(cCtx.Context, id)
	if err != nil {
		return err
	}

	if a.debug {
		pp.Println(c)
	}

	printCaseDetail(*c)
	return nil
}

func createCase(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	draft, err := caseDraftFromFlags(cCtx)
	if err != nil {
		return err
	}

	if err := validate.Case(*draft, time.Now()); err != nil {
		return err
	}

	c, err := a.client.CreateCase(cCtx.Context, *draft)
	if err != nil {
		return err
	}

	fmt.Printf("case created: %s (%s)\n", c.Title, c.ID)
	return nil
}

func updateCase(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	draft, err := caseDraftFromFlags(cCtx)
	if err != nil {
		return err
	}

	if err := validate.Case(*draft, time.Now()); err != nil {
		return err
	}

	c, err := a.client.UpdateCase(cCtx.Context, cCtx.String("id"), *draft)
	if err != nil {
		return err
	}

	fmt.Printf("case updated: %s (%s)\n", c.Title, c.ID)
	return nil
}

func deleteCase(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	id := cCtx.Args().First()
	if id == "" {
		return fmt.Errorf("usage: tangtang cases delete <case-id>")
	}

	if err := a.client.DeleteCase(cCtx.Context, id); err != nil {
		return err
	}

	fmt.Printf("case %s deleted\n", id)
	return nil
}

func caseDraftFromFlags(cCtx *cli.Context) (*types.CaseDraft, error) {
	draft := &types.CaseDraft{
		Title:        cCtx.String("title"),
		Description:  cCtx.String("description"),
		Category:     types.CaseCategory(cCtx.String("category")),
		SupportType:  types.SupportType(cCtx.String("support-type")),
		TargetAmount: cCtx.Int64("target"),
	}

	for _, raw := range cCtx.StringSlice("item") {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid --item %q, want name:unit:quantity", raw)
		}
		qty, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in --item %q: %w", raw, err)
		}
		draft.NeededItems = append(draft.NeededItems, types.NeededItem{
			Name:     parts[0],
			Unit:     parts[1],
			Quantity: qty,
		})
	}

	if raw := cCtx.String("end-date"); raw != "" {
		end, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --end-date %q: %w", raw, err)
		}
		draft.EndDate = utils.TimePtr(end.Add(24*time.Hour - time.Second))
	}

	return draft, nil
}

func printCaseLine(c types.Case) {
	s := progress.Summarize(c, time.Now())
	fmt.Printf("%s  %-40s  %s  %3d%%  %s\n", c.ID, truncate(c.Title, 40), c.Status, s.Overall, deadlineText(s.Deadline))
}

func printCaseDetail(c types.Case) {
	s := progress.Summarize(c, time.Now())

	fmt.Printf("%s\n", c.Title)
	fmt.Printf("  category: %s  status: %s  supporters: %d  %s\n", c.Category, c.Status, c.SupportCount, deadlineText(s.Deadline))

	if c.SupportType == types.SupportTypeMoney || c.SupportType == types.SupportTypeBoth {
		fmt.Printf("  money: %s / %s (%d%%)\n", vnd.Format(c.CurrentAmount), vnd.Format(c.TargetAmount), s.MoneyPercent)
	}

	if c.SupportType == types.SupportTypeItems || c.SupportType == types.SupportTypeBoth {
		fmt.Printf("  items: %d%%\n", s.ItemsPercent)
		for _, item := range c.NeededItems {
			fmt.Printf("    %s [%s]: %d/%d %s (%d%%)\n", item.Name, item.ID, item.ReceivedQuantity, item.Quantity, item.Unit, progress.ItemPercent(item))
		}
	}

	if len(c.RecentSupports) > 0 {
		fmt.Println("  recent supports:")
		for _, sup := range c.RecentSupports {
			printSupportLine(sup)
		}
	}
}

func deadlineText(d progress.Days) string {
	switch d.State {
	case progress.NoDeadline:
		return "no deadline"
	case progress.Expired:
		return "expired"
	case progress.DueToday:
		return "due today"
	default:
		return fmt.Sprintf("%d days left", d.Count)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
