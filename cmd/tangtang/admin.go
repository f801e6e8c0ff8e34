package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"tangtang/internal/api"
	"tangtang/internal/moderation"
	"tangtang/pkg/types"
)

var adminCommand = &cli.Command{
	Name:  "admin",
	Usage: "Moderate supports (admin only)",
	Subcommands: []*cli.Command{
		{
			Name:  "supports",
			Usage: "List supports for moderation",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "status", Value: string(types.SupportStatusPending)},
				&cli.IntFlag{Name: "page", Value: 1},
			},
			Action: listAdminSupports,
		},
		{
			Name:  "approve",
			Usage: "Mark a support completed, optionally attaching proof images",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true, Usage: "Support id"},
				&cli.StringFlag{Name: "note"},
				&cli.StringSliceFlag{Name: "proof", Usage: "Path to a proof image, repeatable"},
			},
			Action: approveSupport,
		},
		{
			Name:  "reject",
			Usage: "Mark a support failed; a note is required",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true, Usage: "Support id"},
				&cli.StringFlag{Name: "note", Required: true},
			},
			Action: rejectSupport,
		},
	},
}

func listAdminSupports(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	filter := types.SupportFilter{
		Status: types.SupportStatus(cCtx.String("status")),
		Page:   cCtx.Int("page"),
	}

	list, err := a.client.ListAdminSupports(cCtx.Context, filter)
	if err != nil {
		return err
	}

	for _, sup := range list.Supports {
		printSupportLine(sup)
	}
	fmt.Printf("page %d of %d (%d supports)\n", list.Page, list.Pages, list.Total)

	return nil
}

func approveSupport(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	proofs, closeFiles, err := openProofs(cCtx.StringSlice("proof"))
	if err != nil {
		return err
	}
	defer closeFiles()

	mod := moderation.New(a.client, a.logger)

	sup, err := mod.Approve(cCtx.Context, cCtx.String("id"), cCtx.String("note"), proofs)
	if err != nil {
		return err
	}

	fmt.Printf("support %s approved\n", sup.ID)
	return nil
}

func rejectSupport(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	mod := moderation.New(a.client, a.logger)

	sup, err := mod.Reject(cCtx.Context, cCtx.String("id"), cCtx.String("note"))
	if err != nil {
		return err
	}

	fmt.Printf("support %s rejected\n", sup.ID)
	return nil
}

func openProofs(paths []string) ([]api.File, func(), error) {
	var files []api.File
	var handles []*os.File

	closeAll := func() {
		for _, h := range handles {
			h.Close()
		}
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open proof %s: %w", path, err)
		}
		handles = append(handles, f)
		files = append(files, api.File{Name: filepath.Base(path), Content: f})
	}

	return files, closeAll, nil
}
