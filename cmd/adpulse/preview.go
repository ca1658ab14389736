package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dlautopecas/adpulse/internal/cli"
	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/ingest"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file.xlsx>",
		Short: "Normalize a campaign export and print the canonical rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	cmd.Flags().String("sheet", ingest.DefaultSheetName, "workbook sheet to read")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	sheet, _ := cmd.Flags().GetString("sheet")

	rows, err := ingest.LoadWorkbook(args[0], sheet)
	if err != nil {
		return err
	}

	ads, err := ingest.Normalize(rows)
	if err != nil {
		return err
	}

	if len(ads) == 0 {
		return common.NewUserError("the spreadsheet contains no ad rows", common.ErrEmptySheet)
	}

	cli.PrintAds(os.Stdout, ads)

	return nil
}
