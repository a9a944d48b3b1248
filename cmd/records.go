package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/webrequest.net/internal/render"
)

var (
	exportOutput string
	clearYes     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored submissions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all submissions to a JSON file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored submission",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeStorage, err := setupStorage(ctx, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}
	defer closeStorage()

	loc, err := setupLocation(sysCfg.DisplayConfig)
	if err != nil {
		return err
	}

	records, err := newSubmissionStore(kv, sysCfg, logger).ListAll(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No submissions yet")
		return nil
	}
	for i, card := range render.NewCards(records, loc) {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("-", 40))
		}
		fmt.Fprint(out, render.TextCard(card))
	}
	fmt.Fprintf(out, "\n%d submission(s)\n", len(records))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeStorage, err := setupStorage(ctx, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}
	defer closeStorage()

	export, err := newSubmissionStore(kv, sysCfg, logger).ExportAll(ctx)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = export.Filename
	}
	if err := os.WriteFile(path, export.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		fmt.Fprint(cmd.OutOrStdout(), "Delete every stored submission? [y/N] ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, closeStorage, err := setupStorage(ctx, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}
	defer closeStorage()

	if err := newSubmissionStore(kv, sysCfg, logger).Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Submissions cleared")
	return nil
}
