package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"telecine/internal/encoder"
	"telecine/internal/naming"
	"telecine/internal/scrapecache"
	"telecine/internal/scraper"
	"telecine/internal/services"
	"telecine/internal/workflow"
)

func newRetagCommand(ctx *commandContext) *cobra.Command {
	var (
		libraryDir  string
		profileFlag string
		copyFile    bool
		overwrite   bool
	)

	cmd := &cobra.Command{
		Use:   "retag <file>...",
		Short: "Rewrite container metadata and relocate into the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if libraryDir == "" {
				libraryDir = cfg.Paths.LibraryDir
			}
			if profileFlag == "" {
				profileFlag = cfg.Naming.Profile
			}
			profile, err := naming.ParseProfile(profileFlag)
			if err != nil {
				return err
			}

			runner := encoder.New(cfg.Tools.FFmpeg, cfg.Tools.MKVPropEdit, logger)
			retagger := workflow.NewRetagger(cfg, runner, logger)

			source, err := scraper.New(cfg.Scraper.Name)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			if source != nil {
				cachePath := cfg.Scraper.CachePath
				if cachePath == "" {
					cachePath = filepath.Join(cfg.Paths.CacheDir, "scrape.db")
				}
				cache, cacheErr := scrapecache.Open(cachePath)
				if cacheErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: scrape cache unavailable: %v\n", cacheErr)
				} else {
					defer cache.Close()
				}
				retagger.WithScraper(source, cache)
			}

			failed := 0
			for _, input := range args {
				result, err := retagger.Retag(cmd.Context(), workflow.RetagRequest{
					InputPath:  input,
					LibraryDir: libraryDir,
					Profile:    profile,
					Copy:       copyFile,
					Overwrite:  overwrite,
				})
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", input, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "placed: %s\n", result.FinalPath)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&libraryDir, "library", "", "Library directory (defaults to paths.library_dir)")
	cmd.Flags().StringVar(&profileFlag, "profile", "", "Naming profile: standard, plex, emby, or jellyfin")
	cmd.Flags().BoolVar(&copyFile, "copy", false, "Copy into the library instead of moving")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file at the destination")

	return cmd
}
