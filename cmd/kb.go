package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campus-bot/internal/knowledge"
	"github.com/ziadkadry99/campus-bot/internal/progress"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage the curated knowledge base",
}

var kbImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import knowledge entries from YAML/JSON files",
	Long: `Walks a directory and imports every entry file matching the configured
glob patterns. Files that fail to parse are skipped and reported, not
fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		store := knowledge.NewStore(database)
		reporter := progress.NewReporter()
		reporter.Start(-1)
		seen := 0
		stats, err := knowledge.ImportDir(cmd.Context(), store, args[0], cfg.Import.Patterns, func(path string) {
			seen++
			reporter.Update(seen, path)
		})
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("importing from %s: %w", args[0], err)
		}

		fmt.Printf("Imported %d entries from %d files (%d skipped)\n",
			stats.Imported, stats.Files, stats.Skipped)
		return nil
	},
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all knowledge base entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		entries, err := knowledge.NewStore(database).Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("The knowledge base is empty. Run `campusbot kb import <dir>` to load entries.")
			return nil
		}
		for _, e := range entries {
			if e.Category != "" {
				fmt.Printf("%s  [%s] %s\n", e.ID, e.Category, e.Question)
			} else {
				fmt.Printf("%s  %s\n", e.ID, e.Question)
			}
		}
		fmt.Printf("\n%d entries\n", len(entries))
		return nil
	},
}

var (
	kbAddCategory string
	kbAddImage    string
	kbAddKeywords string
)

var kbAddCmd = &cobra.Command{
	Use:   "add [question] [answer]",
	Short: "Add a single knowledge base entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		entry := knowledge.Entry{
			Question: args[0],
			Answer:   args[1],
			Category: kbAddCategory,
			ImageURL: kbAddImage,
		}
		if kbAddKeywords != "" {
			for _, kw := range strings.Split(kbAddKeywords, ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					entry.Keywords = append(entry.Keywords, kw)
				}
			}
		}

		created, err := knowledge.NewStore(database).Create(cmd.Context(), entry)
		if err != nil {
			return err
		}
		fmt.Printf("Added entry %s\n", created.ID)
		return nil
	},
}

func init() {
	kbAddCmd.Flags().StringVar(&kbAddCategory, "category", "", "entry category")
	kbAddCmd.Flags().StringVar(&kbAddImage, "image", "", "curated image URL for the answer")
	kbAddCmd.Flags().StringVar(&kbAddKeywords, "keywords", "", "comma-separated keyword phrases")

	kbCmd.AddCommand(kbImportCmd)
	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbAddCmd)
	rootCmd.AddCommand(kbCmd)
}
