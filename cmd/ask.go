package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campus-bot/internal/engine"
)

var askSessionID string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the campus assistant a single question",
	Long: `Asks one question and prints the answer. The knowledge base is tried
first; unanswerable questions go to the configured LLM. Pass --session
to continue an earlier conversation.`,
	Args: cobra.MinimumNArgs(1),
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

		svc, _, _ := buildChatService(cfg, database)

		question := strings.Join(args, " ")
		reply, err := svc.Ask(cmd.Context(), askSessionID, "cli", engine.Query{Text: question})
		if err != nil {
			return fmt.Errorf("answering: %w", err)
		}

		fmt.Println(reply.Text)
		if reply.ImageURL != "" {
			fmt.Printf("\nImage: %s\n", reply.ImageURL)
		}
		for _, link := range reply.Links {
			fmt.Printf("- %s: %s\n", link.Title, link.URL)
		}
		if verbose {
			fmt.Printf("\n(source: %s, session: %s)\n", reply.Source, reply.SessionID)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askSessionID, "session", "", "session ID to continue a conversation")
	rootCmd.AddCommand(askCmd)
}
