package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "campusbot",
	Short: "Hybrid campus enquiry chatbot",
	Long: `Campusbot answers student questions about courses, fees, admissions,
exams and campus facilities. A curated knowledge base is matched first
with tiered heuristic scoring; questions it cannot answer confidently
are escalated to a configured LLM, optionally with generated
illustrative images.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".campusbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
