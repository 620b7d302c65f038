// Package category implements the rule management commands: listing
// categories, creating new ones and teaching keywords from user corrections.
package category

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"bankstmt/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the category command group
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories and their keyword rules",
	Long: `Category manages the keyword rule set used for categorization.
Rules are evaluated in stored order; the first matching category wins.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keywords",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a new category with an empty keyword set",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var learnCmd = &cobra.Command{
	Use:   "learn CATEGORY KEYWORD",
	Short: "Add a keyword rule to an existing category",
	Long: `Learn adds a keyword to a category and persists the rule set. This is
the feedback loop behind user corrections: reassigning a transaction with a
keyword teaches the engine to match similar transactions next load.`,
	Args: cobra.ExactArgs(2),
	Run:  learnFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(learnCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tKEYWORDS")
	for _, rule := range root.Store.Rules() {
		fmt.Fprintf(w, "%s\t%s\n", rule.Name, strings.Join(rule.Keywords, ", "))
	}
	if err := w.Flush(); err != nil {
		root.Log.WithError(err).Warn("Failed to flush category table")
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	name := args[0]

	created, err := root.Categorizer.CreateCategory(name)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to create category")
	}
	if !created {
		root.Log.WithField("category", name).Warn("Category already exists, nothing to do")
		return
	}
	fmt.Printf("Created category '%s'\n", name)
}

func learnFunc(cmd *cobra.Command, args []string) {
	name, keyword := args[0], args[1]

	learned, err := root.Categorizer.LearnKeyword(name, keyword)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to learn keyword")
	}
	if !learned {
		root.Log.WithField("category", name).Warn("Keyword rejected (empty or duplicate), nothing to do")
		return
	}
	fmt.Printf("Learned keyword '%s' for category '%s'\n", strings.TrimSpace(keyword), name)
}
