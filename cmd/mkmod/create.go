// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mkmod-cli/internal/config"
	"mkmod-cli/internal/issue"
	"mkmod-cli/pkg/rustmod"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func runCreate(cmd *cobra.Command, args []string) error {
	opts := optionsFromFlags(args[0])

	log.Debug("scaffolding module",
		"path", opts.Path,
		"kind", opts.Kind,
		"visibility", opts.Visibility,
		"with_test", opts.WithTest,
		"add_to_parent", opts.AddToParent)

	res, err := rustmod.Create(opts)
	if err != nil {
		renderIssueFor(err)
		return &ExitError{Code: 1, Err: err}
	}

	printSummary(res)
	return nil
}

// optionsFromFlags merges CLI flags over config defaults into the immutable
// option set the pipeline runs on.
func optionsFromFlags(path string) rustmod.Options {
	opts := rustmod.Options{
		Path:        path,
		Kind:        rustmod.KindFile,
		Visibility:  rustmod.VisibilityPublic,
		WithTest:    cfg.WithTest,
		AddToParent: cfg.AddToParent,
		ParentMain:  flagMain,
		RootMarker:  cfg.RootMarker,
	}
	if flagDir {
		opts.Kind = rustmod.KindDir
	}
	if flagPrivate || cfg.DefaultVisibility == config.VisibilityPrivate {
		opts.Visibility = rustmod.VisibilityPrivate
	}
	if flagNoTest {
		opts.WithTest = false
	}
	if flagNoAdd {
		opts.AddToParent = false
	}
	return opts
}

// printSummary reports the created files and the registration outcome.
func printSummary(res *rustmod.Result) {
	fmt.Printf("%s Module created successfully\n", successIcon)
	fmt.Println()
	fmt.Printf("%s Module file: %s\n", infoIcon, PathStyle.Render(res.ModuleFile))
	if res.TestFile != "" {
		fmt.Printf("%s Test file:   %s\n", infoIcon, PathStyle.Render(res.TestFile))
	}

	switch {
	case res.ParentErr != nil:
		// Non-fatal: the module exists, only the declaration is missing.
		log.Warn("module not registered", "reason", res.ParentErr)
		fmt.Fprintf(os.Stderr, "%s %s\n", warnIcon,
			WarningStyle.Render("no parent module file found; add the mod declaration by hand"))
		renderIssueCard(issue.ParentModuleNotFoundId)
	case res.Declared:
		fmt.Printf("%s Registered in %s\n", infoIcon, PathStyle.Render(res.ParentFile))
	case res.ParentFile != "":
		fmt.Printf("%s Already declared in %s\n", infoIcon, PathStyle.Render(res.ParentFile))
	}
}

// cardOut is where issue cards are printed; swapped out in tests.
var cardOut io.Writer = os.Stderr

// renderIssueFor prints the markdown help card matching a fatal scaffolding
// error, when one exists.
func renderIssueFor(err error) {
	if id, ok := issueIDFor(err); ok {
		renderIssueCard(id)
	}
}

// issueIDFor maps a scaffolding error to its help card.
func issueIDFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, rustmod.ErrInvalidPath):
		return issue.InvalidModulePathId, true
	case errors.Is(err, rustmod.ErrAlreadyExists):
		return issue.ModuleAlreadyExistsId, true
	case errors.Is(err, rustmod.ErrNoRootFound):
		return issue.CrateRootNotFoundId, true
	case errors.Is(err, rustmod.ErrParentNotFound):
		return issue.ParentModuleNotFoundId, true
	}
	return 0, false
}

// renderIssueCard prints one markdown help card to stderr.
func renderIssueCard(id issue.Id) {
	card, err := issue.Get(id).Render("auto")
	if err != nil {
		log.Debug("failed to render issue card", "err", err)
		return
	}
	fmt.Fprintln(cardOut, card)
}
