package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docrtf/internal/memberlist"
	"github.com/dgallion1/docrtf/internal/translator"
)

type membersOpts struct {
	inGroup        bool
	includeFriends bool
	extractAll     bool
	documented     bool
	lang           string
	json           bool
}

func newMembersCmd() *cobra.Command {
	opts := membersOpts{}

	cmd := &cobra.Command{
		Use:   "members <manifest.yaml>",
		Short: "List the declaration sections of a member manifest",
		Example: `  docrtf members members.yaml
  docrtf members members.yaml --documented --lang es`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembers(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.inGroup, "in-group", false, "count members that belong to a group")
	f.BoolVar(&opts.includeFriends, "include-friends", false, "add friends to the total")
	f.BoolVar(&opts.extractAll, "extract-all", false, "count undocumented defines")
	f.BoolVar(&opts.documented, "documented", false, "count documented members instead of declared ones")
	f.StringVar(&opts.lang, "lang", "en", "language of the section titles")
	f.BoolVar(&opts.json, "json", false, "print JSON")
	return cmd
}

func runMembers(cmd *cobra.Command, path string, opts membersOpts) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	policy := memberlist.CountPolicy{IncludeFriends: opts.includeFriends, ExtractAll: opts.extractAll}
	list, err := memberlist.LoadManifest(f, policy, slogger(cmd.Context()))
	if err != nil {
		return err
	}

	var counts memberlist.Counts
	if opts.documented {
		counts = list.CountDocumented()
	} else {
		counts = list.CountDeclared(opts.inGroup)
	}
	sections := memberlist.Sections(counts, translator.Default().For(opts.lang))

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"members":  list.Len(),
			"total":    counts.Total,
			"sections": sections,
		})
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, s := range sections {
		fmt.Fprintf(tw, "%s\t%d\n", s.Title, s.Count)
	}
	fmt.Fprintf(tw, "total\t%d\n", counts.Total)
	return tw.Flush()
}
