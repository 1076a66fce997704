package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jerry809/curl-to-csharp/converter"
	"github.com/Jerry809/curl-to-csharp/csharp"
	"github.com/Jerry809/curl-to-csharp/harimport"
)

var harCmd = &cobra.Command{
	Use:   "har <har-file>",
	Short: "Convert every request in a HAR file to C# code",
	Long: `Read an HTTP Archive (HAR) file and emit one C# snippet per recorded
request, in capture order.`,
	Args: cobra.ExactArgs(1),
	Example: `  curl2cs har recording.har
  curl2cs har recording.har -o generated.cs`,
	RunE: runHar,
}

func init() {
	rootCmd.AddCommand(harCmd)
}

func runHar(cmd *cobra.Command, args []string) error {
	harFile := args[0]

	if err := validateInputFile(harFile); err != nil {
		return err
	}

	requests, err := harimport.File(harFile)
	if err != nil {
		return err
	}
	GetLogger().Debug("loaded HAR file", "file", harFile, "entries", len(requests))

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	for i, opts := range requests {
		result := converter.Convert(opts)
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: entry %d: %s\n", i, w)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "// %s %s\n", opts.Method, opts.URL)
		fmt.Fprint(out, csharp.Render(result.Statements))
	}
	return nil
}
