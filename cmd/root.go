package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/Jerry809/curl-to-csharp/converter"
	"github.com/Jerry809/curl-to-csharp/csharp"
	"github.com/Jerry809/curl-to-csharp/parse"
)

var (
	verbose    bool
	inputFile  string
	outputFile string
	Logger     *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "curl2cs [curl command...]",
		Short: "Convert curl commands to C# HttpClient code",
		Long: `curl2cs translates curl command lines into C# code that issues the
equivalent HTTP request using HttpClient. The command can be passed as
arguments, piped on stdin, or read line by line from a file.`,
		Args: cobra.ArbitraryArgs,
		Example: `  curl2cs curl -X POST https://example.com/api -d '{"a":1}'
  echo "curl https://example.com" | curl2cs
  curl2cs --file commands.txt -o generated.cs`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: runConvert,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write generated code to a file instead of stdout")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read curl commands from a file, one per line")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runConvert(cmd *cobra.Command, args []string) error {
	commands, err := collectCommands(args)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		return fmt.Errorf("no curl command given; pass it as arguments, on stdin, or via --file")
	}

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	logger := GetLogger()
	seen := make(map[uint64]bool)
	converted := 0

	for _, command := range commands {
		digest := xxhash.Sum64String(command)
		if seen[digest] {
			logger.Debug("skipping duplicate command", "command", command)
			continue
		}
		seen[digest] = true

		opts, warnings, err := parse.Command(command)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", command, err)
		}

		result := converter.Convert(opts)
		for _, w := range append(warnings, result.Warnings...) {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		if converted > 0 {
			fmt.Fprintln(out)
		}
		if len(commands) > 1 {
			fmt.Fprintf(out, "// %s\n", command)
		}
		fmt.Fprint(out, csharp.Render(result.Statements))
		converted++
	}

	logger.Debug("conversion complete", "commands", len(commands), "converted", converted)
	return nil
}

// collectCommands gathers raw curl commands from a file, the arguments, or
// stdin, in that order of preference. Blank lines and #-comments are skipped
// in file and stdin input.
func collectCommands(args []string) ([]string, error) {
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("opening command file: %w", err)
		}
		defer f.Close()
		return readCommandLines(f)
	}

	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	// fall back to stdin when piped
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		return readCommandLines(os.Stdin)
	}
	return nil, nil
}

func readCommandLines(r io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading commands: %w", err)
	}
	return commands, nil
}

func openOutput() (io.Writer, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}
