// Package main provides the CLI entrypoint for passgen.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/passgen/internal/config"
	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/session"
	"github.com/verte-zerg/passgen/internal/store"
	"github.com/verte-zerg/passgen/internal/strength"
	"github.com/verte-zerg/passgen/internal/tui"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

const (
	defaultLength    = 16
	defaultUpper     = true
	defaultDigits    = true
	defaultSymbols   = true
	defaultAmbiguous = false
	defaultWords     = 4
	defaultSeparator = "-"
)

var (
	genLength    int
	genUpper     bool
	genDigits    bool
	genSymbols   bool
	genAmbiguous bool

	phraseWords     int
	phraseSeparator string
	phraseWordList  string

	wordsWordList string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Password and passphrase generator with strength analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runMenuCmd,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPassphraseCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(nil)
	if err != nil {
		return err
	}
	words, err := wordlist.Words(cfg.WordListPath)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history store: %v\n", cerr)
		}
	}()

	sess := session.New(generator.New(), st)
	menu := tui.NewModel(sess, cfg, words)
	program := tea.NewProgram(menu, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&genLength, "length", defaultLength, "password length")
	cmd.Flags().BoolVar(&genUpper, "upper", defaultUpper, "include uppercase letters")
	cmd.Flags().BoolVar(&genDigits, "digits", defaultDigits, "include digits")
	cmd.Flags().BoolVar(&genSymbols, "symbols", defaultSymbols, "include symbols")
	cmd.Flags().BoolVar(&genAmbiguous, "exclude-ambiguous", defaultAmbiguous, "exclude ambiguous characters (il1Lo0O)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Length < 1 {
		return fmt.Errorf("--length must be greater than 0")
	}

	spec := model.GenerationSpec{
		Length:           cfg.Length,
		Upper:            cfg.Upper,
		Digits:           cfg.Digits,
		Symbols:          cfg.Symbols,
		ExcludeAmbiguous: cfg.ExcludeAmbiguous,
	}
	password, err := generator.New().Password(spec)
	if err != nil {
		return err
	}
	printResult(cmd, password)
	return nil
}

func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a passphrase",
		Args:  cobra.NoArgs,
		RunE:  runPassphraseCmd,
	}
	cmd.Flags().IntVar(&phraseWords, "words", defaultWords, "number of words")
	cmd.Flags().StringVar(&phraseSeparator, "separator", defaultSeparator, "word separator")
	cmd.Flags().StringVar(&phraseWordList, "wordlist", "", "word list file (one word per line)")
	return cmd
}

func runPassphraseCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Words < 1 {
		return fmt.Errorf("--words must be greater than 0")
	}

	words, err := wordlist.Words(cfg.WordListPath)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	passphrase, err := generator.New().Passphrase(words, cfg.Words, cfg.Separator)
	if err != nil {
		return err
	}
	printResult(cmd, passphrase)
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <password>",
		Short: "Analyze password strength",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyzeCmd,
	}
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	printReport(cmd, strength.Analyze(args[0]))
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the active passphrase word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsWordList, "wordlist", "", "word list file (one word per line)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	path := wordsWordList
	if path == "" {
		fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Passphrase.WordList != nil {
			path = *fileCfg.Passphrase.WordList
		}
	}
	words, err := wordlist.Words(path)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges defaults, the config file, and (when cmd is non-nil)
// CLI flags, with flags taking precedence over the file.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := model.Config{
		Length:           defaultLength,
		Upper:            defaultUpper,
		Digits:           defaultDigits,
		Symbols:          defaultSymbols,
		ExcludeAmbiguous: defaultAmbiguous,
		Words:            defaultWords,
		Separator:        defaultSeparator,
	}
	applyInt(&cfg.Length, fileCfg.Generate.Length)
	applyBool(&cfg.Upper, fileCfg.Generate.Upper)
	applyBool(&cfg.Digits, fileCfg.Generate.Digits)
	applyBool(&cfg.Symbols, fileCfg.Generate.Symbols)
	applyBool(&cfg.ExcludeAmbiguous, fileCfg.Generate.ExcludeAmbiguous)
	applyInt(&cfg.Words, fileCfg.Passphrase.Words)
	applyString(&cfg.Separator, fileCfg.Passphrase.Separator)
	applyString(&cfg.WordListPath, fileCfg.Passphrase.WordList)

	if cmd == nil {
		return cfg, nil
	}
	applyIntFlag(cmd, "length", &cfg.Length, genLength)
	applyBoolFlag(cmd, "upper", &cfg.Upper, genUpper)
	applyBoolFlag(cmd, "digits", &cfg.Digits, genDigits)
	applyBoolFlag(cmd, "symbols", &cfg.Symbols, genSymbols)
	applyBoolFlag(cmd, "exclude-ambiguous", &cfg.ExcludeAmbiguous, genAmbiguous)
	applyIntFlag(cmd, "words", &cfg.Words, phraseWords)
	applyStringFlag(cmd, "separator", &cfg.Separator, phraseSeparator)
	applyStringFlag(cmd, "wordlist", &cfg.WordListPath, phraseWordList)
	return cfg, nil
}

func applyInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func applyBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func printResult(cmd *cobra.Command, credential string) {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, credential); err != nil {
		logErrf("failed to write output: %v\n", err)
		return
	}
	printReport(cmd, strength.Analyze(credential))
}

func printReport(cmd *cobra.Command, report model.StrengthReport) {
	out := cmd.OutOrStdout()
	width := reportBarWidth()
	bar := strengthBar(report.Score, width)
	if _, err := fmt.Fprintf(out, "Strength: %d/100 %s %s\n", report.Score, bar, report.Rating); err != nil {
		logErrf("failed to write output: %v\n", err)
		return
	}
	for _, tip := range report.Feedback {
		if _, err := fmt.Fprintf(out, "  - %s\n", tip); err != nil {
			logErrf("failed to write output: %v\n", err)
			return
		}
	}
}

// reportBarWidth sizes the score bar to the terminal, falling back to a
// fixed width when stdout is not a terminal.
func reportBarWidth() int {
	const fallback = 20
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width < 40 {
		return fallback
	}
	if width > 80 {
		width = 80
	}
	return width / 2
}

func strengthBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# passgen configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# length = %d              # Password length
# upper = %t              # Include uppercase letters
# digits = %t             # Include digits
# symbols = %t            # Include symbols
# exclude-ambiguous = %t # Exclude ambiguous characters (il1Lo0O)

[passphrase]
# words = %d                # Words per passphrase
# separator = %q          # Word separator
# wordlist = ""           # Word list file (one word per line)
`,
		defaultLength,
		defaultUpper,
		defaultDigits,
		defaultSymbols,
		defaultAmbiguous,
		defaultWords,
		defaultSeparator,
	)
}
