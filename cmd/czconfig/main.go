package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/czconfig/config"
	"github.com/jeffrom/czconfig/i18n"
	"github.com/jeffrom/czconfig/model"
	"github.com/jeffrom/czconfig/runner"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	return runWithTerminalIO(rawArgs, nil)
}

func runWithTerminalIO(rawArgs []string, termio *config.TerminalIO) error {
	out := config.NewOutput(termio)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var summary bool
	var format string
	var initConfig bool
	var checkCommits []string
	var checkCommitFile string
	var compose bool
	var answers model.Commit
	var subjectLimit int
	var lang string
	flags := pflag.NewFlagSet("czconfig", pflag.ContinueOnError)
	flags.SetOutput(out.Term.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print the effective configuration and exit")
	flags.BoolVar(&summary, "summary", false, "print a human readable summary of the configuration and exit")
	flags.StringVar(&format, "format", "yaml", "configuration `format` for --print-config and --init (yaml, json, toml)")
	flags.BoolVar(&initConfig, "init", false, "write the default configuration to the current directory and exit")
	flags.StringArrayVar(&checkCommits, "check-commit", nil, "validate the commit `message` (- reads stdin)")
	flags.StringVar(&checkCommitFile, "check-commit-file", "", "validate the commit message in `file`, as passed to a commit-msg hook")
	flags.BoolVar(&compose, "compose", false, "compose a commit message from --type, --scope, --subject and friends")
	flags.StringVarP(&answers.Type, "type", "t", "", "commit `type` value or keyword")
	flags.StringVarP(&answers.Scope, "scope", "s", "", "commit `scope`")
	flags.StringVarP(&answers.Subject, "subject", "m", "", "commit `subject`")
	flags.StringVar(&answers.Body, "body", "", "commit `body`")
	flags.StringVar(&answers.Breaking, "breaking", "", "breaking change `description`")
	flags.StringVar(&answers.Footer, "footer", "", "issues closed `footer`")
	flags.IntVar(&subjectLimit, "subject-limit", 0, "override the subject length `limit`")
	flags.StringVar(&lang, "lang", "", "output `language` (en, ja); defaults to $LANG")
	flags.BoolVarP(&out.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&out.Quiet, "quiet", "q", false, "print as little as necessary")

	if err := flags.Parse(rawArgs[1:]); err != nil {
		return err
	}

	trans, err := newTranslations(lang)
	if err != nil {
		return err
	}

	if help {
		usage(out, trans, flags)
		return nil
	}
	if version {
		out.Printf("%s", Version)
		return nil
	}

	fmtName, err := config.ParseFormat(format)
	if err != nil {
		return err
	}

	if initConfig {
		return writeDefaultConfig(out, trans, fmtName)
	}

	cfgPath, f, err := readConfigFile(cfgFile)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return errors.New(trans.GetMessage("config_not_found", 0, map[string]interface{}{
				"Names": strings.Join(config.FileNames, ", "),
			}))
		}
		return err
	}
	out.Debugf("config: %s", cfgPath)

	// an explicit 0 must reach validation, so the flag replaces the file value
	if flags.Lookup("subject-limit").Changed {
		f.SubjectLimit = &subjectLimit
	}

	cfg, err := config.New(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cfgPath, err)
	}
	// done setting up config

	if printConfig {
		return config.Encode(out.Term.Stdout, cfg.File(), fmtName)
	}
	if summary {
		return cfg.TextSummary(out.Term.Stdout)
	}

	rnr := runner.New(cfg, out)
	ctx := context.Background()

	if compose {
		msg, err := rnr.Compose(answers)
		if err != nil {
			return err
		}
		fmt.Fprintln(out.Term.Stdout, msg)
		return nil
	}

	if flags.Lookup("check-commit").Changed || checkCommitFile != "" {
		var err error
		var n int
		switch {
		case checkCommitFile != "":
			err = checkFile(ctx, rnr, checkCommitFile)
			n = 1
		case len(checkCommits) == 1 && checkCommits[0] == "-":
			if !stdinIsPipe(out.Term) {
				return errors.New("--check-commit -: stdin is a terminal")
			}
			_, err = rnr.CheckReadCommit(ctx, out.Term.Stdin)
			n = 1
		default:
			_, err = rnr.CheckCommits(ctx, checkCommits)
			n = len(checkCommits)
		}
		if err != nil {
			cf := runner.CheckFailure{}
			if errors.As(err, &cf) {
				if err := cf.WriteFailure(out.Term.Stdout); err != nil {
					out.Errorf("failed to write invalid commit information: %v", err)
				}
				return errors.New(trans.GetMessage("check_failed", len(cf.Failures), map[string]interface{}{"Count": len(cf.Failures)}))
			}
			return err
		}
		out.Printf("%s", trans.GetMessage("commits_ok", n, map[string]interface{}{"Count": n}))
		return nil
	}

	out.Printf("%s", trans.GetMessage("config_ok", 0, map[string]interface{}{"Path": cfgPath}))
	return nil
}

func usage(out config.Output, trans *i18n.Translations, flags *pflag.FlagSet) {
	out.Printf(`%s [flags]

%s

FLAGS
%s

EXAMPLES

# validate the nearest .cz-config.yaml, .cz-config.json or .cz-config.toml
$ czconfig

# print the effective configuration as toml
$ czconfig --print-config --format toml

# compose a message
$ czconfig --compose -t feat -s interpreter -m "add let form"

# use as a commit-msg hook
$ czconfig --check-commit-file "$1"
`, filepath.Base(os.Args[0]), trans.GetMessage("usage_description", 0, nil), flags.FlagUsages())
}

func newTranslations(lang string) (*i18n.Translations, error) {
	if lang != "" {
		return i18n.NewTranslations(lang)
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if trans, err := i18n.NewTranslations(v); err == nil {
				return trans, nil
			}
			break
		}
	}
	return i18n.NewTranslations("")
}

// readConfigFile reads the file given with --config, or the closest
// configuration file above the working directory.
func readConfigFile(p string) (string, config.File, error) {
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", config.File{}, err
		}
		p, err = config.Find(wd)
		if err != nil {
			return "", config.File{}, err
		}
	}
	f, err := config.ReadFile(p)
	return p, f, err
}

func writeDefaultConfig(out config.Output, trans *i18n.Translations, format config.Format) error {
	name := ".cz-config." + string(format)
	if _, err := os.Stat(name); err == nil {
		return errors.New(trans.GetMessage("config_exists", 0, map[string]interface{}{"Path": name}))
	}
	fp, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if err := config.Encode(fp, config.Default(), format); err != nil {
		fp.Close()
		return err
	}
	if err := fp.Close(); err != nil {
		return err
	}
	out.Printf("%s", trans.GetMessage("config_written", 0, map[string]interface{}{"Path": name}))
	return nil
}

func checkFile(ctx context.Context, rnr *runner.Runner, p string) error {
	fp, err := os.Open(p)
	if err != nil {
		return err
	}
	defer fp.Close()
	_, err = rnr.CheckReadCommit(ctx, fp)
	return err
}

func stdinIsPipe(term config.TerminalIO) bool {
	f, ok := term.Stdin.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
