package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coolbeans/internal/debug"
	"coolbeans/internal/version"
	"coolbeans/pkg/blink"
	"coolbeans/pkg/config"
	"coolbeans/pkg/gui/components"
	"coolbeans/pkg/gui/icons"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// options holds the command line flags
type options struct {
	configPath  string
	word        string
	icon        string
	interval    time.Duration
	beans       int
	plainIcon   bool
	headless    bool
	showVersion bool
}

// resolveConfig loads the config file and applies flags the user set
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("word") {
		cfg.Word = opts.word
	}
	if flags.Changed("icon") {
		cfg.Icon = opts.icon
	}
	if flags.Changed("interval") {
		cfg.Interval = opts.interval
	}
	if flags.Changed("beans") {
		cfg.BeanCount = config.ClampBeans(opts.beans)
	}
	if flags.Changed("plain-icon") {
		cfg.PlainIcon = opts.plainIcon
	}
	return cfg, nil
}

// runHeadless animates the terminal title on w until ctx is done, then
// leaves the unanimated title behind.
func runHeadless(ctx context.Context, cfg blink.Config, w io.Writer) error {
	sink := blink.NewTerminalSink(w)
	b, err := blink.New(cfg, sink, blink.TickerScheduler{})
	if err != nil {
		return err
	}

	b.Start()
	debug.DebugLog("headless title animation started")
	<-ctx.Done()
	b.Stop()

	sink.SetTitle(b.Title())
	debug.DebugLog("headless title animation stopped")
	return nil
}

func runTUI(cfg blink.Config, beans int) error {
	var p *tea.Program
	sink := components.NewProgramSink(components.SenderFunc(func(msg tea.Msg) {
		p.Send(msg)
	}))

	b, err := blink.New(cfg, sink, blink.TickerScheduler{})
	if err != nil {
		return err
	}
	defer b.Stop()

	// p is assigned before Init starts the blinker, so the sink never sees nil.
	p = tea.NewProgram(newModel(b, beans), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	blinkCfg := cfg.BlinkConfig(icons.TitleIcon(cfg.Icon, cfg.PlainIcon))
	if err := blinkCfg.Validate(); err != nil {
		return err
	}

	debug.InitDebugLogger()
	defer debug.CloseDebugLogger()
	debug.DebugLog("coolbeans %s: word=%q interval=%s", version.String(), cfg.Word, cfg.Interval)

	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runHeadless(ctx, blinkCfg, os.Stdout)
	}
	return runTUI(blinkCfg, cfg.BeanCount)
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "coolbeans",
		Short: "Blink a word in the terminal title",
		Long: `coolbeans animates the terminal window title by lowercasing one letter
of a word per tick, left to right, forever:

  🧊 c O O L B E A N S
  🧊 C o O L B E A N S
  ...

It also runs a small storefront for ordering cool beans.

Keys:
  space   start/stop the title animation
  + / -   adjust the bean count
  enter   order (y to confirm, n to cancel)
  q       quit

Settings are read from ~/.coolbeans/config.yaml; flags override them.

Examples:
  coolbeans                         # COOLBEANS, once per second
  coolbeans --word HOTBEANS         # a different word
  coolbeans --interval 250ms        # faster
  coolbeans --headless              # title only, no storefront`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.coolbeans/config.yaml)")
	flags.StringVar(&opts.word, "word", blink.DefaultWord, "Word to animate")
	flags.StringVar(&opts.icon, "icon", blink.DefaultIcon, "Prefix shown before the word")
	flags.DurationVar(&opts.interval, "interval", blink.DefaultInterval, "Time between ticks")
	flags.IntVar(&opts.beans, "beans", config.DefaultBeanCount, "Initial bean count")
	flags.BoolVar(&opts.plainIcon, "plain-icon", false, "Use a plain ASCII prefix instead of the icon")
	flags.BoolVar(&opts.headless, "headless", false, "Animate the title without the storefront")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	return rootCmd, opts
}

func main() {
	rootCmd, _ := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
