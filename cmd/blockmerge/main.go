package main

import (
	"os"
	"time"

	bmerge "github.com/folbricht/blockmerge"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	config        string
	out           string
	format        bmerge.Format
	cache         string
	delay         time.Duration
	timeout       time.Duration
	logLevel      string
	syslog        bool
	syslogNetwork string
	syslogAddress string
	metricsFile   string
}

func main() {
	var opt options
	cmd := &cobra.Command{
		Use:   "blockmerge",
		Short: "Merge DNS blocklists",
		Long: `Merge DNS blocklists.

Fetches a number of blocklists in hosts-file format, applies
a whitelist and blacklist, and writes the merged list of hosts
in a format for unbound, dnsmasq, a hosts file, an RPZ zone,
or a CDB database.

Blocklists that can't be fetched are read from the cache. If
any list failed, the output is still written but the command
exits with a non-zero status.
`,
		Example: `  blockmerge -c config.json -f unbound --cache /var/cache/blockmerge -o blocklist.conf`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opt.config, "config", "c", "", "path to config")
	cmd.Flags().StringVarP(&opt.out, "out", "o", "", "output file, prints the blocklist to stdout if not given")
	cmd.Flags().VarP(&opt.format, "format", "f", "format of the merged blocklist: unbound, dnsmasq, hosts, rpz, cdb")
	cmd.Flags().StringVar(&opt.cache, "cache", "", "path to cached blocklists")
	cmd.Flags().DurationVar(&opt.delay, "delay", 500*time.Millisecond, "pause between fetching two blocklists")
	cmd.Flags().DurationVar(&opt.timeout, "timeout", 5*time.Second, "timeout for fetching one blocklist")
	cmd.Flags().StringVar(&opt.logLevel, "log-level", "info", "log level: trace, debug, info, warning, error")
	cmd.Flags().BoolVar(&opt.syslog, "syslog", false, "send warnings and errors to syslog")
	cmd.Flags().StringVar(&opt.syslogNetwork, "syslog-network", "", "syslog network: udp, tcp, unix. Local syslog if empty")
	cmd.Flags().StringVar(&opt.syslogAddress, "syslog-address", "", "remote syslog address")
	cmd.Flags().StringVar(&opt.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file")
	for _, name := range []string{"config", "format", "cache"} {
		_ = cmd.MarkFlagRequired(name)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options) error {
	level, err := logrus.ParseLevel(opt.logLevel)
	if err != nil {
		return bmerge.WrapError(bmerge.KindConfig, err, "invalid log level")
	}
	bmerge.Log.SetLevel(level)

	if opt.syslog {
		hook, err := bmerge.NewSyslogHook(bmerge.SyslogOptions{
			Network: opt.syslogNetwork,
			Address: opt.syslogAddress,
			Tag:     "blockmerge",
		})
		if err != nil {
			// Log any error but don't block if this fails
			bmerge.Log.WithError(err).Error("failed to initialize syslog")
		} else {
			bmerge.Log.AddHook(hook)
			defer hook.Close()
		}
	}

	renderer := opt.format.Renderer()
	if renderer == nil {
		return bmerge.NewError(bmerge.KindConfig, "no output format given")
	}
	if opt.format.RequiresFile() && opt.out == "" {
		return bmerge.NewError(bmerge.KindConfig, "format %s requires an output file", opt.format)
	}

	cfg, err := loadConfig(opt.config)
	if err != nil {
		return err
	}

	merger := bmerge.NewMerger(bmerge.MergerOptions{
		Whitelist: cfg.whitelist,
		Blacklist: cfg.blacklist,
		Loader:    bmerge.NewSchemeLoader(bmerge.HTTPLoaderOptions{Timeout: opt.timeout}),
		Cache:     bmerge.NewFileCache(opt.cache),
		Delay:     opt.delay,
	})
	merged, report := merger.Merge(cfg.sources)

	if err := bmerge.WriteOutput(opt.out, merged.Sorted(), renderer); err != nil {
		return err
	}
	bmerge.Log.WithField("hosts", merged.Len()).Info("wrote merged blocklist")

	if opt.metricsFile != "" {
		metrics := bmerge.NewMetrics()
		metrics.Record(merged, report)
		if err := metrics.WriteFile(opt.metricsFile); err != nil {
			bmerge.Log.WithError(err).Warn("failed writing metrics")
		}
	}

	if report.Failed() {
		return bmerge.ErrRunFailed
	}
	return nil
}
