package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thombles/ax25-rs/frame"
	"github.com/thombles/ax25-rs/tnc"
)

var (
	cfgFile string
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "ax25",
	Short: "Listen, send and beacon on a packet radio TNC",
	Long: `ax25 talks to a Terminal Node Controller over any supported backend.

The TNC is selected with a textual address, e.g.
  tnc:linuxif:vk7ntk-2
  tnc:tcpkiss:192.168.0.1:8001
which may also be supplied via the AX25_TNC environment variable or a
config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrap(err, "read config file")
			}
			log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config")
		}
		return nil
	},
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.String("tnc", "", "TNC address, e.g. tnc:tcpkiss:192.168.0.1:8001")
	pf.String("callsign", "", "source callsign, e.g. VK7NTK-4")

	viper.SetEnvPrefix("AX25")
	viper.AutomaticEnv()
	viper.BindPFlag("tnc", pf.Lookup("tnc"))
	viper.BindPFlag("callsign", pf.Lookup("callsign"))
}

// openTnc connects to the configured TNC.
func openTnc() (*tnc.Tnc, error) {
	addrText := viper.GetString("tnc")
	if addrText == "" {
		return nil, errors.New("no TNC address configured (--tnc, AX25_TNC or config file)")
	}
	addr, err := tnc.ParseAddress(addrText)
	if err != nil {
		return nil, err
	}
	log.WithField("tnc", addr).Debug("opening TNC")
	return tnc.Open(addr)
}

// sourceAddress parses the configured callsign.
func sourceAddress() (frame.Address, error) {
	cs := viper.GetString("callsign")
	if cs == "" {
		return frame.Address{}, errors.New("no source callsign configured (--callsign or AX25_CALLSIGN)")
	}
	return frame.ParseAddress(cs)
}
