package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thombles/ax25-rs/frame"
)

var sendCmd = &cobra.Command{
	Use:   "send <dest-callsign> <message>",
	Short: "Transmit a UI frame",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := sourceAddress()
		if err != nil {
			return err
		}
		dest, err := frame.ParseAddress(args[0])
		if err != nil {
			return err
		}
		t, err := openTnc()
		if err != nil {
			return err
		}
		defer t.Close()

		f := &frame.Frame{
			Source:            src,
			Destination:       dest,
			CommandOrResponse: frame.Command,
			Content: &frame.UnnumberedInformation{
				PID:  frame.PIDNone,
				Info: []byte(args[1]),
			},
		}
		if err := t.SendFrame(f); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"source":      src,
			"destination": dest,
		}).Info("transmitted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
