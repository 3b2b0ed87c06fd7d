package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thombles/ax25-rs/frame"
	"github.com/thombles/ax25-rs/tnc"
)

var beaconInterval time.Duration

// beaconCmd broadcasts the time periodically and answers anyone who
// asks "what is the time?". It exercises a shared handle: one
// goroutine sends while the main goroutine receives.
var beaconCmd = &cobra.Command{
	Use:   "beacon",
	Short: "Broadcast the time and answer time requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := sourceAddress()
		if err != nil {
			return err
		}
		t, err := openTnc()
		if err != nil {
			return err
		}
		defer t.Close()

		broadcast := frame.MustParseAddress("TIME-0")
		go func() {
			for {
				if err := transmitTime(t, src, broadcast); err != nil {
					log.WithError(err).Error("beacon transmit failed")
					return
				}
				time.Sleep(beaconInterval)
			}
		}()

		for r := range t.Incoming() {
			if r.Err != nil {
				log.WithError(r.Err).Warn("receive")
				continue
			}
			if strings.Contains(r.Frame.InfoString(), "what is the time?") {
				if err := transmitTime(t, src, r.Frame.Source); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func transmitTime(t *tnc.Tnc, src, dest frame.Address) error {
	f := &frame.Frame{
		Source:            src,
		Destination:       dest,
		CommandOrResponse: frame.Command,
		Content: &frame.UnnumberedInformation{
			PID:  frame.PIDNone,
			Info: []byte(fmt.Sprintf("The time is: %s", time.Now().Format(time.RFC1123))),
		},
	}
	return t.SendFrame(f)
}

func init() {
	beaconCmd.Flags().DurationVar(&beaconInterval, "interval", time.Minute, "time between broadcasts")
	rootCmd.AddCommand(beaconCmd)
}
