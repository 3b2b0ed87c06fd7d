package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/thombles/ax25-rs/frame"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print every frame heard on the TNC",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTnc()
		if err != nil {
			return err
		}
		defer t.Close()

		for {
			f, err := t.ReceiveFrame()
			if err != nil {
				var decodeErr *frame.DecodeError
				if errors.As(err, &decodeErr) {
					log.WithError(err).Warn("skipping undecodable frame")
					continue
				}
				return err
			}
			fmt.Printf("%s\n%s\n\n", time.Now().Format(time.RFC3339), f)
		}
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
