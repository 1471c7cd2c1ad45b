package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadProfileCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "load-profile <composite-name> <profile-path>",
		Short: "Replace a composite's active profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			call := compositeObject(conn, args[0]).Call(compositeIface+".LoadProfilePath", 0, args[1])
			if call.Err != nil {
				return fmt.Errorf("LoadProfilePath: %w", call.Err)
			}

			return nil
		},
	}
}

func newSetInterceptModeCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "set-intercept-mode <composite-name> <mode>",
		Short: "Set a composite's intercept mode (0=None, 1=Pass, 2=All, 3=GamepadOnly)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			var mode uint32

			if _, err := fmt.Sscanf(args[1], "%d", &mode); err != nil {
				return fmt.Errorf("invalid mode %q: %w", args[1], err)
			}

			call := compositeObject(conn, args[0]).Call(compositeIface+".SetInterceptMode", 0, mode)
			if call.Err != nil {
				return fmt.Errorf("SetInterceptMode: %w", call.Err)
			}

			return nil
		},
	}
}

func newStopCompositeCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <composite-name>",
		Short: "Tear down a composite's sources and targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			call := compositeObject(conn, args[0]).Call(compositeIface+".Stop", 0)
			if call.Err != nil {
				return fmt.Errorf("Stop: %w", call.Err)
			}

			return nil
		},
	}
}
