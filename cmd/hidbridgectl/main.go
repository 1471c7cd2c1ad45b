// Command hidbridgectl is the DBus CLI client for hidbridged, implementing
// the daemon's management surface (LoadProfilePath, SetInterceptMode, Stop,
// CreateCompositeDevice, CreateTargetDevice, StopTargetDevice,
// AttachTargetDevice, SetManageAllDevices) with its exit-code contract: 0
// on success, non-zero with the error on stderr otherwise. Built with
// github.com/spf13/cobra, the command-tree library the rest of the
// retrieved example pack reaches for.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hidbridgectl:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var systemBus bool

	root := &cobra.Command{
		Use:           "hidbridgectl",
		Short:         "Control the hidbridge daemon over DBus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&systemBus, "system-bus", false, "connect to the system bus instead of the session bus")

	root.AddCommand(
		newCreateCompositeDeviceCmd(&systemBus),
		newLoadProfileCmd(&systemBus),
		newSetInterceptModeCmd(&systemBus),
		newStopCompositeCmd(&systemBus),
		newCreateTargetDeviceCmd(&systemBus),
		newStopTargetDeviceCmd(&systemBus),
		newAttachTargetDeviceCmd(&systemBus),
		newSetManageAllDevicesCmd(&systemBus),
	)

	return root
}
