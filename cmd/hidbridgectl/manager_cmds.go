package main

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"
)

func newCreateCompositeDeviceCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "create-composite-device <config-path>",
		Short: "Parse a device config and start a live composite for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			var path dbus.ObjectPath

			call := managerObject(conn).Call(managerIface+".CreateCompositeDevice", 0, args[0])
			if call.Err != nil {
				return fmt.Errorf("CreateCompositeDevice: %w", call.Err)
			}

			if err := call.Store(&path); err != nil {
				return err
			}

			fmt.Println(path)

			return nil
		},
	}
}

func newCreateTargetDeviceCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "create-target-device <kind>",
		Short: "Build a fresh, unattached target device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			var path dbus.ObjectPath

			call := managerObject(conn).Call(managerIface+".CreateTargetDevice", 0, args[0])
			if call.Err != nil {
				return fmt.Errorf("CreateTargetDevice: %w", call.Err)
			}

			if err := call.Store(&path); err != nil {
				return err
			}

			fmt.Println(path)

			return nil
		},
	}
}

func newStopTargetDeviceCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stop-target-device <kind>",
		Short: "Destroy an unattached target device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			call := managerObject(conn).Call(managerIface+".StopTargetDevice", 0, args[0])
			if call.Err != nil {
				return fmt.Errorf("StopTargetDevice: %w", call.Err)
			}

			return nil
		},
	}
}

func newAttachTargetDeviceCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "attach-target-device <kind> <composite-name>",
		Short: "Attach a target device to a composite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			call := managerObject(conn).Call(managerIface+".AttachTargetDevice", 0, args[0], args[1])
			if call.Err != nil {
				return fmt.Errorf("AttachTargetDevice: %w", call.Err)
			}

			return nil
		},
	}
}

func newSetManageAllDevicesCmd(systemBus *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "set-manage-all-devices <true|false>",
		Short: "Toggle whether every hotplugged device is matched against configs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial(*systemBus)
			if err != nil {
				return err
			}
			defer conn.Close()

			enable := args[0] == "true" || args[0] == "1"

			call := managerObject(conn).Call(managerIface+".SetManageAllDevices", 0, enable)
			if call.Err != nil {
				return fmt.Errorf("SetManageAllDevices: %w", call.Err)
			}

			return nil
		},
	}
}
