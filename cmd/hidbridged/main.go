// Command hidbridged is the daemon process: it loads a product's device
// configs, watches for hardware arrivals, and exposes the control plane
// on DBus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/hidbridge/daemon/internal/controlplane"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/manager"
)

func exitIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "hidbridged:", err)
		os.Exit(1)
	}
}

func main() {
	var (
		product  string
		sysBus   bool
		err      error
		conn     *dbus.Conn
		mgr      *manager.Manager
		cpServer *controlplane.Server
	)

	flag.StringVar(&product, "product", "hidbridge", "device config product name")
	flag.BoolVar(&sysBus, "system-bus", false, "connect to the system bus instead of the session bus")
	flag.Parse()

	logger := logging.For("hidbridged")

	mgr, err = manager.New(product)
	exitIf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = mgr.Start(ctx)
	exitIf(err)

	if sysBus {
		conn, err = dbus.SystemBus()
	} else {
		conn, err = dbus.SessionBus()
	}

	exitIf(err)

	cpServer, err = controlplane.New(conn, mgr, controlplane.AllowAll)
	exitIf(err)

	_ = cpServer

	logger.Info("hidbridged started", "product", product)

	<-ctx.Done()

	logger.Info("hidbridged shutting down")

	mgr.Stop()
	conn.Close()
}
