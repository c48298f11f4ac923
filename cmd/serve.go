package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Showmax/go-fqdn"
	"github.com/abhisek/thermoviz/internal/api"
	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diagram and practice computations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Addr
		}
		log := logger.Default().WithPrefix("api")

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewServer(version, log).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}

		url := serverURL(ln.Addr())
		log.Info("listening on %s", url)
		if showQR, _ := cmd.Flags().GetBool("qr"); showQR {
			if err := printQR(url); err != nil {
				log.Warn("qr code: %v", err)
			}
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(ln)
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-cmd.Context().Done():
		}

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

// serverURL is the address other devices on the network can open.
func serverURL(addr net.Addr) string {
	port := "80"
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	host, err := fqdn.FqdnHostname()
	if err != nil || host == "" {
		host, _ = os.Hostname()
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

func printQR(url string) error {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Println(q.ToSmallString(false))
	return nil
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default THERMOVIZ_ADDR or :8080)")
	serveCmd.Flags().Bool("qr", false, "Print a QR code of the server URL")
}
